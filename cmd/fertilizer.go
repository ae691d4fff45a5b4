package main

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/agroplan/agro-advisor/internal/fertilizer"
	"github.com/agroplan/agro-advisor/internal/soilcheck"
)

var fertilizerCmd = &cobra.Command{
	Use:   "fertilizer",
	Short: "Recommend nutrient top-ups for a crop on a state's soil",
	Long: `Compute per-nutrient deficits between the crop's ideal soil chemistry
and the state's measured profile, with a carrier fertilizer suggestion
for each shortfall.

Examples:
  fertilizer --crop rice --state Odisha`,
	RunE: runFertilizer,
}

func init() {
	f := fertilizerCmd.Flags()
	f.String("crop", "", "crop name (required)")
	f.String("state", "", "state name (required)")
	_ = fertilizerCmd.MarkFlagRequired("crop")
	_ = fertilizerCmd.MarkFlagRequired("state")

	rootCmd.AddCommand(fertilizerCmd)
}

func runFertilizer(cmd *cobra.Command, _ []string) error {
	crop, _ := cmd.Flags().GetString("crop")
	state, _ := cmd.Flags().GetString("state")

	env, err := initEngine()
	if err != nil {
		return err
	}

	profile, ok := env.Data.Soil.ProfileFor(state)
	if !ok {
		return eris.Errorf("fertilizer: no soil profile for state %q", state)
	}

	plan, ok := fertilizer.Optimize(crop, *profile)
	if !ok {
		return eris.Errorf("fertilizer: no ideal ranges tabulated for crop %q (known: %s)",
			crop, strings.Join(soilcheck.KnownCrops(), ", "))
	}

	fmt.Printf("Crop:  %s\nState: %s\n", plan.Crop, plan.State)
	if len(plan.Recommendations) == 0 {
		fmt.Println("Soil is at or above target for N, P and K. No top-up needed.")
	}
	for _, r := range plan.Recommendations {
		fmt.Printf("  %-3s %6.1f kg/ha short of the %.1f target: apply %s\n",
			r.Nutrient, r.DeficitKg, r.Target, r.Fertilizer)
	}
	if plan.PHNote != "" {
		fmt.Printf("  pH: %s\n", plan.PHNote)
	}
	return nil
}
