package main

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/agroplan/agro-advisor/internal/soilcheck"
)

var soilCmd = &cobra.Command{
	Use:   "soil",
	Short: "Show a state's soil profile, optionally checked against a crop",
	Long: `Print the N/P/K/pH profile for a state. With --crop, each parameter is
checked against the crop's ideal band and an overall suitability label
is reported.

Examples:
  soil --state Punjab
  soil --state Punjab --crop rice`,
	RunE: runSoil,
}

func init() {
	f := soilCmd.Flags()
	f.String("state", "", "state name (required)")
	f.String("crop", "", "check profile against this crop's ideal ranges")
	_ = soilCmd.MarkFlagRequired("state")

	rootCmd.AddCommand(soilCmd)
}

func runSoil(cmd *cobra.Command, _ []string) error {
	state, _ := cmd.Flags().GetString("state")
	crop, _ := cmd.Flags().GetString("crop")

	env, err := initEngine()
	if err != nil {
		return err
	}

	profile, ok := env.Data.Soil.ProfileFor(state)
	if !ok {
		return eris.Errorf("soil: no profile for state %q", state)
	}

	fmt.Printf("State: %s\n", profile.State)
	fmt.Printf("N:     %.0f kg/ha\n", profile.N)
	fmt.Printf("P:     %.0f kg/ha\n", profile.P)
	fmt.Printf("K:     %.0f kg/ha\n", profile.K)
	fmt.Printf("pH:    %.1f\n", profile.PH)

	if crop == "" {
		return nil
	}

	res, ok := soilcheck.Check(crop, *profile)
	if !ok {
		return eris.Errorf("soil: no ideal ranges tabulated for crop %q (known: %s)",
			crop, strings.Join(soilcheck.KnownCrops(), ", "))
	}

	fmt.Printf("\nCheck against %s:\n", res.Crop)
	for _, v := range res.Verdicts {
		fmt.Printf("  %-3s %8.1f  ideal %.1f-%.1f  %s\n",
			v.Nutrient, v.Value, v.Ideal.Min, v.Ideal.Max, v.Status)
	}
	fmt.Printf("Suitability: %s\n", res.Suitability)
	return nil
}
