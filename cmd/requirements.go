package main

import (
	"fmt"
	"sort"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/agroplan/agro-advisor/internal/requirement"
)

var requirementsCmd = &cobra.Command{
	Use:   "requirements",
	Short: "Show derived growing requirements",
	Long: `Print the weather ranges derived from the historical record, either for
one crop or for every crop with enough data.

Examples:
  requirements
  requirements --crop rice`,
	RunE: runRequirements,
}

func init() {
	requirementsCmd.Flags().String("crop", "", "show one crop only")
	rootCmd.AddCommand(requirementsCmd)
}

func runRequirements(cmd *cobra.Command, _ []string) error {
	crop, _ := cmd.Flags().GetString("crop")

	env, err := initEngine()
	if err != nil {
		return err
	}

	if crop != "" {
		req, ok := env.Requirements.For(crop)
		if !ok {
			return eris.Errorf("requirements: no entry for crop %q (fewer than 5 historical records)", crop)
		}
		printRequirement(req)
		return nil
	}

	keys := make([]string, 0, len(env.Requirements))
	for k := range env.Requirements {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Printf("%-16s %16s %18s %14s %8s %7s\n",
		"Crop", "Temp (C)", "Rainfall (mm)", "Humidity (%)", "Records", "States")
	for _, k := range keys {
		r := env.Requirements[k]
		fmt.Printf("%-16s %6.1f-%-9.1f %7.0f-%-10.0f %5.0f-%-8.0f %8d %7d\n",
			r.Crop,
			r.Temperature.Min, r.Temperature.Max,
			r.Rainfall.Min, r.Rainfall.Max,
			r.Humidity.Min, r.Humidity.Max,
			r.HistoricalRecords, r.StatesGrown)
	}
	return nil
}

func printRequirement(r requirement.Requirement) {
	fmt.Printf("Crop:        %s\n", r.Crop)
	fmt.Printf("Temperature: %.1f-%.1f C (optimal %.1f)\n", r.Temperature.Min, r.Temperature.Max, r.Temperature.Optimal)
	fmt.Printf("Rainfall:    %.0f-%.0f mm (optimal %.0f)\n", r.Rainfall.Min, r.Rainfall.Max, r.Rainfall.Optimal)
	fmt.Printf("Humidity:    %.0f-%.0f %% (optimal %.0f)\n", r.Humidity.Min, r.Humidity.Max, r.Humidity.Optimal)
	fmt.Printf("Avg yield:   %.2f per hectare (top-performing records)\n", r.AvgYieldPerHectare)
	fmt.Printf("Records:     %d across %d states\n", r.HistoricalRecords, r.StatesGrown)
}
