package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "Load the datasets and print their status",
	RunE: func(cmd *cobra.Command, _ []string) error {
		env, err := initEngine()
		if err != nil {
			return err
		}

		fmt.Printf("Historical records:  %d\n", env.Data.Historical.Len())
		fmt.Printf("Price records:       %d\n", env.Data.Market.Len())
		fmt.Printf("Soil profiles:       %d\n", env.Data.Soil.Len())
		fmt.Printf("Calendar entries:    %d\n", env.Data.Calendar.Len())
		fmt.Printf("Distinct crops:      %d\n", len(env.Data.Historical.DistinctCrops()))
		fmt.Printf("Distinct states:     %d\n", len(env.Data.Historical.DistinctStates()))
		fmt.Printf("Derived requirements: %d crops\n", len(env.Requirements))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(datasetsCmd)
}
