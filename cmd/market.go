package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agroplan/agro-advisor/internal/planner"
	"github.com/agroplan/agro-advisor/internal/stores"
)

var marketCmd = &cobra.Command{
	Use:   "market",
	Short: "Show the market outlook for a crop",
	Long: `Print the market trend, average modal price and volatility for a crop,
optionally narrowed to one state's mandis.

Examples:
  market --crop rice
  market --crop wheat --state Punjab`,
	RunE: runMarket,
}

func init() {
	f := marketCmd.Flags()
	f.String("crop", "", "crop name (required)")
	f.String("state", "", "narrow to one state's markets")
	_ = marketCmd.MarkFlagRequired("crop")

	rootCmd.AddCommand(marketCmd)
}

func runMarket(cmd *cobra.Command, _ []string) error {
	crop, _ := cmd.Flags().GetString("crop")
	state, _ := cmd.Flags().GetString("state")

	env, err := initEngine()
	if err != nil {
		return err
	}

	ma := planner.ScoreMarket(env.Data.Market, crop, state)
	printMarketAssessment(crop, state, ma)
	return nil
}

func printMarketAssessment(crop, state string, ma planner.MarketAssessment) {
	fmt.Printf("Crop:        %s\n", crop)
	if state != "" {
		fmt.Printf("State:       %s\n", state)
	}
	fmt.Printf("Commodity:   %s\n", stores.CommodityFor(crop))
	fmt.Printf("Records:     %d\n", ma.Records)
	fmt.Printf("Trend:       %s\n", ma.Trend)
	if ma.Records > 0 {
		fmt.Printf("Avg price:   %.0f per quintal\n", ma.AvgPrice)
		fmt.Printf("Change:      %+.1f%%\n", ma.PriceChangePct)
		fmt.Printf("Volatility:  %.1f%%\n", ma.VolatilityPct)
	}
	fmt.Printf("Score:       %.1f / 100\n", ma.Score)
}
