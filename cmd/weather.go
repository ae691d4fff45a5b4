package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/agroplan/agro-advisor/internal/planner"
)

var weatherCmd = &cobra.Command{
	Use:   "weather",
	Short: "Fetch a weather snapshot for a location",
	Long: `Fetch the current conditions and 7-day rainfall outlook for a point.
With --crop, the same penalty rules the planner uses produce a risk
assessment for that crop.

Examples:
  weather --lat 30.90 --lon 75.85
  weather --lat 30.90 --lon 75.85 --crop rice`,
	RunE: runWeather,
}

func init() {
	f := weatherCmd.Flags()
	f.Float64("lat", 0, "latitude (required)")
	f.Float64("lon", 0, "longitude (required)")
	f.String("crop", "", "assess planting risk for this crop")
	_ = weatherCmd.MarkFlagRequired("lat")
	_ = weatherCmd.MarkFlagRequired("lon")

	rootCmd.AddCommand(weatherCmd)
}

func runWeather(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lat, _ := cmd.Flags().GetFloat64("lat")
	lon, _ := cmd.Flags().GetFloat64("lon")
	crop, _ := cmd.Flags().GetString("crop")

	env, err := initEngine()
	if err != nil {
		return err
	}

	cond, err := env.Weather.Conditions(ctx, lat, lon)
	if err != nil {
		return eris.Wrap(err, "weather: fetch conditions")
	}

	fmt.Printf("Location:     %.4f, %.4f\n", lat, lon)
	fmt.Printf("Temperature:  %.1f C\n", cond.TemperatureC)
	fmt.Printf("Humidity:     %.0f %%\n", cond.HumidityPct)
	fmt.Printf("Rainfall:     %.1f mm/day (7-day average)\n", cond.RainfallMM)

	if crop == "" {
		return nil
	}

	ra := planner.ScoreRisk(crop, cond)
	fmt.Printf("\nRisk for %s: %s (score %.0f, water need %s)\n",
		crop, ra.Level, ra.Score, planner.WaterNeedFor(crop))
	for _, alert := range ra.Alerts {
		fmt.Printf("  ! %s\n", alert)
	}
	return nil
}
