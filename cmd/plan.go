package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agroplan/agro-advisor/internal/model"
	"github.com/agroplan/agro-advisor/internal/planner"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Recommend crops for a state and month",
	Long: `Score every candidate crop for the given state and month and print the
top recommendations with score breakdowns, market trend, risk level and
an optional land allocation.

Examples:
  # What to plant in Punjab right now
  plan --state Punjab

  # July planting with a land allocation over 5 hectares
  plan --state Punjab --month 7 --land 5

  # Refine with a live forecast for Ludhiana
  plan --state Punjab --lat 30.90 --lon 75.85

  # Export as CSV
  plan --state Punjab --format csv --output plan.csv`,
	RunE: runPlan,
}

func init() {
	f := planCmd.Flags()
	f.String("state", "", "state to plan for (required)")
	f.Int("month", 0, "planting month 1-12 (default: current month)")
	f.Float64("land", 0, "available land in hectares")
	f.Float64("lat", 0, "latitude for live weather")
	f.Float64("lon", 0, "longitude for live weather")
	f.String("format", "table", "output format: table, csv or json")
	f.String("output", "", "output file path (default: stdout)")
	_ = planCmd.MarkFlagRequired("state")

	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	format, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")
	if format != "table" && format != "csv" && format != "json" {
		return eris.Errorf("plan: --format must be table, csv or json (got %q)", format)
	}

	req, err := planRequest(cmd)
	if err != nil {
		return err
	}

	env, err := initEngine()
	if err != nil {
		return err
	}

	report, err := env.Planner.Plan(ctx, req)
	if err != nil {
		return err
	}
	if !report.Success {
		zap.L().Warn("planning produced no recommendations", zap.String("reason", report.Message))
		fmt.Println(report.Message)
		return nil
	}

	return outputPlanReport(report, format, outputPath)
}

// planRequest builds the planner request from flags. Optional flags are
// forwarded only when set so the planner applies its own defaults.
func planRequest(cmd *cobra.Command) (planner.Request, error) {
	state, _ := cmd.Flags().GetString("state")
	req := planner.Request{State: state}

	if cmd.Flags().Changed("month") {
		v, _ := cmd.Flags().GetInt("month")
		req.Month = &v
	}
	if cmd.Flags().Changed("land") {
		v, _ := cmd.Flags().GetFloat64("land")
		req.LandSizeHectares = &v
	}

	latSet := cmd.Flags().Changed("lat")
	lonSet := cmd.Flags().Changed("lon")
	if latSet != lonSet {
		return planner.Request{}, eris.New("plan: --lat and --lon must be given together")
	}
	if latSet {
		lat, _ := cmd.Flags().GetFloat64("lat")
		lon, _ := cmd.Flags().GetFloat64("lon")
		req.Latitude = &lat
		req.Longitude = &lon
	}

	return req, nil
}

func outputPlanReport(report *model.PlanningReport, format, outputPath string) error {
	var w *os.File
	if outputPath != "" {
		var err error
		w, err = os.Create(outputPath)
		if err != nil {
			return eris.Wrapf(err, "plan: create output file %s", outputPath)
		}
		defer w.Close() //nolint:errcheck
	} else {
		w = os.Stdout
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "csv":
		return writePlanCSV(w, report)
	default:
		return writePlanTable(w, report)
	}
}

func writePlanCSV(w *os.File, report *model.PlanningReport) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"crop", "final_score", "market", "weather", "season", "soil", "risk",
		"trend", "avg_price", "risk_level", "recommended_area_ha"}
	if err := cw.Write(header); err != nil {
		return eris.Wrap(err, "plan: write CSV header")
	}

	for _, rec := range report.Recommendations {
		area := ""
		if rec.Quantity != nil {
			area = fmt.Sprintf("%.2f", rec.Quantity.RecommendedAreaHectares)
		}
		row := []string{
			rec.CropName,
			fmt.Sprintf("%.2f", rec.FinalScore),
			fmt.Sprintf("%.1f", rec.Scores.Market),
			fmt.Sprintf("%.1f", rec.Scores.Weather),
			fmt.Sprintf("%.1f", rec.Scores.Season),
			fmt.Sprintf("%.1f", rec.Scores.Soil),
			fmt.Sprintf("%.1f", rec.Scores.Risk),
			string(rec.MarketTrend),
			fmt.Sprintf("%.0f", rec.AverageMarketPrice),
			string(rec.RiskLevel),
			area,
		}
		if err := cw.Write(row); err != nil {
			return eris.Wrap(err, "plan: write CSV row")
		}
	}
	return nil
}

func writePlanTable(w *os.File, report *model.PlanningReport) error {
	fmt.Fprintf(w, "Season: %s   State: %s   Evaluated: %d crops\n\n",
		report.Season, report.State, report.TotalEvaluated)

	header := fmt.Sprintf("%-3s %-16s %7s %7s %8s %7s %6s %6s %-8s %-7s\n",
		"#", "Crop", "Score", "Market", "Weather", "Season", "Soil", "Risk", "Trend", "Risk")
	if _, err := fmt.Fprint(w, header); err != nil {
		return eris.Wrap(err, "plan: write table header")
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", 84)); err != nil {
		return eris.Wrap(err, "plan: write table separator")
	}

	for i, rec := range report.Recommendations {
		line := fmt.Sprintf("%-3d %-16s %7.2f %7.1f %8.1f %7.1f %6.1f %6.1f %-8s %-7s\n",
			i+1, rec.CropName, rec.FinalScore,
			rec.Scores.Market, rec.Scores.Weather, rec.Scores.Season, rec.Scores.Soil, rec.Scores.Risk,
			rec.MarketTrend, rec.RiskLevel)
		if _, err := fmt.Fprint(w, line); err != nil {
			return eris.Wrap(err, "plan: write table row")
		}

		if rec.Quantity != nil {
			fmt.Fprintf(w, "    allocate %.2f ha (%.0f%% of land), expected %.1f-%.1f quintals [%s reliability]\n",
				rec.Quantity.RecommendedAreaHectares, rec.Quantity.AllocationFraction*100,
				rec.Quantity.ExpectedYieldQuintals.Min, rec.Quantity.ExpectedYieldQuintals.Max,
				rec.Quantity.Reliability)
		}
		if rec.Calendar != nil {
			fmt.Fprintf(w, "    sow %s, harvest %s (~%d days)\n",
				rec.Calendar.SowingPeriod, rec.Calendar.HarvestingPeriod, rec.Calendar.GrowingDays)
		}
	}

	fmt.Fprintf(w, "\n%s\n", report.Disclaimer)
	return nil
}
