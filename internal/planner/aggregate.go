package planner

import (
	"math"
	"sort"

	"github.com/agroplan/agro-advisor/internal/config"
	"github.com/agroplan/agro-advisor/internal/model"
)

// Weights is the convex combination applied to the five sub-scores.
// config.Validate guarantees they sum to 1.0.
type Weights struct {
	Market  float64
	Weather float64
	Season  float64
	Soil    float64
	Risk    float64
}

// WeightsFrom extracts the scoring weights from planner config.
func WeightsFrom(cfg config.PlannerConfig) Weights {
	return Weights{
		Market:  cfg.MarketWeight,
		Weather: cfg.WeatherWeight,
		Season:  cfg.SeasonWeight,
		Soil:    cfg.SoilWeight,
		Risk:    cfg.RiskWeight,
	}
}

// Combine folds a score breakdown into the final score, rounded to two
// decimals.
func (w Weights) Combine(b model.ScoreBreakdown) float64 {
	total := w.Market*b.Market +
		w.Weather*b.Weather +
		w.Season*b.Season +
		w.Soil*b.Soil +
		w.Risk*b.Risk
	return math.Round(total*100) / 100
}

// Rank sorts scored crops by final score descending. The sort is stable
// so ties keep their enumeration order.
func Rank(crops []model.ScoredCrop) {
	sort.SliceStable(crops, func(i, j int) bool {
		return crops[i].FinalScore > crops[j].FinalScore
	})
}
