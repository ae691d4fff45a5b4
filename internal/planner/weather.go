package planner

import (
	"math"

	"github.com/agroplan/agro-advisor/internal/model"
	"github.com/agroplan/agro-advisor/internal/requirement"
	"github.com/agroplan/agro-advisor/pkg/weather"
)

// Weather sub-score weights: temperature and rainfall dominate,
// humidity refines.
const (
	tempWeight     = 0.4
	rainWeight     = 0.4
	humidityWeight = 0.2
)

// ScoreWeather scores how well forecast conditions fit a crop's derived
// requirements. A crop with no requirement entry, or a request with no
// forecast, gets the neutral (50, moderate).
func ScoreWeather(req requirement.Requirement, hasReq bool, cond *weather.Conditions) (float64, model.Suitability) {
	if !hasReq || cond == nil {
		return 50.0, model.SuitabilityModerate
	}

	tempScore := scoreTemperature(req.Temperature, cond.TemperatureC)
	rainScore := scoreRainfall(req.Rainfall, cond.RainfallMM)
	humidityScore := scoreHumidity(req.Humidity, cond.HumidityPct)

	score := clampScore(tempWeight*tempScore + rainWeight*rainScore + humidityWeight*humidityScore)
	return score, weatherLabel(score)
}

func weatherLabel(score float64) model.Suitability {
	switch {
	case score >= 75:
		return model.SuitabilityExcellent
	case score >= 60:
		return model.SuitabilityGood
	case score >= 45:
		return model.SuitabilityModerate
	default:
		return model.SuitabilityPoor
	}
}

// scoreTemperature rewards values near the optimal and penalizes being
// outside the derived range, falling off faster below the minimum than
// above the maximum.
func scoreTemperature(r requirement.Range, v float64) float64 {
	if r.Contains(v) {
		return inRangeScore(r, v, 30)
	}
	if v < r.Min {
		return math.Max(50-5*(r.Min-v), 0)
	}
	return math.Max(50-3*(v-r.Max), 0)
}

// scoreRainfall uses the same in-range shape with a gentler slope, and
// wide tolerance bands outside the range since rainfall varies a lot
// season to season.
func scoreRainfall(r requirement.Range, v float64) float64 {
	if r.Contains(v) {
		return inRangeScore(r, v, 20)
	}
	if v < r.Min {
		return math.Max(60-(r.Min-v)/20, 20)
	}
	return math.Max(60-(v-r.Max)/30, 20)
}

// scoreHumidity is flat inside the range; humidity is the weakest signal.
func scoreHumidity(r requirement.Range, v float64) float64 {
	if r.Contains(v) {
		return 90
	}
	return math.Max(60-2*math.Abs(v-r.Optimal), 30)
}

// inRangeScore maps distance from the optimal onto [70, 100], where the
// slope controls how quickly the score decays toward the floor.
func inRangeScore(r requirement.Range, v, slope float64) float64 {
	half := (r.Max - r.Min) / 2
	if half <= 0 {
		return 100
	}
	deviation := math.Abs(v-r.Optimal) / half
	return math.Max(100-slope*deviation, 70)
}
