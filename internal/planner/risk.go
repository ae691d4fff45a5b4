package planner

import (
	"strings"

	"github.com/agroplan/agro-advisor/internal/model"
	"github.com/agroplan/agro-advisor/pkg/weather"
)

// WaterNeed classifies a crop's water demand.
type WaterNeed string

const (
	WaterLow      WaterNeed = "low"
	WaterModerate WaterNeed = "moderate"
	WaterHigh     WaterNeed = "high"
	WaterVeryHigh WaterNeed = "very high"
)

// waterNeeds is a static agronomic reference; crops not listed default
// to moderate.
var waterNeeds = map[string]WaterNeed{
	"rice":      WaterVeryHigh,
	"sugarcane": WaterVeryHigh,
	"jute":      WaterHigh,
	"banana":    WaterHigh,
	"cotton":    WaterHigh,
	"wheat":     WaterModerate,
	"maize":     WaterModerate,
	"groundnut": WaterModerate,
	"barley":    WaterLow,
	"gram":      WaterLow,
	"mustard":   WaterLow,
	"bajra":     WaterLow,
	"jowar":     WaterLow,
}

// WaterNeedFor returns the water demand class for a crop.
func WaterNeedFor(crop string) WaterNeed {
	if w, ok := waterNeeds[strings.ToLower(strings.TrimSpace(crop))]; ok {
		return w
	}
	return WaterModerate
}

// RiskAssessment is the risk scorer's output.
type RiskAssessment struct {
	Score  float64         `json:"score"`
	Level  model.RiskLevel `json:"level"`
	Alerts []string        `json:"alerts,omitempty"`
}

// ScoreRisk starts at 100 (low risk) and subtracts weather-driven
// penalties. With no forecast available the score degrades to the
// neutral 50 (medium) rather than guessing.
func ScoreRisk(crop string, cond *weather.Conditions) RiskAssessment {
	if cond == nil {
		return RiskAssessment{Score: 50.0, Level: model.RiskMedium}
	}

	score := 100.0
	var alerts []string

	if cond.HumidityPct > 80 {
		score -= 25
		alerts = append(alerts, "fungal disease risk: humidity above 80%")
	}
	if cond.RainfallMM > 150 {
		score -= 20
		alerts = append(alerts, "waterlogging risk: heavy rainfall forecast")
	}
	need := WaterNeedFor(crop)
	if (need == WaterHigh || need == WaterVeryHigh) && cond.RainfallMM < 50 {
		score -= 30
		alerts = append(alerts, "insufficient rainfall for a water-demanding crop")
	}

	score = clampScore(score)
	return RiskAssessment{Score: score, Level: riskLevel(score), Alerts: alerts}
}

func riskLevel(score float64) model.RiskLevel {
	switch {
	case score >= 70:
		return model.RiskLow
	case score >= 40:
		return model.RiskMedium
	default:
		return model.RiskHigh
	}
}
