package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agroplan/agro-advisor/internal/model"
	"github.com/agroplan/agro-advisor/pkg/weather"
)

func TestScoreRiskNoForecast(t *testing.T) {
	ra := ScoreRisk("rice", nil)

	assert.Equal(t, 50.0, ra.Score)
	assert.Equal(t, model.RiskMedium, ra.Level)
	assert.Empty(t, ra.Alerts)
}

func TestScoreRiskBenignConditions(t *testing.T) {
	cond := &weather.Conditions{TemperatureC: 25, RainfallMM: 100, HumidityPct: 60}

	ra := ScoreRisk("wheat", cond)

	assert.Equal(t, 100.0, ra.Score)
	assert.Equal(t, model.RiskLow, ra.Level)
	assert.Empty(t, ra.Alerts)
}

func TestScoreRiskPenalties(t *testing.T) {
	tests := []struct {
		name      string
		crop      string
		cond      weather.Conditions
		wantScore float64
		wantLevel model.RiskLevel
		alerts    int
	}{
		{
			// 100 - 25 for humidity above 80.
			name:      "high humidity",
			crop:      "wheat",
			cond:      weather.Conditions{RainfallMM: 100, HumidityPct: 85},
			wantScore: 75,
			wantLevel: model.RiskLow,
			alerts:    1,
		},
		{
			// 100 - 20 for rainfall above 150.
			name:      "heavy rain",
			crop:      "wheat",
			cond:      weather.Conditions{RainfallMM: 200, HumidityPct: 60},
			wantScore: 80,
			wantLevel: model.RiskLow,
			alerts:    1,
		},
		{
			// Rice needs water: 100 - 30 for rainfall below 50.
			name:      "drought for thirsty crop",
			crop:      "rice",
			cond:      weather.Conditions{RainfallMM: 20, HumidityPct: 60},
			wantScore: 70,
			wantLevel: model.RiskLow,
			alerts:    1,
		},
		{
			// Barley tolerates drought: no water penalty.
			name:      "drought for hardy crop",
			crop:      "barley",
			cond:      weather.Conditions{RainfallMM: 20, HumidityPct: 60},
			wantScore: 100,
			wantLevel: model.RiskLow,
			alerts:    0,
		},
		{
			// 100 - 25 - 30 = 45: humid and too dry for cotton.
			name:      "stacked penalties",
			crop:      "cotton",
			cond:      weather.Conditions{RainfallMM: 30, HumidityPct: 90},
			wantScore: 45,
			wantLevel: model.RiskMedium,
			alerts:    2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ra := ScoreRisk(tt.crop, &tt.cond)
			assert.Equal(t, tt.wantScore, ra.Score)
			assert.Equal(t, tt.wantLevel, ra.Level)
			assert.Len(t, ra.Alerts, tt.alerts)
		})
	}
}

func TestWaterNeedFor(t *testing.T) {
	assert.Equal(t, WaterVeryHigh, WaterNeedFor("Rice"))
	assert.Equal(t, WaterLow, WaterNeedFor("  mustard "))
	assert.Equal(t, WaterModerate, WaterNeedFor("quinoa"))
}
