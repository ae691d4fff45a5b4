package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agroplan/agro-advisor/internal/model"
	"github.com/agroplan/agro-advisor/internal/stores"
)

// riceHistory spreads rice yields across three states so the overall
// median is 3.0 (values 2.0, 3.0, 4.0).
func riceHistory() *stores.HistoricalStore {
	return stores.NewHistoricalStore([]model.HistoricalRecord{
		{Crop: "Rice", State: "Punjab", Season: model.SeasonKharif, YieldPerHectare: 4.0},
		{Crop: "Rice", State: "Bihar", Season: model.SeasonKharif, YieldPerHectare: 3.0},
		{Crop: "Rice", State: "Odisha", Season: model.SeasonKharif, YieldPerHectare: 2.0},
	})
}

func soilFixture() *stores.SoilStore {
	return stores.NewSoilStore([]model.SoilProfile{
		{State: "Punjab", N: 250, P: 20, K: 210, PH: 7.2},
		{State: "Bihar", N: 180, P: 15, K: 150, PH: 6.8},
		{State: "Odisha", N: 160, P: 12, K: 130, PH: 6.1},
	})
}

func TestScoreSoilPerformanceLadder(t *testing.T) {
	hist := riceHistory()
	soil := soilFixture()

	// Punjab mean 4.0 / overall median 3.0 = 1.33 >= 1.2.
	score, label := ScoreSoilPerformance(hist, soil, "rice", "Punjab")
	assert.Equal(t, 90.0, score)
	assert.Equal(t, model.SuitabilityExcellent, label)

	// Bihar mean 3.0 / 3.0 = 1.0 hits the >= 1.0 rung exactly.
	score, label = ScoreSoilPerformance(hist, soil, "rice", "Bihar")
	assert.Equal(t, 75.0, score)
	assert.Equal(t, model.SuitabilityGood, label)

	// Odisha mean 2.0 / 3.0 = 0.67 falls below 0.7.
	score, label = ScoreSoilPerformance(hist, soil, "rice", "Odisha")
	assert.Equal(t, 35.0, score)
	assert.Equal(t, model.SuitabilityPoor, label)
}

func TestScoreSoilPerformanceNoProfile(t *testing.T) {
	score, label := ScoreSoilPerformance(riceHistory(), soilFixture(), "rice", "Kerala")
	assert.Equal(t, 50.0, score)
	assert.Equal(t, model.SuitabilityUnknown, label)
}

func TestScoreSoilPerformanceUntestedCrop(t *testing.T) {
	// Profile exists but the crop was never grown in the state.
	score, label := ScoreSoilPerformance(riceHistory(), soilFixture(), "wheat", "Punjab")
	assert.Equal(t, 50.0, score)
	assert.Equal(t, model.SuitabilityUntested, label)
}
