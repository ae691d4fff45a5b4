package soilcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agroplan/agro-advisor/internal/model"
)

func TestNutrientRangeStatus(t *testing.T) {
	r := NutrientRange{Min: 80, Max: 240}

	assert.Equal(t, StatusLow, r.Status(79.9))
	assert.Equal(t, StatusOK, r.Status(80))
	assert.Equal(t, StatusOK, r.Status(240))
	assert.Equal(t, StatusHigh, r.Status(240.1))
	assert.Equal(t, 160.0, r.Midpoint())
}

func TestCheckAllInBand(t *testing.T) {
	profile := model.SoilProfile{State: "Punjab", N: 150, P: 18, K: 200, PH: 6.5}

	res, ok := Check("Rice", profile)
	require.True(t, ok)

	assert.Equal(t, "rice", res.Crop)
	assert.Equal(t, "Punjab", res.State)
	assert.Equal(t, model.SuitabilityExcellent, res.Suitability)
	require.Len(t, res.Verdicts, 4)
	for _, v := range res.Verdicts {
		assert.Equal(t, StatusOK, v.Status, v.Nutrient)
	}
}

func TestCheckSuitabilityLadder(t *testing.T) {
	// Rice ideal: N 80-240, P 10-25, K 110-280, pH 5.5-7.0.
	tests := []struct {
		name    string
		profile model.SoilProfile
		want    model.Suitability
	}{
		{"one off", model.SoilProfile{N: 40, P: 18, K: 200, PH: 6.5}, model.SuitabilityGood},
		{"two off", model.SoilProfile{N: 40, P: 30, K: 200, PH: 6.5}, model.SuitabilityModerate},
		{"three off", model.SoilProfile{N: 40, P: 30, K: 50, PH: 6.5}, model.SuitabilityPoor},
		{"all off", model.SoilProfile{N: 40, P: 30, K: 50, PH: 8.5}, model.SuitabilityPoor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, ok := Check("rice", tt.profile)
			require.True(t, ok)
			assert.Equal(t, tt.want, res.Suitability)
		})
	}
}

func TestCheckUnknownCrop(t *testing.T) {
	_, ok := Check("saffron", model.SoilProfile{N: 150, P: 18, K: 200, PH: 6.5})
	assert.False(t, ok)
}

func TestKnownCropsSorted(t *testing.T) {
	crops := KnownCrops()
	require.NotEmpty(t, crops)
	assert.IsIncreasing(t, crops)
	assert.Contains(t, crops, "rice")
	assert.Contains(t, crops, "wheat")
}
