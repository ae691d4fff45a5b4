// Package fertilizer recommends nutrient top-ups from the gap between a
// crop's ideal soil chemistry and a state's measured profile.
package fertilizer

import (
	"math"
	"strings"

	"github.com/agroplan/agro-advisor/internal/model"
	"github.com/agroplan/agro-advisor/internal/soilcheck"
)

// Recommendation is one nutrient's top-up advice, in kg/ha.
type Recommendation struct {
	Nutrient   string  `json:"nutrient"`
	Current    float64 `json:"current"`
	Target     float64 `json:"target"`
	DeficitKg  float64 `json:"deficit_kg_per_ha"`
	Fertilizer string  `json:"fertilizer"`
}

// Plan is the full fertilizer advice for one crop on one profile.
type Plan struct {
	Crop            string           `json:"crop"`
	State           string           `json:"state"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
	PHNote          string           `json:"ph_note,omitempty"`
}

// carriers maps each macro nutrient to its common carrier fertilizer.
var carriers = map[string]string{
	"N": "urea",
	"P": "single super phosphate",
	"K": "muriate of potash",
}

// Optimize computes per-nutrient deficits against the midpoint of the
// crop's ideal band, floored at zero. Soil already at or above target
// yields no recommendation for that nutrient. Unknown crops report
// (Plan{}, false).
func Optimize(crop string, profile model.SoilProfile) (Plan, bool) {
	ranges, ok := soilcheck.RangesFor(crop)
	if !ok {
		return Plan{}, false
	}

	plan := Plan{
		Crop:  strings.ToLower(strings.TrimSpace(crop)),
		State: profile.State,
	}

	nutrients := []struct {
		name    string
		current float64
		ideal   soilcheck.NutrientRange
	}{
		{"N", profile.N, ranges.N},
		{"P", profile.P, ranges.P},
		{"K", profile.K, ranges.K},
	}
	for _, n := range nutrients {
		target := n.ideal.Midpoint()
		deficit := math.Max(target-n.current, 0)
		if deficit == 0 {
			continue
		}
		plan.Recommendations = append(plan.Recommendations, Recommendation{
			Nutrient:   n.name,
			Current:    n.current,
			Target:     target,
			DeficitKg:  math.Round(deficit*10) / 10,
			Fertilizer: carriers[n.name],
		})
	}

	// pH is not correctable with NPK carriers; advise an amendment.
	switch {
	case profile.PH < ranges.PH.Min:
		plan.PHNote = "soil is too acidic for this crop, consider liming"
	case profile.PH > ranges.PH.Max:
		plan.PHNote = "soil is too alkaline for this crop, consider gypsum"
	}

	return plan, true
}
