package planner

import (
	"gonum.org/v1/gonum/stat"

	"github.com/agroplan/agro-advisor/internal/model"
	"github.com/agroplan/agro-advisor/internal/stores"
)

// ScoreSoilPerformance scores soil fitness for a crop in a state from
// historical yield performance rather than raw NPK/pH matching (the
// static range checker in internal/soilcheck answers that question).
// The state's mean yield for the crop is compared against the crop's
// overall median yield across all states.
func ScoreSoilPerformance(historical *stores.HistoricalStore, soil *stores.SoilStore, crop, state string) (float64, model.Suitability) {
	if _, ok := soil.ProfileFor(state); !ok {
		return 50.0, model.SuitabilityUnknown
	}

	inState := historical.ForCropState(crop, state)
	if len(inState) == 0 {
		return 50.0, model.SuitabilityUntested
	}

	stateMean := stat.Mean(stores.Yields(inState), nil)
	overallMedian := quantile(0.5, stores.Yields(historical.ForCrop(crop)))
	if overallMedian <= 0 {
		return 50.0, model.SuitabilityUntested
	}

	ratio := stateMean / overallMedian
	switch {
	case ratio >= 1.2:
		return 90.0, model.SuitabilityExcellent
	case ratio >= 1.0:
		return 75.0, model.SuitabilityGood
	case ratio >= 0.7:
		return 55.0, model.SuitabilityModerate
	default:
		return 35.0, model.SuitabilityPoor
	}
}
