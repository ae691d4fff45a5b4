package planner

import (
	"github.com/agroplan/agro-advisor/internal/model"
	"github.com/agroplan/agro-advisor/internal/stores"
)

// ScoreSeason scores whether a crop belongs in the given season and
// state, from historical evidence alone. The ladder:
//
//	100: grown in this season in this exact state
//	 80: grown in this season, but elsewhere
//	 70: a whole-year crop
//	 30: not typically grown this season (soft penalty, not a rejection)
func ScoreSeason(historical *stores.HistoricalStore, crop string, season model.Season, state string) float64 {
	inSeason := historical.ForCropSeason(crop, season)
	if len(inSeason) > 0 {
		if historical.HasCropSeasonState(crop, season, state) {
			return 100.0
		}
		return 80.0
	}
	if historical.HasWholeYear(crop) {
		return 70.0
	}
	return 30.0
}
