package stores

import (
	"sort"
	"strings"

	"github.com/agroplan/agro-advisor/internal/model"
)

// HistoricalStore is a read-only view over the crop production dataset.
// All lookups are case-insensitive on crop and state names.
type HistoricalStore struct {
	records []model.HistoricalRecord
}

// NewHistoricalStore wraps a loaded record collection. The store takes
// ownership; callers must not mutate the slice afterwards.
func NewHistoricalStore(records []model.HistoricalRecord) *HistoricalStore {
	return &HistoricalStore{records: records}
}

// Len returns the number of records.
func (s *HistoricalStore) Len() int { return len(s.records) }

// All returns the full record collection.
func (s *HistoricalStore) All() []model.HistoricalRecord { return s.records }

// ForCrop returns all records for a crop.
func (s *HistoricalStore) ForCrop(crop string) []model.HistoricalRecord {
	var out []model.HistoricalRecord
	for _, r := range s.records {
		if strings.EqualFold(r.Crop, crop) {
			out = append(out, r)
		}
	}
	return out
}

// ForCropState returns all records for a crop in a state.
func (s *HistoricalStore) ForCropState(crop, state string) []model.HistoricalRecord {
	var out []model.HistoricalRecord
	for _, r := range s.records {
		if strings.EqualFold(r.Crop, crop) && strings.EqualFold(r.State, state) {
			out = append(out, r)
		}
	}
	return out
}

// ForCropSeason returns all records for a crop in a season.
func (s *HistoricalStore) ForCropSeason(crop string, season model.Season) []model.HistoricalRecord {
	var out []model.HistoricalRecord
	for _, r := range s.records {
		if strings.EqualFold(r.Crop, crop) && r.Season == season {
			out = append(out, r)
		}
	}
	return out
}

// HasCropSeasonState reports whether a crop has at least one record for
// the given season and state.
func (s *HistoricalStore) HasCropSeasonState(crop string, season model.Season, state string) bool {
	for _, r := range s.records {
		if strings.EqualFold(r.Crop, crop) && r.Season == season && strings.EqualFold(r.State, state) {
			return true
		}
	}
	return false
}

// HasWholeYear reports whether a crop has any Whole Year records.
func (s *HistoricalStore) HasWholeYear(crop string) bool {
	for _, r := range s.records {
		if strings.EqualFold(r.Crop, crop) && r.Season == model.SeasonWholeYear {
			return true
		}
	}
	return false
}

// CandidateCrops returns the distinct crops with records for the given
// state in the given season or in the Whole Year catch-all, sorted for
// deterministic enumeration order.
func (s *HistoricalStore) CandidateCrops(state string, season model.Season) []string {
	seen := make(map[string]string)
	for _, r := range s.records {
		if !strings.EqualFold(r.State, state) {
			continue
		}
		if r.Season != season && r.Season != model.SeasonWholeYear {
			continue
		}
		seen[strings.ToLower(r.Crop)] = r.Crop
	}
	return sortedValues(seen)
}

// DistinctCrops returns every crop in the dataset, sorted.
func (s *HistoricalStore) DistinctCrops() []string {
	seen := make(map[string]string)
	for _, r := range s.records {
		seen[strings.ToLower(r.Crop)] = r.Crop
	}
	return sortedValues(seen)
}

// DistinctStates returns every state in the dataset, sorted.
func (s *HistoricalStore) DistinctStates() []string {
	seen := make(map[string]string)
	for _, r := range s.records {
		seen[strings.ToLower(r.State)] = r.State
	}
	return sortedValues(seen)
}

func sortedValues(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Yields extracts the yield column from a record subset.
func Yields(records []model.HistoricalRecord) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = r.YieldPerHectare
	}
	return out
}
