// Package requirement derives per-crop optimal weather ranges from the
// historical yield record. Derived bounds replace static lookup tables:
// only the top-yielding half of a crop's records contributes, so failed
// harvests do not contaminate the "optimal" ranges, and percentile
// bounds keep the ranges robust to outliers.
package requirement

import (
	"sort"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/agroplan/agro-advisor/internal/model"
)

// minRecords is the minimum historical sample size for a crop to get a
// requirement entry. Crops below it are excluded entirely; downstream
// scorers treat the missing entry as "insufficient data", not zero.
const minRecords = 5

// Range holds an empirical bound for one weather variable: 5th
// percentile, 95th percentile, and median of the high-performing subset.
type Range struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Optimal float64 `json:"optimal"`
}

// Contains reports whether a value lies within [Min, Max]. Both bounds
// are inclusive.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Requirement holds the derived growing conditions for one crop.
type Requirement struct {
	Crop               string  `json:"crop"`
	Temperature        Range   `json:"temperature"`
	Rainfall           Range   `json:"rainfall"`
	Humidity           Range   `json:"humidity"`
	AvgYieldPerHectare float64 `json:"avg_yield_per_hectare"`
	HistoricalRecords  int     `json:"historical_records"`
	StatesGrown        int     `json:"states_grown"`
}

// Set is the derived crop requirement map, keyed by lowercase crop name.
// Built once at startup and read-only afterwards.
type Set map[string]Requirement

// For looks up the requirement for a crop.
func (s Set) For(crop string) (Requirement, bool) {
	r, ok := s[strings.ToLower(strings.TrimSpace(crop))]
	return r, ok
}

// Derive builds the requirement set from the full historical collection.
func Derive(records []model.HistoricalRecord) Set {
	groups := make(map[string][]model.HistoricalRecord)
	for _, r := range records {
		key := strings.ToLower(r.Crop)
		groups[key] = append(groups[key], r)
	}

	set := make(Set, len(groups))
	for key, group := range groups {
		if len(group) < minRecords {
			continue
		}

		medianYield := quantile(0.5, column(group, yieldOf))

		// High performers: records at or above the median yield.
		var subset []model.HistoricalRecord
		for _, r := range group {
			if r.YieldPerHectare >= medianYield {
				subset = append(subset, r)
			}
		}

		states := make(map[string]struct{})
		for _, r := range group {
			states[strings.ToLower(r.State)] = struct{}{}
		}

		set[key] = Requirement{
			Crop:               group[0].Crop,
			Temperature:        rangeOf(subset, tempOf),
			Rainfall:           rangeOf(subset, rainOf),
			Humidity:           rangeOf(subset, humidityOf),
			AvgYieldPerHectare: stat.Mean(column(subset, yieldOf), nil),
			HistoricalRecords:  len(group),
			StatesGrown:        len(states),
		}
	}

	zap.L().Info("crop requirements derived",
		zap.Int("crops", len(set)),
		zap.Int("groups_seen", len(groups)),
	)
	return set
}

func rangeOf(records []model.HistoricalRecord, field func(model.HistoricalRecord) float64) Range {
	values := column(records, field)
	return Range{
		Min:     quantile(0.05, values),
		Max:     quantile(0.95, values),
		Optimal: quantile(0.5, values),
	}
}

// quantile returns the empirical p-quantile. The input slice is copied
// before sorting so callers keep their ordering.
func quantile(p float64, values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

func column(records []model.HistoricalRecord, field func(model.HistoricalRecord) float64) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = field(r)
	}
	return out
}

func yieldOf(r model.HistoricalRecord) float64    { return r.YieldPerHectare }
func tempOf(r model.HistoricalRecord) float64     { return r.AvgTempC }
func rainOf(r model.HistoricalRecord) float64     { return r.TotalRainfallMM }
func humidityOf(r model.HistoricalRecord) float64 { return r.AvgHumidityPct }
