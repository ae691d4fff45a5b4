package planner

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/agroplan/agro-advisor/internal/model"
	"github.com/agroplan/agro-advisor/internal/stores"
)

// Allocation fractions by yield-history reliability: the noisier the
// history, the less land the plan commits to the crop.
const (
	highReliabilityFraction   = 0.7
	mediumReliabilityFraction = 0.5
	lowReliabilityFraction    = 0.3
)

// EstimateQuantity recommends a land allocation and expected-yield band
// for a crop. State-level history is preferred; crop-wide history is
// the fallback. With no history at all there is nothing to estimate and
// nil is returned.
func EstimateQuantity(historical *stores.HistoricalStore, crop, state string, landSizeHectares float64) *model.QuantityEstimate {
	records := historical.ForCropState(crop, state)
	stateSpecific := true
	if len(records) == 0 {
		records = historical.ForCrop(crop)
		stateSpecific = false
	}
	if len(records) == 0 {
		return nil
	}

	yields := stores.Yields(records)
	mean := stat.Mean(yields, nil)
	median := quantile(0.5, yields)
	p25 := quantile(0.25, yields)
	p75 := quantile(0.75, yields)

	// Reliability is the coefficient of variation of the yield history.
	reliability := 0.0
	if len(yields) >= 2 && mean > 0 {
		reliability = stat.StdDev(yields, nil) / mean
	}

	fraction := lowReliabilityFraction
	label := model.ReliabilityLow
	switch {
	case reliability < 0.3:
		fraction = highReliabilityFraction
		label = model.ReliabilityHigh
	case reliability < 0.5:
		fraction = mediumReliabilityFraction
		label = model.ReliabilityMedium
	}

	area := landSizeHectares * fraction
	return &model.QuantityEstimate{
		AllocationFraction:      fraction,
		RecommendedAreaHectares: area,
		ExpectedYieldQuintals: model.YieldRange{
			Min: area * p25,
			Avg: area * median,
			Max: area * p75,
		},
		MedianYieldPerHectare: median,
		Reliability:           label,
		RecordsUsed:           len(records),
		StateSpecific:         stateSpecific,
	}
}

// quantile returns the empirical p-quantile of values.
func quantile(p float64, values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}
