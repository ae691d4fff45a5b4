// Package soilcheck compares a state's soil profile against per-crop
// ideal nutrient ranges. This is a static agronomic lookup and is
// independent of the planner's historical yield-based soil scorer.
package soilcheck

import (
	"sort"
	"strings"

	"github.com/agroplan/agro-advisor/internal/model"
)

// NutrientRange is the ideal band for one soil parameter, in kg/ha for
// N, P and K and in pH units for PH.
type NutrientRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Midpoint returns the center of the band.
func (r NutrientRange) Midpoint() float64 { return (r.Min + r.Max) / 2 }

// Status classifies a measured value against the band.
func (r NutrientRange) Status(v float64) Status {
	switch {
	case v < r.Min:
		return StatusLow
	case v > r.Max:
		return StatusHigh
	default:
		return StatusOK
	}
}

// Status is a per-nutrient verdict.
type Status string

const (
	StatusLow  Status = "low"
	StatusOK   Status = "ok"
	StatusHigh Status = "high"
)

// CropRanges is the ideal soil chemistry for one crop.
type CropRanges struct {
	N  NutrientRange `json:"n"`
	P  NutrientRange `json:"p"`
	K  NutrientRange `json:"k"`
	PH NutrientRange `json:"ph"`
}

// cropRanges is a static agronomic reference table. Values are
// indicative field ranges, not lab-grade thresholds.
var cropRanges = map[string]CropRanges{
	"rice": {
		N: NutrientRange{80, 240}, P: NutrientRange{10, 25},
		K: NutrientRange{110, 280}, PH: NutrientRange{5.5, 7.0},
	},
	"wheat": {
		N: NutrientRange{100, 280}, P: NutrientRange{12, 30},
		K: NutrientRange{120, 300}, PH: NutrientRange{6.0, 7.5},
	},
	"maize": {
		N: NutrientRange{90, 260}, P: NutrientRange{12, 28},
		K: NutrientRange{110, 280}, PH: NutrientRange{5.8, 7.2},
	},
	"cotton": {
		N: NutrientRange{80, 220}, P: NutrientRange{10, 22},
		K: NutrientRange{130, 320}, PH: NutrientRange{6.0, 8.0},
	},
	"sugarcane": {
		N: NutrientRange{120, 320}, P: NutrientRange{14, 32},
		K: NutrientRange{150, 360}, PH: NutrientRange{6.0, 7.8},
	},
	"groundnut": {
		N: NutrientRange{60, 180}, P: NutrientRange{10, 24},
		K: NutrientRange{100, 240}, PH: NutrientRange{6.0, 7.5},
	},
	"gram": {
		N: NutrientRange{50, 160}, P: NutrientRange{10, 25},
		K: NutrientRange{90, 220}, PH: NutrientRange{6.0, 7.8},
	},
	"mustard": {
		N: NutrientRange{70, 200}, P: NutrientRange{10, 24},
		K: NutrientRange{100, 240}, PH: NutrientRange{6.0, 7.5},
	},
	"bajra": {
		N: NutrientRange{50, 160}, P: NutrientRange{8, 20},
		K: NutrientRange{80, 200}, PH: NutrientRange{6.2, 8.0},
	},
	"barley": {
		N: NutrientRange{60, 180}, P: NutrientRange{10, 24},
		K: NutrientRange{100, 240}, PH: NutrientRange{6.5, 8.0},
	},
}

// RangesFor returns the ideal ranges for a crop, if tabulated.
func RangesFor(crop string) (CropRanges, bool) {
	r, ok := cropRanges[strings.ToLower(strings.TrimSpace(crop))]
	return r, ok
}

// KnownCrops lists the tabulated crops, sorted.
func KnownCrops() []string {
	out := make([]string, 0, len(cropRanges))
	for c := range cropRanges {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// NutrientVerdict is the check result for one parameter.
type NutrientVerdict struct {
	Nutrient string        `json:"nutrient"`
	Value    float64       `json:"value"`
	Ideal    NutrientRange `json:"ideal"`
	Status   Status        `json:"status"`
}

// Result is a full soil check for one crop against one profile.
type Result struct {
	Crop        string            `json:"crop"`
	State       string            `json:"state"`
	Verdicts    []NutrientVerdict `json:"verdicts"`
	Suitability model.Suitability `json:"suitability"`
}

// Check evaluates a soil profile for a crop. Unknown crops report
// (Result{}, false) rather than guessing at ranges.
func Check(crop string, profile model.SoilProfile) (Result, bool) {
	ranges, ok := RangesFor(crop)
	if !ok {
		return Result{}, false
	}

	verdicts := []NutrientVerdict{
		{Nutrient: "N", Value: profile.N, Ideal: ranges.N, Status: ranges.N.Status(profile.N)},
		{Nutrient: "P", Value: profile.P, Ideal: ranges.P, Status: ranges.P.Status(profile.P)},
		{Nutrient: "K", Value: profile.K, Ideal: ranges.K, Status: ranges.K.Status(profile.K)},
		{Nutrient: "pH", Value: profile.PH, Ideal: ranges.PH, Status: ranges.PH.Status(profile.PH)},
	}

	inBand := 0
	for _, v := range verdicts {
		if v.Status == StatusOK {
			inBand++
		}
	}

	return Result{
		Crop:        strings.ToLower(strings.TrimSpace(crop)),
		State:       profile.State,
		Verdicts:    verdicts,
		Suitability: suitability(inBand),
	}, true
}

// suitability maps the count of in-band parameters (out of four) onto a
// label.
func suitability(inBand int) model.Suitability {
	switch {
	case inBand == 4:
		return model.SuitabilityExcellent
	case inBand == 3:
		return model.SuitabilityGood
	case inBand == 2:
		return model.SuitabilityModerate
	default:
		return model.SuitabilityPoor
	}
}
