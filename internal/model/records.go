// Package model defines the typed records and report structures shared
// across the dataset loaders, stores, and planner.
package model

import "time"

// HistoricalRecord is one crop-production observation: a crop grown in a
// state during a season of a given year, with the weather that season saw.
// The collection is loaded once at startup and never mutated.
type HistoricalRecord struct {
	Crop            string  `json:"crop"`
	State           string  `json:"state"`
	Season          Season  `json:"season"`
	Year            int     `json:"year"`
	AreaHectares    float64 `json:"area_hectares"`
	YieldPerHectare float64 `json:"yield_per_hectare"`
	AvgTempC        float64 `json:"avg_temp_c"`
	TotalRainfallMM float64 `json:"total_rainfall_mm"`
	AvgHumidityPct  float64 `json:"avg_humidity_percent"`
}

// PriceRecord is one mandi price report for a commodity on a market day.
type PriceRecord struct {
	Commodity  string    `json:"commodity"`
	State      string    `json:"state"`
	District   string    `json:"district"`
	Market     string    `json:"market"`
	Date       time.Time `json:"date"`
	MinPrice   float64   `json:"min_price"`
	MaxPrice   float64   `json:"max_price"`
	ModalPrice float64   `json:"modal_price"`
}

// SoilProfile holds per-state average macronutrient levels and pH.
// One row per state; the state name is the unique key.
type SoilProfile struct {
	State string  `json:"state"`
	N     float64 `json:"n"`
	P     float64 `json:"p"`
	K     float64 `json:"k"`
	PH    float64 `json:"ph"`
}

// CalendarEntry holds free-text sowing and harvesting windows for a crop
// in a state. The period strings are parsed on demand into a growing-day
// count; they are not pre-normalized.
type CalendarEntry struct {
	Crop             string `json:"crop"`
	State            string `json:"state"`
	Season           string `json:"season"`
	SowingPeriod     string `json:"sowing_period"`
	HarvestingPeriod string `json:"harvesting_period"`
}
