package model

// Trend labels the direction of recent market prices for a commodity.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
	TrendNoData Trend = "no data"
	TrendError  Trend = "error"
)

// Suitability is a qualitative fit label used by the weather and soil
// scorers. Untested and Unknown are soil-only: Untested means the crop
// has no yield history in the state, Unknown means the state has no soil
// profile at all.
type Suitability string

const (
	SuitabilityExcellent Suitability = "excellent"
	SuitabilityGood      Suitability = "good"
	SuitabilityModerate  Suitability = "moderate"
	SuitabilityPoor      Suitability = "poor"
	SuitabilityUntested  Suitability = "untested"
	SuitabilityUnknown   Suitability = "unknown"
)

// RiskLevel buckets the risk score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Reliability buckets yield-history consistency for the quantity estimator.
type Reliability string

const (
	ReliabilityHigh   Reliability = "high"
	ReliabilityMedium Reliability = "medium"
	ReliabilityLow    Reliability = "low"
)

// ScoreBreakdown holds the five sub-scores behind a final score.
// Every value is in [0, 100].
type ScoreBreakdown struct {
	Market  float64 `json:"market"`
	Weather float64 `json:"weather"`
	Season  float64 `json:"season"`
	Soil    float64 `json:"soil"`
	Risk    float64 `json:"risk"`
}

// YieldRange is an expected total yield band in quintals.
type YieldRange struct {
	Min float64 `json:"min"`
	Avg float64 `json:"avg"`
	Max float64 `json:"max"`
}

// QuantityEstimate recommends how much land to commit to a crop and the
// total yield to expect from it, based on the crop's yield history.
type QuantityEstimate struct {
	AllocationFraction      float64     `json:"allocation_fraction"`
	RecommendedAreaHectares float64     `json:"recommended_area_hectares"`
	ExpectedYieldQuintals   YieldRange  `json:"expected_yield_quintals"`
	MedianYieldPerHectare   float64     `json:"median_yield_per_hectare"`
	Reliability             Reliability `json:"reliability"`
	RecordsUsed             int         `json:"records_used"`
	StateSpecific           bool        `json:"state_specific"`
}

// CalendarInfo is the resolved sowing/harvest window attached to a
// recommendation.
type CalendarInfo struct {
	SowingPeriod     string `json:"sowing_period"`
	HarvestingPeriod string `json:"harvesting_period"`
	GrowingDays      int    `json:"growing_days"`
}

// ScoredCrop is one ranked recommendation with its full score breakdown.
// Created fresh per planning request; never persisted.
type ScoredCrop struct {
	CropName           string            `json:"crop_name"`
	FinalScore         float64           `json:"final_score"`
	Scores             ScoreBreakdown    `json:"scores"`
	MarketTrend        Trend             `json:"market_trend"`
	AverageMarketPrice float64           `json:"average_market_price"`
	WeatherSuitability Suitability       `json:"weather_suitability"`
	SoilSuitability    Suitability       `json:"soil_suitability"`
	RiskLevel          RiskLevel         `json:"risk_level"`
	Quantity           *QuantityEstimate `json:"quantity_recommendation,omitempty"`
	Calendar           *CalendarInfo     `json:"calendar_info,omitempty"`
	Soil               *SoilProfile      `json:"soil_info,omitempty"`
}

// DataSourceCounts reports how many records backed a planning run.
type DataSourceCounts struct {
	HistoricalRecords int  `json:"historical_records"`
	PriceRecords      int  `json:"price_records"`
	SoilProfiles      int  `json:"soil_profiles"`
	CalendarEntries   int  `json:"calendar_entries"`
	CropRequirements  int  `json:"crop_requirements"`
	LiveWeatherUsed   bool `json:"live_weather_used"`
}

// PlanningReport is the full response to one planning request. Expected
// empty-result conditions set Success=false with a message rather than
// surfacing an error.
type PlanningReport struct {
	Success         bool             `json:"success"`
	Message         string           `json:"message,omitempty"`
	Season          Season           `json:"season"`
	State           string           `json:"state"`
	Recommendations []ScoredCrop     `json:"recommendations"`
	TotalEvaluated  int              `json:"total_evaluated"`
	DataSources     DataSourceCounts `json:"data_sources"`
	Disclaimer      string           `json:"disclaimer"`
}
