package planner

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/agroplan/agro-advisor/internal/model"
	"github.com/agroplan/agro-advisor/internal/stores"
)

// trendWindow is how many of the newest and oldest matched records feed
// the trend comparison.
const trendWindow = 10

// MarketAssessment is the market scorer's full output for one crop.
type MarketAssessment struct {
	Score          float64     `json:"score"`
	Trend          model.Trend `json:"trend"`
	AvgPrice       float64     `json:"avg_price"`
	PriceChangePct float64     `json:"price_change_pct"`
	VolatilityPct  float64     `json:"volatility_pct"`
	Records        int         `json:"records"`
}

// ScoreMarket scores a crop's market outlook from recent mandi prices.
// No matched price data degrades to the neutral 50 rather than failing.
func ScoreMarket(market *stores.MarketStore, crop, state string) MarketAssessment {
	matched := market.Match(crop, state)
	if len(matched) == 0 {
		return MarketAssessment{Score: 50.0, Trend: model.TrendNoData, AvgPrice: 0}
	}

	prices := make([]float64, len(matched))
	for i, r := range matched {
		prices[i] = r.ModalPrice
	}
	avgPrice := stat.Mean(prices, nil)

	// Trend: newest window against oldest window. With fewer than two
	// records there is no change to compute.
	trend := model.TrendStable
	score := 65.0
	changePct := 0.0
	if len(matched) >= 2 {
		n := trendWindow
		if n > len(prices) {
			n = len(prices)
		}
		recent := stat.Mean(prices[:n], nil)
		older := stat.Mean(prices[len(prices)-n:], nil)
		if older > 0 {
			changePct = (recent - older) / older * 100
		}
		switch {
		case changePct > 5:
			trend = model.TrendUp
			score = 85.0
		case changePct < -5:
			trend = model.TrendDown
			score = 40.0
		}
	}

	// Higher absolute price levels earn a small premium.
	switch {
	case avgPrice > 3000:
		score += 10
	case avgPrice > 2000:
		score += 5
	}

	// Volatility penalty: coefficient of variation, capped at 15 points.
	cv := 0.0
	if len(prices) >= 2 && avgPrice > 0 {
		cv = stat.StdDev(prices, nil) / avgPrice * 100
	}
	score -= math.Min(cv/2, 15)

	return MarketAssessment{
		Score:          clampScore(score),
		Trend:          trend,
		AvgPrice:       avgPrice,
		PriceChangePct: changePct,
		VolatilityPct:  cv,
		Records:        len(matched),
	}
}

// clampScore bounds a score to [0, 100].
func clampScore(s float64) float64 {
	return math.Max(0, math.Min(100, s))
}
