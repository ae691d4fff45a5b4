// Package planner implements the crop planning recommendation engine:
// five independent signal scorers over the read-only data stores, a
// weighted aggregator, a land-allocation estimator, and the orchestrator
// that ties them into a single synchronous planning pass.
package planner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/agroplan/agro-advisor/internal/config"
	"github.com/agroplan/agro-advisor/internal/model"
	"github.com/agroplan/agro-advisor/internal/requirement"
	"github.com/agroplan/agro-advisor/internal/stores"
	"github.com/agroplan/agro-advisor/pkg/weather"
)

const disclaimer = "Recommendations are derived from historical records and short-range forecasts. " +
	"Verify with your local agricultural extension office before committing land."

// WeatherProvider is the single optional network dependency of a
// planning request.
type WeatherProvider interface {
	Conditions(ctx context.Context, lat, lon float64) (*weather.Conditions, error)
}

// Request is one planning query. Month defaults to the current calendar
// month; land size and coordinates are optional, and omitting the
// coordinates disables the live weather refinement (the weather and
// risk scorers then fall back to their neutral defaults).
type Request struct {
	State            string   `json:"state"`
	Month            *int     `json:"month,omitempty"`
	LandSizeHectares *float64 `json:"land_size_hectares,omitempty"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
}

// Planner is the public entry point of the recommendation engine. It
// holds only read-only state and is safe for concurrent use once the
// stores are loaded.
type Planner struct {
	data         *stores.DataStores
	requirements requirement.Set
	weights      Weights
	topN         int
	provider     WeatherProvider

	// now is injectable so tests can pin the default month.
	now func() time.Time
}

// New builds a Planner. The provider may be nil, in which case every
// request behaves as if no coordinates were given.
func New(data *stores.DataStores, requirements requirement.Set, cfg config.PlannerConfig, provider WeatherProvider) *Planner {
	return &Planner{
		data:         data,
		requirements: requirements,
		weights:      WeightsFrom(cfg),
		topN:         cfg.TopN,
		provider:     provider,
		now:          time.Now,
	}
}

// Plan runs one synchronous planning pass: collect candidates, score
// each, rank, and attach quantity and calendar details to the top
// results. Expected empty-result conditions come back as
// {Success:false, Message}; an error return means invalid input.
func (p *Planner) Plan(ctx context.Context, req Request) (*model.PlanningReport, error) {
	if strings.TrimSpace(req.State) == "" {
		return nil, eris.New("planner: state is required")
	}
	month := int(p.now().Month())
	if req.Month != nil {
		month = *req.Month
	}
	if month < 1 || month > 12 {
		return nil, eris.Errorf("planner: month must be between 1 and 12 (got %d)", month)
	}
	if req.LandSizeHectares != nil && *req.LandSizeHectares <= 0 {
		return nil, eris.Errorf("planner: land size must be positive (got %.2f)", *req.LandSizeHectares)
	}

	season := model.SeasonForMonth(time.Month(month))
	log := zap.L().With(zap.String("state", req.State), zap.String("season", string(season)))

	cond := p.fetchConditions(ctx, req, log)

	report := &model.PlanningReport{
		Season:     season,
		State:      req.State,
		Disclaimer: disclaimer,
		DataSources: model.DataSourceCounts{
			HistoricalRecords: p.data.Historical.Len(),
			PriceRecords:      p.data.Market.Len(),
			SoilProfiles:      p.data.Soil.Len(),
			CalendarEntries:   p.data.Calendar.Len(),
			CropRequirements:  len(p.requirements),
			LiveWeatherUsed:   cond != nil,
		},
	}

	candidates := p.data.Historical.CandidateCrops(req.State, season)
	if len(candidates) == 0 {
		report.Message = fmt.Sprintf("no candidate crops found for %s season in %s", season, req.State)
		return report, nil
	}

	scored := make([]model.ScoredCrop, 0, len(candidates))
	for _, crop := range candidates {
		sc, err := p.scoreCandidate(crop, req, season, cond)
		if err != nil {
			log.Warn("skipping candidate", zap.String("crop", crop), zap.Error(err))
			continue
		}
		scored = append(scored, *sc)
	}
	if len(scored) == 0 {
		report.Message = "could not evaluate any crops"
		return report, nil
	}

	Rank(scored)
	report.Success = true
	report.TotalEvaluated = len(scored)
	n := p.topN
	if n > len(scored) {
		n = len(scored)
	}
	report.Recommendations = scored[:n]

	log.Info("planning complete",
		zap.Int("candidates", len(candidates)),
		zap.Int("evaluated", len(scored)),
		zap.Int("recommended", n),
		zap.Bool("live_weather", cond != nil),
	)
	return report, nil
}

// fetchConditions performs the single optional network call. Provider
// failure is not fatal: planning proceeds on historical data alone.
func (p *Planner) fetchConditions(ctx context.Context, req Request, log *zap.Logger) *weather.Conditions {
	if p.provider == nil || req.Latitude == nil || req.Longitude == nil {
		return nil
	}
	cond, err := p.provider.Conditions(ctx, *req.Latitude, *req.Longitude)
	if err != nil {
		log.Warn("weather provider unavailable, scoring on historical averages only", zap.Error(err))
		return nil
	}
	return cond
}

// scoreCandidate scores one crop. A panic from malformed data is
// converted to an error so a single bad candidate cannot abort the
// batch.
func (p *Planner) scoreCandidate(crop string, req Request, season model.Season, cond *weather.Conditions) (sc *model.ScoredCrop, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = eris.Errorf("planner: scoring %s: %v", crop, r)
		}
	}()

	ma := ScoreMarket(p.data.Market, crop, req.State)
	cropReq, hasReq := p.requirements.For(crop)
	weatherScore, weatherLabel := ScoreWeather(cropReq, hasReq, cond)
	seasonScore := ScoreSeason(p.data.Historical, crop, season, req.State)
	soilScore, soilLabel := ScoreSoilPerformance(p.data.Historical, p.data.Soil, crop, req.State)
	risk := ScoreRisk(crop, cond)

	breakdown := model.ScoreBreakdown{
		Market:  ma.Score,
		Weather: weatherScore,
		Season:  seasonScore,
		Soil:    soilScore,
		Risk:    risk.Score,
	}

	sc = &model.ScoredCrop{
		CropName:           crop,
		FinalScore:         p.weights.Combine(breakdown),
		Scores:             breakdown,
		MarketTrend:        ma.Trend,
		AverageMarketPrice: ma.AvgPrice,
		WeatherSuitability: weatherLabel,
		SoilSuitability:    soilLabel,
		RiskLevel:          risk.Level,
	}

	if req.LandSizeHectares != nil {
		sc.Quantity = EstimateQuantity(p.data.Historical, crop, req.State, *req.LandSizeHectares)
	}
	if entry, ok := p.data.Calendar.EntryFor(crop, req.State); ok {
		sc.Calendar = &model.CalendarInfo{
			SowingPeriod:     entry.SowingPeriod,
			HarvestingPeriod: entry.HarvestingPeriod,
			GrowingDays:      stores.ParseGrowingDays(entry.SowingPeriod, entry.HarvestingPeriod),
		}
	}
	if profile, ok := p.data.Soil.ProfileFor(req.State); ok {
		sc.Soil = profile
	}

	return sc, nil
}
