package planner

import (
	"context"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agroplan/agro-advisor/internal/config"
	"github.com/agroplan/agro-advisor/internal/model"
	"github.com/agroplan/agro-advisor/internal/requirement"
	"github.com/agroplan/agro-advisor/internal/stores"
	"github.com/agroplan/agro-advisor/pkg/weather"
)

type fakeProvider struct {
	cond *weather.Conditions
	err  error
	hits int
}

func (f *fakeProvider) Conditions(_ context.Context, _, _ float64) (*weather.Conditions, error) {
	f.hits++
	return f.cond, f.err
}

func plannerFixture() *stores.DataStores {
	hist := []model.HistoricalRecord{
		{Crop: "Wheat", State: "Punjab", Season: model.SeasonRabi, Year: 2020, YieldPerHectare: 4.0, AvgTempC: 22, TotalRainfallMM: 80, AvgHumidityPct: 60},
		{Crop: "Wheat", State: "Punjab", Season: model.SeasonRabi, Year: 2021, YieldPerHectare: 4.2, AvgTempC: 23, TotalRainfallMM: 90, AvgHumidityPct: 62},
	}
	// Five-plus records per Kharif crop so requirements derive for them.
	for year := 2018; year <= 2023; year++ {
		hist = append(hist,
			model.HistoricalRecord{Crop: "Rice", State: "Punjab", Season: model.SeasonKharif, Year: year,
				YieldPerHectare: 3.0 + 0.1*float64(year-2018), AvgTempC: 28, TotalRainfallMM: 1100, AvgHumidityPct: 78},
			model.HistoricalRecord{Crop: "Maize", State: "Punjab", Season: model.SeasonKharif, Year: year,
				YieldPerHectare: 2.5 + 0.1*float64(year-2018), AvgTempC: 27, TotalRainfallMM: 700, AvgHumidityPct: 65},
			model.HistoricalRecord{Crop: "Bajra", State: "Rajasthan", Season: model.SeasonKharif, Year: year,
				YieldPerHectare: 1.1 + 0.05*float64(year-2018), AvgTempC: 30, TotalRainfallMM: 400, AvgHumidityPct: 45},
		)
	}

	var prices []model.PriceRecord
	base := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		prices = append(prices, model.PriceRecord{
			Commodity: "Paddy(Dhan)(Common)", State: "Punjab", Date: base.AddDate(0, 0, -i),
			ModalPrice: 2100 - 10*float64(i),
		})
	}

	return &stores.DataStores{
		Historical: stores.NewHistoricalStore(hist),
		Market:     stores.NewMarketStore(prices),
		Soil:       stores.NewSoilStore([]model.SoilProfile{{State: "Punjab", N: 250, P: 20, K: 210, PH: 7.2}}),
		Calendar: stores.NewCalendarStore([]model.CalendarEntry{
			{Crop: "Rice", State: "Punjab", Season: "Kharif", SowingPeriod: "June-July", HarvestingPeriod: "October-November"},
		}),
	}
}

func newTestPlanner(data *stores.DataStores, provider WeatherProvider) *Planner {
	cfg := config.PlannerConfig{
		MarketWeight: 0.35, WeatherWeight: 0.25, SeasonWeight: 0.15, SoilWeight: 0.15, RiskWeight: 0.10,
		TopN: 3,
	}
	p := New(data, requirement.Derive(data.Historical.All()), cfg, provider)
	// Pin the clock to July so the default season is always Kharif.
	p.now = func() time.Time { return time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC) }
	return p
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestPlanKharifPunjab(t *testing.T) {
	p := newTestPlanner(plannerFixture(), nil)

	report, err := p.Plan(context.Background(), Request{State: "Punjab", Month: intPtr(7)})
	require.NoError(t, err)

	assert.True(t, report.Success)
	assert.Equal(t, model.SeasonKharif, report.Season)
	assert.Equal(t, "Punjab", report.State)
	// Punjab grows rice and maize in Kharif.
	assert.Equal(t, 2, report.TotalEvaluated)
	require.Len(t, report.Recommendations, 2)
	assert.False(t, report.DataSources.LiveWeatherUsed)
	assert.NotEmpty(t, report.Disclaimer)

	for i, rec := range report.Recommendations {
		assert.GreaterOrEqual(t, rec.FinalScore, 0.0)
		assert.LessOrEqual(t, rec.FinalScore, 100.0)
		if i > 0 {
			assert.GreaterOrEqual(t, report.Recommendations[i-1].FinalScore, rec.FinalScore)
		}
	}
}

func TestPlanUsesCurrentMonthByDefault(t *testing.T) {
	p := newTestPlanner(plannerFixture(), nil)

	report, err := p.Plan(context.Background(), Request{State: "Punjab"})
	require.NoError(t, err)
	assert.Equal(t, model.SeasonKharif, report.Season)
}

func TestPlanIsIdempotent(t *testing.T) {
	p := newTestPlanner(plannerFixture(), nil)
	req := Request{State: "Punjab", Month: intPtr(7), LandSizeHectares: floatPtr(5)}

	first, err := p.Plan(context.Background(), req)
	require.NoError(t, err)
	second, err := p.Plan(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPlanAttachesDetails(t *testing.T) {
	p := newTestPlanner(plannerFixture(), nil)

	report, err := p.Plan(context.Background(), Request{State: "Punjab", Month: intPtr(7), LandSizeHectares: floatPtr(5)})
	require.NoError(t, err)
	require.True(t, report.Success)

	var rice *model.ScoredCrop
	for i := range report.Recommendations {
		if report.Recommendations[i].CropName == "Rice" {
			rice = &report.Recommendations[i]
		}
	}
	require.NotNil(t, rice)

	require.NotNil(t, rice.Quantity)
	assert.True(t, rice.Quantity.StateSpecific)
	require.NotNil(t, rice.Calendar)
	// June-July to October-November spans four months, 120 days.
	assert.Equal(t, 120, rice.Calendar.GrowingDays)
	require.NotNil(t, rice.Soil)
	assert.Equal(t, 7.2, rice.Soil.PH)
}

func TestPlanUnknownStateNoCandidates(t *testing.T) {
	// Kerala has no history for any crop, so the Kharif candidate set is
	// empty and the report carries a message instead of recommendations.
	p := newTestPlanner(plannerFixture(), nil)

	report, err := p.Plan(context.Background(), Request{State: "Kerala", Month: intPtr(7)})
	require.NoError(t, err)

	assert.False(t, report.Success)
	assert.NotEmpty(t, report.Message)
	assert.Empty(t, report.Recommendations)
	assert.Zero(t, report.TotalEvaluated)
}

func TestPlanWholeYearCropsAreCandidates(t *testing.T) {
	// A crop recorded only as Whole Year in the state still enters the
	// candidate set for any season there.
	hist := stores.NewHistoricalStore([]model.HistoricalRecord{
		{Crop: "Sugarcane", State: "Maharashtra", Season: model.SeasonWholeYear, Year: 2022,
			YieldPerHectare: 70, AvgTempC: 27, TotalRainfallMM: 900, AvgHumidityPct: 70},
	})
	data := &stores.DataStores{
		Historical: hist,
		Market:     stores.NewMarketStore(nil),
		Soil:       stores.NewSoilStore(nil),
		Calendar:   stores.NewCalendarStore(nil),
	}
	p := newTestPlanner(data, nil)

	report, err := p.Plan(context.Background(), Request{State: "Maharashtra", Month: intPtr(12)})
	require.NoError(t, err)

	require.True(t, report.Success)
	require.Len(t, report.Recommendations, 1)
	assert.Equal(t, "Sugarcane", report.Recommendations[0].CropName)
	// Out of season but recorded whole-year: the 70-point season rung.
	assert.Equal(t, 70.0, report.Recommendations[0].Scores.Season)
}

func TestPlanNoCandidates(t *testing.T) {
	// The fixture has no Zaid records, so an April request finds nothing.
	p := newTestPlanner(plannerFixture(), nil)

	report, err := p.Plan(context.Background(), Request{State: "Punjab", Month: intPtr(4)})
	require.NoError(t, err)

	assert.False(t, report.Success)
	assert.Contains(t, report.Message, "no candidate crops")
	assert.Empty(t, report.Recommendations)
}

func TestPlanInvalidInput(t *testing.T) {
	p := newTestPlanner(plannerFixture(), nil)
	ctx := context.Background()

	_, err := p.Plan(ctx, Request{State: "   "})
	assert.Error(t, err)

	_, err = p.Plan(ctx, Request{State: "Punjab", Month: intPtr(13)})
	assert.Error(t, err)

	_, err = p.Plan(ctx, Request{State: "Punjab", LandSizeHectares: floatPtr(-2)})
	assert.Error(t, err)
}

func TestPlanWithLiveWeather(t *testing.T) {
	provider := &fakeProvider{cond: &weather.Conditions{TemperatureC: 28, RainfallMM: 60, HumidityPct: 70}}
	p := newTestPlanner(plannerFixture(), provider)

	report, err := p.Plan(context.Background(), Request{
		State: "Punjab", Month: intPtr(7),
		Latitude: floatPtr(30.9), Longitude: floatPtr(75.85),
	})
	require.NoError(t, err)

	assert.True(t, report.Success)
	assert.True(t, report.DataSources.LiveWeatherUsed)
	assert.Equal(t, 1, provider.hits)
}

func TestPlanSurvivesProviderFailure(t *testing.T) {
	provider := &fakeProvider{err: eris.New("upstream timeout")}
	p := newTestPlanner(plannerFixture(), provider)

	report, err := p.Plan(context.Background(), Request{
		State: "Punjab", Month: intPtr(7),
		Latitude: floatPtr(30.9), Longitude: floatPtr(75.85),
	})
	require.NoError(t, err)

	assert.True(t, report.Success)
	assert.False(t, report.DataSources.LiveWeatherUsed)
	// Weather and risk degrade to their neutral scores.
	for _, rec := range report.Recommendations {
		assert.Equal(t, 50.0, rec.Scores.Weather)
		assert.Equal(t, 50.0, rec.Scores.Risk)
	}
}

func TestPlanSkipsWeatherWithoutCoordinates(t *testing.T) {
	provider := &fakeProvider{cond: &weather.Conditions{TemperatureC: 28, RainfallMM: 60, HumidityPct: 70}}
	p := newTestPlanner(plannerFixture(), provider)

	_, err := p.Plan(context.Background(), Request{State: "Punjab", Month: intPtr(7)})
	require.NoError(t, err)
	assert.Zero(t, provider.hits)
}
