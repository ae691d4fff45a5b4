// Package stores holds the read-only in-memory views over the reference
// datasets. A DataStores value is built once at startup and passed by
// handle into the planner and each scorer; nothing here is mutated after
// load, so concurrent requests may read without synchronization.
package stores

import (
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/agroplan/agro-advisor/internal/config"
	"github.com/agroplan/agro-advisor/internal/dataset"
)

// DataStores bundles the four reference stores.
type DataStores struct {
	Historical *HistoricalStore
	Market     *MarketStore
	Soil       *SoilStore
	Calendar   *CalendarStore
}

// Load reads all four datasets and publishes them as read-only stores.
// It must complete before the first planning request is served.
func Load(cfg config.DataConfig) (*DataStores, error) {
	historical, err := dataset.LoadHistorical(cfg.HistoricalPath)
	if err != nil {
		return nil, eris.Wrap(err, "stores: historical")
	}
	prices, err := dataset.LoadPrices(cfg.MarketPath)
	if err != nil {
		return nil, eris.Wrap(err, "stores: prices")
	}
	soil, err := dataset.LoadSoil(cfg.SoilPath)
	if err != nil {
		return nil, eris.Wrap(err, "stores: soil")
	}
	calendar, err := dataset.LoadCalendar(cfg.CalendarPath)
	if err != nil {
		return nil, eris.Wrap(err, "stores: calendar")
	}

	ds := &DataStores{
		Historical: NewHistoricalStore(historical),
		Market:     NewMarketStore(prices),
		Soil:       NewSoilStore(soil),
		Calendar:   NewCalendarStore(calendar),
	}

	zap.L().Info("data stores loaded",
		zap.Int("historical_records", ds.Historical.Len()),
		zap.Int("price_records", ds.Market.Len()),
		zap.Int("soil_profiles", ds.Soil.Len()),
		zap.Int("calendar_entries", ds.Calendar.Len()),
	)

	return ds, nil
}
