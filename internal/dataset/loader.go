// Package dataset loads the reference CSV files produced by the upstream
// cleaning scripts into typed record collections. Loading happens once at
// process startup; rows that fail to parse are skipped with a warning so
// one malformed line cannot block the whole dataset.
package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/agroplan/agro-advisor/internal/model"
)

// arrivalDateLayout matches the DD-MM-YYYY format of the mandi price feed.
const arrivalDateLayout = "02-01-2006"

type historicalRow struct {
	Crop     string  `csv:"crop"`
	State    string  `csv:"state"`
	Season   string  `csv:"season"`
	Year     int     `csv:"year"`
	Area     float64 `csv:"area"`
	Yield    float64 `csv:"yield"`
	AvgTemp  float64 `csv:"avg_temp_c"`
	Rainfall float64 `csv:"total_rainfall_mm"`
	Humidity float64 `csv:"avg_humidity_percent"`
}

type priceRow struct {
	State       string  `csv:"State"`
	District    string  `csv:"District"`
	Market      string  `csv:"Market"`
	Commodity   string  `csv:"Commodity"`
	ArrivalDate string  `csv:"Arrival_Date"`
	MinPrice    float64 `csv:"Min Price"`
	MaxPrice    float64 `csv:"Max Price"`
	ModalPrice  float64 `csv:"Modal Price"`
}

type soilRow struct {
	State string  `csv:"state"`
	N     float64 `csv:"N"`
	P     float64 `csv:"P"`
	K     float64 `csv:"K"`
	PH    float64 `csv:"pH"`
}

type calendarRow struct {
	Crop             string `csv:"CROP"`
	State            string `csv:"STATE"`
	Season           string `csv:"Season"`
	SowingPeriod     string `csv:"sowing_period"`
	HarvestingPeriod string `csv:"harvesting_period"`
}

// LoadHistorical reads the crop production dataset.
func LoadHistorical(path string) ([]model.HistoricalRecord, error) {
	log := zap.L().With(zap.String("dataset", "historical"), zap.String("path", path))

	var records []model.HistoricalRecord
	skipped := 0
	err := decodeFile(path, func(dec *csvutil.Decoder) error {
		var row historicalRow
		if err := dec.Decode(&row); err != nil {
			if err == io.EOF {
				return io.EOF
			}
			skipped++
			return nil
		}
		records = append(records, model.HistoricalRecord{
			Crop:            strings.TrimSpace(row.Crop),
			State:           strings.TrimSpace(row.State),
			Season:          model.ParseSeason(row.Season),
			Year:            row.Year,
			AreaHectares:    row.Area,
			YieldPerHectare: row.Yield,
			AvgTempC:        row.AvgTemp,
			TotalRainfallMM: row.Rainfall,
			AvgHumidityPct:  row.Humidity,
		})
		return nil
	})
	if err != nil {
		return nil, eris.Wrap(err, "dataset: load historical")
	}

	log.Info("historical dataset loaded", zap.Int("records", len(records)), zap.Int("skipped", skipped))
	return records, nil
}

// LoadPrices reads the mandi price dataset.
func LoadPrices(path string) ([]model.PriceRecord, error) {
	log := zap.L().With(zap.String("dataset", "prices"), zap.String("path", path))

	var records []model.PriceRecord
	skipped := 0
	err := decodeFile(path, func(dec *csvutil.Decoder) error {
		var row priceRow
		if err := dec.Decode(&row); err != nil {
			if err == io.EOF {
				return io.EOF
			}
			skipped++
			return nil
		}
		date, perr := time.Parse(arrivalDateLayout, strings.TrimSpace(row.ArrivalDate))
		if perr != nil {
			skipped++
			return nil
		}
		records = append(records, model.PriceRecord{
			Commodity:  strings.TrimSpace(row.Commodity),
			State:      strings.TrimSpace(row.State),
			District:   strings.TrimSpace(row.District),
			Market:     strings.TrimSpace(row.Market),
			Date:       date,
			MinPrice:   row.MinPrice,
			MaxPrice:   row.MaxPrice,
			ModalPrice: row.ModalPrice,
		})
		return nil
	})
	if err != nil {
		return nil, eris.Wrap(err, "dataset: load prices")
	}

	log.Info("price dataset loaded", zap.Int("records", len(records)), zap.Int("skipped", skipped))
	return records, nil
}

// LoadSoil reads the per-state soil profile table.
func LoadSoil(path string) ([]model.SoilProfile, error) {
	log := zap.L().With(zap.String("dataset", "soil"), zap.String("path", path))

	var profiles []model.SoilProfile
	skipped := 0
	err := decodeFile(path, func(dec *csvutil.Decoder) error {
		var row soilRow
		if err := dec.Decode(&row); err != nil {
			if err == io.EOF {
				return io.EOF
			}
			skipped++
			return nil
		}
		profiles = append(profiles, model.SoilProfile{
			State: strings.TrimSpace(row.State),
			N:     row.N,
			P:     row.P,
			K:     row.K,
			PH:    row.PH,
		})
		return nil
	})
	if err != nil {
		return nil, eris.Wrap(err, "dataset: load soil")
	}

	log.Info("soil dataset loaded", zap.Int("profiles", len(profiles)), zap.Int("skipped", skipped))
	return profiles, nil
}

// LoadCalendar reads the crop calendar table. Period strings are kept as
// free text; growing-day parsing happens on demand in the calendar store.
func LoadCalendar(path string) ([]model.CalendarEntry, error) {
	log := zap.L().With(zap.String("dataset", "calendar"), zap.String("path", path))

	var entries []model.CalendarEntry
	skipped := 0
	err := decodeFile(path, func(dec *csvutil.Decoder) error {
		var row calendarRow
		if err := dec.Decode(&row); err != nil {
			if err == io.EOF {
				return io.EOF
			}
			skipped++
			return nil
		}
		entries = append(entries, model.CalendarEntry{
			Crop:             strings.TrimSpace(row.Crop),
			State:            strings.TrimSpace(row.State),
			Season:           strings.TrimSpace(row.Season),
			SowingPeriod:     strings.TrimSpace(row.SowingPeriod),
			HarvestingPeriod: strings.TrimSpace(row.HarvestingPeriod),
		})
		return nil
	})
	if err != nil {
		return nil, eris.Wrap(err, "dataset: load calendar")
	}

	log.Info("calendar dataset loaded", zap.Int("entries", len(entries)), zap.Int("skipped", skipped))
	return entries, nil
}

// decodeFile opens a CSV file and calls next for each record until EOF.
func decodeFile(path string, next func(*csvutil.Decoder) error) error {
	f, err := os.Open(path)
	if err != nil {
		return eris.Wrapf(err, "open %s", path)
	}
	defer f.Close() //nolint:errcheck

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	dec, err := csvutil.NewDecoder(reader)
	if err != nil {
		return eris.Wrap(err, "read header")
	}

	for {
		if err := next(dec); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}
