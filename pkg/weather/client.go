// Package weather is a thin client for an Open-Meteo compatible
// forecast API. The planner uses it for its single optional network
// call per request; every method degrades cleanly into the caller's
// historical-averages fallback on error.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"gonum.org/v1/gonum/stat"
)

// Conditions is the weather snapshot the planner scores against:
// current temperature and humidity plus the average daily precipitation
// over the 7-day forecast window.
type Conditions struct {
	TemperatureC float64 `json:"temperature_c"`
	RainfallMM   float64 `json:"rainfall_mm"`
	HumidityPct  float64 `json:"humidity_percent"`
}

// Observation is the current weather at a point.
type Observation struct {
	TemperatureC float64 `json:"temperature_c"`
	HumidityPct  float64 `json:"humidity_percent"`
	RainfallMM   float64 `json:"rainfall_mm"`
}

// Forecast holds the daily 7-day outlook.
type Forecast struct {
	PrecipitationSumMM []float64 `json:"precipitation_sum_mm"`
	TempMaxC           []float64 `json:"temp_max_c"`
	TempMinC           []float64 `json:"temp_min_c"`
}

// Client talks to one forecast endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// New creates a Client for the given base URL.
func New(baseURL string, timeout time.Duration, requestsPerSec float64) *Client {
	if requestsPerSec <= 0 {
		requestsPerSec = 1
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSec), 1),
	}
}

type currentResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		Humidity    float64 `json:"relative_humidity_2m"`
		Rainfall    float64 `json:"precipitation"`
	} `json:"current"`
}

type forecastResponse struct {
	Daily struct {
		PrecipitationSum []float64 `json:"precipitation_sum"`
		TempMax          []float64 `json:"temperature_2m_max"`
		TempMin          []float64 `json:"temperature_2m_min"`
	} `json:"daily"`
}

// Current fetches the current weather at a point.
func (c *Client) Current(ctx context.Context, lat, lon float64) (*Observation, error) {
	params := url.Values{
		"latitude":  {fmt.Sprintf("%.4f", lat)},
		"longitude": {fmt.Sprintf("%.4f", lon)},
		"current":   {"temperature_2m,relative_humidity_2m,precipitation"},
	}

	var resp currentResponse
	if err := c.get(ctx, "/forecast", params, &resp); err != nil {
		return nil, eris.Wrap(err, "weather: current")
	}

	return &Observation{
		TemperatureC: resp.Current.Temperature,
		HumidityPct:  resp.Current.Humidity,
		RainfallMM:   resp.Current.Rainfall,
	}, nil
}

// SevenDay fetches the daily forecast for the next 7 days.
func (c *Client) SevenDay(ctx context.Context, lat, lon float64) (*Forecast, error) {
	params := url.Values{
		"latitude":      {fmt.Sprintf("%.4f", lat)},
		"longitude":     {fmt.Sprintf("%.4f", lon)},
		"daily":         {"precipitation_sum,temperature_2m_max,temperature_2m_min"},
		"forecast_days": {"7"},
	}

	var resp forecastResponse
	if err := c.get(ctx, "/forecast", params, &resp); err != nil {
		return nil, eris.Wrap(err, "weather: forecast")
	}

	return &Forecast{
		PrecipitationSumMM: resp.Daily.PrecipitationSum,
		TempMaxC:           resp.Daily.TempMax,
		TempMinC:           resp.Daily.TempMin,
	}, nil
}

// Conditions combines the current observation with the forecast into
// the snapshot the planner scores against.
func (c *Client) Conditions(ctx context.Context, lat, lon float64) (*Conditions, error) {
	obs, err := c.Current(ctx, lat, lon)
	if err != nil {
		return nil, err
	}
	fc, err := c.SevenDay(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	rainfall := 0.0
	if len(fc.PrecipitationSumMM) > 0 {
		rainfall = stat.Mean(fc.PrecipitationSumMM, nil)
	}

	return &Conditions{
		TemperatureC: obs.TemperatureC,
		RainfallMM:   rainfall,
		HumidityPct:  obs.HumidityPct,
	}, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return eris.Wrap(err, "rate limit")
	}

	reqURL := c.baseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return eris.Wrap(err, "build request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return eris.Wrap(err, "request")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return eris.Errorf("status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return eris.Wrap(err, "read body")
	}
	if err := json.Unmarshal(body, out); err != nil {
		return eris.Wrap(err, "parse response")
	}
	return nil
}
