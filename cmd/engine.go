package main

import (
	"time"

	"github.com/agroplan/agro-advisor/internal/planner"
	"github.com/agroplan/agro-advisor/internal/requirement"
	"github.com/agroplan/agro-advisor/internal/stores"
	"github.com/agroplan/agro-advisor/pkg/weather"
)

// engine bundles the loaded stores, the derived requirements and a
// ready planner for the commands that need them.
type engine struct {
	Data         *stores.DataStores
	Requirements requirement.Set
	Weather      *weather.Client
	Planner      *planner.Planner
}

func initEngine() (*engine, error) {
	data, err := stores.Load(cfg.Data)
	if err != nil {
		return nil, err
	}
	reqs := requirement.Derive(data.Historical.All())
	client := weather.New(
		cfg.Weather.BaseURL,
		time.Duration(cfg.Weather.TimeoutSecs)*time.Second,
		cfg.Weather.RequestsPerSec,
	)

	return &engine{
		Data:         data,
		Requirements: reqs,
		Weather:      client,
		Planner:      planner.New(data, reqs, cfg.Planner, client),
	}, nil
}
