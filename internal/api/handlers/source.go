package handlers

import (
	"fmt"

	"breakout-backtest/internal/api/models"
	"breakout-backtest/internal/data"
	"breakout-backtest/internal/model"
)

const (
	defaultSyntheticBars = 20000
	defaultSyntheticSeed = 42
)

// loadSeries resolves a request data source into a validated bar series.
func loadSeries(ds models.DataSourceConfig) ([]model.Bar, error) {
	var bars []model.Bar
	switch ds.Type {
	case "synthetic":
		n := ds.Bars
		if n == 0 {
			n = defaultSyntheticBars
		}
		seed := ds.Seed
		if seed == 0 {
			seed = defaultSyntheticSeed
		}
		var err error
		bars, err = data.Generate(data.DefaultGeneratorParams(n, seed))
		if err != nil {
			return nil, err
		}
	case "file":
		resp, err := data.LoadBarsJSON(ds.Path)
		if err != nil {
			return nil, err
		}
		bars = resp.Data
	default:
		return nil, fmt.Errorf("unsupported data source type: %s", ds.Type)
	}

	if ds.LimitBars > 0 && ds.LimitBars < len(bars) {
		bars = bars[:ds.LimitBars]
	}
	if err := model.ValidateSeries(bars); err != nil {
		return nil, err
	}
	return bars, nil
}
