package data

import (
	"encoding/json"
	"fmt"
	"os"

	"breakout-backtest/internal/model"
)

func LoadBarsJSON(path string) (*model.PriceSeriesResponse, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var resp model.PriceSeriesResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &resp, nil
}
