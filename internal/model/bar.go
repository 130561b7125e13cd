package model

import (
	"errors"
	"fmt"
	"time"
)

// PriceSeriesResponse matches the JSON shape of a bars file.
//
// Example:
// {
//   "status_code": 200,
//   "data": [ ... ]
// }
type PriceSeriesResponse struct {
	StatusCode int   `json:"status_code"`
	Data       []Bar `json:"data"`
}

// Bar is one OHLC observation. Prices are strictly positive and timestamps
// strictly increasing; the nominal spacing between bars is not load-bearing,
// only the ordering is.
type Bar struct {
	Timestamp time.Time `json:"timestamp"`

	Open  float64 `json:"open"`
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
	Close float64 `json:"close"`
}

// ValidateSeries checks the Bar invariants the engine relies on: at least
// one bar, strictly positive prices, high >= low, and strictly increasing
// timestamps.
func ValidateSeries(bars []Bar) error {
	if len(bars) == 0 {
		return errors.New("empty price series")
	}
	for i, b := range bars {
		if b.Open <= 0 || b.High <= 0 || b.Low <= 0 || b.Close <= 0 {
			return fmt.Errorf("bar %d: prices must be > 0", i)
		}
		if b.High < b.Low {
			return fmt.Errorf("bar %d: high %.6f below low %.6f", i, b.High, b.Low)
		}
		if i > 0 && !b.Timestamp.After(bars[i-1].Timestamp) {
			return fmt.Errorf("bar %d: timestamps must be strictly increasing", i)
		}
	}
	return nil
}
