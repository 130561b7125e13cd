package analysis

import (
	"sort"
	"time"

	"breakout-backtest/internal/model"

	"gonum.org/v1/gonum/stat"
)

// SeriesStats is a series-level close-price summary used for reporting.
// It intentionally does not depend on any strategy parameters.
type SeriesStats struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`

	Count int `json:"count"`

	MinClose  float64 `json:"min_close"`
	MaxClose  float64 `json:"max_close"`
	MeanClose float64 `json:"mean_close"`
	P05Close  float64 `json:"p05_close"`
	P95Close  float64 `json:"p95_close"`

	SpreadP95P05 float64 `json:"spread_p95_p05"`
}

func ComputeSeriesStats(bars []model.Bar) SeriesStats {
	s := SeriesStats{}
	if len(bars) == 0 {
		return s
	}
	s.Count = len(bars)
	s.Start = bars[0].Timestamp
	s.End = bars[len(bars)-1].Timestamp

	closes := make([]float64, 0, len(bars))
	for _, b := range bars {
		closes = append(closes, b.Close)
	}
	sort.Float64s(closes)

	s.MinClose = closes[0]
	s.MaxClose = closes[len(closes)-1]
	s.MeanClose = stat.Mean(closes, nil)
	s.P05Close = stat.Quantile(0.05, stat.LinInterp, closes, nil)
	s.P95Close = stat.Quantile(0.95, stat.LinInterp, closes, nil)
	s.SpreadP95P05 = s.P95Close - s.P05Close
	return s
}
