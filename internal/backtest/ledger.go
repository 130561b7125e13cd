package backtest

import (
	"time"

	"breakout-backtest/internal/model"
)

// LedgerRow is one row of per-bar output.
// This is the primary artifact for "what happened" in a backtest.
type LedgerRow struct {
	Index int

	Timestamp time.Time

	Open  float64
	High  float64
	Low   float64
	Close float64

	// Box values are valid only when HasBox is true.
	BoxHigh float64
	BoxLow  float64
	HasBox  bool

	// Action is the position held entering this bar (previous bar's signal).
	Action model.Action

	RawReturn      float64
	StrategyReturn float64

	Equity float64
}

type Result struct {
	Returns     []float64
	Ledger      []LedgerRow
	FinalEquity float64
}
