package backtest

import (
	"errors"
	"fmt"

	"breakout-backtest/internal/model"
)

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run simulates the strategy return series for one configuration.
//
// The position entering bar i is the direction observed at bar i-1's close,
// so no bar ever trades on its own signal. Each bar return is clamped to the
// stop loss first and the profit target second, and any bar left with a
// non-zero return pays the flat fee exactly once. A "trade" downstream means
// one non-zero bar return, not a multi-bar position.
func (e *Engine) Run(bars []model.Bar, signals []model.SignalPoint, cfg model.StrategyConfig) (*Result, error) {
	if len(bars) == 0 {
		return nil, errors.New("no bars")
	}
	if signals == nil {
		return nil, errors.New("signals not derived")
	}
	if len(signals) != len(bars) {
		return nil, fmt.Errorf("signals/bars length mismatch: %d vs %d", len(signals), len(bars))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config invalid: %w", err)
	}

	returns := make([]float64, len(bars))
	ledger := make([]LedgerRow, 0, len(bars))
	equity := 1.0

	for i, b := range bars {
		var raw, ret float64
		var dir model.Direction
		if i > 0 {
			raw = b.Close/bars[i-1].Close - 1
			dir = signals[i-1].Direction
			ret = Clamp(float64(dir)*raw, cfg)
			if ret != 0 {
				ret -= cfg.FeePerTrade
			}
		}
		returns[i] = ret
		equity *= 1 + ret

		ledger = append(ledger, LedgerRow{
			Index:     i,
			Timestamp: b.Timestamp,

			Open:  b.Open,
			High:  b.High,
			Low:   b.Low,
			Close: b.Close,

			BoxHigh: signals[i].BoxHigh,
			BoxLow:  signals[i].BoxLow,
			HasBox:  signals[i].HasBox,

			Action: model.ActionFromDirection(dir),

			RawReturn:      raw,
			StrategyReturn: ret,
			Equity:         equity,
		})
	}

	return &Result{
		Returns:     returns,
		Ledger:      ledger,
		FinalEquity: equity,
	}, nil
}

// Clamp applies the risk caps in contract order: the stop-loss floor first,
// then the profit-target ceiling against the already-floored value.
// Clamp is idempotent.
func Clamp(ret float64, cfg model.StrategyConfig) float64 {
	if ret < -cfg.StopLossPct {
		ret = -cfg.StopLossPct
	}
	if ret > cfg.ProfitTargetPct {
		ret = cfg.ProfitTargetPct
	}
	return ret
}
