package signal

import (
	"errors"
	"fmt"

	"breakout-backtest/internal/model"
)

// Derive computes the trailing box and per-bar direction for a series.
//
// The box at bar i spans bars [i-window, i-1]: the current bar is excluded,
// so a close is only ever compared against strictly prior highs and lows.
// Bars whose trailing window is incomplete have no box and stay flat.
//
// If a close is above the box high and below the box low at the same time
// (only possible with degenerate input data), short wins. The tie-break is
// part of the contract; callers must not rely on evaluation order instead.
func Derive(bars []model.Bar, window int) ([]model.SignalPoint, error) {
	if len(bars) == 0 {
		return nil, errors.New("empty price series")
	}
	if window < 1 {
		return nil, fmt.Errorf("lookback window must be >= 1, got %d", window)
	}

	out := make([]model.SignalPoint, len(bars))
	for i := range bars {
		if i < window {
			continue
		}

		boxHigh := bars[i-window].High
		boxLow := bars[i-window].Low
		for j := i - window + 1; j < i; j++ {
			if bars[j].High > boxHigh {
				boxHigh = bars[j].High
			}
			if bars[j].Low < boxLow {
				boxLow = bars[j].Low
			}
		}

		p := model.SignalPoint{BoxHigh: boxHigh, BoxLow: boxLow, HasBox: true}
		if bars[i].Close > boxHigh {
			p.Direction = model.Long
		}
		if bars[i].Close < boxLow {
			p.Direction = model.Short
		}
		out[i] = p
	}
	return out, nil
}
