package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Summary is the fixed reduction of one strategy return series.
//
// A trade is any bar with a non-zero return; multi-bar positions are not
// tracked. MaxDrawdownPct and NetProfitPct are nil when the series produced
// no trades: they were not computed, which is not the same as zero.
type Summary struct {
	TotalTrades int     `json:"total_trades"`
	WinRate     float64 `json:"win_rate"`   // percent, 2dp
	Expectancy  float64 `json:"expectancy"` // x100, 4dp

	MaxDrawdownPct *float64 `json:"max_drawdown_pct,omitempty"` // percent, 2dp, always <= 0
	NetProfitPct   *float64 `json:"net_profit_pct,omitempty"`   // percent, 2dp
}

// Reduce computes summary statistics over a per-bar return series.
// It is total: any well-formed series reduces to a defined Summary, and a
// series with no trades is a legitimate result, not an error.
func Reduce(returns []float64) Summary {
	var wins, losses []float64
	for _, r := range returns {
		switch {
		case r > 0:
			wins = append(wins, r)
		case r < 0:
			losses = append(losses, -r)
		}
	}

	total := len(wins) + len(losses)
	if total == 0 {
		return Summary{}
	}

	winFrac := float64(len(wins)) / float64(total)
	var avgWin, avgLoss float64
	if len(wins) > 0 {
		avgWin = stat.Mean(wins, nil)
	}
	if len(losses) > 0 {
		avgLoss = stat.Mean(losses, nil)
	}
	expectancy := winFrac*avgWin - (1-winFrac)*avgLoss

	// Equity curve over the full series, not just the trade bars. The peak
	// starts at the first curve point, so drawdown[0] is always 0.
	cum := 1.0
	peak := math.Inf(-1)
	maxDD := 0.0
	for _, r := range returns {
		cum *= 1 + r
		if cum > peak {
			peak = cum
		}
		if dd := (cum - peak) / peak; dd < maxDD {
			maxDD = dd
		}
	}

	dd := round2(maxDD * 100)
	np := round2((cum - 1) * 100)
	return Summary{
		TotalTrades:    total,
		WinRate:        round2(winFrac * 100),
		Expectancy:     round4(expectancy * 100),
		MaxDrawdownPct: &dd,
		NetProfitPct:   &np,
	}
}

func round2(x float64) float64 { return math.Round(x*100) / 100 }

func round4(x float64) float64 { return math.Round(x*10000) / 10000 }
