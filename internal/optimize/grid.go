package optimize

import (
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"breakout-backtest/internal/analysis"
	"breakout-backtest/internal/backtest"
	"breakout-backtest/internal/model"
	"breakout-backtest/internal/signal"
)

// Grid is the parameter space swept by Optimize. The fee is shared by all
// combinations rather than swept.
type Grid struct {
	LookbackWindows []int
	StopLosses      []float64
	TakeProfits     []float64
	FeePerTrade     float64
}

func (g Grid) Size() int {
	return len(g.LookbackWindows) * len(g.StopLosses) * len(g.TakeProfits)
}

// Row is one evaluated grid point.
type Row struct {
	LookbackWindow  int     `json:"lookback_window"`
	StopLossPct     float64 `json:"stop_loss_pct"`
	ProfitTargetPct float64 `json:"profit_target_pct"`

	analysis.Summary
}

// Optimize evaluates every combination in the grid against one shared,
// read-only bar series and returns the rows sorted descending by win rate.
// The sort is stable, so rows with equal win rates keep enumeration order
// (windows outermost, then stop losses, then take profits).
//
// Evaluations are pure and fan out over a bounded worker pool; each result
// lands in its enumeration slot, so output is deterministic regardless of
// scheduling. A single invalid combination fails the whole sweep: silently
// dropping a row would leave the ranking incomplete.
func Optimize(bars []model.Bar, grid Grid) ([]Row, error) {
	n := grid.Size()
	if n == 0 {
		return nil, errors.New("empty parameter grid")
	}

	type job struct {
		idx int
		cfg model.StrategyConfig
	}

	jobs := make([]job, 0, n)
	for _, w := range grid.LookbackWindows {
		for _, sl := range grid.StopLosses {
			for _, tp := range grid.TakeProfits {
				jobs = append(jobs, job{idx: len(jobs), cfg: model.StrategyConfig{
					LookbackWindow:  w,
					ProfitTargetPct: tp,
					StopLossPct:     sl,
					FeePerTrade:     grid.FeePerTrade,
				}})
			}
		}
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}

	rows := make([]Row, n)
	ch := make(chan job)
	engine := backtest.New()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range ch {
				row, err := evaluate(engine, bars, j.cfg)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = fmt.Errorf("window=%d sl=%g tp=%g: %w",
							j.cfg.LookbackWindow, j.cfg.StopLossPct, j.cfg.ProfitTargetPct, err)
					}
					mu.Unlock()
					continue
				}
				rows[j.idx] = row
			}
		}()
	}
	for _, j := range jobs {
		ch <- j
	}
	close(ch)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].WinRate > rows[j].WinRate
	})
	return rows, nil
}

func evaluate(engine *backtest.Engine, bars []model.Bar, cfg model.StrategyConfig) (Row, error) {
	points, err := signal.Derive(bars, cfg.LookbackWindow)
	if err != nil {
		return Row{}, err
	}
	res, err := engine.Run(bars, points, cfg)
	if err != nil {
		return Row{}, err
	}
	return Row{
		LookbackWindow:  cfg.LookbackWindow,
		StopLossPct:     cfg.StopLossPct,
		ProfitTargetPct: cfg.ProfitTargetPct,
		Summary:         analysis.Reduce(res.Returns),
	}, nil
}

// TopK returns the leading k rows; k <= 0 or k past the end returns all.
// This is a presentation projection, not part of the sweep contract.
func TopK(rows []Row, k int) []Row {
	if k <= 0 || k >= len(rows) {
		return rows
	}
	return rows[:k]
}

// AboveWinRate returns the rows at or above a win-rate threshold (percent).
func AboveWinRate(rows []Row, threshold float64) []Row {
	out := make([]Row, 0)
	for _, r := range rows {
		if r.WinRate >= threshold {
			out = append(out, r)
		}
	}
	return out
}
