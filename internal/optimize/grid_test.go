package optimize

import (
	"testing"
	"time"

	"breakout-backtest/internal/model"
)

func barsFromCloses(closes []float64) []model.Bar {
	bars := make([]model.Bar, len(closes))
	ts := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		bars[i] = model.Bar{Timestamp: ts, Open: c, High: c, Low: c, Close: c}
		ts = ts.Add(5 * time.Second)
	}
	return bars
}

func wavyBars(n int) []model.Bar {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = 100 + float64(i%7) - float64(i%3)
	}
	return barsFromCloses(closes)
}

func TestOptimize_FullProduct(t *testing.T) {
	grid := Grid{
		LookbackWindows: []int{2, 3},
		StopLosses:      []float64{0.001, 0.002},
		TakeProfits:     []float64{0.002, 0.01},
		FeePerTrade:     0.0002,
	}

	rows, err := Optimize(wavyBars(50), grid)
	if err != nil {
		t.Fatalf("Optimize: %v", err)
	}
	if len(rows) != grid.Size() {
		t.Fatalf("got %d rows, want %d", len(rows), grid.Size())
	}

	type tuple struct {
		w      int
		sl, tp float64
	}
	seen := map[tuple]bool{}
	for _, r := range rows {
		k := tuple{r.LookbackWindow, r.StopLossPct, r.ProfitTargetPct}
		if seen[k] {
			t.Errorf("duplicate tuple %+v", k)
		}
		seen[k] = true
	}
	for _, w := range grid.LookbackWindows {
		for _, sl := range grid.StopLosses {
			for _, tp := range grid.TakeProfits {
				if !seen[tuple{w, sl, tp}] {
					t.Errorf("missing tuple window=%d sl=%g tp=%g", w, sl, tp)
				}
			}
		}
	}
}

func TestOptimize_RankedDescending(t *testing.T) {
	rows, err := Optimize(wavyBars(200), Grid{
		LookbackWindows: []int{2, 5, 10},
		StopLosses:      []float64{0.001, 0.01},
		TakeProfits:     []float64{0.002, 0.01},
		FeePerTrade:     0.0002,
	})
	if err != nil {
		t.Fatalf("Optimize: %v", err)
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].WinRate > rows[i-1].WinRate {
			t.Errorf("rows not sorted descending at %d: %g > %g", i, rows[i].WinRate, rows[i-1].WinRate)
		}
	}
}

func TestOptimize_StableTieOrder(t *testing.T) {
	// Constant closes never break out, so every combination has zero trades
	// and an identical win rate; ties must keep enumeration order.
	bars := barsFromCloses([]float64{100, 100, 100, 100, 100, 100, 100, 100})

	rows, err := Optimize(bars, Grid{
		LookbackWindows: []int{2, 3},
		StopLosses:      []float64{0.1, 0.2},
		TakeProfits:     []float64{0.3},
		FeePerTrade:     0,
	})
	if err != nil {
		t.Fatalf("Optimize: %v", err)
	}

	want := []struct {
		w  int
		sl float64
	}{
		{2, 0.1}, {2, 0.2}, {3, 0.1}, {3, 0.2},
	}
	for i, w := range want {
		if rows[i].TotalTrades != 0 {
			t.Fatalf("row %d: expected zero trades on a flat series", i)
		}
		if rows[i].LookbackWindow != w.w || rows[i].StopLossPct != w.sl {
			t.Errorf("row %d: got window=%d sl=%g, want window=%d sl=%g",
				i, rows[i].LookbackWindow, rows[i].StopLossPct, w.w, w.sl)
		}
	}
}

func TestOptimize_InvalidComboFailsSweep(t *testing.T) {
	rows, err := Optimize(wavyBars(20), Grid{
		LookbackWindows: []int{2, 0},
		StopLosses:      []float64{0.001},
		TakeProfits:     []float64{0.002},
		FeePerTrade:     0,
	})
	if err == nil {
		t.Fatalf("expected the sweep to fail on an invalid window, got %d rows", len(rows))
	}
}

func TestOptimize_EmptyGrid(t *testing.T) {
	if _, err := Optimize(wavyBars(20), Grid{}); err == nil {
		t.Errorf("expected error for an empty grid")
	}
}

func TestTopKAndAboveWinRate(t *testing.T) {
	rows := []Row{
		{LookbackWindow: 1}, {LookbackWindow: 2}, {LookbackWindow: 3},
	}
	rows[0].WinRate = 90
	rows[1].WinRate = 80
	rows[2].WinRate = 10

	if got := TopK(rows, 2); len(got) != 2 || got[0].LookbackWindow != 1 {
		t.Errorf("TopK(2) = %+v", got)
	}
	if got := TopK(rows, 0); len(got) != 3 {
		t.Errorf("TopK(0) should return all rows, got %d", len(got))
	}
	if got := TopK(rows, 10); len(got) != 3 {
		t.Errorf("TopK past the end should return all rows, got %d", len(got))
	}

	if got := AboveWinRate(rows, 80); len(got) != 2 {
		t.Errorf("AboveWinRate(80) returned %d rows, want 2 (threshold is inclusive)", len(got))
	}
	if got := AboveWinRate(rows, 99); len(got) != 0 {
		t.Errorf("AboveWinRate(99) returned %d rows, want 0", len(got))
	}
}
