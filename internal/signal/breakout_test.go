package signal

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

func TestDerive_NoPrematureSignals(t *testing.T) {
	bars := barsFromCloses([]float64{100, 101, 99, 100, 99, 101})
	points, err := Derive(bars, 3)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}

	for i := 0; i < 3; i++ {
		if points[i].HasBox {
			t.Errorf("bar %d: box must be undefined while the window is incomplete", i)
		}
		if points[i].Direction != model.Flat {
			t.Errorf("bar %d: expected flat, got %d", i, points[i].Direction)
		}
	}
	if !points[3].HasBox {
		t.Errorf("bar 3: expected a complete box")
	}
}

func TestDerive_HandComputedBoxes(t *testing.T) {
	bars := barsFromCloses([]float64{100, 101, 99, 100, 99, 101})
	points, err := Derive(bars, 2)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}

	want := []struct {
		hasBox  bool
		boxHigh float64
		boxLow  float64
		dir     model.Direction
	}{
		{false, 0, 0, model.Flat},
		{false, 0, 0, model.Flat},
		{true, 101, 100, model.Short}, // close 99 below the box low
		{true, 101, 99, model.Flat},
		{true, 100, 99, model.Flat},
		{true, 100, 99, model.Long}, // close 101 above the box high
	}
	for i, w := range want {
		p := points[i]
		if p.HasBox != w.hasBox {
			t.Errorf("bar %d: HasBox=%v, want %v", i, p.HasBox, w.hasBox)
			continue
		}
		if w.hasBox && (p.BoxHigh != w.boxHigh || p.BoxLow != w.boxLow) {
			t.Errorf("bar %d: box [%g, %g], want [%g, %g]", i, p.BoxLow, p.BoxHigh, w.boxLow, w.boxHigh)
		}
		if p.Direction != w.dir {
			t.Errorf("bar %d: direction %d, want %d", i, p.Direction, w.dir)
		}
	}
}

func TestDerive_CurrentBarExcluded(t *testing.T) {
	closes := []float64{100, 101, 99, 100, 99, 101}
	base := barsFromCloses(closes)
	mut := barsFromCloses(closes)
	// Stretching the current bar's range must not move its own signal,
	// only the boxes of later bars.
	mut[4].High = 1000
	mut[4].Low = 0.001

	a, err := Derive(base, 2)
	if err != nil {
		t.Fatalf("Derive(base): %v", err)
	}
	b, err := Derive(mut, 2)
	if err != nil {
		t.Fatalf("Derive(mut): %v", err)
	}

	if a[4].Direction != b[4].Direction {
		t.Errorf("signal at bar 4 changed with its own high/low: %d vs %d", a[4].Direction, b[4].Direction)
	}
	if a[4].BoxHigh != b[4].BoxHigh || a[4].BoxLow != b[4].BoxLow {
		t.Errorf("box at bar 4 changed with its own high/low")
	}
}

func TestDerive_ShortPrecedence(t *testing.T) {
	ts := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	// Degenerate first bar with high below low makes both breakout
	// conditions hold at bar 1; the contract says short wins.
	bars := []model.Bar{
		{Timestamp: ts, Open: 100, High: 90, Low: 110, Close: 100},
		{Timestamp: ts.Add(5 * time.Second), Open: 100, High: 100, Low: 100, Close: 100},
	}
	points, err := Derive(bars, 1)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	p := points[1]
	if p.BoxHigh != 90 || p.BoxLow != 110 {
		t.Fatalf("unexpected box [%g, %g]", p.BoxLow, p.BoxHigh)
	}
	if p.Direction != model.Short {
		t.Errorf("expected short to win the tie-break, got %d", p.Direction)
	}
}

func TestDerive_Errors(t *testing.T) {
	if _, err := Derive(nil, 2); err == nil {
		t.Errorf("expected error for empty series")
	}
	bars := barsFromCloses([]float64{100, 101})
	if _, err := Derive(bars, 0); err == nil {
		t.Errorf("expected error for window < 1")
	}
}
