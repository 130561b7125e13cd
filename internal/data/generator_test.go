package data

import (
	"testing"

	"breakout-backtest/internal/model"
)

func TestGenerate_Deterministic(t *testing.T) {
	a, err := Generate(DefaultGeneratorParams(200, 42))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := Generate(DefaultGeneratorParams(200, 42))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(a) != 200 || len(b) != 200 {
		t.Fatalf("got %d/%d bars, want 200", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("bar %d differs between runs with the same seed", i)
		}
	}

	c, err := Generate(DefaultGeneratorParams(200, 43))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Errorf("different seeds produced identical series")
	}
}

func TestGenerate_BarInvariants(t *testing.T) {
	bars, err := Generate(DefaultGeneratorParams(1000, 7))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if err := model.ValidateSeries(bars); err != nil {
		t.Fatalf("generated series violates bar invariants: %v", err)
	}
	for i, b := range bars {
		if b.High < b.Open || b.High < b.Close {
			t.Fatalf("bar %d: high %g below body", i, b.High)
		}
		if b.Low > b.Open || b.Low > b.Close {
			t.Fatalf("bar %d: low %g above body", i, b.Low)
		}
	}
}

func TestGenerate_Errors(t *testing.T) {
	if _, err := Generate(DefaultGeneratorParams(0, 42)); err == nil {
		t.Errorf("expected error for zero bars")
	}

	p := DefaultGeneratorParams(10, 42)
	p.StartPrice = 0
	if _, err := Generate(p); err == nil {
		t.Errorf("expected error for non-positive start price")
	}

	p = DefaultGeneratorParams(10, 42)
	p.Spacing = 0
	if _, err := Generate(p); err == nil {
		t.Errorf("expected error for non-positive spacing")
	}
}
