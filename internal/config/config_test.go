package config

import (
	"os"
	"path/filepath"
	"testing"

	"breakout-backtest/internal/model"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_DefaultsApplied(t *testing.T) {
	path := writeConfig(t, "data:\n  source: synthetic\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Data.Bars != 20000 || cfg.Data.Seed != 42 {
		t.Errorf("data defaults not applied: %+v", cfg.Data)
	}
	if cfg.Grid.FeePerTrade != model.DefaultFeePerTrade {
		t.Errorf("FeePerTrade = %g, want default %g", cfg.Grid.FeePerTrade, model.DefaultFeePerTrade)
	}
	if len(cfg.Grid.LookbackWindows) == 0 || len(cfg.Grid.StopLosses) == 0 || len(cfg.Grid.TakeProfits) == 0 {
		t.Errorf("grid defaults not applied: %+v", cfg.Grid)
	}
	if cfg.Report.TopK != 5 || cfg.Report.WinRateThreshold != 80 {
		t.Errorf("report defaults not applied: %+v", cfg.Report)
	}
}

func TestLoad_PartialGridKeepsOtherDefaults(t *testing.T) {
	path := writeConfig(t, `
grid:
  lookback_windows: [5, 15]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Grid.LookbackWindows) != 2 || cfg.Grid.LookbackWindows[0] != 5 {
		t.Errorf("override lost: %v", cfg.Grid.LookbackWindows)
	}
	if len(cfg.Grid.StopLosses) != 3 {
		t.Errorf("stop-loss default lost: %v", cfg.Grid.StopLosses)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"bad source":      "data:\n  source: postgres\n",
		"file needs path": "data:\n  source: file\n",
		"bad window":      "grid:\n  lookback_windows: [0]\n",
		"bad stop loss":   "grid:\n  stop_losses: [-0.001]\n",
	}
	for name, body := range cases {
		if _, err := Load(writeConfig(t, body)); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

func TestMergeGrid(t *testing.T) {
	base := DefaultGrid()
	out := MergeGrid(base, GridConfig{StopLosses: []float64{0.01}})

	if len(out.StopLosses) != 1 || out.StopLosses[0] != 0.01 {
		t.Errorf("override not applied: %v", out.StopLosses)
	}
	if len(out.LookbackWindows) != len(base.LookbackWindows) {
		t.Errorf("untouched dimension changed: %v", out.LookbackWindows)
	}
	if out.FeePerTrade != base.FeePerTrade {
		t.Errorf("fee changed unexpectedly: %g", out.FeePerTrade)
	}
}
