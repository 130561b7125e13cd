package config

import (
	"errors"
	"fmt"
	"os"

	"breakout-backtest/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Data   DataConfig   `yaml:"data"`
	Grid   GridConfig   `yaml:"grid"`
	Report ReportConfig `yaml:"report"`
}

// DataConfig selects the bar source for a run.
type DataConfig struct {
	Source string `yaml:"source"` // "synthetic" or "file"
	Path   string `yaml:"path"`   // bars JSON, when source=file
	Bars   int    `yaml:"bars"`   // series length, when source=synthetic
	Seed   int64  `yaml:"seed"`
}

// GridConfig is the swept parameter space plus the shared fee.
// All rate values are fractions, not percentages.
type GridConfig struct {
	LookbackWindows []int     `yaml:"lookback_windows"`
	StopLosses      []float64 `yaml:"stop_losses"`
	TakeProfits     []float64 `yaml:"take_profits"`
	FeePerTrade     float64   `yaml:"fee_per_trade"`
}

// ReportConfig shapes the console/API projection of the ranked rows.
type ReportConfig struct {
	TopK             int     `yaml:"top_k"`
	WinRateThreshold float64 `yaml:"win_rate_threshold"` // percent
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads the config without defaults or validation.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Default returns the built-in run parameters used when no YAML is given.
func Default() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

// ApplyDefaults fills unset fields with the stock sweep parameters.
// Note: a fee of exactly 0 is treated as unset and defaulted; a literally
// free backtest has to go through model.StrategyConfig directly.
func (c *Config) ApplyDefaults() {
	if c.Data.Source == "" {
		c.Data.Source = "synthetic"
	}
	if c.Data.Bars == 0 {
		c.Data.Bars = 20000
	}
	if c.Data.Seed == 0 {
		c.Data.Seed = 42
	}
	c.Grid = MergeGrid(DefaultGrid(), c.Grid)
	if c.Report.TopK == 0 {
		c.Report.TopK = 5
	}
	if c.Report.WinRateThreshold == 0 {
		c.Report.WinRateThreshold = 80
	}
}

// DefaultGrid is the stock parameter space swept when none is configured.
func DefaultGrid() GridConfig {
	return GridConfig{
		LookbackWindows: []int{10, 20, 50, 100},
		StopLosses:      []float64{0.001, 0.002, 0.005},
		TakeProfits:     []float64{0.002, 0.005, 0.01},
		FeePerTrade:     model.DefaultFeePerTrade,
	}
}

// MergeGrid overlays non-empty fields from override onto base.
// This is used when an API request refines the stock grid.
func MergeGrid(base, override GridConfig) GridConfig {
	out := base
	if len(override.LookbackWindows) > 0 {
		out.LookbackWindows = override.LookbackWindows
	}
	if len(override.StopLosses) > 0 {
		out.StopLosses = override.StopLosses
	}
	if len(override.TakeProfits) > 0 {
		out.TakeProfits = override.TakeProfits
	}
	if override.FeePerTrade != 0 {
		out.FeePerTrade = override.FeePerTrade
	}
	return out
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	switch c.Data.Source {
	case "synthetic":
		if c.Data.Bars < 1 {
			return errors.New("data.bars must be >= 1")
		}
	case "file":
		if c.Data.Path == "" {
			return errors.New("data.path is required when data.source is \"file\"")
		}
	default:
		return fmt.Errorf("unsupported data.source: %q", c.Data.Source)
	}

	if len(c.Grid.LookbackWindows) == 0 || len(c.Grid.StopLosses) == 0 || len(c.Grid.TakeProfits) == 0 {
		return errors.New("grid dimensions must all be non-empty")
	}
	for _, w := range c.Grid.LookbackWindows {
		if w < 1 {
			return fmt.Errorf("grid.lookback_windows: window %d must be >= 1", w)
		}
	}
	for _, sl := range c.Grid.StopLosses {
		if sl <= 0 {
			return fmt.Errorf("grid.stop_losses: %g must be > 0", sl)
		}
	}
	for _, tp := range c.Grid.TakeProfits {
		if tp <= 0 {
			return fmt.Errorf("grid.take_profits: %g must be > 0", tp)
		}
	}
	if c.Grid.FeePerTrade < 0 {
		return errors.New("grid.fee_per_trade must be >= 0")
	}
	if c.Report.TopK < 0 {
		return errors.New("report.top_k must be >= 0")
	}
	return nil
}
