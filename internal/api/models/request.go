package models

// OptimizeRequest represents the request body for running a grid sweep
type OptimizeRequest struct {
	DataSource DataSourceConfig `json:"data_source" binding:"required"`
	Grid       GridConfig       `json:"grid,omitempty"`
	Options    OptimizeOptions  `json:"options,omitempty"`
}

// DataSourceConfig defines how to obtain the bar series
type DataSourceConfig struct {
	Type      string `json:"type" binding:"required"` // "synthetic" or "file"
	Path      string `json:"path,omitempty"`          // bars JSON, when type=file
	Bars      int    `json:"bars,omitempty"`          // series length, when type=synthetic
	Seed      int64  `json:"seed,omitempty"`
	LimitBars int    `json:"limit_bars,omitempty"` // 0 = all
}

// GridConfig defines the swept parameter space; empty dimensions fall back
// to the stock grid. All rate values are fractions, not percentages.
type GridConfig struct {
	LookbackWindows []int     `json:"lookback_windows,omitempty"`
	StopLosses      []float64 `json:"stop_losses,omitempty"`
	TakeProfits     []float64 `json:"take_profits,omitempty"`
	FeePerTrade     float64   `json:"fee_per_trade,omitempty"`
}

// OptimizeOptions contains optional sweep presentation parameters
type OptimizeOptions struct {
	TopK       int     `json:"top_k,omitempty"`        // 0 = all rows
	MinWinRate float64 `json:"min_win_rate,omitempty"` // percent; flags acceptable rows
}

// BacktestRequest runs a single configuration
type BacktestRequest struct {
	DataSource DataSourceConfig `json:"data_source" binding:"required"`
	Config     StrategyParams   `json:"config" binding:"required"`
	Options    BacktestOptions  `json:"options,omitempty"`
}

// StrategyParams defines one box-breakout configuration
type StrategyParams struct {
	LookbackWindow  int     `json:"lookback_window" binding:"required"`
	StopLossPct     float64 `json:"stop_loss_pct" binding:"required"`
	ProfitTargetPct float64 `json:"profit_target_pct" binding:"required"`
	FeePerTrade     float64 `json:"fee_per_trade,omitempty"` // 0 = default fee
}

// BacktestOptions contains optional backtest parameters
type BacktestOptions struct {
	IncludeLedger bool `json:"include_ledger,omitempty"` // default: false
}

// StatsRequest asks for series-level price statistics
type StatsRequest struct {
	Type string `form:"type" binding:"required"` // "synthetic" or "file"
	Path string `form:"path,omitempty"`
	Bars int    `form:"bars,omitempty"`
	Seed int64  `form:"seed,omitempty"`
}
