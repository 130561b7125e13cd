package models

import "time"

// OptimizeResponse represents the response from a grid sweep
type OptimizeResponse struct {
	Status            string    `json:"status"`
	TotalCombinations int       `json:"total_combinations"`
	Rows              []GridRow `json:"rows"`
	Acceptable        []GridRow `json:"acceptable,omitempty"` // rows at/above min_win_rate
}

// GridRow is one ranked parameter combination
type GridRow struct {
	Rank            int     `json:"rank"`
	LookbackWindow  int     `json:"lookback_window"`
	StopLossPct     float64 `json:"stop_loss_pct"`
	ProfitTargetPct float64 `json:"profit_target_pct"`

	TotalTrades    int      `json:"total_trades"`
	WinRate        float64  `json:"win_rate"`
	Expectancy     float64  `json:"expectancy"`
	MaxDrawdownPct *float64 `json:"max_drawdown_pct,omitempty"`
	NetProfitPct   *float64 `json:"net_profit_pct,omitempty"`
}

// BacktestResponse represents the response from a single backtest run
type BacktestResponse struct {
	Status  string          `json:"status"`
	Summary BacktestSummary `json:"summary"`
	Ledger  []LedgerRow     `json:"ledger,omitempty"`
}

// BacktestSummary contains aggregated backtest results
type BacktestSummary struct {
	TotalBars   int        `json:"total_bars"`
	Window      TimeWindow `json:"window"`
	FinalEquity float64    `json:"final_equity"`

	TotalTrades    int      `json:"total_trades"`
	WinRate        float64  `json:"win_rate"`
	Expectancy     float64  `json:"expectancy"`
	MaxDrawdownPct *float64 `json:"max_drawdown_pct,omitempty"`
	NetProfitPct   *float64 `json:"net_profit_pct,omitempty"`
}

// TimeWindow represents a time range
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// LedgerRow represents one bar in the backtest ledger
type LedgerRow struct {
	Index     int       `json:"index"`
	Timestamp time.Time `json:"timestamp"`

	Open  float64 `json:"open"`
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
	Close float64 `json:"close"`

	BoxHigh *float64 `json:"box_high,omitempty"` // absent while the window is incomplete
	BoxLow  *float64 `json:"box_low,omitempty"`

	Action string `json:"action"` // "LONG", "SHORT", "FLAT"

	RawReturn      float64 `json:"raw_return"`
	StrategyReturn float64 `json:"strategy_return"`
	Equity         float64 `json:"equity"`
}

// StatsResponse represents the response from a series stats request
type StatsResponse struct {
	Stats SeriesStats `json:"stats"`
}

// SeriesStats summarizes close prices for one series
type SeriesStats struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Count int       `json:"count"`

	MinClose     float64 `json:"min_close"`
	MaxClose     float64 `json:"max_close"`
	MeanClose    float64 `json:"mean_close"`
	P05Close     float64 `json:"p05_close"`
	P95Close     float64 `json:"p95_close"`
	SpreadP95P05 float64 `json:"spread_p95_p05"`
}

// StrategyInfo represents information about a strategy
type StrategyInfo struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  []ParameterInfo `json:"parameters"`
}

// ParameterInfo describes a strategy parameter
type ParameterInfo struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"` // "float", "int"
	Description string      `json:"description"`
	Default     interface{} `json:"default,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
