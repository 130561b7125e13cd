package handlers

import (
	"net/http"

	"breakout-backtest/internal/analysis"
	"breakout-backtest/internal/api/models"
	"breakout-backtest/internal/backtest"
	"breakout-backtest/internal/model"
	"breakout-backtest/internal/signal"

	"github.com/gin-gonic/gin"
)

// BacktestHandler handles single-configuration backtest requests
type BacktestHandler struct{}

func NewBacktestHandler() *BacktestHandler { return &BacktestHandler{} }

// RunBacktest handles POST /api/v1/backtest
func (h *BacktestHandler) RunBacktest(c *gin.Context) {
	var req models.BacktestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	bars, err := loadSeries(req.DataSource)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "DATA_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	fee := req.Config.FeePerTrade
	if fee == 0 {
		fee = model.DefaultFeePerTrade
	}
	cfg, err := model.NewStrategyConfig(
		req.Config.LookbackWindow,
		req.Config.StopLossPct,
		req.Config.ProfitTargetPct,
		fee,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CONFIG",
				Message: err.Error(),
			},
		})
		return
	}

	points, err := signal.Derive(bars, cfg.LookbackWindow)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SIGNAL_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	engine := backtest.New()
	result, err := engine.Run(bars, points, cfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "BACKTEST_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	resp := models.BacktestResponse{
		Status:  "completed",
		Summary: buildSummary(result),
	}
	if req.Options.IncludeLedger {
		resp.Ledger = convertLedger(result.Ledger)
	}
	c.JSON(http.StatusOK, resp)
}

func buildSummary(result *backtest.Result) models.BacktestSummary {
	sum := analysis.Reduce(result.Returns)

	summary := models.BacktestSummary{
		TotalBars:      len(result.Ledger),
		FinalEquity:    result.FinalEquity,
		TotalTrades:    sum.TotalTrades,
		WinRate:        sum.WinRate,
		Expectancy:     sum.Expectancy,
		MaxDrawdownPct: sum.MaxDrawdownPct,
		NetProfitPct:   sum.NetProfitPct,
	}
	if len(result.Ledger) > 0 {
		summary.Window = models.TimeWindow{
			Start: result.Ledger[0].Timestamp,
			End:   result.Ledger[len(result.Ledger)-1].Timestamp,
		}
	}
	return summary
}

func convertLedger(ledger []backtest.LedgerRow) []models.LedgerRow {
	out := make([]models.LedgerRow, len(ledger))
	for i, row := range ledger {
		m := models.LedgerRow{
			Index:          row.Index,
			Timestamp:      row.Timestamp,
			Open:           row.Open,
			High:           row.High,
			Low:            row.Low,
			Close:          row.Close,
			Action:         string(row.Action),
			RawReturn:      row.RawReturn,
			StrategyReturn: row.StrategyReturn,
			Equity:         row.Equity,
		}
		if row.HasBox {
			bh, bl := row.BoxHigh, row.BoxLow
			m.BoxHigh = &bh
			m.BoxLow = &bl
		}
		out[i] = m
	}
	return out
}
