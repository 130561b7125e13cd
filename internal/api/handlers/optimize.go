package handlers

import (
	"net/http"

	"breakout-backtest/internal/api/models"
	"breakout-backtest/internal/config"
	"breakout-backtest/internal/optimize"

	"github.com/gin-gonic/gin"
)

// OptimizeHandler handles grid-sweep requests
type OptimizeHandler struct{}

func NewOptimizeHandler() *OptimizeHandler { return &OptimizeHandler{} }

// RunOptimize handles POST /api/v1/optimize
func (h *OptimizeHandler) RunOptimize(c *gin.Context) {
	var req models.OptimizeRequest
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

	// Overlay the requested grid onto the stock one; empty dims keep defaults.
	gc := config.MergeGrid(config.DefaultGrid(), config.GridConfig{
		LookbackWindows: req.Grid.LookbackWindows,
		StopLosses:      req.Grid.StopLosses,
		TakeProfits:     req.Grid.TakeProfits,
		FeePerTrade:     req.Grid.FeePerTrade,
	})
	grid := optimize.Grid{
		LookbackWindows: gc.LookbackWindows,
		StopLosses:      gc.StopLosses,
		TakeProfits:     gc.TakeProfits,
		FeePerTrade:     gc.FeePerTrade,
	}

	rows, err := optimize.Optimize(bars, grid)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "OPTIMIZE_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	resp := models.OptimizeResponse{
		Status:            "completed",
		TotalCombinations: len(rows),
		Rows:              convertRows(optimize.TopK(rows, req.Options.TopK)),
	}
	if req.Options.MinWinRate > 0 {
		resp.Acceptable = convertRows(optimize.AboveWinRate(rows, req.Options.MinWinRate))
	}
	c.JSON(http.StatusOK, resp)
}

func convertRows(rows []optimize.Row) []models.GridRow {
	out := make([]models.GridRow, len(rows))
	for i, r := range rows {
		out[i] = models.GridRow{
			Rank:            i + 1,
			LookbackWindow:  r.LookbackWindow,
			StopLossPct:     r.StopLossPct,
			ProfitTargetPct: r.ProfitTargetPct,
			TotalTrades:     r.TotalTrades,
			WinRate:         r.WinRate,
			Expectancy:      r.Expectancy,
			MaxDrawdownPct:  r.MaxDrawdownPct,
			NetProfitPct:    r.NetProfitPct,
		}
	}
	return out
}
