package handlers

import (
	"net/http"

	"breakout-backtest/internal/api/models"
	"breakout-backtest/internal/model"

	"github.com/gin-gonic/gin"
)

// StrategyHandler lists the available strategies
type StrategyHandler struct{}

func NewStrategyHandler() *StrategyHandler { return &StrategyHandler{} }

// ListStrategies handles GET /api/v1/strategies
func (h *StrategyHandler) ListStrategies(c *gin.Context) {
	strategies := []models.StrategyInfo{
		{
			Name:        "box_breakout",
			Description: "Trades breakouts of the trailing high/low box (Donchian channel). Long above the box high, short below the box low, flat inside.",
			Parameters: []models.ParameterInfo{
				{
					Name:        "lookback_window",
					Type:        "int",
					Description: "Trailing box length in bars; the current bar is excluded",
				},
				{
					Name:        "stop_loss_pct",
					Type:        "float",
					Description: "Per-bar downside cap as a fraction (0.01 = 1%)",
				},
				{
					Name:        "profit_target_pct",
					Type:        "float",
					Description: "Per-bar upside cap as a fraction",
				},
				{
					Name:        "fee_per_trade",
					Type:        "float",
					Description: "Flat fee subtracted from every non-zero bar return",
					Default:     model.DefaultFeePerTrade,
				},
			},
		},
	}

	c.JSON(http.StatusOK, gin.H{"strategies": strategies})
}
