package handlers

import (
	"net/http"

	"breakout-backtest/internal/analysis"
	"breakout-backtest/internal/api/models"

	"github.com/gin-gonic/gin"
)

// StatsHandler serves series-level price statistics
type StatsHandler struct{}

func NewStatsHandler() *StatsHandler { return &StatsHandler{} }

// SeriesStats handles GET /api/v1/stats
func (h *StatsHandler) SeriesStats(c *gin.Context) {
	var req models.StatsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	bars, err := loadSeries(models.DataSourceConfig{
		Type: req.Type,
		Path: req.Path,
		Bars: req.Bars,
		Seed: req.Seed,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "DATA_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	s := analysis.ComputeSeriesStats(bars)
	c.JSON(http.StatusOK, models.StatsResponse{Stats: models.SeriesStats{
		Start:        s.Start,
		End:          s.End,
		Count:        s.Count,
		MinClose:     s.MinClose,
		MaxClose:     s.MaxClose,
		MeanClose:    s.MeanClose,
		P05Close:     s.P05Close,
		P95Close:     s.P95Close,
		SpreadP95P05: s.SpreadP95P05,
	}})
}
