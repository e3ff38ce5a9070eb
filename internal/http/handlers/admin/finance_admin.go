package admin

import (
	"time"

	"github.com/civeni/civeni-api/internal/http/response"
	"github.com/civeni/civeni-api/internal/service"

	"github.com/gin-gonic/gin"
)

func financeQueryFromRequest(c *gin.Context) service.FinanceQueryInput {
	return service.FinanceQueryInput{
		Range: c.DefaultQuery("range", "7d"),
		From:  parseFinanceDate(c.Query("from")),
		To:    parseFinanceDate(c.Query("to")),
	}
}

// parseFinanceDate returns nil for empty or malformed dates; the service
// rejects a custom range with nil bounds as invalid.
func parseFinanceDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &parsed
}

// GetFinanceSummary returns registration counts and confirmed revenue for a
// window, broken down per tier.
func (h *Handler) GetFinanceSummary(c *gin.Context) {
	summary, err := h.FinanceService.GetSummary(financeQueryFromRequest(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, summary)
}

// GetFinanceSeries returns the zero-filled daily revenue series for a
// window.
func (h *Handler) GetFinanceSeries(c *gin.Context) {
	series, err := h.FinanceService.GetSeries(financeQueryFromRequest(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, series)
}
