package handler

import (
	"time"

	"secure-payment-gateway/internal/adapter/http/dto"
	"secure-payment-gateway/internal/adapter/http/middleware"
	"secure-payment-gateway/internal/core/ports"
	"secure-payment-gateway/pkg/apperror"
	"secure-payment-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UsageHandler handles GET /usage.
type UsageHandler struct {
	usageLogRepo ports.UsageLogRepository
}

// NewUsageHandler creates a new UsageHandler.
func NewUsageHandler(usageLogRepo ports.UsageLogRepository) *UsageHandler {
	return &UsageHandler{usageLogRepo: usageLogRepo}
}

// GetUsage handles GET /usage?month=YYYY-MM.
func (h *UsageHandler) GetUsage(c *gin.Context) {
	accountID, ok := c.Get(middleware.CtxAccountID)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized("missing account"))
		return
	}

	monthParam := c.Query("month")
	if monthParam == "" {
		monthParam = time.Now().UTC().Format("2006-01")
	}
	monthStart, err := time.Parse("2006-01", monthParam)
	if err != nil {
		response.Error(c, apperror.Validation("month must be formatted YYYY-MM"))
		return
	}
	monthEnd := monthStart.AddDate(0, 1, 0)

	stats, err := h.usageLogRepo.GetMonthlyStats(c.Request.Context(), accountID.(uuid.UUID), monthStart, monthEnd)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.UsageResponse{
		Month:    monthParam,
		Requests: stats.Requests,
		Units:    stats.Units,
		CostUSD:  stats.CostUSD.String(),
	}
	for _, p := range stats.ByProduct {
		resp.ByProduct = append(resp.ByProduct, dto.UsageProductBreakdown{
			ProductID: p.ProductID,
			Requests:  p.Requests,
			Units:     p.Units,
			CostUSD:   p.CostUSD.String(),
		})
	}

	response.OK(c, resp)
}
