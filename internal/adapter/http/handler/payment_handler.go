package handler

import (
	"time"

	"secure-payment-gateway/internal/adapter/http/dto"
	"secure-payment-gateway/internal/adapter/http/middleware"
	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/internal/core/ports"
	"secure-payment-gateway/pkg/apperror"
	"secure-payment-gateway/pkg/money"
	"secure-payment-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	minTopupUSD = money.MustNewFromString("5")
	maxTopupUSD = money.MustNewFromString("1000")
)

// PaymentHandler handles checkout creation and status probes.
type PaymentHandler struct {
	orchestrator ports.Orchestrator
	txRepo       ports.TransactionRepository
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(orchestrator ports.Orchestrator, txRepo ports.TransactionRepository) *PaymentHandler {
	return &PaymentHandler{orchestrator: orchestrator, txRepo: txRepo}
}

// Topup handles POST /payment/topup.
func (h *PaymentHandler) Topup(c *gin.Context) {
	accountID, ok := c.Get(middleware.CtxAccountID)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized("missing account"))
		return
	}

	var req dto.TopupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	amount, err := money.NewFromString(req.AmountUSD)
	if err != nil {
		response.Error(c, apperror.ErrInvalidAmount("amount_usd must be a valid decimal"))
		return
	}
	if amount.LessThan(minTopupUSD) || amount.GreaterThan(maxTopupUSD) {
		response.Error(c, apperror.ErrInvalidAmount("amount_usd must be between 5 and 1000"))
		return
	}

	reference := uuid.New().String()
	result, err := h.orchestrator.CreateCheckout(c.Request.Context(), ports.ProviderName(req.Method), ports.CheckoutRequest{
		AccountID: accountID.(uuid.UUID),
		AmountUSD: amount,
		Reference: reference,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.TopupResponse{PaymentID: result.Reference}
	if result.RedirectURL != "" {
		resp.CheckoutURL = &result.RedirectURL
	}
	response.Created(c, resp)
}

// GetPayment handles GET /payment/{id}.
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrNotFound("payment"))
		return
	}

	tx, err := h.txRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if tx == nil {
		response.Error(c, apperror.ErrNotFound("payment"))
		return
	}

	response.OK(c, toPaymentStatusResponse(tx))
}

func toPaymentStatusResponse(tx *domain.Transaction) dto.PaymentStatusResponse {
	resp := dto.PaymentStatusResponse{
		ID:              tx.ID.String(),
		Status:          string(tx.Status),
		TransactionType: string(tx.TransactionType),
		AmountUSD:       tx.AmountUSD.String(),
		Provider:        tx.Provider,
		CreatedAt:       tx.CreatedAt.Format(time.RFC3339),
	}
	if tx.ProcessedAt != nil {
		s := tx.ProcessedAt.Format(time.RFC3339)
		resp.ProcessedAt = &s
	}
	return resp
}
