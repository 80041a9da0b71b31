package handler

import (
	"time"

	"secure-payment-gateway/internal/adapter/http/dto"
	"secure-payment-gateway/internal/adapter/http/middleware"
	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/internal/core/ports"
	"secure-payment-gateway/pkg/apperror"
	"secure-payment-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ApiKeyHandler handles API key issuance, listing, and revocation.
type ApiKeyHandler struct {
	credSvc ports.CredentialService
}

// NewApiKeyHandler creates a new ApiKeyHandler.
func NewApiKeyHandler(credSvc ports.CredentialService) *ApiKeyHandler {
	return &ApiKeyHandler{credSvc: credSvc}
}

// Create handles POST /api_keys.
func (h *ApiKeyHandler) Create(c *gin.Context) {
	accountID, ok := c.Get(middleware.CtxAccountID)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized("missing account"))
		return
	}

	var req dto.CreateApiKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	scopes := make([]domain.ApiKeyScope, len(req.Scopes))
	for i, s := range req.Scopes {
		scopes[i] = domain.ApiKeyScope(s)
	}

	rawKey, key, err := h.credSvc.CreateKey(c.Request.Context(), accountID.(uuid.UUID), req.Label, scopes)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.CreateApiKeyResponse{
		ID:        key.ID.String(),
		Prefix:    key.Prefix,
		Label:     key.Label,
		RawKey:    rawKey,
		Scopes:    req.Scopes,
		CreatedAt: key.CreatedAt.Format(time.RFC3339),
	})
}

// List handles GET /api_keys.
func (h *ApiKeyHandler) List(c *gin.Context) {
	accountID, ok := c.Get(middleware.CtxAccountID)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized("missing account"))
		return
	}

	keys, err := h.credSvc.ListKeys(c.Request.Context(), accountID.(uuid.UUID))
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.ApiKeySummary, len(keys))
	for i, k := range keys {
		scopes := make([]string, len(k.Scopes))
		for j, s := range k.Scopes {
			scopes[j] = string(s)
		}
		summary := dto.ApiKeySummary{
			ID:        k.ID.String(),
			Prefix:    k.Prefix,
			Label:     k.Label,
			Scopes:    scopes,
			Active:    k.Active,
			CreatedAt: k.CreatedAt.Format(time.RFC3339),
		}
		if k.RevokedAt != nil {
			s := k.RevokedAt.Format(time.RFC3339)
			summary.RevokedAt = &s
		}
		if k.LastUsedAt != nil {
			s := k.LastUsedAt.Format(time.RFC3339)
			summary.LastUsedAt = &s
		}
		items[i] = summary
	}

	response.OK(c, dto.ApiKeyListResponse{Items: items})
}

// Revoke handles DELETE /api_keys/{prefix}.
func (h *ApiKeyHandler) Revoke(c *gin.Context) {
	accountID, ok := c.Get(middleware.CtxAccountID)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized("missing account"))
		return
	}

	prefix := c.Param("prefix")
	keys, err := h.credSvc.ListKeys(c.Request.Context(), accountID.(uuid.UUID))
	if err != nil {
		response.Error(c, err)
		return
	}

	var target *domain.ApiKey
	for i := range keys {
		if keys[i].Prefix == prefix {
			target = &keys[i]
			break
		}
	}
	if target == nil {
		response.Error(c, apperror.ErrNotFound("api key"))
		return
	}

	if err := h.credSvc.RevokeKey(c.Request.Context(), target.ID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"revoked": true})
}
