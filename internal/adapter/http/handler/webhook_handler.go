package handler

import (
	"io"

	"secure-payment-gateway/internal/core/ports"
	"secure-payment-gateway/pkg/apperror"
	"secure-payment-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// WebhookHandler handles provider webhook callbacks.
type WebhookHandler struct {
	orchestrator ports.Orchestrator
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(orchestrator ports.Orchestrator) *WebhookHandler {
	return &WebhookHandler{orchestrator: orchestrator}
}

// Handle handles POST /webhooks/:provider. Signature verification and
// event parsing are delegated to the addressed provider adapter through
// the orchestrator (C3); this handler is pure framing.
func (h *WebhookHandler) Handle(c *gin.Context) {
	provider := ports.ProviderName(c.Param("provider"))

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, apperror.Validation("unreadable request body"))
		return
	}

	headers := make(map[string]string, len(c.Request.Header))
	for k := range c.Request.Header {
		headers[k] = c.Request.Header.Get(k)
	}

	if _, err := h.orchestrator.HandleWebhook(c.Request.Context(), provider, headers, body); err != nil {
		// An invalid signature still answers 200 so the provider does not
		// retry a forgery as if it were a transient failure:
		// response.Error uses apperror's HTTPStatus, which is already 200
		// for that case. A duplicate delivery caught by the replay guard
		// never reaches this branch, since the orchestrator returns no
		// error for it; other errors keep their own status.
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"received": true})
}
