package middleware

import (
	"net/http"
	"strings"
	"time"

	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/internal/core/ports"
	"secure-payment-gateway/pkg/apperror"
	"secure-payment-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	// HeaderAuthorization carries the API key as "Bearer <rawKey>".
	HeaderAuthorization = "Authorization"

	// Context keys
	CtxAccountID = "account_id"
	CtxApiKey    = "api_key"
)

// ApiKeyAuth creates a middleware that authenticates requests via the
// CredentialService (C7): it extracts the bearer key, verifies its hash,
// and rejects revoked or scope-deficient keys before the handler runs.
func ApiKeyAuth(credSvc ports.CredentialService, requiredScope domain.ApiKeyScope, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawKey := extractBearerKey(c.GetHeader(HeaderAuthorization))
		if rawKey == "" {
			response.Error(c, apperror.ErrUnauthorized("missing api key"))
			c.Abort()
			return
		}

		key, err := credSvc.VerifyKey(c.Request.Context(), rawKey, c.ClientIP())
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		if requiredScope != "" && !key.HasScope(requiredScope) {
			response.Error(c, apperror.ErrForbidden("api key lacks required scope"))
			c.Abort()
			return
		}

		c.Set(CtxAccountID, key.AccountID)
		c.Set(CtxApiKey, key)

		c.Next()
	}
}

func extractBearerKey(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimPrefix(header, prefix)
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}
