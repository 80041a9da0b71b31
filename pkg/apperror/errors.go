package apperror

import (
	"fmt"
	"net/http"

	"secure-payment-gateway/pkg/money"
)

// AppError is a structured error that maps to an HTTP response.
type AppError struct {
	Code       string         `json:"error_code"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`
	HTTPStatus int            `json:"-"`
	Err        error          `json:"-"` // wrapped internal error, never exposed to the client
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, Err: err}
}

// ---- Payment / ledger errors ----

// ErrDuplicatePayment signals the idempotency key was already applied;
// callers should treat the original result as authoritative, not retry.
func ErrDuplicatePayment() *AppError {
	return New("DUPLICATE_PAYMENT", "transaction already processed for this idempotency key", http.StatusConflict)
}

// ErrInsufficientBalance signals a debit would take the account negative.
// current and required are the account's balance and the amount the
// debit needed, so a caller can recover both without re-querying.
func ErrInsufficientBalance(current, required money.Amount) *AppError {
	err := New("INSUFFICIENT_BALANCE", "account balance insufficient for this charge", http.StatusPaymentRequired)
	err.Details = map[string]any{
		"current":  current.String(),
		"required": required.String(),
	}
	return err
}

// ErrInvalidAmount covers non-positive or out-of-scale amounts.
func ErrInvalidAmount(reason string) *AppError {
	return New("INVALID_AMOUNT", reason, http.StatusBadRequest)
}

// ---- Signature / webhook verification ----

// ErrInvalidSignature signals a webhook failed signature verification. The
// HTTP boundary answers 200 to this condition so the provider does not
// treat it as transient and retry; the AppError still carries the real
// classification for logging.
func ErrInvalidSignature() *AppError {
	return New("INVALID_SIGNATURE", "webhook signature verification failed", http.StatusOK)
}

// ErrTimestampExpired signals a webhook timestamp fell outside the replay window.
func ErrTimestampExpired() *AppError {
	return New("INVALID_SIGNATURE", "webhook timestamp outside allowed window", http.StatusOK)
}

// ---- Provider errors ----

// ProviderErrorCode enumerates the outcome classes a provider adapter can report.
type ProviderErrorCode string

const (
	ProviderErrClient     ProviderErrorCode = "client_error"
	ProviderErrServer     ProviderErrorCode = "server_error"
	ProviderErrTimeout    ProviderErrorCode = "timeout"
	ProviderErrMaxRetries ProviderErrorCode = "max_retries"
	ProviderErrNotFound   ProviderErrorCode = "not_found"
)

// ErrProvider wraps a provider-adapter failure, carrying its classification
// so the orchestrator can decide whether to retry.
func ErrProvider(code ProviderErrorCode, message string, err error) *AppError {
	status := http.StatusBadGateway
	switch code {
	case ProviderErrClient:
		status = http.StatusBadRequest
	case ProviderErrNotFound:
		status = http.StatusNotFound
	case ProviderErrTimeout:
		status = http.StatusGatewayTimeout
	case ProviderErrMaxRetries:
		status = http.StatusServiceUnavailable
	}
	return &AppError{Code: "PROVIDER_ERROR:" + string(code), Message: message, HTTPStatus: status, Err: err}
}

// ---- Generic ----

func ErrNotFound(entity string) *AppError {
	return New("NOT_FOUND", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrUnauthorized(message string) *AppError {
	return New("UNAUTHORIZED", message, http.StatusUnauthorized)
}

func ErrForbidden(message string) *AppError {
	return New("FORBIDDEN", message, http.StatusForbidden)
}

func ErrRateLimitExceeded() *AppError {
	return New("RATE_LIMIT_EXCEEDED", "rate limit exceeded", http.StatusTooManyRequests)
}

// Validation returns a VALIDATION_ERROR-coded 400.
func Validation(message string) *AppError {
	return New("VALIDATION_ERROR", message, http.StatusBadRequest)
}

// InternalError wraps an unexpected internal failure as a 500.
func InternalError(err error) *AppError {
	return Wrap("INTERNAL_ERROR", "internal server error", http.StatusInternalServerError, err)
}

func ErrDatabaseError(err error) *AppError {
	return Wrap("INTERNAL_ERROR", "internal database error", http.StatusInternalServerError, err)
}

func ErrLockTimeout(err error) *AppError {
	return Wrap("INTERNAL_ERROR", "lock acquisition timeout", http.StatusServiceUnavailable, err)
}
