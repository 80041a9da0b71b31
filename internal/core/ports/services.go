package ports

import (
	"context"
	"time"

	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/pkg/money"

	"github.com/google/uuid"
)

// HMACService handles HMAC-SHA256 signing and constant-time verification.
// It is used by the credential service's key hashing (C7); the card
// provider's webhook verification (C4) computes its HMAC inline.
type HMACService interface {
	Sign(secret string, payload string) string
	Verify(secret string, payload string, signature string) bool
}

// IdempotencyCache is the Redis-layer idempotency check (fast path, best effort).
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // nil, nil on cache miss
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// NonceStore manages provider webhook-event-id uniqueness for replay prevention.
type NonceStore interface {
	// CheckAndSet atomically reserves eventID under scope; returns true if
	// it was not already reserved (i.e. this delivery is new).
	CheckAndSet(ctx context.Context, scope string, eventID string, ttl time.Duration) (bool, error)
}

// RateLimitStore implements fixed-window request counting.
type RateLimitStore interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error)
}

// RateLimitResult holds the outcome of a rate limit check, including the
// values needed for X-RateLimit-* / Retry-After response headers.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp
}

// PendingPaymentStore holds the volatile state of an in-flight checkout
// between its creation and its provider callback (C3/C5). Never the
// source of truth for balance.
type PendingPaymentStore interface {
	Set(ctx context.Context, reference string, accountID uuid.UUID, amount money.Amount, ttl time.Duration) error
	Get(ctx context.Context, reference string) (*PendingPayment, error)
	Delete(ctx context.Context, reference string) error
}

// PendingPayment is the cached shape of an awaited checkout.
type PendingPayment struct {
	Reference string
	AccountID uuid.UUID
	AmountUSD money.Amount
	CreatedAt time.Time
}

// --- Service ports (business logic) ---

// BalanceService defines the core ledger mutation logic (C2): every
// credit and debit to an account's balance passes through Apply.
type BalanceService interface {
	Apply(ctx context.Context, req ApplyRequest) (*domain.Transaction, error)
	GetBalance(ctx context.Context, accountID uuid.UUID) (money.Amount, error)
}

// ApplyRequest is the validated input to a single atomic balance mutation.
type ApplyRequest struct {
	AccountID       uuid.UUID
	IdempotencyKey  string // caller-supplied, scoped to AccountID
	AmountUSD       money.Amount // signed: positive credits, negative debits
	TransactionType domain.TransactionType
	Provider        *string
	ProviderRef     *string
	ProductID       *string
	OriginalTxID    *uuid.UUID
	Metadata        map[string]any
}

// ProviderName is a closed set: the registry is a fixed map, never a
// dynamic string-keyed plugin dispatch.
type ProviderName string

const (
	ProviderCard   ProviderName = "card"
	ProviderWallet ProviderName = "wallet"
)

// CheckoutRequest asks a provider to start a top-up.
type CheckoutRequest struct {
	AccountID uuid.UUID
	AmountUSD money.Amount
	Reference string
}

// CheckoutResult is what a provider hands back to redirect/display to the payer.
type CheckoutResult struct {
	Reference   string
	RedirectURL string
	ProviderRef string
}

// Provider is implemented by each payment provider adapter (C4, C5).
type Provider interface {
	Name() ProviderName
	CreateCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error)
	VerifyWebhook(headers map[string]string, rawBody []byte) error
	ParseEvent(rawBody []byte) (*ProviderEvent, error)
}

// ProviderEvent is the provider-agnostic shape the orchestrator applies
// to the ledger once a webhook has been verified and parsed.
type ProviderEvent struct {
	EventID   string
	Reference string
	AccountID uuid.UUID
	AmountUSD money.Amount
	// TransactionType defaults to domain.TransactionTypeTopup when
	// left zero-valued; adapters set domain.TransactionTypeRefund for
	// a provider-reported refund event.
	TransactionType domain.TransactionType
	Succeeded       bool
}

// Orchestrator defines the payment-provider dispatch business logic (C3).
type Orchestrator interface {
	CreateCheckout(ctx context.Context, provider ProviderName, req CheckoutRequest) (*CheckoutResult, error)
	HandleWebhook(ctx context.Context, provider ProviderName, headers map[string]string, rawBody []byte) (*domain.Transaction, error)
}

// UsageService defines metered charging business logic (C6).
type UsageService interface {
	ChargeProvisional(ctx context.Context, req ChargeProvisionalRequest) (*domain.UsageLog, error)
	Settle(ctx context.Context, req SettleRequest) (*domain.UsageLog, error)
	RefundProvisional(ctx context.Context, req RefundProvisionalRequest) (*domain.UsageLog, error)
}

// ChargeProvisionalRequest holds input for an estimated, pre-call charge.
type ChargeProvisionalRequest struct {
	AccountID      uuid.UUID
	ProductID      string
	// Units is the quantity billed at the product's base_price_per_unit;
	// zero is treated as 1 (a single unit) so existing single-unit
	// callers need not set it explicitly.
	Units          int64
	IdempotencyKey string
	Details        map[string]any
}

// SettleRequest adjusts a provisional charge to its actual cost.
type SettleRequest struct {
	AccountID      uuid.UUID
	IdempotencyKey string // the same key used at ChargeProvisional
	ActualCostUSD  money.Amount
}

// RefundProvisionalRequest reverses a provisional charge entirely
// (the underlying call failed and nothing should be billed).
type RefundProvisionalRequest struct {
	AccountID      uuid.UUID
	IdempotencyKey string
}

// CredentialService defines API-key issuance and verification (C7).
type CredentialService interface {
	CreateKey(ctx context.Context, accountID uuid.UUID, label string, scopes []domain.ApiKeyScope) (rawKey string, key *domain.ApiKey, err error)
	VerifyKey(ctx context.Context, rawKey string, clientIP string) (*domain.ApiKey, error)
	RevokeKey(ctx context.Context, id uuid.UUID) error
	ListKeys(ctx context.Context, accountID uuid.UUID) ([]domain.ApiKey, error)
}

// NotificationService defines the fire-and-forget notification hook (C8).
type NotificationService interface {
	NotifyPaymentSuccess(ctx context.Context, accountID uuid.UUID, amount money.Amount)
	NotifyPaymentFailed(ctx context.Context, accountID uuid.UUID, reason string)
	NotifyLowBalance(ctx context.Context, accountID uuid.UUID, balance money.Amount)
}

// AuditService records audited actions.
type AuditService interface {
	Record(ctx context.Context, accountID *uuid.UUID, action domain.AuditAction, resourceType, resourceID, details, ip string) error
}
