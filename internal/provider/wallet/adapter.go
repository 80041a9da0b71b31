// Package wallet implements the wallet (Telegram Stars) provider
// adapter (C5). Unlike the card provider, the wallet issues no
// outbound webhook: it delivers two platform callbacks — a
// pre-checkout query and a successful-payment notification — that a
// chat-platform framing layer (out of scope here) receives from the
// platform SDK and forwards in. The adapter exposes the same
// ports.Provider contract as the card adapter for the completion
// callback, plus one extra method for the pre-checkout decision that
// has no ledger effect and so does not fit that contract.
package wallet

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/internal/core/ports"
	"secure-payment-gateway/pkg/apperror"
	"secure-payment-gateway/pkg/money"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// starsPerUSD is the fixed conversion rate: 50 stars = $1.
const starsPerUSD = 50

// Config holds the wallet provider's credential.
type Config struct {
	BotToken string
}

// Adapter implements ports.Provider for the wallet (Stars) provider.
type Adapter struct {
	cfg          Config
	pendingStore ports.PendingPaymentStore
	log          zerolog.Logger
}

// NewAdapter creates a new wallet Adapter.
func NewAdapter(cfg Config, pendingStore ports.PendingPaymentStore, log zerolog.Logger) *Adapter {
	return &Adapter{cfg: cfg, pendingStore: pendingStore, log: log}
}

// Name identifies this adapter to the orchestrator (C3).
func (a *Adapter) Name() ports.ProviderName {
	return ports.ProviderWallet
}

// UsdToStars converts a USD amount to the integer star count at 50 stars = $1.
func UsdToStars(usd money.Amount) int64 {
	stars := usd.Decimal().Mul(decimal.NewFromInt(starsPerUSD))
	return stars.Round(0).IntPart()
}

// StarsToUsd is the inverse of UsdToStars.
func StarsToUsd(stars int64) money.Amount {
	return money.NewFromDecimal(decimal.NewFromInt(stars).Div(decimal.NewFromInt(starsPerUSD)))
}

// Invoice is the blob a framing layer hands to the chat platform to
// render the payment sheet; it is carried as JSON in CheckoutResult.ProviderRef
// since the wallet provider has no redirect URL.
type Invoice struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Payload     string `json:"payload"`
	Currency    string `json:"currency"` // "XTR", Telegram's Stars currency code
	Stars       int64  `json:"stars"`
}

// CreateCheckout generates a payload binding this checkout to the
// account and caches it as a PendingPayment via the registry (C3),
// then returns an invoice blob for the framing layer to present.
func (a *Adapter) CreateCheckout(_ context.Context, req ports.CheckoutRequest) (*ports.CheckoutResult, error) {
	stars := UsdToStars(req.AmountUSD)
	payload := fmt.Sprintf("topup:%s:%d:%d", req.AccountID.String(), time.Now().UTC().Unix(), rand.Int63())

	invoice := Invoice{
		Title:       "Account top-up",
		Description: fmt.Sprintf("Add $%s to your balance", req.AmountUSD.String()),
		Payload:     payload,
		Currency:    "XTR",
		Stars:       stars,
	}
	invoiceJSON, err := json.Marshal(invoice)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("marshal wallet invoice: %w", err))
	}

	return &ports.CheckoutResult{
		Reference:   payload,
		RedirectURL: "",
		ProviderRef: string(invoiceJSON),
	}, nil
}

// VerifyWebhook has no HMAC signature to check: both platform
// callbacks are delivered to the framing layer over a connection the
// platform SDK already authenticates with the bot token. The header
// check here is defense in depth, confirming the framing layer
// attached the token it was configured with before forwarding.
func (a *Adapter) VerifyWebhook(headers map[string]string, _ []byte) error {
	if a.cfg.BotToken == "" {
		return nil
	}
	if headers["X-Wallet-Bot-Token"] != a.cfg.BotToken {
		return apperror.ErrInvalidSignature()
	}
	return nil
}

// completionCallback is the framing layer's forwarded shape of a
// successful-payment notification.
type completionCallback struct {
	ChargeID string `json:"charge_id"`
	Payload  string `json:"payload"`
	Stars    int64  `json:"stars"`
}

// ParseEvent decodes a forwarded completion callback. The account is
// always recovered from the payload itself
// (topup:<account_ref>:<timestamp>:<random>), not from the
// PendingPayment cache, so a cache eviction never leaves a payment
// uncreditable. The USD amount prefers the cached PendingPayment's
// quoted amount when it is still present, falling back to
// stars/50 otherwise.
func (a *Adapter) ParseEvent(rawBody []byte) (*ports.ProviderEvent, error) {
	var cb completionCallback
	if err := json.Unmarshal(rawBody, &cb); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("decode wallet completion callback: %w", err))
	}
	if cb.ChargeID == "" {
		a.log.Warn().Msg("wallet completion callback missing charge_id, ignoring")
		return nil, nil
	}

	accountID, err := accountRefFromPayload(cb.Payload)
	if err != nil {
		a.log.Warn().Err(err).Str("payload", cb.Payload).Msg("wallet completion callback payload unparseable, ignoring")
		return nil, nil
	}

	amount := StarsToUsd(cb.Stars)
	if pending, err := a.pendingStore.Get(context.Background(), cb.Payload); err == nil && pending != nil {
		amount = pending.AmountUSD
	}

	return &ports.ProviderEvent{
		EventID:         cb.ChargeID,
		Reference:       cb.Payload,
		AccountID:       accountID,
		AmountUSD:       amount,
		TransactionType: domain.TransactionTypeTopup,
		Succeeded:       true,
	}, nil
}

// ApprovePreCheckout answers the pre-checkout query: it looks up the
// PendingPayment by payload and verifies the querying account matches
// the one the invoice was issued for. It performs no ledger write.
// The chat-bot command surface that calls this is out of scope here;
// this method is the pure decision the framing layer wraps.
func (a *Adapter) ApprovePreCheckout(ctx context.Context, payload string, accountID uuid.UUID) (ok bool, reason string) {
	pending, err := a.pendingStore.Get(ctx, payload)
	if err != nil {
		return false, "could not verify this payment right now, please try again"
	}
	if pending == nil {
		return false, "this payment request has expired"
	}
	if pending.AccountID != accountID {
		return false, "this payment request belongs to a different account"
	}
	return true, ""
}

// accountRefFromPayload extracts the account id from a
// topup:<account_ref>:<timestamp>:<random> payload.
func accountRefFromPayload(payload string) (uuid.UUID, error) {
	parts := strings.Split(payload, ":")
	if len(parts) != 4 || parts[0] != "topup" {
		return uuid.Nil, fmt.Errorf("malformed payload %q", payload)
	}
	return uuid.Parse(parts[1])
}
