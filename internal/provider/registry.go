// Package provider implements the provider registry and orchestration
// layer (C3): a fixed map of payment providers addressed by
// ports.ProviderName, dispatching checkout creation and webhook
// application to whichever adapter (C4 card, C5 wallet) is named.
package provider

import (
	"context"
	"fmt"
	"time"

	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/internal/core/ports"
	"secure-payment-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	pendingPaymentTTL = time.Hour
	processedEventTTL = 7 * 24 * time.Hour
)

// Registry implements ports.Orchestrator over a fixed set of
// providers built once at wiring time in cmd/api/main.go. It is never
// a dynamic string-keyed plugin system: Providers is populated from
// ports.ProviderName's two constructible values and nothing else.
type Registry struct {
	providers    map[ports.ProviderName]ports.Provider
	balanceSvc   ports.BalanceService
	pendingStore ports.PendingPaymentStore
	nonceStore   ports.NonceStore
	notifySvc    ports.NotificationService // nil = notifications disabled
	metrics      *Metrics
	log          zerolog.Logger
}

// NewRegistry creates a new provider Registry.
func NewRegistry(
	providers map[ports.ProviderName]ports.Provider,
	balanceSvc ports.BalanceService,
	pendingStore ports.PendingPaymentStore,
	nonceStore ports.NonceStore,
	notifySvc ports.NotificationService,
	metrics *Metrics,
	log zerolog.Logger,
) *Registry {
	return &Registry{
		providers:    providers,
		balanceSvc:   balanceSvc,
		pendingStore: pendingStore,
		nonceStore:   nonceStore,
		notifySvc:    notifySvc,
		metrics:      metrics,
		log:          log,
	}
}

// CreateCheckout dispatches to the named provider and caches the
// resulting reference as a PendingPayment so a later webhook can be
// resolved back to an account even when the provider's own callback
// doesn't carry one.
func (r *Registry) CreateCheckout(ctx context.Context, providerName ports.ProviderName, req ports.CheckoutRequest) (*ports.CheckoutResult, error) {
	p, ok := r.providers[providerName]
	if !ok {
		return nil, apperror.ErrNotFound("provider")
	}

	start := time.Now()
	result, err := p.CreateCheckout(ctx, req)
	r.metrics.ObserveCheckout(string(providerName), err == nil, time.Since(start))
	if err != nil {
		return nil, err
	}

	if err := r.pendingStore.Set(ctx, result.Reference, req.AccountID, req.AmountUSD, pendingPaymentTTL); err != nil {
		r.log.Warn().Err(err).Str("reference", result.Reference).Msg("failed to cache pending payment, webhook will fall back to event-supplied account id")
	}

	return result, nil
}

// HandleWebhook verifies, parses, and applies an inbound provider
// callback. A verification failure is reported as an apperror whose
// HTTP status is 200, and a duplicate delivery caught by the replay
// guard returns no error at all, so the provider does not retry a
// forgery or a replay as if it were a transient failure.
func (r *Registry) HandleWebhook(ctx context.Context, providerName ports.ProviderName, headers map[string]string, rawBody []byte) (*domain.Transaction, error) {
	p, ok := r.providers[providerName]
	if !ok {
		return nil, apperror.ErrNotFound("provider")
	}

	start := time.Now()

	if err := p.VerifyWebhook(headers, rawBody); err != nil {
		r.metrics.ObserveWebhook(string(providerName), "invalid_signature", time.Since(start))
		r.log.Warn().Err(err).Str("provider", string(providerName)).Msg("webhook signature verification failed")
		if appErr, ok := err.(*apperror.AppError); ok {
			return nil, appErr
		}
		return nil, apperror.ErrInvalidSignature()
	}

	event, err := p.ParseEvent(rawBody)
	if err != nil {
		r.metrics.ObserveWebhook(string(providerName), "unparseable", time.Since(start))
		return nil, apperror.Validation(fmt.Sprintf("malformed %s webhook payload", providerName))
	}
	if event == nil {
		// Event type not of interest, or required metadata (e.g.
		// custom_data.account_ref) was missing — the adapter already
		// logged a warning; the webhook is acknowledged as a no-op.
		r.metrics.ObserveWebhook(string(providerName), "ignored", time.Since(start))
		return nil, nil
	}

	isNew, err := r.nonceStore.CheckAndSet(ctx, string(providerName), event.EventID, processedEventTTL)
	if err != nil {
		r.log.Warn().Err(err).Str("event_id", event.EventID).Msg("replay check failed, proceeding: BalanceService.Apply's idempotency key is the authoritative guard")
	} else if !isNew {
		r.metrics.ObserveWebhook(string(providerName), "duplicate", time.Since(start))
		r.log.Info().Str("event_id", event.EventID).Str("provider", string(providerName)).Msg("duplicate webhook delivery, acknowledging without reapplying")
		return nil, nil
	}

	accountID := event.AccountID
	amount := event.AmountUSD
	if accountID == uuid.Nil {
		pending, err := r.pendingStore.Get(ctx, event.Reference)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("lookup pending payment: %w", err))
		}
		if pending == nil {
			r.metrics.ObserveWebhook(string(providerName), "unknown_reference", time.Since(start))
			return nil, apperror.ErrNotFound("pending payment")
		}
		accountID = pending.AccountID
		if amount.IsZero() {
			amount = pending.AmountUSD
		}
	}

	if !event.Succeeded {
		r.metrics.ObserveWebhook(string(providerName), "provider_declined", time.Since(start))
		if r.notifySvc != nil {
			r.notifySvc.NotifyPaymentFailed(ctx, accountID, fmt.Sprintf("%s provider reported failure", providerName))
		}
		return nil, nil
	}

	txnType := event.TransactionType
	if txnType == "" {
		txnType = domain.TransactionTypeTopup
	}

	providerStr := string(providerName)
	txn, err := r.balanceSvc.Apply(ctx, ports.ApplyRequest{
		AccountID:       accountID,
		IdempotencyKey:  "webhook:" + event.EventID,
		AmountUSD:       amount,
		TransactionType: txnType,
		Provider:        &providerStr,
		ProviderRef:     &event.Reference,
	})
	if err != nil {
		r.metrics.ObserveWebhook(string(providerName), "ledger_error", time.Since(start))
		if r.notifySvc != nil {
			r.notifySvc.NotifyPaymentFailed(ctx, accountID, "ledger could not apply the confirmed payment")
		}
		return nil, err
	}

	if err := r.pendingStore.Delete(ctx, event.Reference); err != nil {
		r.log.Warn().Err(err).Str("reference", event.Reference).Msg("failed to clear pending payment after settlement")
	}

	r.metrics.ObserveWebhook(string(providerName), "success", time.Since(start))
	if r.notifySvc != nil {
		r.notifySvc.NotifyPaymentSuccess(ctx, accountID, amount)
	}

	return txn, nil
}
