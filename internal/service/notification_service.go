package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/internal/core/ports"
	"secure-payment-gateway/pkg/money"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Sink delivers a rendered notification to whatever out-of-band
// channel a deployment wires up (email, chat platform, pager). The
// chat-bot command surface itself is out of scope here; Sink is the
// seam a framing layer would plug into.
type Sink interface {
	Send(ctx context.Context, accountID uuid.UUID, kind domain.NotificationKind, message string) error
}

// LogSink is the default Sink: it only logs. Deployments that need a
// real delivery channel provide their own Sink to NewNotificationService.
type LogSink struct {
	log zerolog.Logger
}

// NewLogSink creates a logging-only Sink.
func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Send(_ context.Context, accountID uuid.UUID, kind domain.NotificationKind, message string) error {
	s.log.Info().
		Str("account_id", accountID.String()).
		Str("kind", string(kind)).
		Str("message", message).
		Msg("notification sink: no delivery channel configured, logging only")
	return nil
}

// NotificationServiceImpl implements ports.NotificationService (C8): each
// method fires the notification on its own goroutine, detached from the
// caller's request context, and swallows delivery errors after logging
// them (no repository) or persisting them (repository set) — a failed
// notification must never roll back or
// block the ledger mutation that triggered it.
type NotificationServiceImpl struct {
	sink     Sink
	repo     ports.NotificationRepository // nil = persistence disabled
	log      zerolog.Logger
	deadline time.Duration
}

// NewNotificationService creates a new NotificationServiceImpl.
func NewNotificationService(sink Sink, repo ports.NotificationRepository, log zerolog.Logger) *NotificationServiceImpl {
	return &NotificationServiceImpl{sink: sink, repo: repo, log: log, deadline: 10 * time.Second}
}

// NotifyPaymentSuccess reports a completed top-up.
func (s *NotificationServiceImpl) NotifyPaymentSuccess(ctx context.Context, accountID uuid.UUID, amount money.Amount) {
	message := fmt.Sprintf("top-up of $%s completed", amount.String())
	s.dispatch(ctx, accountID, domain.NotificationPaymentSuccess, message, map[string]any{"amount_usd": amount.String()})
}

// NotifyPaymentFailed reports a failed top-up attempt.
func (s *NotificationServiceImpl) NotifyPaymentFailed(ctx context.Context, accountID uuid.UUID, reason string) {
	message := fmt.Sprintf("top-up failed: %s", reason)
	s.dispatch(ctx, accountID, domain.NotificationPaymentFailed, message, map[string]any{"reason": reason})
}

// NotifyLowBalance warns that an account's balance has dropped below a threshold.
func (s *NotificationServiceImpl) NotifyLowBalance(ctx context.Context, accountID uuid.UUID, balance money.Amount) {
	message := fmt.Sprintf("balance is low: $%s remaining", balance.String())
	s.dispatch(ctx, accountID, domain.NotificationLowBalance, message, map[string]any{"balance_usd": balance.String()})
}

func (s *NotificationServiceImpl) dispatch(_ context.Context, accountID uuid.UUID, kind domain.NotificationKind, message string, payload map[string]any) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.deadline)
		defer cancel()

		err := s.sink.Send(ctx, accountID, kind, message)

		if s.repo == nil {
			if err != nil {
				s.log.Warn().Err(err).Str("account_id", accountID.String()).Str("kind", string(kind)).Msg("notification delivery failed")
			}
			return
		}

		payloadJSON, marshalErr := json.Marshal(payload)
		if marshalErr != nil {
			s.log.Warn().Err(marshalErr).Msg("failed to marshal notification payload")
			payloadJSON = []byte("{}")
		}

		entry := &domain.NotificationDeliveryLog{
			ID:        uuid.New(),
			AccountID: accountID,
			Kind:      kind,
			Payload:   string(payloadJSON),
			Delivered: err == nil,
			CreatedAt: time.Now().UTC(),
		}
		if err != nil {
			errStr := err.Error()
			entry.LastError = &errStr
		}

		if logErr := s.repo.Create(ctx, entry); logErr != nil {
			s.log.Warn().Err(logErr).Msg("failed to persist notification delivery log")
		}
	}()
}
