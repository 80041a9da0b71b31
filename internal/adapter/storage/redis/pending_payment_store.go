package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"secure-payment-gateway/internal/core/ports"
	"secure-payment-gateway/pkg/money"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// PendingPaymentStore implements ports.PendingPaymentStore using Redis.
// A checkout reference lives here, never in Postgres, between its
// creation (C3.CreateCheckout) and the provider's callback resolving it
// into a ledger Transaction (C2.Apply) — if the TTL expires first the
// checkout is simply abandoned, with nothing left to reconcile.
type PendingPaymentStore struct {
	client *goredis.Client
	prefix string
}

// NewPendingPaymentStore creates a new Redis-backed pending payment store.
func NewPendingPaymentStore(client *goredis.Client) *PendingPaymentStore {
	return &PendingPaymentStore{
		client: client,
		prefix: "pending_payment:",
	}
}

type pendingPaymentRecord struct {
	Reference string       `json:"reference"`
	AccountID uuid.UUID    `json:"account_id"`
	AmountUSD money.Amount `json:"amount_usd"`
	CreatedAt time.Time    `json:"created_at"`
}

// Set stores a pending checkout under reference with ttl.
func (s *PendingPaymentStore) Set(ctx context.Context, reference string, accountID uuid.UUID, amount money.Amount, ttl time.Duration) error {
	rec := pendingPaymentRecord{
		Reference: reference,
		AccountID: accountID,
		AmountUSD: amount,
		CreatedAt: time.Now().UTC(),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal pending payment: %w", err)
	}
	if err := s.client.Set(ctx, s.prefix+reference, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis pending payment set: %w", err)
	}
	return nil
}

// Get retrieves a pending checkout by reference. Returns nil, nil if it
// does not exist (expired or never created).
func (s *PendingPaymentStore) Get(ctx context.Context, reference string) (*ports.PendingPayment, error) {
	data, err := s.client.Get(ctx, s.prefix+reference).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis pending payment get: %w", err)
	}

	var rec pendingPaymentRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal pending payment: %w", err)
	}

	return &ports.PendingPayment{
		Reference: rec.Reference,
		AccountID: rec.AccountID,
		AmountUSD: rec.AmountUSD,
		CreatedAt: rec.CreatedAt,
	}, nil
}

// Delete removes a pending checkout once it has been resolved.
func (s *PendingPaymentStore) Delete(ctx context.Context, reference string) error {
	if err := s.client.Del(ctx, s.prefix+reference).Err(); err != nil {
		return fmt.Errorf("redis pending payment delete: %w", err)
	}
	return nil
}
