package domain

import (
	"time"

	"github.com/google/uuid"

	"secure-payment-gateway/pkg/money"
)

// UsageStatus tracks a metered charge through its provisional-then-settled lifecycle.
type UsageStatus string

const (
	UsageStatusProvisional UsageStatus = "PROVISIONAL"
	UsageStatusSettled     UsageStatus = "SETTLED"
	UsageStatusRefunded    UsageStatus = "REFUNDED"
)

// UsageLog records one metered API call: the provisional charge, its
// settlement (adjustment to actual cost, if it differed from the
// estimate), or its refund if the underlying call ultimately failed.
type UsageLog struct {
	ID               uuid.UUID      `json:"id"`
	AccountID        uuid.UUID      `json:"account_id"`
	ProductID        string         `json:"product_id"`
	IdempotencyKey   string         `json:"idempotency_key"`
	UnitsConsumed    int64          `json:"units_consumed"`
	EstimatedCostUSD money.Amount   `json:"estimated_cost_usd"`
	ActualCostUSD    *money.Amount  `json:"actual_cost_usd,omitempty"`
	Status           UsageStatus    `json:"status"`
	ProvisionalTxID  uuid.UUID      `json:"provisional_tx_id"`
	SettlementTxID   *uuid.UUID     `json:"settlement_tx_id,omitempty"`
	Details          map[string]any `json:"details,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	SettledAt        *time.Time     `json:"settled_at,omitempty"`
}
