package domain

import (
	"time"

	"github.com/google/uuid"

	"secure-payment-gateway/pkg/money"
)

// TransactionType represents the kind of ledger movement.
type TransactionType string

const (
	TransactionTypeTopup      TransactionType = "TOPUP"
	TransactionTypeUsage      TransactionType = "USAGE"
	TransactionTypeRefund     TransactionType = "REFUND"
	TransactionTypeAdjustment TransactionType = "ADJUSTMENT"
)

// TransactionStatus represents the lifecycle state of a transaction.
type TransactionStatus string

const (
	TransactionStatusPending  TransactionStatus = "PENDING"
	TransactionStatusSuccess  TransactionStatus = "SUCCESS"
	TransactionStatusFailed   TransactionStatus = "FAILED"
	TransactionStatusReversed TransactionStatus = "REVERSED"
)

// Transaction is an immutable ledger entry. Every balance change is
// recorded as exactly one Transaction row within the same database
// transaction that updates Account.BalanceUSD; the two never drift
// because they are written atomically.
type Transaction struct {
	ID                    uuid.UUID         `json:"id"`
	AccountID             uuid.UUID         `json:"account_id"`
	IdempotencyKey        string            `json:"idempotency_key"`
	AmountUSD             money.Amount      `json:"amount_usd"` // signed: positive credits, negative debits
	BalanceBefore         money.Amount      `json:"balance_before"`
	BalanceAfter          money.Amount      `json:"balance_after"`
	TransactionType       TransactionType   `json:"transaction_type"`
	Status                TransactionStatus `json:"status"`
	Provider              *string           `json:"provider,omitempty"`
	ProviderRef           *string           `json:"provider_ref,omitempty"`
	ProductID             *string           `json:"product_id,omitempty"`
	OriginalTransactionID *uuid.UUID        `json:"original_transaction_id,omitempty"`
	Metadata              map[string]any    `json:"metadata,omitempty"`
	CreatedAt             time.Time         `json:"created_at"`
	ProcessedAt           *time.Time        `json:"processed_at,omitempty"`
}

// IsTerminal returns true if the transaction is in a final state.
func (t *Transaction) IsTerminal() bool {
	return t.Status == TransactionStatusSuccess ||
		t.Status == TransactionStatusFailed ||
		t.Status == TransactionStatusReversed
}

// IsRefundable returns true if this transaction can be refunded.
func (t *Transaction) IsRefundable() bool {
	return t.TransactionType == TransactionTypeTopup &&
		t.Status == TransactionStatusSuccess
}

// IsCredit reports whether the movement does not decrease the account
// balance; a zero amount counts as a credit.
func (t *Transaction) IsCredit() bool {
	return t.AmountUSD.IsPositive() || t.AmountUSD.IsZero()
}
