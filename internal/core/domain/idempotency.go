package domain

import (
	"time"

	"github.com/google/uuid"
)

// IdempotencyLog caches a transaction result so a repeated caller-supplied
// idempotency key returns the original outcome instead of reprocessing.
type IdempotencyLog struct {
	Key           string    `json:"key"` // format: "<account_id>:<caller_key>"
	TransactionID uuid.UUID `json:"transaction_id"`
	ResponseJSON  []byte    `json:"response_json"`
	CreatedAt     time.Time `json:"created_at"`
}

// BuildIdempotencyKey constructs the standard key format scoping a
// caller-supplied key to its account.
func BuildIdempotencyKey(accountID uuid.UUID, callerKey string) string {
	return accountID.String() + ":" + callerKey
}
