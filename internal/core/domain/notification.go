package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind enumerates the events the notification hook (C8) reports.
type NotificationKind string

const (
	NotificationPaymentSuccess NotificationKind = "PAYMENT_SUCCESS"
	NotificationPaymentFailed  NotificationKind = "PAYMENT_FAILED"
	NotificationLowBalance     NotificationKind = "LOW_BALANCE"
)

// NotificationDeliveryLog records a single fire-and-forget notification
// attempt. Persistence is best-effort: a failed delivery is logged, not
// retried against the caller's money-movement transaction.
type NotificationDeliveryLog struct {
	ID        uuid.UUID        `json:"id"`
	AccountID uuid.UUID        `json:"account_id"`
	Kind      NotificationKind `json:"kind"`
	Payload   string           `json:"payload"` // JSON string
	Delivered bool             `json:"delivered"`
	LastError *string          `json:"last_error,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}
