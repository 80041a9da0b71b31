package domain

import (
	"time"

	"github.com/google/uuid"

	"secure-payment-gateway/pkg/money"
)

// Account is a billed principal: an API consumer identified by an optional
// external id/email, carrying a ledger-derived USD balance. Accounts are
// inserted through AccountRepository.Create; no code path here creates
// one on demand (a balance mutation against an unknown account id fails
// with NotFound), and there is no registration/password flow.
type Account struct {
	ID         uuid.UUID `json:"id"`
	ExternalID *int64    `json:"external_id,omitempty"`
	Email      *string   `json:"email,omitempty"`
	BalanceUSD money.Amount `json:"balance_usd"`
	OptInDebug bool      `json:"opt_in_debug"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
