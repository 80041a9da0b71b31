package domain

import (
	"time"

	"secure-payment-gateway/pkg/money"
)

// Product is a billable unit of API consumption with a per-unit USD price.
type Product struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	PriceUSD  money.Amount `json:"price_usd"`
	Active    bool         `json:"active"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
