package dto

// TopupRequest is the request body for POST /payment/topup.
type TopupRequest struct {
	AmountUSD  string  `json:"amount_usd" binding:"required"`
	Method     string  `json:"method" binding:"required,oneof=card wallet"`
	SuccessURL *string `json:"success_url,omitempty" binding:"omitempty,safe_url"`
	CancelURL  *string `json:"cancel_url,omitempty" binding:"omitempty,safe_url"`
}

// TopupResponse is the response body for a created checkout.
type TopupResponse struct {
	PaymentID   string  `json:"payment_id"`
	CheckoutURL *string `json:"checkout_url,omitempty"`
	InvoiceBlob *string `json:"invoice_blob,omitempty"`
	ExpiresAt   *string `json:"expires_at,omitempty"`
}

// PaymentStatusResponse is the response body for GET /payment/{id}.
type PaymentStatusResponse struct {
	ID              string  `json:"id"`
	Status          string  `json:"status"`
	TransactionType string  `json:"transaction_type"`
	AmountUSD       string  `json:"amount_usd"`
	Provider        *string `json:"provider,omitempty"`
	CreatedAt       string  `json:"created_at"`
	ProcessedAt     *string `json:"processed_at,omitempty"`
}

// BalanceResponse is the response body for GET /balance.
type BalanceResponse struct {
	BalanceUSD string `json:"balance_usd"`
}

// UsageProductBreakdown is one product's contribution to a usage period.
type UsageProductBreakdown struct {
	ProductID string `json:"product_id"`
	Requests  int64  `json:"requests"`
	Units     int64  `json:"units"`
	CostUSD   string `json:"cost_usd"`
}

// UsageResponse is the response body for GET /usage?month=YYYY-MM.
type UsageResponse struct {
	Month     string                  `json:"month"`
	Requests  int64                   `json:"requests"`
	Units     int64                   `json:"units"`
	CostUSD   string                  `json:"cost_usd"`
	ByProduct []UsageProductBreakdown `json:"by_product"`
}

// CreateApiKeyRequest is the request body for POST /api_keys.
type CreateApiKeyRequest struct {
	Label  string   `json:"label" binding:"required,max=100"`
	Scopes []string `json:"scopes" binding:"required,min=1,dive,oneof=usage:write balance:read admin"`
}

// CreateApiKeyResponse returns the raw key exactly once.
type CreateApiKeyResponse struct {
	ID        string   `json:"id"`
	Prefix    string   `json:"prefix"`
	Label     string   `json:"label"`
	RawKey    string   `json:"raw_key"`
	Scopes    []string `json:"scopes"`
	CreatedAt string   `json:"created_at"`
}

// ApiKeySummary is a listed key, prefix only, never the secret.
type ApiKeySummary struct {
	ID         string   `json:"id"`
	Prefix     string   `json:"prefix"`
	Label      string   `json:"label"`
	Scopes     []string `json:"scopes"`
	Active     bool     `json:"active"`
	CreatedAt  string   `json:"created_at"`
	RevokedAt  *string  `json:"revoked_at,omitempty"`
	LastUsedAt *string  `json:"last_used_at,omitempty"`
}

// ApiKeyListResponse wraps the list of a caller's keys.
type ApiKeyListResponse struct {
	Items []ApiKeySummary `json:"items"`
}
