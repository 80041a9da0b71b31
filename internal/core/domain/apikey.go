package domain

import (
	"time"

	"github.com/google/uuid"
)

// ApiKeyScope is a capability an API key may be granted.
type ApiKeyScope string

const (
	ScopeUsageWrite  ApiKeyScope = "usage:write"
	ScopeBalanceRead ApiKeyScope = "balance:read"
	ScopeAdmin       ApiKeyScope = "admin"
)

// ApiKey is a credential bound to an Account. Only Prefix and SecretHash
// are persisted; the raw secret is returned to the caller exactly once,
// at creation time, and never stored.
type ApiKey struct {
	ID         uuid.UUID     `json:"id"`
	AccountID  uuid.UUID     `json:"account_id"`
	Prefix     string        `json:"prefix"`
	SecretHash string        `json:"-"`
	Label      string        `json:"label"`
	Scopes     []ApiKeyScope `json:"scopes"`
	Active     bool          `json:"active"`
	CreatedAt  time.Time     `json:"created_at"`
	RevokedAt  *time.Time    `json:"revoked_at,omitempty"`
	LastUsedAt *time.Time    `json:"last_used_at,omitempty"`
}

// HasScope reports whether the key carries the given scope.
func (k *ApiKey) HasScope(s ApiKeyScope) bool {
	for _, sc := range k.Scopes {
		if sc == s {
			return true
		}
	}
	return false
}
