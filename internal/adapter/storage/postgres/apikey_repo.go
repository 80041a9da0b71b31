package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"secure-payment-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ApiKeyRepo implements ports.ApiKeyRepository.
type ApiKeyRepo struct {
	pool Pool
}

// NewApiKeyRepo creates a new ApiKeyRepo.
func NewApiKeyRepo(pool Pool) *ApiKeyRepo {
	return &ApiKeyRepo{pool: pool}
}

// Create inserts a new API key record. The raw secret never reaches this
// layer; only its prefix and hash do.
func (r *ApiKeyRepo) Create(ctx context.Context, key *domain.ApiKey) error {
	query := `INSERT INTO api_keys (id, account_id, prefix, secret_hash, label, scopes, active, created_at, revoked_at, last_used_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		key.ID, key.AccountID, key.Prefix, key.SecretHash, key.Label, scopesToStrings(key.Scopes),
		key.Active, key.CreatedAt, key.RevokedAt, key.LastUsedAt,
	)
	if err != nil {
		return fmt.Errorf("insert api key: %w", err)
	}
	return nil
}

// GetByPrefix fetches an API key by its public prefix, the first stage of
// verification before the secret hash comparison.
func (r *ApiKeyRepo) GetByPrefix(ctx context.Context, prefix string) (*domain.ApiKey, error) {
	query := `SELECT id, account_id, prefix, secret_hash, label, scopes, active, created_at, revoked_at, last_used_at
		FROM api_keys WHERE prefix = $1`
	return r.scan(r.pool.QueryRow(ctx, query, prefix))
}

// ListByAccount returns every API key, active or revoked, owned by an account.
func (r *ApiKeyRepo) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.ApiKey, error) {
	query := `SELECT id, account_id, prefix, secret_hash, label, scopes, active, created_at, revoked_at, last_used_at
		FROM api_keys WHERE account_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("list api keys: %w", err)
	}
	defer rows.Close()

	var keys []domain.ApiKey
	for rows.Next() {
		var k domain.ApiKey
		var scopes []string
		if err := rows.Scan(&k.ID, &k.AccountID, &k.Prefix, &k.SecretHash, &k.Label, &scopes, &k.Active, &k.CreatedAt, &k.RevokedAt, &k.LastUsedAt); err != nil {
			return nil, fmt.Errorf("scan api key row: %w", err)
		}
		k.Scopes = stringsToScopes(scopes)
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate api key rows: %w", err)
	}
	return keys, nil
}

// Revoke marks an API key inactive and stamps the revocation time.
func (r *ApiKeyRepo) Revoke(ctx context.Context, id uuid.UUID) error {
	now := time.Now().UTC()
	query := `UPDATE api_keys SET active = false, revoked_at = $1 WHERE id = $2`
	tag, err := r.pool.Exec(ctx, query, now, id)
	if err != nil {
		return fmt.Errorf("revoke api key: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("api key not found: %s", id)
	}
	return nil
}

// TouchLastUsed stamps last_used_at on a successful verification.
func (r *ApiKeyRepo) TouchLastUsed(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `UPDATE api_keys SET last_used_at = $1 WHERE id = $2`
	if _, err := r.pool.Exec(ctx, query, at, id); err != nil {
		return fmt.Errorf("touch api key last_used_at: %w", err)
	}
	return nil
}

func (r *ApiKeyRepo) scan(row pgx.Row) (*domain.ApiKey, error) {
	k := &domain.ApiKey{}
	var scopes []string
	err := row.Scan(&k.ID, &k.AccountID, &k.Prefix, &k.SecretHash, &k.Label, &scopes, &k.Active, &k.CreatedAt, &k.RevokedAt, &k.LastUsedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan api key: %w", err)
	}
	k.Scopes = stringsToScopes(scopes)
	return k, nil
}

func scopesToStrings(scopes []domain.ApiKeyScope) []string {
	out := make([]string, len(scopes))
	for i, s := range scopes {
		out[i] = string(s)
	}
	return out
}

func stringsToScopes(ss []string) []domain.ApiKeyScope {
	out := make([]domain.ApiKeyScope, len(ss))
	for i, s := range ss {
		out[i] = domain.ApiKeyScope(s)
	}
	return out
}
