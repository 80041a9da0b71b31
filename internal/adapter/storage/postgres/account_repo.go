package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/pkg/money"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AccountRepo implements ports.AccountRepository.
type AccountRepo struct {
	pool Pool
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(pool Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

// Create inserts a new account with the balance given in a.BalanceUSD.
func (r *AccountRepo) Create(ctx context.Context, a *domain.Account) error {
	query := `INSERT INTO accounts (id, external_id, email, balance_usd, opt_in_debug, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query, a.ID, a.ExternalID, a.Email, a.BalanceUSD, a.OptInDebug, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID fetches an account without locking.
func (r *AccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	query := `SELECT id, external_id, email, balance_usd, opt_in_debug, created_at, updated_at
		FROM accounts WHERE id = $1`
	return r.scanAccount(r.pool.QueryRow(ctx, query, id))
}

// GetByExternalID fetches an account by its external platform id.
func (r *AccountRepo) GetByExternalID(ctx context.Context, externalID int64) (*domain.Account, error) {
	query := `SELECT id, external_id, email, balance_usd, opt_in_debug, created_at, updated_at
		FROM accounts WHERE external_id = $1`
	return r.scanAccount(r.pool.QueryRow(ctx, query, externalID))
}

// GetByIDForUpdate locks the account row within tx, the entry point for
// every balance mutation (see service.BalanceServiceImpl.Apply).
func (r *AccountRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Account, error) {
	query := `SELECT id, external_id, email, balance_usd, opt_in_debug, created_at, updated_at
		FROM accounts WHERE id = $1 FOR UPDATE`
	return r.scanAccount(tx.QueryRow(ctx, query, id))
}

// UpdateBalance writes the new balance within tx.
func (r *AccountRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, newBalance money.Amount) error {
	query := `UPDATE accounts SET balance_usd = $1, updated_at = $2 WHERE id = $3`
	tag, err := tx.Exec(ctx, query, newBalance, time.Now().UTC(), accountID)
	if err != nil {
		return fmt.Errorf("update account balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account not found: %s", accountID)
	}
	return nil
}

func (r *AccountRepo) scanAccount(row pgx.Row) (*domain.Account, error) {
	a := &domain.Account{}
	err := row.Scan(&a.ID, &a.ExternalID, &a.Email, &a.BalanceUSD, &a.OptInDebug, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan account: %w", err)
	}
	return a, nil
}
