package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/internal/core/ports"
	"secure-payment-gateway/pkg/money"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UsageLogRepo implements ports.UsageLogRepository.
type UsageLogRepo struct {
	pool Pool
}

// NewUsageLogRepo creates a new UsageLogRepo.
func NewUsageLogRepo(pool Pool) *UsageLogRepo {
	return &UsageLogRepo{pool: pool}
}

// Create inserts a provisional usage log within a database transaction.
func (r *UsageLogRepo) Create(ctx context.Context, tx pgx.Tx, l *domain.UsageLog) error {
	query := `INSERT INTO usage_logs (id, account_id, product_id, idempotency_key, units_consumed, estimated_cost_usd,
		actual_cost_usd, status, provisional_tx_id, settlement_tx_id, details, created_at, settled_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := tx.Exec(ctx, query,
		l.ID, l.AccountID, l.ProductID, l.IdempotencyKey, l.UnitsConsumed, l.EstimatedCostUSD,
		l.ActualCostUSD, l.Status, l.ProvisionalTxID, l.SettlementTxID, l.Details, l.CreatedAt, l.SettledAt,
	)
	if err != nil {
		return fmt.Errorf("insert usage log: %w", err)
	}
	return nil
}

// GetByIdempotencyKey fetches a usage log scoped to an account and caller key.
func (r *UsageLogRepo) GetByIdempotencyKey(ctx context.Context, accountID uuid.UUID, key string) (*domain.UsageLog, error) {
	query := `SELECT id, account_id, product_id, idempotency_key, units_consumed, estimated_cost_usd, actual_cost_usd,
		status, provisional_tx_id, settlement_tx_id, details, created_at, settled_at
		FROM usage_logs WHERE account_id = $1 AND idempotency_key = $2`
	return r.scan(r.pool.QueryRow(ctx, query, accountID, key))
}

// UpdateSettlement transitions a usage log from PROVISIONAL to SETTLED or
// REFUNDED, recording the actual cost and the settlement transaction.
func (r *UsageLogRepo) UpdateSettlement(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.UsageStatus, actualCost money.Amount, settlementTxID *uuid.UUID) error {
	now := time.Now().UTC()
	query := `UPDATE usage_logs SET status = $1, actual_cost_usd = $2, settlement_tx_id = $3, settled_at = $4 WHERE id = $5`

	tag, err := tx.Exec(ctx, query, status, actualCost, settlementTxID, now, id)
	if err != nil {
		return fmt.Errorf("update usage settlement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("usage log not found: %s", id)
	}
	return nil
}

// GetMonthlyStats aggregates billed (non-refunded) usage for an account
// over [monthStart, monthEnd), broken down per product. Cost per row
// falls back to the estimated cost until a row has settled.
func (r *UsageLogRepo) GetMonthlyStats(ctx context.Context, accountID uuid.UUID, monthStart, monthEnd time.Time) (*ports.UsageMonthlyStats, error) {
	query := `SELECT product_id, COUNT(*), COALESCE(SUM(units_consumed), 0), COALESCE(SUM(COALESCE(actual_cost_usd, estimated_cost_usd)), 0)
		FROM usage_logs
		WHERE account_id = $1 AND created_at >= $2 AND created_at < $3 AND status != $4
		GROUP BY product_id ORDER BY product_id`

	rows, err := r.pool.Query(ctx, query, accountID, monthStart, monthEnd, domain.UsageStatusRefunded)
	if err != nil {
		return nil, fmt.Errorf("query usage monthly stats: %w", err)
	}
	defer rows.Close()

	stats := &ports.UsageMonthlyStats{CostUSD: money.Zero}
	for rows.Next() {
		var p ports.UsageProductStat
		if err := rows.Scan(&p.ProductID, &p.Requests, &p.Units, &p.CostUSD); err != nil {
			return nil, fmt.Errorf("scan usage monthly stat: %w", err)
		}
		stats.ByProduct = append(stats.ByProduct, p)
		stats.Requests += p.Requests
		stats.Units += p.Units
		stats.CostUSD = stats.CostUSD.Add(p.CostUSD)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate usage monthly stats: %w", err)
	}
	return stats, nil
}

func (r *UsageLogRepo) scan(row pgx.Row) (*domain.UsageLog, error) {
	l := &domain.UsageLog{}
	err := row.Scan(
		&l.ID, &l.AccountID, &l.ProductID, &l.IdempotencyKey, &l.UnitsConsumed, &l.EstimatedCostUSD, &l.ActualCostUSD,
		&l.Status, &l.ProvisionalTxID, &l.SettlementTxID, &l.Details, &l.CreatedAt, &l.SettledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan usage log: %w", err)
	}
	return l, nil
}
