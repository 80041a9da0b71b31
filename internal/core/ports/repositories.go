package ports

import (
	"context"
	"errors"
	"time"

	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/pkg/money"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrDuplicateKey is returned by TransactionRepository.Create when the
// unique index on (idempotency_key) rejects a second insert. Services
// translate it into apperror.ErrDuplicatePayment.
var ErrDuplicateKey = errors.New("ledger: duplicate idempotency key")

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByExternalID(ctx context.Context, externalID int64) (*domain.Account, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Account, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, newBalance money.Amount) error
}

// TransactionRepository defines persistence operations for ledger transactions.
type TransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, transaction *domain.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*domain.Transaction, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.TransactionStatus) error
	CheckRefundExists(ctx context.Context, originalTxID uuid.UUID) (bool, error)
	List(ctx context.Context, params TransactionListParams) ([]domain.Transaction, int64, error)
	GetStats(ctx context.Context, accountID uuid.UUID, periodStart *int64) (*TransactionStats, error)
}

// TransactionListParams holds filter + pagination for listing transactions.
type TransactionListParams struct {
	AccountID uuid.UUID
	Status    *domain.TransactionStatus
	Type      *domain.TransactionType
	From      *int64 // Unix timestamp
	To        *int64 // Unix timestamp
	Page      int
	PageSize  int
}

// TransactionStats holds aggregated ledger statistics for an account.
type TransactionStats struct {
	TotalTransactions int64
	Successful        int64
	Failed            int64
	Reversed          int64
	TotalTopup        money.Amount
	TotalUsage        money.Amount
	TotalRefunded     money.Amount
}

// IdempotencyRepository defines persistence for idempotency logs (DB backup
// of authority; the Redis cache in front of this is best-effort only).
type IdempotencyRepository interface {
	Create(ctx context.Context, tx pgx.Tx, log *domain.IdempotencyLog) error
	Get(ctx context.Context, key string) (*domain.IdempotencyLog, error)
}

// UsageLogRepository defines persistence for metered-usage records.
type UsageLogRepository interface {
	Create(ctx context.Context, tx pgx.Tx, log *domain.UsageLog) error
	GetByIdempotencyKey(ctx context.Context, accountID uuid.UUID, key string) (*domain.UsageLog, error)
	UpdateSettlement(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.UsageStatus, actualCost money.Amount, settlementTxID *uuid.UUID) error
	GetMonthlyStats(ctx context.Context, accountID uuid.UUID, monthStart, monthEnd time.Time) (*UsageMonthlyStats, error)
}

// UsageMonthlyStats aggregates billed usage for one account over one
// calendar month, broken down per product.
type UsageMonthlyStats struct {
	Requests  int64
	Units     int64
	CostUSD   money.Amount
	ByProduct []UsageProductStat
}

// UsageProductStat is one product's contribution to UsageMonthlyStats.
type UsageProductStat struct {
	ProductID string
	Requests  int64
	Units     int64
	CostUSD   money.Amount
}

// ProductRepository defines persistence for billable products.
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
}

// ApiKeyRepository defines persistence for API credentials.
type ApiKeyRepository interface {
	Create(ctx context.Context, key *domain.ApiKey) error
	GetByPrefix(ctx context.Context, prefix string) (*domain.ApiKey, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.ApiKey, error)
	Revoke(ctx context.Context, id uuid.UUID) error
	// TouchLastUsed stamps last_used_at on a successful verification.
	// Best-effort: callers log failures rather than fail the request.
	TouchLastUsed(ctx context.Context, id uuid.UUID, at time.Time) error
}

// AuditRepository defines persistence for the audit trail.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// NotificationRepository defines persistence for the notification delivery log.
type NotificationRepository interface {
	Create(ctx context.Context, log *domain.NotificationDeliveryLog) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
