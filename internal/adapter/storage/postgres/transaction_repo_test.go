package postgres

import (
	"context"
	"testing"
	"time"

	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/internal/core/ports"
	"secure-payment-gateway/pkg/money"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTransaction(accountID uuid.UUID) *domain.Transaction {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Transaction{
		ID:              uuid.New(),
		AccountID:       accountID,
		IdempotencyKey:  accountID.String() + ":ORDER-001",
		AmountUSD:       money.MustNewFromString("10.00000000"),
		BalanceBefore:   money.MustNewFromString("0.00000000"),
		BalanceAfter:    money.MustNewFromString("10.00000000"),
		TransactionType: domain.TransactionTypeTopup,
		Status:          domain.TransactionStatusSuccess,
		CreatedAt:       now,
		ProcessedAt:     &now,
	}
}

func txColumns() []string {
	return []string{"id", "account_id", "idempotency_key", "amount_usd", "balance_before", "balance_after",
		"transaction_type", "status", "provider", "provider_ref", "product_id", "original_transaction_id",
		"metadata", "created_at", "processed_at"}
}

func txRow(t *domain.Transaction) *pgxmock.Rows {
	return pgxmock.NewRows(txColumns()).AddRow(
		t.ID, t.AccountID, t.IdempotencyKey, t.AmountUSD.String(), t.BalanceBefore.String(), t.BalanceAfter.String(),
		t.TransactionType, t.Status, t.Provider, t.ProviderRef, t.ProductID, t.OriginalTransactionID,
		t.Metadata, t.CreatedAt, t.ProcessedAt,
	)
}

func TestTransactionRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestTransaction(uuid.New())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO transactions").
		WithArgs(
			txn.ID, txn.AccountID, txn.IdempotencyKey, txn.AmountUSD, txn.BalanceBefore, txn.BalanceAfter,
			txn.TransactionType, txn.Status, txn.Provider, txn.ProviderRef, txn.ProductID,
			txn.OriginalTransactionID, txn.Metadata, txn.CreatedAt, txn.ProcessedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), dbTx, txn)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestTransaction(uuid.New())

	mock.ExpectQuery("SELECT .+ FROM transactions WHERE id").
		WithArgs(txn.ID).
		WillReturnRows(txRow(txn))

	result, err := repo.GetByID(context.Background(), txn.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, txn.ID, result.ID)
	assert.Equal(t, txn.AmountUSD.String(), result.AmountUSD.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM transactions WHERE id").
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(txColumns()))

	result, err := repo.GetByID(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_GetByIdempotencyKey(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestTransaction(uuid.New())

	mock.ExpectQuery("SELECT .+ FROM transactions WHERE idempotency_key").
		WithArgs(txn.IdempotencyKey).
		WillReturnRows(txRow(txn))

	result, err := repo.GetByIdempotencyKey(context.Background(), txn.IdempotencyKey)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, txn.IdempotencyKey, result.IdempotencyKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_UpdateStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE transactions SET status").
		WithArgs(domain.TransactionStatusSuccess, pgxmock.AnyArg(), txID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpdateStatus(context.Background(), dbTx, txID, domain.TransactionStatusSuccess)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_CheckRefundExists(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	origID := uuid.New()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(origID).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.CheckRefundExists(context.Background(), origID)
	assert.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_CheckRefundExists_True(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	origID := uuid.New()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(origID).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.CheckRefundExists(context.Background(), origID)
	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_GetStats(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	accountID := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM transactions WHERE account_id").
		WithArgs(accountID).
		WillReturnRows(pgxmock.NewRows(
			[]string{"total", "successful", "failed", "reversed", "topup", "usage", "refunded"},
		).AddRow(int64(100), int64(80), int64(15), int64(5), "50.00000000", "12.50000000", "2.00000000"))

	stats, err := repo.GetStats(context.Background(), accountID, nil)
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, int64(100), stats.TotalTransactions)
	assert.Equal(t, int64(80), stats.Successful)
	assert.Equal(t, int64(15), stats.Failed)
	assert.Equal(t, int64(5), stats.Reversed)
	assert.Equal(t, "50.00000000", stats.TotalTopup.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_Create_DuplicateIdempotencyKey(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestTransaction(uuid.New())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO transactions").
		WithArgs(
			txn.ID, txn.AccountID, txn.IdempotencyKey, txn.AmountUSD, txn.BalanceBefore, txn.BalanceAfter,
			txn.TransactionType, txn.Status, txn.Provider, txn.ProviderRef, txn.ProductID,
			txn.OriginalTransactionID, txn.Metadata, txn.CreatedAt, txn.ProcessedAt,
		).
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "transactions_idempotency_key_key"})

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), dbTx, txn)
	assert.ErrorIs(t, err, ports.ErrDuplicateKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}
