package service

import (
	"context"
	"testing"

	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/internal/core/ports"
	"secure-payment-gateway/internal/core/ports/mocks"
	"secure-payment-gateway/pkg/money"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type usageTestDeps struct {
	svc          *UsageServiceImpl
	usageLogRepo *mocks.MockUsageLogRepository
	balanceSvc   *mocks.MockBalanceService
	productRepo  *mocks.MockProductRepository
	transactor   *mocks.MockDBTransactor
	ctrl         *gomock.Controller
}

func setupUsageService(t *testing.T) *usageTestDeps {
	ctrl := gomock.NewController(t)
	d := &usageTestDeps{
		usageLogRepo: mocks.NewMockUsageLogRepository(ctrl),
		balanceSvc:   mocks.NewMockBalanceService(ctrl),
		productRepo:  mocks.NewMockProductRepository(ctrl),
		transactor:   mocks.NewMockDBTransactor(ctrl),
		ctrl:         ctrl,
	}
	d.svc = NewUsageService(d.usageLogRepo, d.balanceSvc, d.productRepo, d.transactor, zerolog.Nop())
	return d
}

type usageMockTx struct{ pgx.Tx }

func (m *usageMockTx) Rollback(_ context.Context) error { return nil }
func (m *usageMockTx) Commit(_ context.Context) error   { return nil }

func TestUsageService_ChargeProvisional_Success(t *testing.T) {
	d := setupUsageService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	tx := &usageMockTx{}
	provisionalTxID := uuid.New()

	d.usageLogRepo.EXPECT().GetByIdempotencyKey(ctx, accountID, "call-001").Return(nil, nil)
	d.productRepo.EXPECT().GetByID(ctx, "gpt-completion").Return(&domain.Product{
		ID: "gpt-completion", PriceUSD: money.MustNewFromString("0.01000000"), Active: true,
	}, nil)
	d.balanceSvc.EXPECT().Apply(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, req ports.ApplyRequest) (*domain.Transaction, error) {
		assert.Equal(t, "-0.01000000", req.AmountUSD.String())
		assert.Equal(t, domain.TransactionTypeUsage, req.TransactionType)
		return &domain.Transaction{ID: provisionalTxID}, nil
	})
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.usageLogRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(func(_ context.Context, _ pgx.Tx, l *domain.UsageLog) error {
		assert.Equal(t, provisionalTxID, l.ProvisionalTxID)
		assert.Equal(t, domain.UsageStatusProvisional, l.Status)
		return nil
	})

	log, err := d.svc.ChargeProvisional(ctx, ports.ChargeProvisionalRequest{
		AccountID: accountID, ProductID: "gpt-completion", IdempotencyKey: "call-001",
	})
	require.NoError(t, err)
	assert.Equal(t, "0.01000000", log.EstimatedCostUSD.String())
	assert.Equal(t, int64(1), log.UnitsConsumed)
}

func TestUsageService_ChargeProvisional_MultipleUnits(t *testing.T) {
	d := setupUsageService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	tx := &usageMockTx{}
	provisionalTxID := uuid.New()

	d.usageLogRepo.EXPECT().GetByIdempotencyKey(ctx, accountID, "call-002").Return(nil, nil)
	d.productRepo.EXPECT().GetByID(ctx, "gpt-completion").Return(&domain.Product{
		ID: "gpt-completion", PriceUSD: money.MustNewFromString("0.01000000"), Active: true,
	}, nil)
	d.balanceSvc.EXPECT().Apply(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, req ports.ApplyRequest) (*domain.Transaction, error) {
		assert.Equal(t, "-0.05000000", req.AmountUSD.String())
		return &domain.Transaction{ID: provisionalTxID}, nil
	})
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.usageLogRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(func(_ context.Context, _ pgx.Tx, l *domain.UsageLog) error {
		assert.Equal(t, int64(5), l.UnitsConsumed)
		return nil
	})

	log, err := d.svc.ChargeProvisional(ctx, ports.ChargeProvisionalRequest{
		AccountID: accountID, ProductID: "gpt-completion", Units: 5, IdempotencyKey: "call-002",
	})
	require.NoError(t, err)
	assert.Equal(t, "0.05000000", log.EstimatedCostUSD.String())
}

func TestUsageService_ChargeProvisional_Idempotent(t *testing.T) {
	d := setupUsageService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	existing := &domain.UsageLog{ID: uuid.New(), AccountID: accountID, IdempotencyKey: "call-001"}

	d.usageLogRepo.EXPECT().GetByIdempotencyKey(ctx, accountID, "call-001").Return(existing, nil)

	log, err := d.svc.ChargeProvisional(ctx, ports.ChargeProvisionalRequest{
		AccountID: accountID, ProductID: "gpt-completion", IdempotencyKey: "call-001",
	})
	require.NoError(t, err)
	assert.Equal(t, existing, log)
}

func TestUsageService_ChargeProvisional_UnknownProduct(t *testing.T) {
	d := setupUsageService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()

	d.usageLogRepo.EXPECT().GetByIdempotencyKey(ctx, accountID, "call-001").Return(nil, nil)
	d.productRepo.EXPECT().GetByID(ctx, "missing").Return(nil, nil)

	_, err := d.svc.ChargeProvisional(ctx, ports.ChargeProvisionalRequest{
		AccountID: accountID, ProductID: "missing", IdempotencyKey: "call-001",
	})
	assert.Error(t, err)
}

func TestUsageService_Settle_ChargesDelta(t *testing.T) {
	d := setupUsageService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	provisionalTxID := uuid.New()
	tx := &usageMockTx{}

	usageLog := &domain.UsageLog{
		ID: uuid.New(), AccountID: accountID, ProductID: "gpt-completion", IdempotencyKey: "call-001",
		EstimatedCostUSD: money.MustNewFromString("0.01000000"),
		Status:           domain.UsageStatusProvisional,
		ProvisionalTxID:  provisionalTxID,
	}
	d.usageLogRepo.EXPECT().GetByIdempotencyKey(ctx, accountID, "call-001").Return(usageLog, nil)

	d.balanceSvc.EXPECT().Apply(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, req ports.ApplyRequest) (*domain.Transaction, error) {
		assert.Equal(t, "-0.00200000", req.AmountUSD.String())
		return &domain.Transaction{ID: uuid.New()}, nil
	})
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.usageLogRepo.EXPECT().UpdateSettlement(ctx, tx, usageLog.ID, domain.UsageStatusSettled, gomock.Any(), gomock.Any()).Return(nil)

	result, err := d.svc.Settle(ctx, ports.SettleRequest{
		AccountID: accountID, IdempotencyKey: "call-001", ActualCostUSD: money.MustNewFromString("0.01200000"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.UsageStatusSettled, result.Status)
}

func TestUsageService_Settle_NoDelta(t *testing.T) {
	d := setupUsageService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	tx := &usageMockTx{}

	usageLog := &domain.UsageLog{
		ID: uuid.New(), AccountID: accountID, IdempotencyKey: "call-001",
		EstimatedCostUSD: money.MustNewFromString("0.01000000"),
		Status:           domain.UsageStatusProvisional,
	}
	d.usageLogRepo.EXPECT().GetByIdempotencyKey(ctx, accountID, "call-001").Return(usageLog, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.usageLogRepo.EXPECT().UpdateSettlement(ctx, tx, usageLog.ID, domain.UsageStatusSettled, gomock.Any(), (*uuid.UUID)(nil)).Return(nil)

	result, err := d.svc.Settle(ctx, ports.SettleRequest{
		AccountID: accountID, IdempotencyKey: "call-001", ActualCostUSD: money.MustNewFromString("0.01000000"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.UsageStatusSettled, result.Status)
}

func TestUsageService_RefundProvisional_Success(t *testing.T) {
	d := setupUsageService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	provisionalTxID := uuid.New()
	tx := &usageMockTx{}

	usageLog := &domain.UsageLog{
		ID: uuid.New(), AccountID: accountID, ProductID: "gpt-completion", IdempotencyKey: "call-001",
		EstimatedCostUSD: money.MustNewFromString("0.01000000"),
		Status:           domain.UsageStatusProvisional,
		ProvisionalTxID:  provisionalTxID,
	}
	d.usageLogRepo.EXPECT().GetByIdempotencyKey(ctx, accountID, "call-001").Return(usageLog, nil)
	d.balanceSvc.EXPECT().Apply(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, req ports.ApplyRequest) (*domain.Transaction, error) {
		assert.Equal(t, "0.01000000", req.AmountUSD.String())
		assert.Equal(t, domain.TransactionTypeRefund, req.TransactionType)
		return &domain.Transaction{ID: uuid.New()}, nil
	})
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.usageLogRepo.EXPECT().UpdateSettlement(ctx, tx, usageLog.ID, domain.UsageStatusRefunded, gomock.Any(), gomock.Any()).Return(nil)

	result, err := d.svc.RefundProvisional(ctx, ports.RefundProvisionalRequest{
		AccountID: accountID, IdempotencyKey: "call-001",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.UsageStatusRefunded, result.Status)
}

func TestUsageService_RefundProvisional_AlreadySettled(t *testing.T) {
	d := setupUsageService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()

	usageLog := &domain.UsageLog{
		ID: uuid.New(), AccountID: accountID, IdempotencyKey: "call-001",
		Status: domain.UsageStatusSettled,
	}
	d.usageLogRepo.EXPECT().GetByIdempotencyKey(ctx, accountID, "call-001").Return(usageLog, nil)

	result, err := d.svc.RefundProvisional(ctx, ports.RefundProvisionalRequest{
		AccountID: accountID, IdempotencyKey: "call-001",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.UsageStatusSettled, result.Status)
}
