package provider

import (
	"context"
	"testing"

	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/internal/core/ports"
	"secure-payment-gateway/internal/core/ports/mocks"
	"secure-payment-gateway/pkg/apperror"
	"secure-payment-gateway/pkg/money"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type registryTestDeps struct {
	reg          *Registry
	provider     *mocks.MockProvider
	balanceSvc   *mocks.MockBalanceService
	pendingStore *mocks.MockPendingPaymentStore
	nonceStore   *mocks.MockNonceStore
	notifySvc    *mocks.MockNotificationService
	ctrl         *gomock.Controller
}

func setupRegistry(t *testing.T) *registryTestDeps {
	ctrl := gomock.NewController(t)
	d := &registryTestDeps{
		provider:     mocks.NewMockProvider(ctrl),
		balanceSvc:   mocks.NewMockBalanceService(ctrl),
		pendingStore: mocks.NewMockPendingPaymentStore(ctrl),
		nonceStore:   mocks.NewMockNonceStore(ctrl),
		notifySvc:    mocks.NewMockNotificationService(ctrl),
		ctrl:         ctrl,
	}
	providers := map[ports.ProviderName]ports.Provider{
		ports.ProviderCard: d.provider,
	}
	d.reg = NewRegistry(providers, d.balanceSvc, d.pendingStore, d.nonceStore, d.notifySvc, NewMetrics(prometheus.NewRegistry()), zerolog.Nop())
	return d
}

func TestRegistry_CreateCheckout_CachesPendingPayment(t *testing.T) {
	d := setupRegistry(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	amount := money.MustNewFromString("5.00000000")

	d.provider.EXPECT().CreateCheckout(ctx, gomock.Any()).Return(&ports.CheckoutResult{
		Reference: "ref-1", RedirectURL: "https://pay.example/ref-1",
	}, nil)
	d.pendingStore.EXPECT().Set(ctx, "ref-1", accountID, amount, gomock.Any()).Return(nil)

	result, err := d.reg.CreateCheckout(ctx, ports.ProviderCard, ports.CheckoutRequest{AccountID: accountID, AmountUSD: amount})
	require.NoError(t, err)
	assert.Equal(t, "ref-1", result.Reference)
}

func TestRegistry_CreateCheckout_UnknownProvider(t *testing.T) {
	d := setupRegistry(t)
	defer d.ctrl.Finish()

	_, err := d.reg.CreateCheckout(context.Background(), ports.ProviderWallet, ports.CheckoutRequest{})
	assert.Error(t, err)
}

func TestRegistry_HandleWebhook_InvalidSignature(t *testing.T) {
	d := setupRegistry(t)
	defer d.ctrl.Finish()

	d.provider.EXPECT().VerifyWebhook(gomock.Any(), gomock.Any()).Return(apperror.ErrInvalidSignature())

	_, err := d.reg.HandleWebhook(context.Background(), ports.ProviderCard, map[string]string{}, []byte("{}"))
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "INVALID_SIGNATURE", appErr.Code)
}

func TestRegistry_HandleWebhook_DuplicateEvent(t *testing.T) {
	d := setupRegistry(t)
	defer d.ctrl.Finish()

	d.provider.EXPECT().VerifyWebhook(gomock.Any(), gomock.Any()).Return(nil)
	d.provider.EXPECT().ParseEvent(gomock.Any()).Return(&ports.ProviderEvent{EventID: "evt-1", Reference: "ref-1"}, nil)
	d.nonceStore.EXPECT().CheckAndSet(gomock.Any(), "card", "evt-1", gomock.Any()).Return(false, nil)

	txn, err := d.reg.HandleWebhook(context.Background(), ports.ProviderCard, nil, []byte("{}"))
	require.NoError(t, err)
	assert.Nil(t, txn)
}

func TestRegistry_HandleWebhook_AppliesSuccessfulPayment(t *testing.T) {
	d := setupRegistry(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	amount := money.MustNewFromString("10.00000000")

	d.provider.EXPECT().VerifyWebhook(gomock.Any(), gomock.Any()).Return(nil)
	d.provider.EXPECT().ParseEvent(gomock.Any()).Return(&ports.ProviderEvent{
		EventID: "evt-2", Reference: "ref-2", AmountUSD: amount, Succeeded: true,
	}, nil)
	d.nonceStore.EXPECT().CheckAndSet(ctx, "card", "evt-2", gomock.Any()).Return(true, nil)
	d.pendingStore.EXPECT().Get(ctx, "ref-2").Return(&ports.PendingPayment{
		Reference: "ref-2", AccountID: accountID, AmountUSD: amount,
	}, nil)

	var applied ports.ApplyRequest
	d.balanceSvc.EXPECT().Apply(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, req ports.ApplyRequest) (*domain.Transaction, error) {
		applied = req
		return &domain.Transaction{ID: uuid.New(), AccountID: accountID}, nil
	})
	d.pendingStore.EXPECT().Delete(ctx, "ref-2").Return(nil)
	d.notifySvc.EXPECT().NotifyPaymentSuccess(ctx, accountID, amount)

	txn, err := d.reg.HandleWebhook(ctx, ports.ProviderCard, nil, []byte("{}"))
	require.NoError(t, err)
	require.NotNil(t, txn)
	assert.Equal(t, accountID, applied.AccountID)
	assert.Equal(t, domain.TransactionTypeTopup, applied.TransactionType)
	assert.Equal(t, "webhook:evt-2", applied.IdempotencyKey)
}

func TestRegistry_HandleWebhook_ProviderDeclined(t *testing.T) {
	d := setupRegistry(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()

	d.provider.EXPECT().VerifyWebhook(gomock.Any(), gomock.Any()).Return(nil)
	d.provider.EXPECT().ParseEvent(gomock.Any()).Return(&ports.ProviderEvent{
		EventID: "evt-3", Reference: "ref-3", Succeeded: false,
	}, nil)
	d.nonceStore.EXPECT().CheckAndSet(ctx, "card", "evt-3", gomock.Any()).Return(true, nil)
	d.pendingStore.EXPECT().Get(ctx, "ref-3").Return(&ports.PendingPayment{
		Reference: "ref-3", AccountID: accountID, AmountUSD: money.MustNewFromString("3.00000000"),
	}, nil)
	d.notifySvc.EXPECT().NotifyPaymentFailed(ctx, accountID, gomock.Any())

	txn, err := d.reg.HandleWebhook(ctx, ports.ProviderCard, nil, []byte("{}"))
	require.NoError(t, err)
	assert.Nil(t, txn)
}

func TestRegistry_HandleWebhook_IgnoredEvent(t *testing.T) {
	d := setupRegistry(t)
	defer d.ctrl.Finish()

	d.provider.EXPECT().VerifyWebhook(gomock.Any(), gomock.Any()).Return(nil)
	d.provider.EXPECT().ParseEvent(gomock.Any()).Return(nil, nil)

	txn, err := d.reg.HandleWebhook(context.Background(), ports.ProviderCard, nil, []byte("{}"))
	require.NoError(t, err)
	assert.Nil(t, txn)
}

func TestRegistry_HandleWebhook_UnknownReference(t *testing.T) {
	d := setupRegistry(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.provider.EXPECT().VerifyWebhook(gomock.Any(), gomock.Any()).Return(nil)
	d.provider.EXPECT().ParseEvent(gomock.Any()).Return(&ports.ProviderEvent{
		EventID: "evt-4", Reference: "missing-ref", Succeeded: true,
	}, nil)
	d.nonceStore.EXPECT().CheckAndSet(ctx, "card", "evt-4", gomock.Any()).Return(true, nil)
	d.pendingStore.EXPECT().Get(ctx, "missing-ref").Return(nil, nil)

	_, err := d.reg.HandleWebhook(ctx, ports.ProviderCard, nil, []byte("{}"))
	assert.Error(t, err)
}
