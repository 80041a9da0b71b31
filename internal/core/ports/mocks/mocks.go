// Package mocks contains gomock-style mocks for internal/core/ports.
// Normally produced by `mockgen -source=ports/services.go` and friends;
// hand-written here because no go:generate wiring shipped with the
// interfaces this was modeled on, and the toolchain that would run
// mockgen is off the table for this change.
package mocks

import (
	"context"
	"reflect"
	"time"

	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/internal/core/ports"
	"secure-payment-gateway/pkg/money"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/mock/gomock"
)

// ---- HMACService ----

type MockHMACService struct {
	ctrl     *gomock.Controller
	recorder *MockHMACServiceMockRecorder
}

type MockHMACServiceMockRecorder struct {
	mock *MockHMACService
}

func NewMockHMACService(ctrl *gomock.Controller) *MockHMACService {
	mock := &MockHMACService{ctrl: ctrl}
	mock.recorder = &MockHMACServiceMockRecorder{mock}
	return mock
}

func (m *MockHMACService) EXPECT() *MockHMACServiceMockRecorder {
	return m.recorder
}

func (m *MockHMACService) Sign(secret string, payload string) string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Sign", secret, payload)
	ret0, _ := ret[0].(string)
	return ret0
}

func (mr *MockHMACServiceMockRecorder) Sign(secret, payload interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Sign", reflect.TypeOf((*MockHMACService)(nil).Sign), secret, payload)
}

func (m *MockHMACService) Verify(secret string, payload string, signature string) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Verify", secret, payload, signature)
	ret0, _ := ret[0].(bool)
	return ret0
}

func (mr *MockHMACServiceMockRecorder) Verify(secret, payload, signature interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Verify", reflect.TypeOf((*MockHMACService)(nil).Verify), secret, payload, signature)
}

// ---- IdempotencyCache ----

type MockIdempotencyCache struct {
	ctrl     *gomock.Controller
	recorder *MockIdempotencyCacheMockRecorder
}

type MockIdempotencyCacheMockRecorder struct {
	mock *MockIdempotencyCache
}

func NewMockIdempotencyCache(ctrl *gomock.Controller) *MockIdempotencyCache {
	mock := &MockIdempotencyCache{ctrl: ctrl}
	mock.recorder = &MockIdempotencyCacheMockRecorder{mock}
	return mock
}

func (m *MockIdempotencyCache) EXPECT() *MockIdempotencyCacheMockRecorder {
	return m.recorder
}

func (m *MockIdempotencyCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, key)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockIdempotencyCacheMockRecorder) Get(ctx, key interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockIdempotencyCache)(nil).Get), ctx, key)
}

func (m *MockIdempotencyCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Set", ctx, key, value, ttl)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockIdempotencyCacheMockRecorder) Set(ctx, key, value, ttl interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Set", reflect.TypeOf((*MockIdempotencyCache)(nil).Set), ctx, key, value, ttl)
}

// ---- NonceStore ----

type MockNonceStore struct {
	ctrl     *gomock.Controller
	recorder *MockNonceStoreMockRecorder
}

type MockNonceStoreMockRecorder struct {
	mock *MockNonceStore
}

func NewMockNonceStore(ctrl *gomock.Controller) *MockNonceStore {
	mock := &MockNonceStore{ctrl: ctrl}
	mock.recorder = &MockNonceStoreMockRecorder{mock}
	return mock
}

func (m *MockNonceStore) EXPECT() *MockNonceStoreMockRecorder {
	return m.recorder
}

func (m *MockNonceStore) CheckAndSet(ctx context.Context, scope string, eventID string, ttl time.Duration) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CheckAndSet", ctx, scope, eventID, ttl)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockNonceStoreMockRecorder) CheckAndSet(ctx, scope, eventID, ttl interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CheckAndSet", reflect.TypeOf((*MockNonceStore)(nil).CheckAndSet), ctx, scope, eventID, ttl)
}

// ---- RateLimitStore ----

type MockRateLimitStore struct {
	ctrl     *gomock.Controller
	recorder *MockRateLimitStoreMockRecorder
}

type MockRateLimitStoreMockRecorder struct {
	mock *MockRateLimitStore
}

func NewMockRateLimitStore(ctrl *gomock.Controller) *MockRateLimitStore {
	mock := &MockRateLimitStore{ctrl: ctrl}
	mock.recorder = &MockRateLimitStoreMockRecorder{mock}
	return mock
}

func (m *MockRateLimitStore) EXPECT() *MockRateLimitStoreMockRecorder {
	return m.recorder
}

func (m *MockRateLimitStore) Allow(ctx context.Context, key string, limit int64, window time.Duration) (*ports.RateLimitResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Allow", ctx, key, limit, window)
	ret0, _ := ret[0].(*ports.RateLimitResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockRateLimitStoreMockRecorder) Allow(ctx, key, limit, window interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Allow", reflect.TypeOf((*MockRateLimitStore)(nil).Allow), ctx, key, limit, window)
}

// ---- PendingPaymentStore ----

type MockPendingPaymentStore struct {
	ctrl     *gomock.Controller
	recorder *MockPendingPaymentStoreMockRecorder
}

type MockPendingPaymentStoreMockRecorder struct {
	mock *MockPendingPaymentStore
}

func NewMockPendingPaymentStore(ctrl *gomock.Controller) *MockPendingPaymentStore {
	mock := &MockPendingPaymentStore{ctrl: ctrl}
	mock.recorder = &MockPendingPaymentStoreMockRecorder{mock}
	return mock
}

func (m *MockPendingPaymentStore) EXPECT() *MockPendingPaymentStoreMockRecorder {
	return m.recorder
}

func (m *MockPendingPaymentStore) Set(ctx context.Context, reference string, accountID uuid.UUID, amount money.Amount, ttl time.Duration) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Set", ctx, reference, accountID, amount, ttl)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockPendingPaymentStoreMockRecorder) Set(ctx, reference, accountID, amount, ttl interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Set", reflect.TypeOf((*MockPendingPaymentStore)(nil).Set), ctx, reference, accountID, amount, ttl)
}

func (m *MockPendingPaymentStore) Get(ctx context.Context, reference string) (*ports.PendingPayment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, reference)
	ret0, _ := ret[0].(*ports.PendingPayment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockPendingPaymentStoreMockRecorder) Get(ctx, reference interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockPendingPaymentStore)(nil).Get), ctx, reference)
}

func (m *MockPendingPaymentStore) Delete(ctx context.Context, reference string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, reference)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockPendingPaymentStoreMockRecorder) Delete(ctx, reference interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockPendingPaymentStore)(nil).Delete), ctx, reference)
}

// ---- BalanceService ----

type MockBalanceService struct {
	ctrl     *gomock.Controller
	recorder *MockBalanceServiceMockRecorder
}

type MockBalanceServiceMockRecorder struct {
	mock *MockBalanceService
}

func NewMockBalanceService(ctrl *gomock.Controller) *MockBalanceService {
	mock := &MockBalanceService{ctrl: ctrl}
	mock.recorder = &MockBalanceServiceMockRecorder{mock}
	return mock
}

func (m *MockBalanceService) EXPECT() *MockBalanceServiceMockRecorder {
	return m.recorder
}

func (m *MockBalanceService) Apply(ctx context.Context, req ports.ApplyRequest) (*domain.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Apply", ctx, req)
	ret0, _ := ret[0].(*domain.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockBalanceServiceMockRecorder) Apply(ctx, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Apply", reflect.TypeOf((*MockBalanceService)(nil).Apply), ctx, req)
}

func (m *MockBalanceService) GetBalance(ctx context.Context, accountID uuid.UUID) (money.Amount, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBalance", ctx, accountID)
	ret0, _ := ret[0].(money.Amount)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockBalanceServiceMockRecorder) GetBalance(ctx, accountID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBalance", reflect.TypeOf((*MockBalanceService)(nil).GetBalance), ctx, accountID)
}

// ---- Provider ----

type MockProvider struct {
	ctrl     *gomock.Controller
	recorder *MockProviderMockRecorder
}

type MockProviderMockRecorder struct {
	mock *MockProvider
}

func NewMockProvider(ctrl *gomock.Controller) *MockProvider {
	mock := &MockProvider{ctrl: ctrl}
	mock.recorder = &MockProviderMockRecorder{mock}
	return mock
}

func (m *MockProvider) EXPECT() *MockProviderMockRecorder {
	return m.recorder
}

func (m *MockProvider) Name() ports.ProviderName {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Name")
	ret0, _ := ret[0].(ports.ProviderName)
	return ret0
}

func (mr *MockProviderMockRecorder) Name() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Name", reflect.TypeOf((*MockProvider)(nil).Name))
}

func (m *MockProvider) CreateCheckout(ctx context.Context, req ports.CheckoutRequest) (*ports.CheckoutResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateCheckout", ctx, req)
	ret0, _ := ret[0].(*ports.CheckoutResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockProviderMockRecorder) CreateCheckout(ctx, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateCheckout", reflect.TypeOf((*MockProvider)(nil).CreateCheckout), ctx, req)
}

func (m *MockProvider) VerifyWebhook(headers map[string]string, rawBody []byte) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "VerifyWebhook", headers, rawBody)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockProviderMockRecorder) VerifyWebhook(headers, rawBody interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "VerifyWebhook", reflect.TypeOf((*MockProvider)(nil).VerifyWebhook), headers, rawBody)
}

func (m *MockProvider) ParseEvent(rawBody []byte) (*ports.ProviderEvent, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ParseEvent", rawBody)
	ret0, _ := ret[0].(*ports.ProviderEvent)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockProviderMockRecorder) ParseEvent(rawBody interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ParseEvent", reflect.TypeOf((*MockProvider)(nil).ParseEvent), rawBody)
}

// ---- Orchestrator ----

type MockOrchestrator struct {
	ctrl     *gomock.Controller
	recorder *MockOrchestratorMockRecorder
}

type MockOrchestratorMockRecorder struct {
	mock *MockOrchestrator
}

func NewMockOrchestrator(ctrl *gomock.Controller) *MockOrchestrator {
	mock := &MockOrchestrator{ctrl: ctrl}
	mock.recorder = &MockOrchestratorMockRecorder{mock}
	return mock
}

func (m *MockOrchestrator) EXPECT() *MockOrchestratorMockRecorder {
	return m.recorder
}

func (m *MockOrchestrator) CreateCheckout(ctx context.Context, provider ports.ProviderName, req ports.CheckoutRequest) (*ports.CheckoutResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateCheckout", ctx, provider, req)
	ret0, _ := ret[0].(*ports.CheckoutResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockOrchestratorMockRecorder) CreateCheckout(ctx, provider, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateCheckout", reflect.TypeOf((*MockOrchestrator)(nil).CreateCheckout), ctx, provider, req)
}

func (m *MockOrchestrator) HandleWebhook(ctx context.Context, provider ports.ProviderName, headers map[string]string, rawBody []byte) (*domain.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HandleWebhook", ctx, provider, headers, rawBody)
	ret0, _ := ret[0].(*domain.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockOrchestratorMockRecorder) HandleWebhook(ctx, provider, headers, rawBody interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HandleWebhook", reflect.TypeOf((*MockOrchestrator)(nil).HandleWebhook), ctx, provider, headers, rawBody)
}

// ---- UsageService ----

type MockUsageService struct {
	ctrl     *gomock.Controller
	recorder *MockUsageServiceMockRecorder
}

type MockUsageServiceMockRecorder struct {
	mock *MockUsageService
}

func NewMockUsageService(ctrl *gomock.Controller) *MockUsageService {
	mock := &MockUsageService{ctrl: ctrl}
	mock.recorder = &MockUsageServiceMockRecorder{mock}
	return mock
}

func (m *MockUsageService) EXPECT() *MockUsageServiceMockRecorder {
	return m.recorder
}

func (m *MockUsageService) ChargeProvisional(ctx context.Context, req ports.ChargeProvisionalRequest) (*domain.UsageLog, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ChargeProvisional", ctx, req)
	ret0, _ := ret[0].(*domain.UsageLog)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockUsageServiceMockRecorder) ChargeProvisional(ctx, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ChargeProvisional", reflect.TypeOf((*MockUsageService)(nil).ChargeProvisional), ctx, req)
}

func (m *MockUsageService) Settle(ctx context.Context, req ports.SettleRequest) (*domain.UsageLog, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Settle", ctx, req)
	ret0, _ := ret[0].(*domain.UsageLog)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockUsageServiceMockRecorder) Settle(ctx, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Settle", reflect.TypeOf((*MockUsageService)(nil).Settle), ctx, req)
}

func (m *MockUsageService) RefundProvisional(ctx context.Context, req ports.RefundProvisionalRequest) (*domain.UsageLog, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RefundProvisional", ctx, req)
	ret0, _ := ret[0].(*domain.UsageLog)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockUsageServiceMockRecorder) RefundProvisional(ctx, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RefundProvisional", reflect.TypeOf((*MockUsageService)(nil).RefundProvisional), ctx, req)
}

// ---- CredentialService ----

type MockCredentialService struct {
	ctrl     *gomock.Controller
	recorder *MockCredentialServiceMockRecorder
}

type MockCredentialServiceMockRecorder struct {
	mock *MockCredentialService
}

func NewMockCredentialService(ctrl *gomock.Controller) *MockCredentialService {
	mock := &MockCredentialService{ctrl: ctrl}
	mock.recorder = &MockCredentialServiceMockRecorder{mock}
	return mock
}

func (m *MockCredentialService) EXPECT() *MockCredentialServiceMockRecorder {
	return m.recorder
}

func (m *MockCredentialService) CreateKey(ctx context.Context, accountID uuid.UUID, label string, scopes []domain.ApiKeyScope) (string, *domain.ApiKey, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateKey", ctx, accountID, label, scopes)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(*domain.ApiKey)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

func (mr *MockCredentialServiceMockRecorder) CreateKey(ctx, accountID, label, scopes interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateKey", reflect.TypeOf((*MockCredentialService)(nil).CreateKey), ctx, accountID, label, scopes)
}

func (m *MockCredentialService) VerifyKey(ctx context.Context, rawKey string, clientIP string) (*domain.ApiKey, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "VerifyKey", ctx, rawKey, clientIP)
	ret0, _ := ret[0].(*domain.ApiKey)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockCredentialServiceMockRecorder) VerifyKey(ctx, rawKey, clientIP interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "VerifyKey", reflect.TypeOf((*MockCredentialService)(nil).VerifyKey), ctx, rawKey, clientIP)
}

func (m *MockCredentialService) RevokeKey(ctx context.Context, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RevokeKey", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockCredentialServiceMockRecorder) RevokeKey(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RevokeKey", reflect.TypeOf((*MockCredentialService)(nil).RevokeKey), ctx, id)
}

func (m *MockCredentialService) ListKeys(ctx context.Context, accountID uuid.UUID) ([]domain.ApiKey, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListKeys", ctx, accountID)
	ret0, _ := ret[0].([]domain.ApiKey)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockCredentialServiceMockRecorder) ListKeys(ctx, accountID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListKeys", reflect.TypeOf((*MockCredentialService)(nil).ListKeys), ctx, accountID)
}

// ---- NotificationService ----

type MockNotificationService struct {
	ctrl     *gomock.Controller
	recorder *MockNotificationServiceMockRecorder
}

type MockNotificationServiceMockRecorder struct {
	mock *MockNotificationService
}

func NewMockNotificationService(ctrl *gomock.Controller) *MockNotificationService {
	mock := &MockNotificationService{ctrl: ctrl}
	mock.recorder = &MockNotificationServiceMockRecorder{mock}
	return mock
}

func (m *MockNotificationService) EXPECT() *MockNotificationServiceMockRecorder {
	return m.recorder
}

func (m *MockNotificationService) NotifyPaymentSuccess(ctx context.Context, accountID uuid.UUID, amount money.Amount) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "NotifyPaymentSuccess", ctx, accountID, amount)
}

func (mr *MockNotificationServiceMockRecorder) NotifyPaymentSuccess(ctx, accountID, amount interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NotifyPaymentSuccess", reflect.TypeOf((*MockNotificationService)(nil).NotifyPaymentSuccess), ctx, accountID, amount)
}

func (m *MockNotificationService) NotifyPaymentFailed(ctx context.Context, accountID uuid.UUID, reason string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "NotifyPaymentFailed", ctx, accountID, reason)
}

func (mr *MockNotificationServiceMockRecorder) NotifyPaymentFailed(ctx, accountID, reason interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NotifyPaymentFailed", reflect.TypeOf((*MockNotificationService)(nil).NotifyPaymentFailed), ctx, accountID, reason)
}

func (m *MockNotificationService) NotifyLowBalance(ctx context.Context, accountID uuid.UUID, balance money.Amount) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "NotifyLowBalance", ctx, accountID, balance)
}

func (mr *MockNotificationServiceMockRecorder) NotifyLowBalance(ctx, accountID, balance interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NotifyLowBalance", reflect.TypeOf((*MockNotificationService)(nil).NotifyLowBalance), ctx, accountID, balance)
}

// ---- AuditService ----

type MockAuditService struct {
	ctrl     *gomock.Controller
	recorder *MockAuditServiceMockRecorder
}

type MockAuditServiceMockRecorder struct {
	mock *MockAuditService
}

func NewMockAuditService(ctrl *gomock.Controller) *MockAuditService {
	mock := &MockAuditService{ctrl: ctrl}
	mock.recorder = &MockAuditServiceMockRecorder{mock}
	return mock
}

func (m *MockAuditService) EXPECT() *MockAuditServiceMockRecorder {
	return m.recorder
}

func (m *MockAuditService) Record(ctx context.Context, accountID *uuid.UUID, action domain.AuditAction, resourceType, resourceID, details, ip string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Record", ctx, accountID, action, resourceType, resourceID, details, ip)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockAuditServiceMockRecorder) Record(ctx, accountID, action, resourceType, resourceID, details, ip interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Record", reflect.TypeOf((*MockAuditService)(nil).Record), ctx, accountID, action, resourceType, resourceID, details, ip)
}

// ---- AccountRepository ----

type MockAccountRepository struct {
	ctrl     *gomock.Controller
	recorder *MockAccountRepositoryMockRecorder
}

type MockAccountRepositoryMockRecorder struct {
	mock *MockAccountRepository
}

func NewMockAccountRepository(ctrl *gomock.Controller) *MockAccountRepository {
	mock := &MockAccountRepository{ctrl: ctrl}
	mock.recorder = &MockAccountRepositoryMockRecorder{mock}
	return mock
}

func (m *MockAccountRepository) EXPECT() *MockAccountRepositoryMockRecorder {
	return m.recorder
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, account)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockAccountRepositoryMockRecorder) Create(ctx, account interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockAccountRepository)(nil).Create), ctx, account)
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*domain.Account)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockAccountRepositoryMockRecorder) GetByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockAccountRepository)(nil).GetByID), ctx, id)
}

func (m *MockAccountRepository) GetByExternalID(ctx context.Context, externalID int64) (*domain.Account, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByExternalID", ctx, externalID)
	ret0, _ := ret[0].(*domain.Account)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockAccountRepositoryMockRecorder) GetByExternalID(ctx, externalID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByExternalID", reflect.TypeOf((*MockAccountRepository)(nil).GetByExternalID), ctx, externalID)
}

func (m *MockAccountRepository) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Account, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByIDForUpdate", ctx, tx, id)
	ret0, _ := ret[0].(*domain.Account)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockAccountRepositoryMockRecorder) GetByIDForUpdate(ctx, tx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByIDForUpdate", reflect.TypeOf((*MockAccountRepository)(nil).GetByIDForUpdate), ctx, tx, id)
}

func (m *MockAccountRepository) UpdateBalance(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, newBalance money.Amount) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateBalance", ctx, tx, accountID, newBalance)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockAccountRepositoryMockRecorder) UpdateBalance(ctx, tx, accountID, newBalance interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateBalance", reflect.TypeOf((*MockAccountRepository)(nil).UpdateBalance), ctx, tx, accountID, newBalance)
}

// ---- TransactionRepository ----

type MockTransactionRepository struct {
	ctrl     *gomock.Controller
	recorder *MockTransactionRepositoryMockRecorder
}

type MockTransactionRepositoryMockRecorder struct {
	mock *MockTransactionRepository
}

func NewMockTransactionRepository(ctrl *gomock.Controller) *MockTransactionRepository {
	mock := &MockTransactionRepository{ctrl: ctrl}
	mock.recorder = &MockTransactionRepositoryMockRecorder{mock}
	return mock
}

func (m *MockTransactionRepository) EXPECT() *MockTransactionRepositoryMockRecorder {
	return m.recorder
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx pgx.Tx, transaction *domain.Transaction) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, tx, transaction)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockTransactionRepositoryMockRecorder) Create(ctx, tx, transaction interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockTransactionRepository)(nil).Create), ctx, tx, transaction)
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*domain.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockTransactionRepositoryMockRecorder) GetByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockTransactionRepository)(nil).GetByID), ctx, id)
}

func (m *MockTransactionRepository) GetByIdempotencyKey(ctx context.Context, key string) (*domain.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByIdempotencyKey", ctx, key)
	ret0, _ := ret[0].(*domain.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockTransactionRepositoryMockRecorder) GetByIdempotencyKey(ctx, key interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByIdempotencyKey", reflect.TypeOf((*MockTransactionRepository)(nil).GetByIdempotencyKey), ctx, key)
}

func (m *MockTransactionRepository) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.TransactionStatus) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateStatus", ctx, tx, id, status)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockTransactionRepositoryMockRecorder) UpdateStatus(ctx, tx, id, status interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateStatus", reflect.TypeOf((*MockTransactionRepository)(nil).UpdateStatus), ctx, tx, id, status)
}

func (m *MockTransactionRepository) CheckRefundExists(ctx context.Context, originalTxID uuid.UUID) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CheckRefundExists", ctx, originalTxID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockTransactionRepositoryMockRecorder) CheckRefundExists(ctx, originalTxID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CheckRefundExists", reflect.TypeOf((*MockTransactionRepository)(nil).CheckRefundExists), ctx, originalTxID)
}

func (m *MockTransactionRepository) List(ctx context.Context, params ports.TransactionListParams) ([]domain.Transaction, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, params)
	ret0, _ := ret[0].([]domain.Transaction)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

func (mr *MockTransactionRepositoryMockRecorder) List(ctx, params interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockTransactionRepository)(nil).List), ctx, params)
}

func (m *MockTransactionRepository) GetStats(ctx context.Context, accountID uuid.UUID, periodStart *int64) (*ports.TransactionStats, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetStats", ctx, accountID, periodStart)
	ret0, _ := ret[0].(*ports.TransactionStats)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockTransactionRepositoryMockRecorder) GetStats(ctx, accountID, periodStart interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetStats", reflect.TypeOf((*MockTransactionRepository)(nil).GetStats), ctx, accountID, periodStart)
}

// ---- IdempotencyRepository ----

type MockIdempotencyRepository struct {
	ctrl     *gomock.Controller
	recorder *MockIdempotencyRepositoryMockRecorder
}

type MockIdempotencyRepositoryMockRecorder struct {
	mock *MockIdempotencyRepository
}

func NewMockIdempotencyRepository(ctrl *gomock.Controller) *MockIdempotencyRepository {
	mock := &MockIdempotencyRepository{ctrl: ctrl}
	mock.recorder = &MockIdempotencyRepositoryMockRecorder{mock}
	return mock
}

func (m *MockIdempotencyRepository) EXPECT() *MockIdempotencyRepositoryMockRecorder {
	return m.recorder
}

func (m *MockIdempotencyRepository) Create(ctx context.Context, tx pgx.Tx, log *domain.IdempotencyLog) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, tx, log)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockIdempotencyRepositoryMockRecorder) Create(ctx, tx, log interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockIdempotencyRepository)(nil).Create), ctx, tx, log)
}

func (m *MockIdempotencyRepository) Get(ctx context.Context, key string) (*domain.IdempotencyLog, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, key)
	ret0, _ := ret[0].(*domain.IdempotencyLog)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockIdempotencyRepositoryMockRecorder) Get(ctx, key interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockIdempotencyRepository)(nil).Get), ctx, key)
}

// ---- UsageLogRepository ----

type MockUsageLogRepository struct {
	ctrl     *gomock.Controller
	recorder *MockUsageLogRepositoryMockRecorder
}

type MockUsageLogRepositoryMockRecorder struct {
	mock *MockUsageLogRepository
}

func NewMockUsageLogRepository(ctrl *gomock.Controller) *MockUsageLogRepository {
	mock := &MockUsageLogRepository{ctrl: ctrl}
	mock.recorder = &MockUsageLogRepositoryMockRecorder{mock}
	return mock
}

func (m *MockUsageLogRepository) EXPECT() *MockUsageLogRepositoryMockRecorder {
	return m.recorder
}

func (m *MockUsageLogRepository) Create(ctx context.Context, tx pgx.Tx, log *domain.UsageLog) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, tx, log)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockUsageLogRepositoryMockRecorder) Create(ctx, tx, log interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockUsageLogRepository)(nil).Create), ctx, tx, log)
}

func (m *MockUsageLogRepository) GetByIdempotencyKey(ctx context.Context, accountID uuid.UUID, key string) (*domain.UsageLog, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByIdempotencyKey", ctx, accountID, key)
	ret0, _ := ret[0].(*domain.UsageLog)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockUsageLogRepositoryMockRecorder) GetByIdempotencyKey(ctx, accountID, key interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByIdempotencyKey", reflect.TypeOf((*MockUsageLogRepository)(nil).GetByIdempotencyKey), ctx, accountID, key)
}

func (m *MockUsageLogRepository) UpdateSettlement(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.UsageStatus, actualCost money.Amount, settlementTxID *uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateSettlement", ctx, tx, id, status, actualCost, settlementTxID)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockUsageLogRepositoryMockRecorder) UpdateSettlement(ctx, tx, id, status, actualCost, settlementTxID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateSettlement", reflect.TypeOf((*MockUsageLogRepository)(nil).UpdateSettlement), ctx, tx, id, status, actualCost, settlementTxID)
}

func (m *MockUsageLogRepository) GetMonthlyStats(ctx context.Context, accountID uuid.UUID, monthStart, monthEnd time.Time) (*ports.UsageMonthlyStats, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetMonthlyStats", ctx, accountID, monthStart, monthEnd)
	ret0, _ := ret[0].(*ports.UsageMonthlyStats)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockUsageLogRepositoryMockRecorder) GetMonthlyStats(ctx, accountID, monthStart, monthEnd interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetMonthlyStats", reflect.TypeOf((*MockUsageLogRepository)(nil).GetMonthlyStats), ctx, accountID, monthStart, monthEnd)
}

// ---- ProductRepository ----

type MockProductRepository struct {
	ctrl     *gomock.Controller
	recorder *MockProductRepositoryMockRecorder
}

type MockProductRepositoryMockRecorder struct {
	mock *MockProductRepository
}

func NewMockProductRepository(ctrl *gomock.Controller) *MockProductRepository {
	mock := &MockProductRepository{ctrl: ctrl}
	mock.recorder = &MockProductRepositoryMockRecorder{mock}
	return mock
}

func (m *MockProductRepository) EXPECT() *MockProductRepositoryMockRecorder {
	return m.recorder
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*domain.Product)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockProductRepositoryMockRecorder) GetByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockProductRepository)(nil).GetByID), ctx, id)
}

func (m *MockProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx)
	ret0, _ := ret[0].([]domain.Product)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockProductRepositoryMockRecorder) List(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockProductRepository)(nil).List), ctx)
}

// ---- ApiKeyRepository ----

type MockApiKeyRepository struct {
	ctrl     *gomock.Controller
	recorder *MockApiKeyRepositoryMockRecorder
}

type MockApiKeyRepositoryMockRecorder struct {
	mock *MockApiKeyRepository
}

func NewMockApiKeyRepository(ctrl *gomock.Controller) *MockApiKeyRepository {
	mock := &MockApiKeyRepository{ctrl: ctrl}
	mock.recorder = &MockApiKeyRepositoryMockRecorder{mock}
	return mock
}

func (m *MockApiKeyRepository) EXPECT() *MockApiKeyRepositoryMockRecorder {
	return m.recorder
}

func (m *MockApiKeyRepository) Create(ctx context.Context, key *domain.ApiKey) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, key)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockApiKeyRepositoryMockRecorder) Create(ctx, key interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockApiKeyRepository)(nil).Create), ctx, key)
}

func (m *MockApiKeyRepository) GetByPrefix(ctx context.Context, prefix string) (*domain.ApiKey, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByPrefix", ctx, prefix)
	ret0, _ := ret[0].(*domain.ApiKey)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockApiKeyRepositoryMockRecorder) GetByPrefix(ctx, prefix interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByPrefix", reflect.TypeOf((*MockApiKeyRepository)(nil).GetByPrefix), ctx, prefix)
}

func (m *MockApiKeyRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.ApiKey, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByAccount", ctx, accountID)
	ret0, _ := ret[0].([]domain.ApiKey)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockApiKeyRepositoryMockRecorder) ListByAccount(ctx, accountID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByAccount", reflect.TypeOf((*MockApiKeyRepository)(nil).ListByAccount), ctx, accountID)
}

func (m *MockApiKeyRepository) Revoke(ctx context.Context, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Revoke", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockApiKeyRepositoryMockRecorder) Revoke(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Revoke", reflect.TypeOf((*MockApiKeyRepository)(nil).Revoke), ctx, id)
}

func (m *MockApiKeyRepository) TouchLastUsed(ctx context.Context, id uuid.UUID, at time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TouchLastUsed", ctx, id, at)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockApiKeyRepositoryMockRecorder) TouchLastUsed(ctx, id, at interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TouchLastUsed", reflect.TypeOf((*MockApiKeyRepository)(nil).TouchLastUsed), ctx, id, at)
}

// ---- AuditRepository ----

type MockAuditRepository struct {
	ctrl     *gomock.Controller
	recorder *MockAuditRepositoryMockRecorder
}

type MockAuditRepositoryMockRecorder struct {
	mock *MockAuditRepository
}

func NewMockAuditRepository(ctrl *gomock.Controller) *MockAuditRepository {
	mock := &MockAuditRepository{ctrl: ctrl}
	mock.recorder = &MockAuditRepositoryMockRecorder{mock}
	return mock
}

func (m *MockAuditRepository) EXPECT() *MockAuditRepositoryMockRecorder {
	return m.recorder
}

func (m *MockAuditRepository) Create(ctx context.Context, log *domain.AuditLog) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, log)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockAuditRepositoryMockRecorder) Create(ctx, log interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockAuditRepository)(nil).Create), ctx, log)
}

// ---- NotificationRepository ----

type MockNotificationRepository struct {
	ctrl     *gomock.Controller
	recorder *MockNotificationRepositoryMockRecorder
}

type MockNotificationRepositoryMockRecorder struct {
	mock *MockNotificationRepository
}

func NewMockNotificationRepository(ctrl *gomock.Controller) *MockNotificationRepository {
	mock := &MockNotificationRepository{ctrl: ctrl}
	mock.recorder = &MockNotificationRepositoryMockRecorder{mock}
	return mock
}

func (m *MockNotificationRepository) EXPECT() *MockNotificationRepositoryMockRecorder {
	return m.recorder
}

func (m *MockNotificationRepository) Create(ctx context.Context, log *domain.NotificationDeliveryLog) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, log)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockNotificationRepositoryMockRecorder) Create(ctx, log interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockNotificationRepository)(nil).Create), ctx, log)
}

// ---- DBTransactor ----

type MockDBTransactor struct {
	ctrl     *gomock.Controller
	recorder *MockDBTransactorMockRecorder
}

type MockDBTransactorMockRecorder struct {
	mock *MockDBTransactor
}

func NewMockDBTransactor(ctrl *gomock.Controller) *MockDBTransactor {
	mock := &MockDBTransactor{ctrl: ctrl}
	mock.recorder = &MockDBTransactorMockRecorder{mock}
	return mock
}

func (m *MockDBTransactor) EXPECT() *MockDBTransactorMockRecorder {
	return m.recorder
}

func (m *MockDBTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Begin", ctx)
	ret0, _ := ret[0].(pgx.Tx)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockDBTransactorMockRecorder) Begin(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Begin", reflect.TypeOf((*MockDBTransactor)(nil).Begin), ctx)
}

// ---- HealthChecker ----

type MockHealthChecker struct {
	ctrl     *gomock.Controller
	recorder *MockHealthCheckerMockRecorder
}

type MockHealthCheckerMockRecorder struct {
	mock *MockHealthChecker
}

func NewMockHealthChecker(ctrl *gomock.Controller) *MockHealthChecker {
	mock := &MockHealthChecker{ctrl: ctrl}
	mock.recorder = &MockHealthCheckerMockRecorder{mock}
	return mock
}

func (m *MockHealthChecker) EXPECT() *MockHealthCheckerMockRecorder {
	return m.recorder
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Ping", ctx)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockHealthCheckerMockRecorder) Ping(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Ping", reflect.TypeOf((*MockHealthChecker)(nil).Ping), ctx)
}

func (m *MockHealthChecker) Name() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Name")
	ret0, _ := ret[0].(string)
	return ret0
}

func (mr *MockHealthCheckerMockRecorder) Name() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Name", reflect.TypeOf((*MockHealthChecker)(nil).Name))
}
