package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"secure-payment-gateway/internal/adapter/http/dto"
	"secure-payment-gateway/internal/adapter/http/middleware"
	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/internal/core/ports"
	"secure-payment-gateway/internal/core/ports/mocks"
	"secure-payment-gateway/pkg/apperror"
	"secure-payment-gateway/pkg/money"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext(method, path string, body []byte, accountID *uuid.UUID) (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	c.Request = httptest.NewRequest(method, path, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	if accountID != nil {
		c.Set(middleware.CtxAccountID, *accountID)
	}
	return w, c
}

// --- Payment Handler Tests ---

func TestTopup_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrch := mocks.NewMockOrchestrator(ctrl)
	h := NewPaymentHandler(mockOrch, nil)

	accountID := uuid.New()
	mockOrch.EXPECT().CreateCheckout(gomock.Any(), ports.ProviderName("card"), gomock.Any()).
		Return(&ports.CheckoutResult{Reference: "ref-001", RedirectURL: "https://pay.example.com/c/ref-001"}, nil)

	body, _ := json.Marshal(dto.TopupRequest{AmountUSD: "50.00000000", Method: "card"})
	w, c := newTestContext(http.MethodPost, "/payment/topup", body, &accountID)

	h.Topup(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "ref-001", data["payment_id"])
	assert.Equal(t, "https://pay.example.com/c/ref-001", data["checkout_url"])
}

func TestTopup_MissingAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrch := mocks.NewMockOrchestrator(ctrl)
	h := NewPaymentHandler(mockOrch, nil)

	body, _ := json.Marshal(dto.TopupRequest{AmountUSD: "50.00000000", Method: "card"})
	w, c := newTestContext(http.MethodPost, "/payment/topup", body, nil)

	h.Topup(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTopup_AmountOutOfRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrch := mocks.NewMockOrchestrator(ctrl)
	h := NewPaymentHandler(mockOrch, nil)

	accountID := uuid.New()
	body, _ := json.Marshal(dto.TopupRequest{AmountUSD: "1.00000000", Method: "card"})
	w, c := newTestContext(http.MethodPost, "/payment/topup", body, &accountID)

	h.Topup(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTopup_InvalidAmountFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrch := mocks.NewMockOrchestrator(ctrl)
	h := NewPaymentHandler(mockOrch, nil)

	accountID := uuid.New()
	body, _ := json.Marshal(dto.TopupRequest{AmountUSD: "not-a-number", Method: "card"})
	w, c := newTestContext(http.MethodPost, "/payment/topup", body, &accountID)

	h.Topup(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPayment_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTxRepo := mocks.NewMockTransactionRepository(ctrl)
	h := NewPaymentHandler(nil, mockTxRepo)

	txID := uuid.New()
	now := time.Now()
	mockTxRepo.EXPECT().GetByID(gomock.Any(), txID).Return(&domain.Transaction{
		ID:              txID,
		AmountUSD:       money.MustNewFromString("50.00000000"),
		TransactionType: domain.TransactionTypeTopup,
		Status:          domain.TransactionStatusSuccess,
		CreatedAt:       now,
	}, nil)

	w, c := newTestContext(http.MethodGet, "/payment/"+txID.String(), nil, nil)
	c.Params = gin.Params{{Key: "id", Value: txID.String()}}

	h.GetPayment(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, txID.String(), data["id"])
	assert.Equal(t, "SUCCESS", data["status"])
}

func TestGetPayment_InvalidID(t *testing.T) {
	h := NewPaymentHandler(nil, nil)

	w, c := newTestContext(http.MethodGet, "/payment/not-a-uuid", nil, nil)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	h.GetPayment(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPayment_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTxRepo := mocks.NewMockTransactionRepository(ctrl)
	h := NewPaymentHandler(nil, mockTxRepo)

	txID := uuid.New()
	mockTxRepo.EXPECT().GetByID(gomock.Any(), txID).Return(nil, nil)

	w, c := newTestContext(http.MethodGet, "/payment/"+txID.String(), nil, nil)
	c.Params = gin.Params{{Key: "id", Value: txID.String()}}

	h.GetPayment(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Webhook Handler Tests ---

func TestWebhookHandle_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrch := mocks.NewMockOrchestrator(ctrl)
	h := NewWebhookHandler(mockOrch)

	mockOrch.EXPECT().HandleWebhook(gomock.Any(), ports.ProviderName("card"), gomock.Any(), []byte(`{"event":"ok"}`)).
		Return(&domain.Transaction{ID: uuid.New()}, nil)

	w, c := newTestContext(http.MethodPost, "/webhooks/card", []byte(`{"event":"ok"}`), nil)
	c.Params = gin.Params{{Key: "provider", Value: "card"}}

	h.Handle(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWebhookHandle_InvalidSignatureReturns200(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrch := mocks.NewMockOrchestrator(ctrl)
	h := NewWebhookHandler(mockOrch)

	mockOrch.EXPECT().HandleWebhook(gomock.Any(), ports.ProviderName("card"), gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrInvalidSignature())

	w, c := newTestContext(http.MethodPost, "/webhooks/card", []byte(`{}`), nil)
	c.Params = gin.Params{{Key: "provider", Value: "card"}}

	h.Handle(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Balance Handler Tests ---

func TestGetBalance_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBalance := mocks.NewMockBalanceService(ctrl)
	h := NewBalanceHandler(mockBalance)

	accountID := uuid.New()
	mockBalance.EXPECT().GetBalance(gomock.Any(), accountID).Return(money.MustNewFromString("123.45000000"), nil)

	w, c := newTestContext(http.MethodGet, "/balance", nil, &accountID)

	h.GetBalance(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "123.45000000", data["balance_usd"])
}

func TestGetBalance_MissingAccount(t *testing.T) {
	h := NewBalanceHandler(nil)

	w, c := newTestContext(http.MethodGet, "/balance", nil, nil)

	h.GetBalance(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Usage Handler Tests ---

func TestGetUsage_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsageRepo := mocks.NewMockUsageLogRepository(ctrl)
	h := NewUsageHandler(mockUsageRepo)

	accountID := uuid.New()
	mockUsageRepo.EXPECT().GetMonthlyStats(gomock.Any(), accountID, gomock.Any(), gomock.Any()).Return(&ports.UsageMonthlyStats{
		Requests: 50,
		Units:    420,
		CostUSD:  money.MustNewFromString("1.13000000"),
		ByProduct: []ports.UsageProductStat{
			{ProductID: "gpt-completion", Requests: 42, Units: 420, CostUSD: money.MustNewFromString("1.05000000")},
		},
	}, nil)

	w, c := newTestContext(http.MethodGet, "/usage?month=2026-07", nil, &accountID)

	h.GetUsage(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "2026-07", data["month"])
	assert.Equal(t, float64(50), data["requests"])
	assert.Equal(t, float64(420), data["units"])
	byProduct := data["by_product"].([]interface{})
	product0 := byProduct[0].(map[string]interface{})
	assert.Equal(t, float64(420), product0["units"])
}

func TestGetUsage_InvalidMonth(t *testing.T) {
	accountID := uuid.New()
	h := NewUsageHandler(nil)

	w, c := newTestContext(http.MethodGet, "/usage?month=not-a-month", nil, &accountID)

	h.GetUsage(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- API Key Handler Tests ---

func TestCreateApiKey_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCred := mocks.NewMockCredentialService(ctrl)
	h := NewApiKeyHandler(mockCred)

	accountID := uuid.New()
	keyID := uuid.New()
	now := time.Now()
	mockCred.EXPECT().CreateKey(gomock.Any(), accountID, "prod key", []domain.ApiKeyScope{domain.ScopeUsageWrite}).
		Return("sklive_abcd_rawsecret", &domain.ApiKey{
			ID:        keyID,
			AccountID: accountID,
			Prefix:    "abcd",
			Label:     "prod key",
			Scopes:    []domain.ApiKeyScope{domain.ScopeUsageWrite},
			Active:    true,
			CreatedAt: now,
		}, nil)

	body, _ := json.Marshal(dto.CreateApiKeyRequest{Label: "prod key", Scopes: []string{"usage:write"}})
	w, c := newTestContext(http.MethodPost, "/api_keys", body, &accountID)

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "sklive_abcd_rawsecret", data["raw_key"])
	assert.Equal(t, "abcd", data["prefix"])
}

func TestListApiKeys_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCred := mocks.NewMockCredentialService(ctrl)
	h := NewApiKeyHandler(mockCred)

	accountID := uuid.New()
	lastUsed := time.Now()
	mockCred.EXPECT().ListKeys(gomock.Any(), accountID).Return([]domain.ApiKey{
		{ID: uuid.New(), Prefix: "sk_live_abcd", Label: "prod", Scopes: []domain.ApiKeyScope{domain.ScopeAdmin}, Active: true, CreatedAt: time.Now(), LastUsedAt: &lastUsed},
	}, nil)

	w, c := newTestContext(http.MethodGet, "/api_keys", nil, &accountID)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, "prod", item["label"])
	assert.NotEmpty(t, item["last_used_at"])
}

func TestRevokeApiKey_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCred := mocks.NewMockCredentialService(ctrl)
	h := NewApiKeyHandler(mockCred)

	accountID := uuid.New()
	keyID := uuid.New()
	mockCred.EXPECT().ListKeys(gomock.Any(), accountID).Return([]domain.ApiKey{
		{ID: keyID, Prefix: "sk_live_abcd", Active: true},
	}, nil)
	mockCred.EXPECT().RevokeKey(gomock.Any(), keyID).Return(nil)

	w, c := newTestContext(http.MethodDelete, "/api_keys/sk_live_abcd", nil, &accountID)
	c.Params = gin.Params{{Key: "prefix", Value: "sk_live_abcd"}}

	h.Revoke(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRevokeApiKey_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCred := mocks.NewMockCredentialService(ctrl)
	h := NewApiKeyHandler(mockCred)

	accountID := uuid.New()
	mockCred.EXPECT().ListKeys(gomock.Any(), accountID).Return([]domain.ApiKey{}, nil)

	w, c := newTestContext(http.MethodDelete, "/api_keys/missing", nil, &accountID)
	c.Params = gin.Params{{Key: "prefix", Value: "missing"}}

	h.Revoke(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Health Check Test ---

func TestHealthCheck(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
}

func TestSwaggerUI(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/swagger", nil)

	SwaggerUI(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "swagger-ui")
	assert.Contains(t, w.Body.String(), "/swagger/spec")
}

func TestSwaggerSpec_Loaded(t *testing.T) {
	SetSwaggerSpec([]byte("openapi: '3.0.0'\ninfo:\n  title: Test"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/swagger/spec", nil)

	SwaggerSpec(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "openapi")
}

func TestSwaggerSpec_NotLoaded(t *testing.T) {
	SetSwaggerSpec(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/swagger/spec", nil)

	SwaggerSpec(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
