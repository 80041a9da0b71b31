// Package card implements the card payment provider adapter (C4):
// checkout creation against the provider's REST API and inbound
// webhook verification/parsing, wrapped in a circuit breaker and an
// exponential-backoff retry policy so a degraded provider fails fast
// instead of eating the whole request budget.
package card

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/internal/core/ports"
	"secure-payment-gateway/internal/provider/backoff"
	"secure-payment-gateway/pkg/apperror"
	"secure-payment-gateway/pkg/money"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
	"github.com/shopspring/decimal"
)

const replayWindow = 5 * time.Minute

// HTTPClient is the seam the adapter talks to the provider through,
// matching the teacher's webhook dispatch shape so the adapter can be
// tested without a live network call.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config holds the card provider's credentials and endpoint.
type Config struct {
	APIKey        string
	WebhookSecret string
	BaseURL       string // e.g. https://api.cardprovider.example/v1
	Environment   string // "sandbox" or "live"
}

// Adapter implements ports.Provider for the card provider.
type Adapter struct {
	cfg        Config
	httpClient HTTPClient
	breaker    *gobreaker.CircuitBreaker
	log        zerolog.Logger
}

// NewAdapter creates a new card Adapter, wrapping httpClient in a
// per-instance circuit breaker grounded in CedrosPay-server's
// circuitbreaker.Manager (bulkhead isolation: this provider's outages
// never exhaust the retry budget the wallet adapter would otherwise
// also draw from).
func NewAdapter(cfg Config, httpClient HTTPClient, log zerolog.Logger) *Adapter {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "card_provider",
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
	return &Adapter{cfg: cfg, httpClient: httpClient, breaker: breaker, log: log}
}

// Name identifies this adapter to the orchestrator (C3).
func (a *Adapter) Name() ports.ProviderName {
	return ports.ProviderCard
}

type checkoutCustomData struct {
	AccountRef     string `json:"account_ref"`
	IdempotencyKey string `json:"idempotency_key"`
	AmountUSD      string `json:"amount_usd"`
}

type checkoutRequestBody struct {
	AmountCents int64               `json:"amount_cents"`
	Currency    string              `json:"currency"`
	CustomData  checkoutCustomData  `json:"custom_data"`
}

type checkoutResponseBody struct {
	ID          string `json:"id"`
	CheckoutURL string `json:"checkout_url"`
}

// CreateCheckout posts a checkout request to the provider, retrying
// network errors, 5xx and 429 responses per SPEC_FULL.md §4.4's
// backoff policy; a 4xx other than 429 is not retried.
func (a *Adapter) CreateCheckout(ctx context.Context, req ports.CheckoutRequest) (*ports.CheckoutResult, error) {
	body := checkoutRequestBody{
		AmountCents: amountToCents(req.AmountUSD),
		Currency:    "USD",
		CustomData: checkoutCustomData{
			AccountRef:     req.AccountID.String(),
			IdempotencyKey: req.Reference,
			AmountUSD:      req.AmountUSD.String(),
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("marshal checkout request: %w", err))
	}

	var respBody checkoutResponseBody
	for attempt := 1; attempt <= backoff.MaxAttempts; attempt++ {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.cfg.BaseURL+"/checkouts", bytes.NewReader(payload))
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("build checkout request: %w", err))
		}
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("Authorization", "Bearer "+a.cfg.APIKey)
		httpReq.Header.Set("Idempotency-Key", req.Reference)

		result, err := a.breaker.Execute(func() (interface{}, error) {
			resp, err := a.httpClient.Do(httpReq)
			if err != nil {
				return nil, err
			}
			defer resp.Body.Close()
			raw, _ := io.ReadAll(resp.Body)
			return &httpOutcome{status: resp.StatusCode, header: resp.Header, body: raw}, nil
		})

		if err != nil {
			if attempt == backoff.MaxAttempts {
				return nil, apperror.ErrProvider(apperror.ProviderErrMaxRetries, "card provider unreachable", err)
			}
			a.log.Warn().Err(err).Int("attempt", attempt).Msg("card checkout request failed, retrying")
			if sleepErr := backoff.Sleep(ctx, backoff.Delay(attempt)); sleepErr != nil {
				return nil, apperror.InternalError(sleepErr)
			}
			continue
		}

		outcome := result.(*httpOutcome)

		if outcome.status >= 200 && outcome.status < 300 {
			if err := json.Unmarshal(outcome.body, &respBody); err != nil {
				return nil, apperror.InternalError(fmt.Errorf("decode checkout response: %w", err))
			}
			return &ports.CheckoutResult{
				Reference:   req.Reference,
				RedirectURL: respBody.CheckoutURL,
				ProviderRef: respBody.ID,
			}, nil
		}

		if !isRetryableStatus(outcome.status) {
			return nil, apperror.ErrProvider(apperror.ProviderErrClient, fmt.Sprintf("card provider rejected checkout: HTTP %d", outcome.status), nil)
		}

		if attempt == backoff.MaxAttempts {
			return nil, apperror.ErrProvider(apperror.ProviderErrMaxRetries, "card provider checkout retries exhausted", nil)
		}

		delay := backoff.Delay(attempt)
		if retryAfter, ok := backoff.RetryAfter(outcome.header); ok {
			delay = retryAfter
		}
		a.log.Warn().Int("status", outcome.status).Int("attempt", attempt).Msg("card checkout retryable response, retrying")
		if sleepErr := backoff.Sleep(ctx, delay); sleepErr != nil {
			return nil, apperror.InternalError(sleepErr)
		}
	}

	return nil, apperror.ErrProvider(apperror.ProviderErrMaxRetries, "card provider checkout retries exhausted", nil)
}

type httpOutcome struct {
	status int
	header http.Header
	body   []byte
}

func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

// amountToCents converts a money.Amount to the provider's integer-cents
// wire representation.
func amountToCents(a money.Amount) int64 {
	cents := a.Decimal().Mul(decimal.NewFromInt(100))
	return cents.Round(0).IntPart()
}

// centsToAmount is the inverse of amountToCents, used as a fallback when
// custom_data.amount_usd is absent or unparseable.
func centsToAmount(cents int64) money.Amount {
	return money.NewFromDecimal(decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)))
}

// parseAccountRef parses custom_data.account_ref as the account's uuid.
func parseAccountRef(ref string) (uuid.UUID, error) {
	return uuid.Parse(ref)
}

// VerifyWebhook checks the provider's ts=<unix>;h1=<hex-hmac> header
// against the raw body per SPEC_FULL.md §4.4: both fields required,
// a 5-minute replay window, and a constant-time HMAC-SHA256 compare
// over "<ts>:<raw body>".
func (a *Adapter) VerifyWebhook(headers map[string]string, rawBody []byte) error {
	sigHeader := headers["X-Card-Signature"]
	if sigHeader == "" {
		return apperror.ErrInvalidSignature()
	}

	ts, h1, ok := parseSignatureHeader(sigHeader)
	if !ok {
		return apperror.ErrInvalidSignature()
	}

	tsUnix, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return apperror.ErrInvalidSignature()
	}
	age := time.Now().UTC().Unix() - tsUnix
	if age < 0 {
		age = -age
	}
	if time.Duration(age)*time.Second > replayWindow {
		return apperror.ErrTimestampExpired()
	}

	mac := hmac.New(sha256.New, []byte(a.cfg.WebhookSecret))
	mac.Write([]byte(ts))
	mac.Write([]byte(":"))
	mac.Write(rawBody)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(h1)) {
		return apperror.ErrInvalidSignature()
	}
	return nil
}

// parseSignatureHeader splits "ts=<unix>;h1=<hex>" into its two parts.
func parseSignatureHeader(header string) (ts string, h1 string, ok bool) {
	for _, part := range strings.Split(header, ";") {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "ts":
			ts = kv[1]
		case "h1":
			h1 = kv[1]
		}
	}
	return ts, h1, ts != "" && h1 != ""
}

type webhookEnvelope struct {
	EventID   string `json:"event_id"`
	EventType string `json:"event_type"`
	Data      struct {
		AmountCents int64  `json:"amount_cents"`
		CustomData  string `json:"custom_data"` // JSON-encoded string, per §4.4
	} `json:"data"`
}

// ParseEvent decodes a verified webhook body into the provider-neutral
// ports.ProviderEvent. A nil, nil return means the event should be
// acknowledged without any ledger effect: an uninteresting event type,
// or custom_data missing the account_ref the ledger mutation depends on.
func (a *Adapter) ParseEvent(rawBody []byte) (*ports.ProviderEvent, error) {
	var envelope webhookEnvelope
	if err := json.Unmarshal(rawBody, &envelope); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("decode webhook envelope: %w", err))
	}

	switch envelope.EventType {
	case "transaction.completed", "transaction.refunded":
		// handled below
	case "transaction.payment_failed":
		return &ports.ProviderEvent{EventID: envelope.EventID, Succeeded: false}, nil
	default:
		a.log.Debug().Str("event_type", envelope.EventType).Msg("card webhook: ignoring uninteresting event type")
		return nil, nil
	}

	var customData checkoutCustomData
	if envelope.Data.CustomData != "" {
		if err := json.Unmarshal([]byte(envelope.Data.CustomData), &customData); err != nil {
			a.log.Warn().Err(err).Str("event_id", envelope.EventID).Msg("card webhook: unparseable custom_data, ignoring")
			return nil, nil
		}
	}
	if customData.AccountRef == "" {
		a.log.Warn().Str("event_id", envelope.EventID).Msg("card webhook: missing account_ref in custom_data, ignoring")
		return nil, nil
	}

	accountID, err := parseAccountRef(customData.AccountRef)
	if err != nil {
		a.log.Warn().Str("event_id", envelope.EventID).Msg("card webhook: account_ref is not a valid account id, ignoring")
		return nil, nil
	}

	if envelope.EventType == "transaction.refunded" {
		idempotencyKey := "refund_" + envelope.EventID
		amount := centsToAmount(envelope.Data.AmountCents).Neg()
		return &ports.ProviderEvent{
			EventID:         idempotencyKey,
			Reference:       customData.IdempotencyKey,
			AccountID:       accountID,
			AmountUSD:       amount,
			TransactionType: domain.TransactionTypeRefund,
			Succeeded:       true,
		}, nil
	}

	idempotencyKey := customData.IdempotencyKey
	if idempotencyKey == "" {
		idempotencyKey = "evt_" + envelope.EventID
	}
	amount, err := money.NewFromString(customData.AmountUSD)
	if err != nil {
		amount = centsToAmount(envelope.Data.AmountCents)
	}

	return &ports.ProviderEvent{
		EventID:         idempotencyKey,
		Reference:       customData.IdempotencyKey,
		AccountID:       accountID,
		AmountUSD:       amount,
		TransactionType: domain.TransactionTypeTopup,
		Succeeded:       true,
	}, nil
}
