package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/internal/core/ports"
	"secure-payment-gateway/pkg/apperror"
	"secure-payment-gateway/pkg/money"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const productPriceCacheTTL = 5 * time.Minute

// productPriceCache is a small in-process TTL cache in front of
// ProductRepository.GetByID. Product prices change rarely and are
// read on every metered call, so a 5-minute in-process cache avoids a
// database round trip per request without needing cross-process
// coherence (prices are not mutated by this service, only read).
type productPriceCache struct {
	mu      sync.Mutex
	repo    ports.ProductRepository
	entries map[string]priceCacheEntry
}

type priceCacheEntry struct {
	product   *domain.Product
	expiresAt time.Time
}

func newProductPriceCache(repo ports.ProductRepository) *productPriceCache {
	return &productPriceCache{repo: repo, entries: make(map[string]priceCacheEntry)}
}

func (c *productPriceCache) get(ctx context.Context, productID string) (*domain.Product, error) {
	c.mu.Lock()
	entry, ok := c.entries[productID]
	c.mu.Unlock()
	if ok && time.Now().Before(entry.expiresAt) {
		return entry.product, nil
	}

	product, err := c.repo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	c.mu.Lock()
	c.entries[productID] = priceCacheEntry{product: product, expiresAt: time.Now().Add(productPriceCacheTTL)}
	c.mu.Unlock()

	return product, nil
}

// UsageServiceImpl implements ports.UsageService (C6): metered API
// calls are charged provisionally at the product's list price before
// the call runs, then either settled to the actual cost or refunded
// in full if the call never completed.
type UsageServiceImpl struct {
	usageLogRepo ports.UsageLogRepository
	balanceSvc   ports.BalanceService
	transactor   ports.DBTransactor
	prices       *productPriceCache
	log          zerolog.Logger
}

// NewUsageService creates a new UsageServiceImpl.
func NewUsageService(
	usageLogRepo ports.UsageLogRepository,
	balanceSvc ports.BalanceService,
	productRepo ports.ProductRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *UsageServiceImpl {
	return &UsageServiceImpl{
		usageLogRepo: usageLogRepo,
		balanceSvc:   balanceSvc,
		transactor:   transactor,
		prices:       newProductPriceCache(productRepo),
		log:          log,
	}
}

// ChargeProvisional debits an account for a product's list price ahead
// of the metered call it covers, and records the charge as PROVISIONAL
// pending settlement. Idempotent on (AccountID, IdempotencyKey): a
// retried call with the same key returns the original usage log
// without debiting twice.
func (s *UsageServiceImpl) ChargeProvisional(ctx context.Context, req ports.ChargeProvisionalRequest) (*domain.UsageLog, error) {
	existing, err := s.usageLogRepo.GetByIdempotencyKey(ctx, req.AccountID, req.IdempotencyKey)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check existing usage log: %w", err))
	}
	if existing != nil {
		return existing, nil
	}

	product, err := s.prices.get(ctx, req.ProductID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup product: %w", err))
	}
	if product == nil || !product.Active {
		return nil, apperror.ErrNotFound("product")
	}

	units := req.Units
	if units == 0 {
		units = 1
	}
	cost := product.PriceUSD.Mul(money.NewFromInt(units))

	productID := req.ProductID
	txn, err := s.balanceSvc.Apply(ctx, ports.ApplyRequest{
		AccountID:       req.AccountID,
		IdempotencyKey:  req.IdempotencyKey + ":provisional",
		AmountUSD:       cost.Neg(),
		TransactionType: domain.TransactionTypeUsage,
		ProductID:       &productID,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	usageLog := &domain.UsageLog{
		ID:               uuid.New(),
		AccountID:        req.AccountID,
		ProductID:        req.ProductID,
		IdempotencyKey:   req.IdempotencyKey,
		UnitsConsumed:    units,
		EstimatedCostUSD: cost,
		Status:           domain.UsageStatusProvisional,
		ProvisionalTxID:  txn.ID,
		Details:          req.Details,
		CreatedAt:        now,
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.usageLogRepo.Create(ctx, dbTx, usageLog); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create usage log: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	return usageLog, nil
}

// Settle adjusts a PROVISIONAL usage log to its actual cost, debiting
// or refunding the difference from the estimate. A no-op delta still
// transitions the log to SETTLED.
func (s *UsageServiceImpl) Settle(ctx context.Context, req ports.SettleRequest) (*domain.UsageLog, error) {
	usageLog, err := s.usageLogRepo.GetByIdempotencyKey(ctx, req.AccountID, req.IdempotencyKey)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup usage log: %w", err))
	}
	if usageLog == nil {
		return nil, apperror.ErrNotFound("usage log")
	}
	if usageLog.Status != domain.UsageStatusProvisional {
		return usageLog, nil
	}

	delta := req.ActualCostUSD.Sub(usageLog.EstimatedCostUSD)

	var settlementTxID *uuid.UUID
	if !delta.IsZero() {
		productID := usageLog.ProductID
		txn, err := s.balanceSvc.Apply(ctx, ports.ApplyRequest{
			AccountID:       req.AccountID,
			IdempotencyKey:  req.IdempotencyKey + ":settle",
			AmountUSD:       delta.Neg(),
			TransactionType: domain.TransactionTypeUsage,
			ProductID:       &productID,
			OriginalTxID:    &usageLog.ProvisionalTxID,
		})
		if err != nil {
			return nil, err
		}
		settlementTxID = &txn.ID
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.usageLogRepo.UpdateSettlement(ctx, dbTx, usageLog.ID, domain.UsageStatusSettled, req.ActualCostUSD, settlementTxID); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update settlement: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	usageLog.Status = domain.UsageStatusSettled
	usageLog.ActualCostUSD = &req.ActualCostUSD
	usageLog.SettlementTxID = settlementTxID
	return usageLog, nil
}

// RefundProvisional reverses a PROVISIONAL charge in full: the metered
// call never completed, so nothing should be billed.
func (s *UsageServiceImpl) RefundProvisional(ctx context.Context, req ports.RefundProvisionalRequest) (*domain.UsageLog, error) {
	usageLog, err := s.usageLogRepo.GetByIdempotencyKey(ctx, req.AccountID, req.IdempotencyKey)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup usage log: %w", err))
	}
	if usageLog == nil {
		return nil, apperror.ErrNotFound("usage log")
	}
	if usageLog.Status != domain.UsageStatusProvisional {
		return usageLog, nil
	}

	productID := usageLog.ProductID
	txn, err := s.balanceSvc.Apply(ctx, ports.ApplyRequest{
		AccountID:       req.AccountID,
		IdempotencyKey:  req.IdempotencyKey + ":refund",
		AmountUSD:       usageLog.EstimatedCostUSD,
		TransactionType: domain.TransactionTypeRefund,
		ProductID:       &productID,
		OriginalTxID:    &usageLog.ProvisionalTxID,
	})
	if err != nil {
		return nil, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.usageLogRepo.UpdateSettlement(ctx, dbTx, usageLog.ID, domain.UsageStatusRefunded, money.Zero, &txn.ID); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update settlement: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	zero := money.Zero
	usageLog.Status = domain.UsageStatusRefunded
	usageLog.ActualCostUSD = &zero
	usageLog.SettlementTxID = &txn.ID
	return usageLog, nil
}
