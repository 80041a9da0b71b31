package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/internal/core/ports"
	"secure-payment-gateway/pkg/apperror"
	"secure-payment-gateway/pkg/money"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const idempotencyTTL = 24 * time.Hour

// BalanceServiceImpl implements ports.BalanceService: every credit or
// debit to an account's balance goes through Apply, which combines the
// two-layer idempotency check, row-locked read-modify-write, and the
// non-negative-balance invariant into one reusable path instead of one
// near-duplicate method per transaction type.
type BalanceServiceImpl struct {
	txRepo      ports.TransactionRepository
	accountRepo ports.AccountRepository
	idempRepo   ports.IdempotencyRepository
	idempCache  ports.IdempotencyCache
	transactor  ports.DBTransactor
	log         zerolog.Logger
}

// NewBalanceService creates a new BalanceServiceImpl.
func NewBalanceService(
	txRepo ports.TransactionRepository,
	accountRepo ports.AccountRepository,
	idempRepo ports.IdempotencyRepository,
	idempCache ports.IdempotencyCache,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *BalanceServiceImpl {
	return &BalanceServiceImpl{
		txRepo:      txRepo,
		accountRepo: accountRepo,
		idempRepo:   idempRepo,
		idempCache:  idempCache,
		transactor:  transactor,
		log:         log,
	}
}

// Apply atomically mutates an account's balance by req.AmountUSD (signed),
// recording exactly one ledger Transaction, or returns the result of an
// identical prior call if req.IdempotencyKey was already applied.
func (s *BalanceServiceImpl) Apply(ctx context.Context, req ports.ApplyRequest) (*domain.Transaction, error) {
	if req.AmountUSD.IsZero() {
		return nil, apperror.ErrInvalidAmount("amount must be non-zero")
	}

	idempKey := domain.BuildIdempotencyKey(req.AccountID, req.IdempotencyKey)

	// Layer 1: Redis idempotency check (best effort fast path).
	cached, err := s.idempCache.Get(ctx, idempKey)
	if err != nil {
		s.log.Warn().Err(err).Str("key", idempKey).Msg("redis idempotency check failed, falling through to DB")
	}
	if cached != nil {
		return s.unmarshalCachedTransaction(cached)
	}

	// Layer 2: DB idempotency check (authoritative).
	idempLog, err := s.idempRepo.Get(ctx, idempKey)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("db idempotency check: %w", err))
	}
	if idempLog != nil {
		return s.unmarshalCachedTransaction(idempLog.ResponseJSON)
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	account, err := s.accountRepo.GetByIDForUpdate(ctx, dbTx, req.AccountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrNotFound("account")
	}

	newBalance := account.BalanceUSD.Add(req.AmountUSD)
	if newBalance.IsNegative() {
		return nil, apperror.ErrInsufficientBalance(account.BalanceUSD, req.AmountUSD.Neg())
	}

	now := time.Now().UTC()
	txn := &domain.Transaction{
		ID:                    uuid.New(),
		AccountID:             req.AccountID,
		IdempotencyKey:        idempKey,
		AmountUSD:             req.AmountUSD,
		BalanceBefore:         account.BalanceUSD,
		BalanceAfter:          newBalance,
		TransactionType:       req.TransactionType,
		Status:                domain.TransactionStatusSuccess,
		Provider:              req.Provider,
		ProviderRef:           req.ProviderRef,
		ProductID:             req.ProductID,
		OriginalTransactionID: req.OriginalTxID,
		Metadata:              req.Metadata,
		CreatedAt:             now,
		ProcessedAt:           &now,
	}

	if err := s.accountRepo.UpdateBalance(ctx, dbTx, account.ID, newBalance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}

	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		if errors.Is(err, ports.ErrDuplicateKey) {
			return nil, apperror.ErrDuplicatePayment()
		}
		return nil, apperror.InternalError(fmt.Errorf("create transaction: %w", err))
	}

	respJSON, err := json.Marshal(txn)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("marshal response: %w", err))
	}

	idempLogEntry := &domain.IdempotencyLog{
		Key:           idempKey,
		TransactionID: txn.ID,
		ResponseJSON:  respJSON,
		CreatedAt:     now,
	}
	if err := s.idempRepo.Create(ctx, dbTx, idempLogEntry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("save idempotency log: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	if err := s.idempCache.Set(ctx, idempKey, respJSON, idempotencyTTL); err != nil {
		s.log.Warn().Err(err).Str("key", idempKey).Msg("failed to cache idempotency in redis")
	}

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("account_id", req.AccountID.String()).
		Str("amount_usd", req.AmountUSD.String()).
		Str("type", string(req.TransactionType)).
		Msg("ledger transaction applied")

	return txn, nil
}

// GetBalance returns an account's current balance without locking.
func (s *BalanceServiceImpl) GetBalance(ctx context.Context, accountID uuid.UUID) (money.Amount, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return money.Zero, apperror.InternalError(fmt.Errorf("get account: %w", err))
	}
	if account == nil {
		return money.Zero, apperror.ErrNotFound("account")
	}
	return account.BalanceUSD, nil
}

func (s *BalanceServiceImpl) unmarshalCachedTransaction(data []byte) (*domain.Transaction, error) {
	txn := &domain.Transaction{}
	if err := json.Unmarshal(data, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("unmarshal cached tx: %w", err))
	}
	return txn, nil
}
