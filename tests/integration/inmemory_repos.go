package integration

import (
	"context"
	"sync"
	"time"

	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/internal/core/ports"
	"secure-payment-gateway/pkg/money"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Account Repo ---

type inMemoryAccountRepo struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]*domain.Account
	byExtID  map[int64]uuid.UUID

	locksMu sync.Mutex
	locks   map[uuid.UUID]*sync.Mutex
}

func newInMemoryAccountRepo() *inMemoryAccountRepo {
	return &inMemoryAccountRepo{
		accounts: make(map[uuid.UUID]*domain.Account),
		byExtID:  make(map[int64]uuid.UUID),
		locks:    make(map[uuid.UUID]*sync.Mutex),
	}
}

func (r *inMemoryAccountRepo) Create(ctx context.Context, a *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *a
	r.accounts[a.ID] = &cp
	if a.ExternalID != nil {
		r.byExtID[*a.ExternalID] = a.ID
	}
	return nil
}

func (r *inMemoryAccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *inMemoryAccountRepo) GetByExternalID(ctx context.Context, externalID int64) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byExtID[externalID]
	if !ok {
		return nil, nil
	}
	cp := *r.accounts[id]
	return &cp, nil
}

// GetByIDForUpdate takes this account's lock and, if tx is a *fakeTx,
// registers the unlock to fire on that transaction's Commit/Rollback —
// mirroring how SELECT ... FOR UPDATE holds a row lock for the life of
// the real database transaction.
func (r *inMemoryAccountRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Account, error) {
	r.locksMu.Lock()
	lock, ok := r.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[id] = lock
	}
	r.locksMu.Unlock()

	lock.Lock()
	if ft, ok := tx.(*fakeTx); ok {
		ft.registerUnlock(lock.Unlock)
	} else {
		lock.Unlock()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *inMemoryAccountRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, newBalance money.Amount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[accountID]
	if !ok {
		return nil
	}
	a.BalanceUSD = newBalance
	return nil
}

// --- In-Memory Transaction Repo ---

type inMemoryTransactionRepo struct {
	mu           sync.RWMutex
	transactions map[uuid.UUID]*domain.Transaction
	byIdempKey   map[string]uuid.UUID
}

func newInMemoryTransactionRepo() *inMemoryTransactionRepo {
	return &inMemoryTransactionRepo{
		transactions: make(map[uuid.UUID]*domain.Transaction),
		byIdempKey:   make(map[string]uuid.UUID),
	}
}

func (r *inMemoryTransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byIdempKey[t.IdempotencyKey]; exists {
		return ports.ErrDuplicateKey
	}
	cp := *t
	r.transactions[t.ID] = &cp
	r.byIdempKey[t.IdempotencyKey] = t.ID
	return nil
}

func (r *inMemoryTransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.transactions[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *inMemoryTransactionRepo) GetByIdempotencyKey(ctx context.Context, key string) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byIdempKey[key]
	if !ok {
		return nil, nil
	}
	cp := *r.transactions[id]
	return &cp, nil
}

func (r *inMemoryTransactionRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.TransactionStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.transactions[id]
	if !ok {
		return nil
	}
	t.Status = status
	return nil
}

func (r *inMemoryTransactionRepo) CheckRefundExists(ctx context.Context, originalTxID uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.transactions {
		if t.OriginalTransactionID != nil && *t.OriginalTransactionID == originalTxID && t.TransactionType == domain.TransactionTypeRefund {
			return true, nil
		}
	}
	return false, nil
}

func (r *inMemoryTransactionRepo) List(ctx context.Context, params ports.TransactionListParams) ([]domain.Transaction, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []domain.Transaction
	for _, t := range r.transactions {
		if t.AccountID != params.AccountID {
			continue
		}
		if params.Status != nil && t.Status != *params.Status {
			continue
		}
		if params.Type != nil && t.TransactionType != *params.Type {
			continue
		}
		if params.From != nil && t.CreatedAt.Unix() < *params.From {
			continue
		}
		if params.To != nil && t.CreatedAt.Unix() > *params.To {
			continue
		}
		matched = append(matched, *t)
	}
	total := int64(len(matched))

	page, pageSize := params.Page, params.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = len(matched)
	}
	start := (page - 1) * pageSize
	if start >= len(matched) {
		return []domain.Transaction{}, total, nil
	}
	end := start + pageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *inMemoryTransactionRepo) GetStats(ctx context.Context, accountID uuid.UUID, periodStart *int64) (*ports.TransactionStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &ports.TransactionStats{
		TotalTopup:    money.Zero,
		TotalUsage:    money.Zero,
		TotalRefunded: money.Zero,
	}
	for _, t := range r.transactions {
		if t.AccountID != accountID {
			continue
		}
		if periodStart != nil && t.CreatedAt.Unix() < *periodStart {
			continue
		}
		stats.TotalTransactions++
		switch t.Status {
		case domain.TransactionStatusSuccess:
			stats.Successful++
		case domain.TransactionStatusFailed:
			stats.Failed++
		case domain.TransactionStatusReversed:
			stats.Reversed++
		}
		if t.Status != domain.TransactionStatusSuccess {
			continue
		}
		switch t.TransactionType {
		case domain.TransactionTypeTopup:
			stats.TotalTopup = stats.TotalTopup.Add(t.AmountUSD)
		case domain.TransactionTypeUsage:
			stats.TotalUsage = stats.TotalUsage.Add(t.AmountUSD)
		case domain.TransactionTypeRefund:
			stats.TotalRefunded = stats.TotalRefunded.Add(t.AmountUSD)
		}
	}
	return stats, nil
}

// --- In-Memory Idempotency Repo ---

type inMemoryIdempotencyRepo struct {
	mu   sync.RWMutex
	logs map[string]*domain.IdempotencyLog
}

func newInMemoryIdempotencyRepo() *inMemoryIdempotencyRepo {
	return &inMemoryIdempotencyRepo{logs: make(map[string]*domain.IdempotencyLog)}
}

func (r *inMemoryIdempotencyRepo) Create(ctx context.Context, tx pgx.Tx, log *domain.IdempotencyLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *log
	r.logs[log.Key] = &cp
	return nil
}

func (r *inMemoryIdempotencyRepo) Get(ctx context.Context, key string) (*domain.IdempotencyLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.logs[key]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

// --- In-Memory Usage Log Repo ---

type inMemoryUsageLogRepo struct {
	mu   sync.RWMutex
	logs map[uuid.UUID]*domain.UsageLog
}

func newInMemoryUsageLogRepo() *inMemoryUsageLogRepo {
	return &inMemoryUsageLogRepo{logs: make(map[uuid.UUID]*domain.UsageLog)}
}

func (r *inMemoryUsageLogRepo) Create(ctx context.Context, tx pgx.Tx, log *domain.UsageLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *log
	r.logs[log.ID] = &cp
	return nil
}

func (r *inMemoryUsageLogRepo) GetByIdempotencyKey(ctx context.Context, accountID uuid.UUID, key string) (*domain.UsageLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, l := range r.logs {
		if l.AccountID == accountID && l.IdempotencyKey == key {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryUsageLogRepo) UpdateSettlement(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.UsageStatus, actualCost money.Amount, settlementTxID *uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.logs[id]
	if !ok {
		return nil
	}
	l.Status = status
	cost := actualCost
	l.ActualCostUSD = &cost
	l.SettlementTxID = settlementTxID
	now := time.Now().UTC()
	l.SettledAt = &now
	return nil
}

func (r *inMemoryUsageLogRepo) GetMonthlyStats(ctx context.Context, accountID uuid.UUID, monthStart, monthEnd time.Time) (*ports.UsageMonthlyStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &ports.UsageMonthlyStats{CostUSD: money.Zero}
	byProduct := make(map[string]*ports.UsageProductStat)

	for _, l := range r.logs {
		if l.AccountID != accountID {
			continue
		}
		if l.CreatedAt.Before(monthStart) || !l.CreatedAt.Before(monthEnd) {
			continue
		}
		cost := l.EstimatedCostUSD
		if l.ActualCostUSD != nil {
			cost = *l.ActualCostUSD
		}
		stats.Requests++
		stats.Units += l.UnitsConsumed
		stats.CostUSD = stats.CostUSD.Add(cost)

		ps, ok := byProduct[l.ProductID]
		if !ok {
			ps = &ports.UsageProductStat{ProductID: l.ProductID, CostUSD: money.Zero}
			byProduct[l.ProductID] = ps
		}
		ps.Requests++
		ps.Units += l.UnitsConsumed
		ps.CostUSD = ps.CostUSD.Add(cost)
	}
	for _, ps := range byProduct {
		stats.ByProduct = append(stats.ByProduct, *ps)
	}
	return stats, nil
}

// --- In-Memory Product Repo ---

type inMemoryProductRepo struct {
	mu       sync.RWMutex
	products map[string]*domain.Product
}

func newInMemoryProductRepo(seed ...domain.Product) *inMemoryProductRepo {
	r := &inMemoryProductRepo{products: make(map[string]*domain.Product)}
	for i := range seed {
		cp := seed[i]
		r.products[cp.ID] = &cp
	}
	return r
}

func (r *inMemoryProductRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *inMemoryProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

// --- In-Memory API Key Repo ---

type inMemoryApiKeyRepo struct {
	mu   sync.RWMutex
	keys map[uuid.UUID]*domain.ApiKey
}

func newInMemoryApiKeyRepo() *inMemoryApiKeyRepo {
	return &inMemoryApiKeyRepo{keys: make(map[uuid.UUID]*domain.ApiKey)}
}

func (r *inMemoryApiKeyRepo) Create(ctx context.Context, key *domain.ApiKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *key
	r.keys[key.ID] = &cp
	return nil
}

func (r *inMemoryApiKeyRepo) GetByPrefix(ctx context.Context, prefix string) (*domain.ApiKey, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, k := range r.keys {
		if k.Prefix == prefix {
			cp := *k
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryApiKeyRepo) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.ApiKey, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.ApiKey
	for _, k := range r.keys {
		if k.AccountID == accountID {
			out = append(out, *k)
		}
	}
	return out, nil
}

func (r *inMemoryApiKeyRepo) Revoke(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	k, ok := r.keys[id]
	if !ok {
		return nil
	}
	now := time.Now().UTC()
	k.Active = false
	k.RevokedAt = &now
	return nil
}

func (r *inMemoryApiKeyRepo) TouchLastUsed(ctx context.Context, id uuid.UUID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	k, ok := r.keys[id]
	if !ok {
		return nil
	}
	k.LastUsedAt = &at
	return nil
}

// --- In-Memory Audit Repo ---

type inMemoryAuditRepo struct {
	mu   sync.Mutex
	logs []domain.AuditLog
}

func newInMemoryAuditRepo() *inMemoryAuditRepo {
	return &inMemoryAuditRepo{}
}

func (r *inMemoryAuditRepo) Create(ctx context.Context, log *domain.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, *log)
	return nil
}

// --- In-Memory Notification Repo ---

type inMemoryNotificationRepo struct {
	mu   sync.Mutex
	logs []domain.NotificationDeliveryLog
}

func newInMemoryNotificationRepo() *inMemoryNotificationRepo {
	return &inMemoryNotificationRepo{}
}

func (r *inMemoryNotificationRepo) Create(ctx context.Context, log *domain.NotificationDeliveryLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, *log)
	return nil
}

// --- In-Memory Transactor (lock-tracking fake tx) ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &fakeTx{}, nil
}

// fakeTx is a no-op pgx.Tx whose Commit/Rollback release every row lock
// acquired under it (see inMemoryAccountRepo.GetByIDForUpdate), so
// concurrent Apply calls against the same account still serialize the
// way SELECT ... FOR UPDATE does against a real connection.
type fakeTx struct {
	mu      sync.Mutex
	unlocks []func()
	done    bool
}

func (t *fakeTx) registerUnlock(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.unlocks = append(t.unlocks, fn)
}

func (t *fakeTx) release() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return
	}
	t.done = true
	for _, fn := range t.unlocks {
		fn()
	}
}

func (t *fakeTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *fakeTx) Commit(ctx context.Context) error          { t.release(); return nil }
func (t *fakeTx) Rollback(ctx context.Context) error        { t.release(); return nil }
func (t *fakeTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *fakeTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *fakeTx) LargeObjects() pgx.LargeObjects                              { return pgx.LargeObjects{} }
func (t *fakeTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *fakeTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *fakeTx) Conn() *pgx.Conn { return nil }
