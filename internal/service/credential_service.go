package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/internal/core/ports"
	"secure-payment-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	keyScheme         = "sklive" // no underscore: splitRawKey relies on the scheme being underscore-free
	apiKeyPrefixBytes = 6        // hex-encoded to 12 chars
	apiKeySecretBytes = 32       // url-safe base64 (no padding) encodes to 43 chars
	apiKeyCacheTTL    = 10 * time.Minute

	authFailWindow    = 15 * time.Minute
	authFailThreshold = 5
)

// CredentialServiceImpl implements ports.CredentialService (C7): keys are
// split into a public Prefix (used for lookup and display) and a secret
// half that is HMAC-hashed with the server secret before it ever touches
// storage. Verification checks a Redis prefix cache first and falls back
// to the database, repopulating the cache on a hit.
type CredentialServiceImpl struct {
	keyRepo      ports.ApiKeyRepository
	keyCache     ports.IdempotencyCache // byte cache, reused for prefix->key JSON and auth-failure counters
	hmacSvc      ports.HMACService
	serverSecret string
	log          zerolog.Logger
}

// NewCredentialService creates a new CredentialServiceImpl.
func NewCredentialService(
	keyRepo ports.ApiKeyRepository,
	keyCache ports.IdempotencyCache,
	hmacSvc ports.HMACService,
	serverSecret string,
	log zerolog.Logger,
) *CredentialServiceImpl {
	return &CredentialServiceImpl{
		keyRepo:      keyRepo,
		keyCache:     keyCache,
		hmacSvc:      hmacSvc,
		serverSecret: serverSecret,
		log:          log,
	}
}

// CreateKey issues a new API key bound to accountID with the given
// label and scopes. The raw key is returned exactly once; only its
// prefix and HMAC hash are persisted.
func (s *CredentialServiceImpl) CreateKey(ctx context.Context, accountID uuid.UUID, label string, scopes []domain.ApiKeyScope) (string, *domain.ApiKey, error) {
	if len(scopes) == 0 {
		return "", nil, apperror.Validation("at least one scope is required")
	}

	prefix, err := generateRandomHex(apiKeyPrefixBytes)
	if err != nil {
		return "", nil, apperror.InternalError(fmt.Errorf("generate key prefix: %w", err))
	}
	secret, err := generateRandomSecret(apiKeySecretBytes)
	if err != nil {
		return "", nil, apperror.InternalError(fmt.Errorf("generate key secret: %w", err))
	}

	rawKey := keyScheme + "_" + prefix + "_" + secret

	key := &domain.ApiKey{
		ID:         uuid.New(),
		AccountID:  accountID,
		Prefix:     prefix,
		SecretHash: s.hmacSvc.Sign(s.serverSecret, secret),
		Label:      label,
		Scopes:     scopes,
		Active:     true,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.keyRepo.Create(ctx, key); err != nil {
		return "", nil, apperror.InternalError(fmt.Errorf("create api key: %w", err))
	}

	return rawKey, key, nil
}

// VerifyKey resolves a raw "<scheme>_<prefix>_<secret>" key to its
// ApiKey, rejecting revoked keys and applying per-IP failure throttling
// so a brute-force sweep across prefixes gets locked out after a
// handful of misses rather than after exhausting the whole keyspace.
func (s *CredentialServiceImpl) VerifyKey(ctx context.Context, rawKey string, clientIP string) (*domain.ApiKey, error) {
	if blocked, err := s.isIPBlocked(ctx, clientIP); err != nil {
		s.log.Warn().Err(err).Str("client_ip", clientIP).Msg("auth failure counter check failed, allowing request")
	} else if blocked {
		return nil, apperror.ErrRateLimitExceeded()
	}

	prefix, secret, ok := splitRawKey(rawKey)
	if !ok {
		s.recordAuthFailure(ctx, clientIP)
		return nil, apperror.ErrUnauthorized("invalid api key")
	}

	key, err := s.lookupByPrefix(ctx, prefix)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup api key: %w", err))
	}
	if key == nil || !key.Active {
		s.recordAuthFailure(ctx, clientIP)
		return nil, apperror.ErrUnauthorized("invalid api key")
	}

	if !s.hmacSvc.Verify(s.serverSecret, secret, key.SecretHash) {
		s.recordAuthFailure(ctx, clientIP)
		return nil, apperror.ErrUnauthorized("invalid api key")
	}

	if err := s.keyRepo.TouchLastUsed(ctx, key.ID, time.Now().UTC()); err != nil {
		s.log.Warn().Err(err).Str("prefix", prefix).Msg("failed to stamp api key last_used_at")
	}

	return key, nil
}

// RevokeKey marks a key permanently inactive. Revocation is immediate
// at the database; the Redis prefix cache entry is left to expire on
// its own TTL rather than actively invalidated, since a window of at
// most apiKeyCacheTTL during which a just-revoked key still verifies
// is an accepted tradeoff for not needing a cache-busting round trip
// on every revoke.
func (s *CredentialServiceImpl) RevokeKey(ctx context.Context, id uuid.UUID) error {
	if err := s.keyRepo.Revoke(ctx, id); err != nil {
		return apperror.InternalError(fmt.Errorf("revoke api key: %w", err))
	}
	return nil
}

// ListKeys returns every key (active or revoked) bound to an account.
func (s *CredentialServiceImpl) ListKeys(ctx context.Context, accountID uuid.UUID) ([]domain.ApiKey, error) {
	keys, err := s.keyRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list api keys: %w", err))
	}
	return keys, nil
}

func (s *CredentialServiceImpl) lookupByPrefix(ctx context.Context, prefix string) (*domain.ApiKey, error) {
	cacheKey := "apikey:" + prefix
	if cached, err := s.keyCache.Get(ctx, cacheKey); err == nil && cached != nil {
		var key domain.ApiKey
		if err := json.Unmarshal(cached, &key); err == nil {
			return &key, nil
		}
	}

	key, err := s.keyRepo.GetByPrefix(ctx, prefix)
	if err != nil {
		return nil, err
	}
	if key == nil {
		return nil, nil
	}

	if data, err := json.Marshal(key); err == nil {
		_ = s.keyCache.Set(ctx, cacheKey, data, apiKeyCacheTTL)
	}
	return key, nil
}

// isIPBlocked reports whether clientIP has already accumulated
// authFailThreshold failures within the current window. It only reads
// the counter — successful verifications never touch it — so normal
// traffic never contributes to the block decision.
func (s *CredentialServiceImpl) isIPBlocked(ctx context.Context, clientIP string) (bool, error) {
	data, err := s.keyCache.Get(ctx, authFailCacheKey(clientIP))
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}
	return parseAuthFailCount(data) >= authFailThreshold, nil
}

// recordAuthFailure increments clientIP's failure counter, sliding the
// window forward from the most recent failure.
func (s *CredentialServiceImpl) recordAuthFailure(ctx context.Context, clientIP string) {
	key := authFailCacheKey(clientIP)
	count := int64(0)
	if data, err := s.keyCache.Get(ctx, key); err == nil && data != nil {
		count = parseAuthFailCount(data)
	}
	count++
	if err := s.keyCache.Set(ctx, key, []byte(fmt.Sprintf("%d", count)), authFailWindow); err != nil {
		s.log.Warn().Err(err).Str("client_ip", clientIP).Msg("failed to record auth failure")
	}
}

func authFailCacheKey(clientIP string) string {
	return "authfail:" + clientIP
}

func parseAuthFailCount(data []byte) int64 {
	var n int64
	for _, c := range data {
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + int64(c-'0')
	}
	return n
}

// splitRawKey parses "<scheme>_<prefix>_<secret>", splitting on the
// first two underscores so a base64url secret (which never contains
// '_' as a separator here, only as valid alphabet) is never truncated.
func splitRawKey(rawKey string) (prefix, secret string, ok bool) {
	first := strings.IndexByte(rawKey, '_')
	if first < 0 {
		return "", "", false
	}
	rest := rawKey[first+1:]
	second := strings.IndexByte(rest, '_')
	if second < 0 {
		return "", "", false
	}
	return rest[:second], rest[second+1:], true
}

func generateRandomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// generateRandomSecret returns n random bytes encoded as unpadded
// url-safe base64 (e.g. 32 bytes -> 43 chars), matching token_urlsafe.
func generateRandomSecret(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
