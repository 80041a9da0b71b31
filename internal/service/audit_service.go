package service

import (
	"context"
	"time"

	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/internal/core/ports"
	"secure-payment-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// auditService implements ports.AuditService.
type auditService struct {
	repo ports.AuditRepository // nil = persistence disabled, log-only
	log  zerolog.Logger
}

// NewAuditService creates a new audit service. If repo is nil, entries
// are only written to the structured logger.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Record persists one audited action to the append-only AuditLog trail.
// Its only caller here is middleware.AuditLog, which records successful
// POST /payment/topup, POST /api_keys and DELETE /api_keys/{prefix}
// requests; the balance, usage, credential and webhook paths do not call
// it themselves, so webhook credits and usage debits are not audited.
func (s *auditService) Record(ctx context.Context, accountID *uuid.UUID, action domain.AuditAction, resourceType, resourceID, details, ip string) error {
	entry := &domain.AuditLog{
		ID:           uuid.New(),
		AccountID:    accountID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Details:      details,
		IPAddress:    ip,
		CreatedAt:    time.Now().UTC(),
	}

	logEvent := s.log.Info().Str("action", string(action)).Str("resource_type", resourceType).Str("resource_id", resourceID).Str("ip", ip)
	if accountID != nil {
		logEvent = logEvent.Str("account_id", accountID.String())
	}
	logEvent.Msg("audit")

	if s.repo == nil {
		return nil
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	return nil
}
