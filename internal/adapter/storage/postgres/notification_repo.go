package postgres

import (
	"context"

	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/internal/core/ports"

	"github.com/jackc/pgx/v5/pgxpool"
)

type notificationRepo struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository creates a PostgreSQL-backed NotificationRepository.
func NewNotificationRepository(pool *pgxpool.Pool) ports.NotificationRepository {
	return &notificationRepo{pool: pool}
}

func (r *notificationRepo) Create(ctx context.Context, log *domain.NotificationDeliveryLog) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO notification_delivery_logs (id, account_id, kind, payload, delivered, last_error, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		log.ID, log.AccountID, string(log.Kind), log.Payload, log.Delivered, log.LastError, log.CreatedAt,
	)
	return err
}
