package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logiflow/internal/entities"
)

var ErrNotificationNotFound = errors.New("notification not found")

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, notificationEntity entities.Notification) (*entities.Notification, error) {
	query := `
		INSERT INTO notifications (order_id, recipient, subject, body, type, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	created := notificationEntity
	err := r.querier.QueryRow(
		ctx,
		query,
		notificationEntity.OrderID,
		notificationEntity.Recipient,
		notificationEntity.Subject,
		notificationEntity.Body,
		notificationEntity.Type.String(),
		notificationEntity.Status.String(),
		notificationEntity.CreatedAt,
	).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository create error: %w", err)
	}

	return &created, nil
}

func (r *Repository) MarkSent(ctx context.Context, notificationID int64, sentAt time.Time) error {
	query := `
		UPDATE notifications
		SET status = 'SENT',
			sent_at = $2
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, notificationID, sentAt)
	if err != nil {
		return fmt.Errorf("unexpected notification repository mark sent error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *Repository) MarkFailed(ctx context.Context, notificationID int64) error {
	query := `
		UPDATE notifications
		SET status = 'FAILED'
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, notificationID)
	if err != nil {
		return fmt.Errorf("unexpected notification repository mark failed error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
