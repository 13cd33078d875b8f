//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"
	"time"

	"logiflow/internal/entities"
	"logiflow/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, notification entities.Notification) (*entities.Notification, error)
	MarkSent(ctx context.Context, notificationID int64, sentAt time.Time) error
	MarkFailed(ctx context.Context, notificationID int64) error
}

// Sender - внешний канал доставки уведомлений (почта, push и т.п.).
type Sender interface {
	Send(ctx context.Context, notification entities.Notification) error
}

type serviceLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
