//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_status_changed_test
package order_status_changed

import (
	"context"

	"logiflow/internal/entities"
	"logiflow/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	HandleOrderStatusChanged(ctx context.Context, event entities.OrderStatusChangedEvent) error
}

type InboxRepository interface {
	TryInsert(ctx context.Context, messageID, eventType string) (bool, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
