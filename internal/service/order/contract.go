//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"logiflow/internal/entities"
	"logiflow/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) (*entities.Order, error)
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
	List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)

	// UpdateStatus выполняет compare-and-set: строка обновляется только
	// если текущий статус равен from, иначе ErrStateConflict.
	UpdateStatus(ctx context.Context, orderID string, from, to entities.OrderStatusType) (*entities.Order, error)
}

type OutboxRepository interface {
	Append(ctx context.Context, messageID, routingKey string, payload []byte) error
}

type BillingGateway interface {
	CreateInvoice(ctx context.Context, request entities.InvoiceRequest) (*entities.Invoice, error)
}

type FleetGateway interface {
	Assign(ctx context.Context, request entities.AssignmentRequest) (*entities.AssignmentResult, error)
	Release(ctx context.Context, orderID string, completed bool) error
}

type DistancePolicy interface {
	EstimateDistance(modality entities.ServiceModalityType) (float64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
