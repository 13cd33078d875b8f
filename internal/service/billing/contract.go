//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=billing_test
package billing

import (
	"context"

	"logiflow/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, invoice entities.Invoice) (*entities.Invoice, error)
	GetByID(ctx context.Context, invoiceID string) (*entities.Invoice, error)
	GetByOrderID(ctx context.Context, orderID string) (*entities.Invoice, error)

	// UpdateStatus выполняет compare-and-set по текущему статусу.
	UpdateStatus(ctx context.Context, invoiceID string, from, to entities.InvoiceStatusType) (*entities.Invoice, error)
}

type TariffPolicy interface {
	Calculate(deliveryType entities.DeliveryType, distanceKm float64, axles int) (float64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
