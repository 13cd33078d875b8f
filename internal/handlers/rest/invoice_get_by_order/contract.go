//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=invoice_get_by_order_test
package invoice_get_by_order

import (
	"context"

	"logiflow/internal/entities"
	"logiflow/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetInvoiceByOrder(ctx context.Context, orderID string) (*entities.Invoice, error)
}
