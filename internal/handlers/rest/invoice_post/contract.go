//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=invoice_post_test
package invoice_post

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
	CreateInvoice(ctx context.Context, request entities.InvoiceRequest) (*entities.Invoice, error)
}
