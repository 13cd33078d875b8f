//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_put_test
package courier_put

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
	UpdateCourier(ctx context.Context, courierModifyEntity entities.CourierModify) (*entities.Courier, error)
}
