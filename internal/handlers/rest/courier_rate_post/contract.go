//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_rate_post_test
package courier_rate_post

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
	RateCourier(ctx context.Context, id int64, score int) (*entities.Courier, error)
}
