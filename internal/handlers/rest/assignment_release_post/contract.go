//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_release_post_test
package assignment_release_post

import (
	"context"

	"logiflow/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Release(ctx context.Context, orderID string, completed bool) error
}
