//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_post_test
package assignment_post

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
	Assign(ctx context.Context, request entities.AssignmentRequest) (*entities.AssignmentResult, error)
}
