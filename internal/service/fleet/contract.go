//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=fleet_test
package fleet

import (
	"context"

	"logiflow/internal/entities"
)

type CourierRepository interface {
	// GetCandidateForAssignment возвращает лучшего доступного курьера
	// с подходящим транспортом и блокирует его строку до конца транзакции.
	GetCandidateForAssignment(ctx context.Context, weightKg float64) (*entities.Courier, error)

	CountAvailableCouriers(ctx context.Context) (int64, error)
	UpdateCourierStatus(ctx context.Context, courierID int64, from, to entities.CourierStatusType) error
	ReleaseCourier(ctx context.Context, courierID int64, completed bool) error
}

type AssignmentRepository interface {
	Create(ctx context.Context, assignment entities.Assignment) (*entities.Assignment, error)
	GetByOrderID(ctx context.Context, orderID string) (*entities.Assignment, error)
	DeleteByOrderID(ctx context.Context, orderID string) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
