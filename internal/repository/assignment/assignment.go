package assignment

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"logiflow/internal/entities"
	"logiflow/internal/repository"
	"logiflow/internal/service/fleet"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create фиксирует связь заказ-курьер-транспорт. Уникальность order_id
// защищает от двойного назначения одного заказа.
func (r *Repository) Create(ctx context.Context, assignmentEntity entities.Assignment) (*entities.Assignment, error) {
	query := `
		INSERT INTO assignments (order_id, courier_id, vehicle_id, assigned_at)
		VALUES ($1, $2, $3, $4)
		RETURNING order_id, courier_id, vehicle_id, assigned_at
	`

	var assignmentModel AssignmentDB
	err := r.querier.QueryRow(
		ctx,
		query,
		assignmentEntity.OrderID,
		assignmentEntity.CourierID,
		assignmentEntity.VehicleID,
		assignmentEntity.AssignedAt,
	).Scan(
		&assignmentModel.OrderID,
		&assignmentModel.CourierID,
		&assignmentModel.VehicleID,
		&assignmentModel.AssignedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, fleet.ErrOrderAlreadyAssigned
		}
		return nil, fmt.Errorf("unexpected assignment repository create error: %w", err)
	}

	return ToDomain(&assignmentModel), nil
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID string) (*entities.Assignment, error) {
	query := `
		SELECT order_id, courier_id, vehicle_id, assigned_at
		FROM assignments
		WHERE order_id = $1
	`

	var assignmentModel AssignmentDB
	err := r.querier.QueryRow(ctx, query, orderID).Scan(
		&assignmentModel.OrderID,
		&assignmentModel.CourierID,
		&assignmentModel.VehicleID,
		&assignmentModel.AssignedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fleet.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("unexpected assignment repository get error: %w", err)
	}

	return ToDomain(&assignmentModel), nil
}

func (r *Repository) DeleteByOrderID(ctx context.Context, orderID string) error {
	query := `DELETE FROM assignments WHERE order_id = $1`

	result, err := r.querier.Exec(ctx, query, orderID)
	if err != nil {
		return fmt.Errorf("unexpected assignment repository delete error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fleet.ErrAssignmentNotFound
	}
	return nil
}
