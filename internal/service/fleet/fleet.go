package fleet

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"logiflow/internal/entities"
)

type Fleet struct {
	couriers    CourierRepository
	assignments AssignmentRepository
	txManager   TxManager
}

func New(
	couriers CourierRepository,
	assignments AssignmentRepository,
	txManager TxManager,
) *Fleet {
	return &Fleet{
		couriers:    couriers,
		assignments: assignments,
		txManager:   txManager,
	}
}

// Assign подбирает курьера под заказ. Кандидаты ранжируются по рейтингу,
// затем по числу завершённых доставок; строка выбранного курьера
// блокируется, поэтому конкурирующие назначения не получат одного и того
// же кандидата. Отказ в подборе - результат, а не ошибка.
func (f *Fleet) Assign(ctx context.Context, request entities.AssignmentRequest) (*entities.AssignmentResult, error) {
	if strings.TrimSpace(request.OrderID) == "" {
		return nil, ErrInvalidOrderID
	}
	if request.WeightKg <= 0 {
		return nil, ErrInvalidWeight
	}

	result := entities.AssignmentResult{OrderID: request.OrderID}

	err := f.txManager.Do(ctx, func(ctx context.Context) error {
		existing, err := f.assignments.GetByOrderID(ctx, request.OrderID)
		if err != nil && !errors.Is(err, ErrAssignmentNotFound) {
			return fmt.Errorf("check existing assignment: %w", err)
		}
		if existing != nil {
			return ErrOrderAlreadyAssigned
		}

		candidate, err := f.couriers.GetCandidateForAssignment(ctx, request.WeightKg)
		if err != nil {
			if errors.Is(err, ErrNoCandidateFound) {
				reason, reasonErr := f.rejectionReason(ctx)
				if reasonErr != nil {
					return reasonErr
				}
				result.Status = entities.AssignmentRejected
				result.Reason = &reason
				return nil
			}
			return fmt.Errorf("select candidate: %w", err)
		}

		if err := f.couriers.UpdateCourierStatus(ctx, candidate.ID, entities.CourierAvailable, entities.CourierEnRoute); err != nil {
			return fmt.Errorf("mark courier en route: %w", err)
		}

		assignment, err := f.assignments.Create(ctx, entities.Assignment{
			OrderID:    request.OrderID,
			CourierID:  candidate.ID,
			VehicleID:  *candidate.VehicleID,
			AssignedAt: time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("create assignment: %w", err)
		}

		result.Status = entities.AssignmentAccepted
		result.CourierID = &assignment.CourierID
		result.VehicleID = &assignment.VehicleID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Release освобождает курьера, закреплённого именно за этим заказом.
// Отсутствие записи назначения - не ошибка: заказ мог быть отклонён
// при подборе или уже освобождён.
func (f *Fleet) Release(ctx context.Context, orderID string, completed bool) error {
	if strings.TrimSpace(orderID) == "" {
		return ErrInvalidOrderID
	}

	return f.txManager.Do(ctx, func(ctx context.Context) error {
		assignment, err := f.assignments.GetByOrderID(ctx, orderID)
		if err != nil {
			if errors.Is(err, ErrAssignmentNotFound) {
				return nil
			}
			return fmt.Errorf("get assignment: %w", err)
		}

		if err := f.couriers.ReleaseCourier(ctx, assignment.CourierID, completed); err != nil {
			return fmt.Errorf("release courier: %w", err)
		}

		if err := f.assignments.DeleteByOrderID(ctx, orderID); err != nil {
			return fmt.Errorf("delete assignment: %w", err)
		}
		return nil
	})
}

// GetAssignment возвращает запись связи заказ-курьер-транспорт.
func (f *Fleet) GetAssignment(ctx context.Context, orderID string) (*entities.Assignment, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrInvalidOrderID
	}
	return f.assignments.GetByOrderID(ctx, orderID)
}

func (f *Fleet) rejectionReason(ctx context.Context) (entities.RejectionReasonType, error) {
	available, err := f.couriers.CountAvailableCouriers(ctx)
	if err != nil {
		return "", fmt.Errorf("count available couriers: %w", err)
	}
	if available == 0 {
		return entities.ReasonNoCouriers, nil
	}
	return entities.ReasonNoSuitableVehicle, nil
}
