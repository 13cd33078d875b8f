package courier

import (
	"context"
	"fmt"

	"logiflow/internal/entities"
)

type Courier struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Courier {
	return &Courier{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Courier) CreateCourier(ctx context.Context, courierModify entities.CourierModify) (int64, error) {
	if courierModify.FullName == nil ||
		courierModify.DocumentID == nil ||
		courierModify.Phone == nil ||
		courierModify.LicenseType == nil ||
		courierModify.LicenseExpiry == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidName(*courierModify.FullName) {
		return 0, ErrInvalidName
	}
	if !isValidDocument(*courierModify.DocumentID) {
		return 0, ErrInvalidDocument
	}
	if !isValidPhone(*courierModify.Phone) {
		return 0, ErrInvalidPhone
	}
	if !isValidLicense(courierModify.LicenseType.String()) {
		return 0, ErrInvalidLicense
	}
	if courierModify.Status != nil && !isValidStatus(courierModify.Status.String()) {
		return 0, ErrInvalidStatus
	}

	id, err := s.repository.Create(ctx, courierModify)
	if err != nil {
		return 0, fmt.Errorf("create courier: %w", err)
	}

	return id, nil
}

func (s *Courier) UpdateCourier(ctx context.Context, courierModify entities.CourierModify) (*entities.Courier, error) {
	if courierModify.FullName == nil &&
		courierModify.Phone == nil &&
		courierModify.Status == nil &&
		courierModify.Zone == nil &&
		courierModify.VehicleID == nil &&
		courierModify.LicenseType == nil &&
		courierModify.LicenseExpiry == nil &&
		courierModify.Rating == nil &&
		courierModify.RatingCount == nil &&
		courierModify.Active == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if courierModify.FullName != nil && !isValidName(*courierModify.FullName) {
		return nil, ErrInvalidName
	}
	if courierModify.Phone != nil && !isValidPhone(*courierModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if courierModify.Status != nil && !isValidStatus(courierModify.Status.String()) {
		return nil, ErrInvalidStatus
	}
	if courierModify.LicenseType != nil && !isValidLicense(courierModify.LicenseType.String()) {
		return nil, ErrInvalidLicense
	}

	courier, err := s.repository.Update(ctx, courierModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update courier: %w", err)
	}
	return courier, nil
}

func (s *Courier) GetCourier(ctx context.Context, id int64) (*entities.Courier, error) {
	courier, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get courier: %w", err)
	}

	return courier, nil
}

func (s *Courier) GetCouriers(ctx context.Context) ([]entities.Courier, error) {
	couriers, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get couriers: %w", err)
	}

	return couriers, nil
}

// RateCourier добавляет оценку 1..5 и пересчитывает скользящий средний
// рейтинг. Пересчёт и запись выполняются в одной транзакции.
func (s *Courier) RateCourier(ctx context.Context, id int64, score int) (*entities.Courier, error) {
	if id <= 0 {
		return nil, ErrInvalidCourierID
	}
	if !isValidScore(score) {
		return nil, ErrInvalidRating
	}

	var rated *entities.Courier
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get courier: %w", err)
		}

		newCount := current.RatingCount + 1
		newRating := (current.EffectiveRating()*float64(current.RatingCount) + float64(score)) / float64(newCount)

		rated, err = s.repository.Update(ctx, entities.CourierModify{
			ID:          &id,
			Rating:      &newRating,
			RatingCount: &newCount,
		})
		if err != nil {
			return fmt.Errorf("update courier rating: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rated, nil
}
