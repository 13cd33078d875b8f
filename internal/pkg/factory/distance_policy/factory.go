package distance_policy

import (
	"errors"
	"fmt"

	"logiflow/internal/entities"
)

var ErrUnknownModality = errors.New("unknown service modality")

// DistanceFactory оценивает плановую дистанцию по модальности сервиса.
// Реальная маршрутизация по GPS вне зоны ответственности сервиса.
type DistanceFactory struct{}

func New() *DistanceFactory {
	return &DistanceFactory{}
}

func (d *DistanceFactory) EstimateDistance(modality entities.ServiceModalityType) (float64, error) {
	switch modality {
	case entities.ModalityUrbanExpress:
		return 10.0, nil
	case entities.ModalityIntermunicipal:
		return 50.0, nil
	case entities.ModalityNational:
		return 200.0, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownModality, modality)
	}
}
