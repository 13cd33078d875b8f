package order

import (
	"strings"

	"logiflow/internal/entities"
)

// Зона покрытия. Оркестратор принимает заказы только между городами
// из этого списка.
var coveredCities = map[string]struct{}{
	"Bogota":       {},
	"Medellin":     {},
	"Cali":         {},
	"Barranquilla": {},
	"Cartagena":    {},
	"Bucaramanga":  {},
}

// Соответствие модальности сервиса типу доставки для тарификации.
var modalityByDeliveryType = map[entities.DeliveryType]entities.ServiceModalityType{
	entities.DeliveryUrban:          entities.ModalityUrbanExpress,
	entities.DeliveryIntermunicipal: entities.ModalityIntermunicipal,
	entities.DeliveryNational:       entities.ModalityNational,
}

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}

func isCityCovered(city string) bool {
	_, ok := coveredCities[city]
	return ok
}

func isValidPriority(priority entities.OrderPriorityType) bool {
	switch priority {
	case entities.PriorityLow, entities.PriorityMedium, entities.PriorityHigh, entities.PriorityUrgent:
		return true
	default:
		return false
	}
}

func isValidStatus(status entities.OrderStatusType) bool {
	switch status {
	case entities.OrderPending, entities.OrderAssigned, entities.OrderInTransit,
		entities.OrderDelivered, entities.OrderCancelled:
		return true
	default:
		return false
	}
}

func validateDraft(draft entities.Order) error {
	if strings.TrimSpace(draft.CustomerID) == "" ||
		strings.TrimSpace(draft.OriginAddress) == "" ||
		strings.TrimSpace(draft.DestAddress) == "" ||
		strings.TrimSpace(draft.OriginCity) == "" ||
		strings.TrimSpace(draft.DestCity) == "" {
		return ErrMissingRequiredFields
	}

	if draft.WeightKg <= 0 {
		return ErrInvalidWeight
	}

	if draft.Priority != "" && !isValidPriority(draft.Priority) {
		return ErrInvalidPriority
	}

	expectedModality, ok := modalityByDeliveryType[draft.DeliveryType]
	if !ok {
		return ErrInvalidDeliveryType
	}

	if draft.Modality == "" {
		return ErrInvalidModality
	}
	if draft.Modality != expectedModality {
		return ErrModalityMismatch
	}

	if !isCityCovered(draft.OriginCity) || !isCityCovered(draft.DestCity) {
		return ErrCoverageNotAvailable
	}

	return nil
}
