package entities

import "time"

// Assignment - явная запись связи заказ-курьер-транспорт. Снятие
// назначения ищет курьера через эту запись, а не по статусу.
type Assignment struct {
	OrderID    string
	CourierID  int64
	VehicleID  int64
	AssignedAt time.Time
}

type AssignmentStatusType string

const (
	AssignmentAccepted AssignmentStatusType = "ASSIGNED"
	AssignmentRejected AssignmentStatusType = "REJECTED"
)

func (t AssignmentStatusType) String() string {
	return string(t)
}

type RejectionReasonType string

const (
	ReasonNoCouriers        RejectionReasonType = "NO_COURIERS"
	ReasonNoSuitableVehicle RejectionReasonType = "NO_SUITABLE_VEHICLE"
)

func (t RejectionReasonType) String() string {
	return string(t)
}

// AssignmentRequest - заявка оркестратора на подбор курьера.
type AssignmentRequest struct {
	OrderID      string
	WeightKg     float64
	Priority     OrderPriorityType
	DeliveryType DeliveryType
	Modality     ServiceModalityType
	OriginCity   string
	DestCity     string
}

// AssignmentResult - трёхзначный результат подбора: назначено,
// отклонено с причиной, либо ошибка (возвращается отдельно).
type AssignmentResult struct {
	OrderID   string
	Status    AssignmentStatusType
	CourierID *int64
	VehicleID *int64
	Reason    *RejectionReasonType
}
