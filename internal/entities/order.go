package entities

import "time"

type Order struct {
	ID            string
	CustomerID    string
	OriginAddress string
	OriginCity    string
	DestAddress   string
	DestCity      string
	WeightKg      float64
	Priority      OrderPriorityType
	DeliveryType  DeliveryType
	Modality      ServiceModalityType
	Status        OrderStatusType
	CourierID     *int64
	VehicleID     *int64
	InvoiceID     *string
	FareAmount    *float64
	DistanceKm    *float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type OrderStatusType string

const (
	OrderPending   OrderStatusType = "PENDING"
	OrderAssigned  OrderStatusType = "ASSIGNED"
	OrderInTransit OrderStatusType = "IN_TRANSIT"
	OrderDelivered OrderStatusType = "DELIVERED"
	OrderCancelled OrderStatusType = "CANCELLED"
)

const DefaultOrderStatus = OrderPending

func (s OrderStatusType) String() string {
	return string(s)
}

// CanTransitionTo кодирует граф жизненного цикла заказа:
// PENDING -> ASSIGNED -> IN_TRANSIT -> DELIVERED, отмена возможна
// только из PENDING и ASSIGNED. DELIVERED и CANCELLED - терминальные.
func (s OrderStatusType) CanTransitionTo(next OrderStatusType) bool {
	switch s {
	case OrderPending:
		return next == OrderAssigned || next == OrderCancelled
	case OrderAssigned:
		return next == OrderInTransit || next == OrderCancelled
	case OrderInTransit:
		return next == OrderDelivered
	default:
		return false
	}
}

func (s OrderStatusType) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

type OrderPriorityType string

const (
	PriorityLow    OrderPriorityType = "LOW"
	PriorityMedium OrderPriorityType = "MEDIUM"
	PriorityHigh   OrderPriorityType = "HIGH"
	PriorityUrgent OrderPriorityType = "URGENT"
)

const DefaultOrderPriority = PriorityMedium

func (p OrderPriorityType) String() string {
	return string(p)
}

type DeliveryType string

const (
	DeliveryUrban          DeliveryType = "URBAN"
	DeliveryIntermunicipal DeliveryType = "INTERMUNICIPAL"
	DeliveryNational       DeliveryType = "NATIONAL"
)

func (t DeliveryType) String() string {
	return string(t)
}

type ServiceModalityType string

const (
	ModalityUrbanExpress   ServiceModalityType = "URBANA_RAPIDA"
	ModalityIntermunicipal ServiceModalityType = "INTERMUNICIPAL"
	ModalityNational       ServiceModalityType = "NACIONAL"
)

func (m ServiceModalityType) String() string {
	return string(m)
}

type OrderFilter struct {
	Status     *OrderStatusType
	CustomerID *string
	Limit      int
	Offset     int
}

type OrderModify struct {
	ID         *string
	Status     *OrderStatusType
	CourierID  *int64
	VehicleID  *int64
	InvoiceID  *string
	FareAmount *float64
	DistanceKm *float64
}
