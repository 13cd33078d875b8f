package entities

import "time"

// Ключи маршрутизации topic-обменника. Wildcard-подписка order.# получает
// все события заказов.
const (
	RoutingKeyOrderCreated       = "order.created"
	RoutingKeyOrderStatusChanged = "order.status.changed"
	RoutingKeyOrderCancelled     = "order.cancelled"
)

// OrderCreatedEvent публикуется после фиксации нового заказа.
// MessageID уникален для каждой публикации и служит ключом идемпотентности
// на стороне потребителей.
type OrderCreatedEvent struct {
	MessageID    string              `json:"messageId"`
	OrderID      string              `json:"orderId"`
	CustomerID   string              `json:"customerId"`
	Origin       string              `json:"origin"`
	OriginCity   string              `json:"originCity"`
	Destination  string              `json:"destination"`
	DestCity     string              `json:"destCity"`
	WeightKg     float64             `json:"weightKg"`
	Priority     OrderPriorityType   `json:"priority"`
	State        OrderStatusType     `json:"state"`
	DeliveryType DeliveryType        `json:"deliveryType"`
	Modality     ServiceModalityType `json:"modality"`
	DistanceKm   float64             `json:"distanceKm"`
	CreatedAt    time.Time           `json:"createdAt"`
}

type OrderStatusChangedEvent struct {
	MessageID      string          `json:"messageId"`
	OrderID        string          `json:"orderId"`
	PreviousStatus OrderStatusType `json:"previousStatus"`
	NewStatus      OrderStatusType `json:"newStatus"`
	ChangedAt      time.Time       `json:"changedAt"`
	ActingUser     string          `json:"actingUser"`
	CourierID      *int64          `json:"courierId,omitempty"`
	VehicleID      *int64          `json:"vehicleId,omitempty"`
}

// OutboxMessage - событие, зафиксированное в транзакции вместе с
// изменением заказа и ожидающее публикации в брокер.
type OutboxMessage struct {
	ID         int64
	MessageID  string
	RoutingKey string
	Payload    []byte
	CreatedAt  time.Time
}

type OrderCancelledEvent struct {
	MessageID   string    `json:"messageId"`
	OrderID     string    `json:"orderId"`
	Reason      string    `json:"reason"`
	CancelledAt time.Time `json:"cancelledAt"`
	CourierID   *int64    `json:"courierId,omitempty"`
	VehicleID   *int64    `json:"vehicleId,omitempty"`
}
