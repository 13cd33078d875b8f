package billing

import "time"

type invoiceRequestDTO struct {
	OrderID      string  `json:"orderId"`
	DeliveryType string  `json:"deliveryType"`
	DistanceKm   float64 `json:"distanceKm"`
	Axles        int     `json:"axles,omitempty"`
}

type invoiceDTO struct {
	ID           string    `json:"id"`
	OrderID      string    `json:"orderId"`
	DeliveryType string    `json:"deliveryType"`
	DistanceKm   float64   `json:"distanceKm"`
	Amount       float64   `json:"amount"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}
