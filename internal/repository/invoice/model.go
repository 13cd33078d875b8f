package invoice

import "time"

type InvoiceDB struct {
	ID           string
	OrderID      string
	DeliveryType string
	DistanceKm   float64
	Amount       float64
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
