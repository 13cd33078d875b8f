package order

import "time"

type OrderDB struct {
	ID            string
	CustomerID    string
	OriginAddress string
	OriginCity    string
	DestAddress   string
	DestCity      string
	WeightKg      float64
	Priority      string
	DeliveryType  string
	Modality      string
	Status        string
	CourierID     *int64
	VehicleID     *int64
	InvoiceID     *string
	FareAmount    *float64
	DistanceKm    *float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
