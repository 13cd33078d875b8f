// Package dto содержит транспортные структуры REST API.
package dto

import "time"

type OrderCreate struct {
	CustomerID    string  `json:"customerId"`
	OriginAddress string  `json:"originAddress"`
	OriginCity    string  `json:"originCity"`
	DestAddress   string  `json:"destAddress"`
	DestCity      string  `json:"destCity"`
	WeightKg      float64 `json:"weightKg"`
	Priority      string  `json:"priority,omitempty"`
	DeliveryType  string  `json:"deliveryType"`
	Modality      string  `json:"modality"`
}

type Order struct {
	ID            string    `json:"id"`
	CustomerID    string    `json:"customerId"`
	OriginAddress string    `json:"originAddress"`
	OriginCity    string    `json:"originCity"`
	DestAddress   string    `json:"destAddress"`
	DestCity      string    `json:"destCity"`
	WeightKg      float64   `json:"weightKg"`
	Priority      string    `json:"priority"`
	DeliveryType  string    `json:"deliveryType"`
	Modality      string    `json:"modality"`
	Status        string    `json:"status"`
	CourierID     *int64    `json:"courierId,omitempty"`
	VehicleID     *int64    `json:"vehicleId,omitempty"`
	InvoiceID     *string   `json:"invoiceId,omitempty"`
	FareAmount    *float64  `json:"fareAmount,omitempty"`
	DistanceKm    *float64  `json:"distanceKm,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type OrderList struct {
	Orders []Order `json:"orders"`
}

type OrderCancel struct {
	Reason string `json:"reason,omitempty"`
}

type OrderStatusUpdate struct {
	Status string `json:"status"`
}

type AssignmentRequest struct {
	OrderID      string  `json:"orderId"`
	WeightKg     float64 `json:"weightKg"`
	Priority     string  `json:"priority,omitempty"`
	DeliveryType string  `json:"deliveryType"`
	Modality     string  `json:"modality"`
	OriginCity   string  `json:"originCity"`
	DestCity     string  `json:"destCity"`
}

type AssignmentResult struct {
	OrderID   string  `json:"orderId"`
	Status    string  `json:"status"`
	CourierID *int64  `json:"courierId,omitempty"`
	VehicleID *int64  `json:"vehicleId,omitempty"`
	Reason    *string `json:"reason,omitempty"`
}

type AssignmentRelease struct {
	OrderID   string `json:"orderId"`
	Completed bool   `json:"completed"`
}

type InvoiceCreate struct {
	OrderID      string  `json:"orderId"`
	DeliveryType string  `json:"deliveryType"`
	DistanceKm   float64 `json:"distanceKm"`
	Axles        int     `json:"axles,omitempty"`
}

type Invoice struct {
	ID           string    `json:"id"`
	OrderID      string    `json:"orderId"`
	DeliveryType string    `json:"deliveryType"`
	DistanceKm   float64   `json:"distanceKm"`
	Amount       float64   `json:"amount"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CourierCreate struct {
	FullName      string    `json:"fullName"`
	DocumentID    string    `json:"documentId"`
	Phone         string    `json:"phone"`
	LicenseType   string    `json:"licenseType"`
	LicenseExpiry time.Time `json:"licenseExpiry"`
	Zone          string    `json:"zone,omitempty"`
	Status        string    `json:"status,omitempty"`
	VehicleID     *int64    `json:"vehicleId,omitempty"`
}

type CourierCreateResponse struct {
	ID int64 `json:"id"`
}

type CourierUpdate struct {
	ID            int64      `json:"id"`
	FullName      *string    `json:"fullName,omitempty"`
	Phone         *string    `json:"phone,omitempty"`
	LicenseType   *string    `json:"licenseType,omitempty"`
	LicenseExpiry *time.Time `json:"licenseExpiry,omitempty"`
	Zone          *string    `json:"zone,omitempty"`
	Status        *string    `json:"status,omitempty"`
	VehicleID     *int64     `json:"vehicleId,omitempty"`
}

type Courier struct {
	ID                  int64     `json:"id"`
	FullName            string    `json:"fullName"`
	DocumentID          string    `json:"documentId"`
	Phone               string    `json:"phone"`
	LicenseType         string    `json:"licenseType"`
	LicenseExpiry       time.Time `json:"licenseExpiry"`
	Zone                string    `json:"zone,omitempty"`
	Status              string    `json:"status"`
	VehicleID           *int64    `json:"vehicleId,omitempty"`
	Rating              *float64  `json:"rating,omitempty"`
	CompletedDeliveries int       `json:"completedDeliveries"`
	FailedDeliveries    int       `json:"failedDeliveries"`
	Active              bool      `json:"active"`
}

type CourierList struct {
	Couriers []Courier `json:"couriers"`
}

type CourierRate struct {
	Score int `json:"score"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
