package fleet

type assignmentRequestDTO struct {
	OrderID      string  `json:"orderId"`
	WeightKg     float64 `json:"weightKg"`
	Priority     string  `json:"priority"`
	DeliveryType string  `json:"deliveryType"`
	Modality     string  `json:"modality"`
	OriginCity   string  `json:"originCity"`
	DestCity     string  `json:"destCity"`
}

type assignmentResultDTO struct {
	OrderID   string  `json:"orderId"`
	Status    string  `json:"status"`
	CourierID *int64  `json:"courierId,omitempty"`
	VehicleID *int64  `json:"vehicleId,omitempty"`
	Reason    *string `json:"reason,omitempty"`
}

type releaseRequestDTO struct {
	OrderID   string `json:"orderId"`
	Completed bool   `json:"completed"`
}
