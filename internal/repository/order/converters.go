package order

import (
	"logiflow/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		OriginAddress: o.OriginAddress,
		OriginCity:    o.OriginCity,
		DestAddress:   o.DestAddress,
		DestCity:      o.DestCity,
		WeightKg:      o.WeightKg,
		Priority:      entities.OrderPriorityType(o.Priority),
		DeliveryType:  entities.DeliveryType(o.DeliveryType),
		Modality:      entities.ServiceModalityType(o.Modality),
		Status:        entities.OrderStatusType(o.Status),
		CourierID:     o.CourierID,
		VehicleID:     o.VehicleID,
		InvoiceID:     o.InvoiceID,
		FareAmount:    o.FareAmount,
		DistanceKm:    o.DistanceKm,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomain(&orderDB)
	}
	return result
}
