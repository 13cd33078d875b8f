package dto

import "logiflow/internal/entities"

func OrderFromDomain(orderEntity entities.Order) Order {
	return Order{
		ID:            orderEntity.ID,
		CustomerID:    orderEntity.CustomerID,
		OriginAddress: orderEntity.OriginAddress,
		OriginCity:    orderEntity.OriginCity,
		DestAddress:   orderEntity.DestAddress,
		DestCity:      orderEntity.DestCity,
		WeightKg:      orderEntity.WeightKg,
		Priority:      orderEntity.Priority.String(),
		DeliveryType:  orderEntity.DeliveryType.String(),
		Modality:      orderEntity.Modality.String(),
		Status:        orderEntity.Status.String(),
		CourierID:     orderEntity.CourierID,
		VehicleID:     orderEntity.VehicleID,
		InvoiceID:     orderEntity.InvoiceID,
		FareAmount:    orderEntity.FareAmount,
		DistanceKm:    orderEntity.DistanceKm,
		CreatedAt:     orderEntity.CreatedAt,
		UpdatedAt:     orderEntity.UpdatedAt,
	}
}

func CourierFromDomain(courierEntity entities.Courier) Courier {
	return Courier{
		ID:                  courierEntity.ID,
		FullName:            courierEntity.FullName,
		DocumentID:          courierEntity.DocumentID,
		Phone:               courierEntity.Phone,
		LicenseType:         courierEntity.LicenseType.String(),
		LicenseExpiry:       courierEntity.LicenseExpiry,
		Zone:                courierEntity.Zone,
		Status:              courierEntity.Status.String(),
		VehicleID:           courierEntity.VehicleID,
		Rating:              courierEntity.Rating,
		CompletedDeliveries: courierEntity.CompletedDeliveries,
		FailedDeliveries:    courierEntity.FailedDeliveries,
		Active:              courierEntity.Active,
	}
}

func InvoiceFromDomain(invoiceEntity entities.Invoice) Invoice {
	return Invoice{
		ID:           invoiceEntity.ID,
		OrderID:      invoiceEntity.OrderID,
		DeliveryType: invoiceEntity.DeliveryType.String(),
		DistanceKm:   invoiceEntity.DistanceKm,
		Amount:       invoiceEntity.Amount,
		Status:       invoiceEntity.Status.String(),
		CreatedAt:    invoiceEntity.CreatedAt,
	}
}

func AssignmentResultFromDomain(result entities.AssignmentResult) AssignmentResult {
	dtoResult := AssignmentResult{
		OrderID:   result.OrderID,
		Status:    result.Status.String(),
		CourierID: result.CourierID,
		VehicleID: result.VehicleID,
	}

	if result.Reason != nil {
		reason := result.Reason.String()
		dtoResult.Reason = &reason
	}

	return dtoResult
}
