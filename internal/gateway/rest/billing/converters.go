package billing

import "logiflow/internal/entities"

func fromDomainRequest(request entities.InvoiceRequest) invoiceRequestDTO {
	return invoiceRequestDTO{
		OrderID:      request.OrderID,
		DeliveryType: request.DeliveryType.String(),
		DistanceKm:   request.DistanceKm,
		Axles:        request.Axles,
	}
}

func toDomain(dto invoiceDTO) *entities.Invoice {
	return &entities.Invoice{
		ID:           dto.ID,
		OrderID:      dto.OrderID,
		DeliveryType: entities.DeliveryType(dto.DeliveryType),
		DistanceKm:   dto.DistanceKm,
		Amount:       dto.Amount,
		Status:       entities.InvoiceStatusType(dto.Status),
		CreatedAt:    dto.CreatedAt,
	}
}
