package invoice

import (
	"logiflow/internal/entities"
)

func ToDomain(i *InvoiceDB) *entities.Invoice {
	if i == nil {
		return nil
	}

	return &entities.Invoice{
		ID:           i.ID,
		OrderID:      i.OrderID,
		DeliveryType: entities.DeliveryType(i.DeliveryType),
		DistanceKm:   i.DistanceKm,
		Amount:       i.Amount,
		Status:       entities.InvoiceStatusType(i.Status),
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}
