package assignment

import (
	"logiflow/internal/entities"
)

func ToDomain(a *AssignmentDB) *entities.Assignment {
	if a == nil {
		return nil
	}

	return &entities.Assignment{
		OrderID:    a.OrderID,
		CourierID:  a.CourierID,
		VehicleID:  a.VehicleID,
		AssignedAt: a.AssignedAt,
	}
}
