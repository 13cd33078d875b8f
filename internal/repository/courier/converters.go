package courier

import (
	"logiflow/internal/entities"
)

func ToDomain(c *CourierDB) *entities.Courier {
	if c == nil {
		return nil
	}

	return &entities.Courier{
		ID:                  c.ID,
		FullName:            c.FullName,
		DocumentID:          c.DocumentID,
		Phone:               c.Phone,
		LicenseType:         entities.LicenseType(c.LicenseType),
		LicenseExpiry:       c.LicenseExpiry,
		Zone:                c.Zone,
		Status:              entities.CourierStatusType(c.Status),
		VehicleID:           c.VehicleID,
		Rating:              c.Rating,
		RatingCount:         c.RatingCount,
		CompletedDeliveries: c.CompletedDeliveries,
		FailedDeliveries:    c.FailedDeliveries,
		Active:              c.Active,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

func ToCandidateDomain(c *CandidateCourierDB) *entities.Courier {
	if c == nil {
		return nil
	}

	courier := ToDomain(&c.CourierDB)
	courier.Vehicle = &entities.Vehicle{
		ID:         *c.VehicleID,
		Plate:      c.VehiclePlate,
		Type:       entities.VehicleType(c.VehicleType),
		CapacityKg: c.VehicleCapacityKg,
		Axles:      c.VehicleAxles,
		Active:     c.VehicleActive,
	}
	return courier
}

func FromDomainModify(courierModify *entities.CourierModify) *CourierModifyDB {
	if courierModify == nil {
		return nil
	}
	courierDB := &CourierModifyDB{
		ID:                  courierModify.ID,
		FullName:            courierModify.FullName,
		DocumentID:          courierModify.DocumentID,
		Phone:               courierModify.Phone,
		LicenseExpiry:       courierModify.LicenseExpiry,
		Zone:                courierModify.Zone,
		VehicleID:           courierModify.VehicleID,
		Rating:              courierModify.Rating,
		RatingCount:         courierModify.RatingCount,
		CompletedDeliveries: courierModify.CompletedDeliveries,
		FailedDeliveries:    courierModify.FailedDeliveries,
		Active:              courierModify.Active,
	}

	if courierModify.LicenseType != nil {
		licenseType := courierModify.LicenseType.String()
		courierDB.LicenseType = &licenseType
	}
	if courierModify.Status != nil {
		statusType := courierModify.Status.String()
		courierDB.Status = &statusType
	}

	return courierDB
}

func ToDomainList(couriersDB []CourierDB) []entities.Courier {
	if len(couriersDB) == 0 {
		return []entities.Courier{}
	}

	result := make([]entities.Courier, len(couriersDB))
	for i, courierDB := range couriersDB {
		result[i] = *ToDomain(&courierDB)
	}
	return result
}
