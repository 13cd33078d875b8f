package fleet

import "logiflow/internal/entities"

func fromDomainRequest(request entities.AssignmentRequest) assignmentRequestDTO {
	return assignmentRequestDTO{
		OrderID:      request.OrderID,
		WeightKg:     request.WeightKg,
		Priority:     request.Priority.String(),
		DeliveryType: request.DeliveryType.String(),
		Modality:     request.Modality.String(),
		OriginCity:   request.OriginCity,
		DestCity:     request.DestCity,
	}
}

func toDomain(dto assignmentResultDTO) *entities.AssignmentResult {
	result := entities.AssignmentResult{
		OrderID:   dto.OrderID,
		Status:    entities.AssignmentStatusType(dto.Status),
		CourierID: dto.CourierID,
		VehicleID: dto.VehicleID,
	}

	if dto.Reason != nil {
		reason := entities.RejectionReasonType(*dto.Reason)
		result.Reason = &reason
	}

	return &result
}
