package courier_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"logiflow/internal/entities"
	"logiflow/internal/handlers/rest/dto"
	"logiflow/internal/service/courier"
	"logiflow/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var courierUpdateDTO dto.CourierUpdate
	err := json.NewDecoder(r.Body).Decode(&courierUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	courierModifyEntity := entities.CourierModify{
		ID: &courierUpdateDTO.ID,
	}

	// Опциональные параметры
	if courierUpdateDTO.FullName != nil {
		courierModifyEntity.FullName = courierUpdateDTO.FullName
	}
	if courierUpdateDTO.Phone != nil {
		courierModifyEntity.Phone = courierUpdateDTO.Phone
	}
	if courierUpdateDTO.LicenseType != nil {
		licenseType := entities.LicenseType(*courierUpdateDTO.LicenseType)
		courierModifyEntity.LicenseType = &licenseType
	}
	if courierUpdateDTO.LicenseExpiry != nil {
		courierModifyEntity.LicenseExpiry = courierUpdateDTO.LicenseExpiry
	}
	if courierUpdateDTO.Zone != nil {
		courierModifyEntity.Zone = courierUpdateDTO.Zone
	}
	if courierUpdateDTO.Status != nil {
		statusType := entities.CourierStatusType(*courierUpdateDTO.Status)
		courierModifyEntity.Status = &statusType
	}
	if courierUpdateDTO.VehicleID != nil {
		courierModifyEntity.VehicleID = courierUpdateDTO.VehicleID
	}

	res, err := h.service.UpdateCourier(r.Context(), courierModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrMissingRequiredFields),
			errors.Is(err, courier.ErrInvalidCourierID),
			errors.Is(err, courier.ErrInvalidName),
			errors.Is(err, courier.ErrInvalidPhone),
			errors.Is(err, courier.ErrInvalidStatus),
			errors.Is(err, courier.ErrInvalidLicense):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, courier.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, courier.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.CourierFromDomain(*res))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
