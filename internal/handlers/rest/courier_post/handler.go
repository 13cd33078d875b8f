package courier_post

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
	var courierCreateDTO dto.CourierCreate
	err := json.NewDecoder(r.Body).Decode(&courierCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	licenseType := entities.LicenseType(courierCreateDTO.LicenseType)
	courierModifyEntity := entities.CourierModify{
		FullName:      &courierCreateDTO.FullName,
		DocumentID:    &courierCreateDTO.DocumentID,
		Phone:         &courierCreateDTO.Phone,
		LicenseType:   &licenseType,
		LicenseExpiry: &courierCreateDTO.LicenseExpiry,
		VehicleID:     courierCreateDTO.VehicleID,
	}
	if courierCreateDTO.Zone != "" {
		courierModifyEntity.Zone = &courierCreateDTO.Zone
	}
	if courierCreateDTO.Status != "" {
		statusType := entities.CourierStatusType(courierCreateDTO.Status)
		courierModifyEntity.Status = &statusType
	}

	id, err := h.service.CreateCourier(r.Context(), courierModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrMissingRequiredFields),
			errors.Is(err, courier.ErrInvalidName),
			errors.Is(err, courier.ErrInvalidDocument),
			errors.Is(err, courier.ErrInvalidPhone),
			errors.Is(err, courier.ErrInvalidStatus),
			errors.Is(err, courier.ErrInvalidLicense):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, courier.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CourierCreateResponse{
		ID: id,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
