package assignment_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"logiflow/internal/entities"
	"logiflow/internal/handlers/rest/dto"
	"logiflow/internal/service/fleet"
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
	var requestDTO dto.AssignmentRequest
	err := json.NewDecoder(r.Body).Decode(&requestDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	request := entities.AssignmentRequest{
		OrderID:      requestDTO.OrderID,
		WeightKg:     requestDTO.WeightKg,
		Priority:     entities.OrderPriorityType(requestDTO.Priority),
		DeliveryType: entities.DeliveryType(requestDTO.DeliveryType),
		Modality:     entities.ServiceModalityType(requestDTO.Modality),
		OriginCity:   requestDTO.OriginCity,
		DestCity:     requestDTO.DestCity,
	}

	result, err := h.service.Assign(r.Context(), request)
	if err != nil {
		switch {
		case errors.Is(err, fleet.ErrInvalidOrderID),
			errors.Is(err, fleet.ErrInvalidWeight):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, fleet.ErrOrderAlreadyAssigned):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.AssignmentResultFromDomain(*result))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
