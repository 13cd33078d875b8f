package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"logiflow/internal/entities"
	"logiflow/internal/handlers/rest/dto"
	"logiflow/internal/service/order"
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
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	draft := entities.Order{
		CustomerID:    orderCreateDTO.CustomerID,
		OriginAddress: orderCreateDTO.OriginAddress,
		OriginCity:    orderCreateDTO.OriginCity,
		DestAddress:   orderCreateDTO.DestAddress,
		DestCity:      orderCreateDTO.DestCity,
		WeightKg:      orderCreateDTO.WeightKg,
		Priority:      entities.OrderPriorityType(orderCreateDTO.Priority),
		DeliveryType:  entities.DeliveryType(orderCreateDTO.DeliveryType),
		Modality:      entities.ServiceModalityType(orderCreateDTO.Modality),
	}

	created, err := h.service.CreateOrder(r.Context(), draft)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidWeight),
			errors.Is(err, order.ErrInvalidPriority),
			errors.Is(err, order.ErrInvalidDeliveryType),
			errors.Is(err, order.ErrInvalidModality),
			errors.Is(err, order.ErrModalityMismatch):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrCoverageNotAvailable):
			w.WriteHeader(http.StatusUnprocessableEntity)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.OrderFromDomain(*created))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
