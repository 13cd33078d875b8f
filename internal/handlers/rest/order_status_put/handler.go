package order_status_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"logiflow/internal/entities"
	"logiflow/internal/handlers/rest/dto"
	"logiflow/internal/service/order"
	"logiflow/pkg/logger"
)

const actingUserHeader = "X-Acting-User"

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
	orderID := mux.Vars(r)["id"]

	var statusDTO dto.OrderStatusUpdate
	err := json.NewDecoder(r.Body).Decode(&statusDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	updated, err := h.service.UpdateOrderStatus(
		r.Context(),
		orderID,
		entities.OrderStatusType(statusDTO.Status),
		r.Header.Get(actingUserHeader),
	)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID),
			errors.Is(err, order.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrOrderAlreadyCancelled),
			errors.Is(err, order.ErrOrderAlreadyDelivered),
			errors.Is(err, order.ErrOrderStateConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.OrderFromDomain(*updated))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
