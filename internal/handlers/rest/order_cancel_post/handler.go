package order_cancel_post

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
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

	// тело необязательно: отмена без причины допустима
	var cancelDTO dto.OrderCancel
	err := json.NewDecoder(r.Body).Decode(&cancelDTO)
	if err != nil && !errors.Is(err, io.EOF) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	cancelled, err := h.service.CancelOrder(r.Context(), orderID, r.Header.Get(actingUserHeader), cancelDTO.Reason)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID):
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
	err = json.NewEncoder(w).Encode(dto.OrderFromDomain(*cancelled))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
