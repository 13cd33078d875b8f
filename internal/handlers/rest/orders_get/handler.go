package orders_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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
	filter, err := parseFilter(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderEntities, err := h.service.GetOrders(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.OrderList{
		Orders: make([]dto.Order, 0, len(orderEntities)),
	}
	for _, orderEntity := range orderEntities {
		response.Orders = append(response.Orders, dto.OrderFromDomain(orderEntity))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func parseFilter(r *http.Request) (entities.OrderFilter, error) {
	var filter entities.OrderFilter

	query := r.URL.Query()

	if statusStr := query.Get("status"); statusStr != "" {
		status := entities.OrderStatusType(statusStr)
		filter.Status = &status
	}

	if customerID := query.Get("customerId"); customerID != "" {
		filter.CustomerID = &customerID
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			return filter, errors.New("invalid limit")
		}
		filter.Limit = limit
	}

	if offsetStr := query.Get("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			return filter, errors.New("invalid offset")
		}
		filter.Offset = offset
	}

	return filter, nil
}
