package invoice_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"logiflow/internal/entities"
	"logiflow/internal/handlers/rest/dto"
	"logiflow/internal/service/billing"
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
	var invoiceCreateDTO dto.InvoiceCreate
	err := json.NewDecoder(r.Body).Decode(&invoiceCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	request := entities.InvoiceRequest{
		OrderID:      invoiceCreateDTO.OrderID,
		DeliveryType: entities.DeliveryType(invoiceCreateDTO.DeliveryType),
		DistanceKm:   invoiceCreateDTO.DistanceKm,
		Axles:        invoiceCreateDTO.Axles,
	}

	created, err := h.service.CreateInvoice(r.Context(), request)
	if err != nil {
		switch {
		case errors.Is(err, billing.ErrInvalidOrderID),
			errors.Is(err, billing.ErrInvalidDistance),
			errors.Is(err, billing.ErrInvalidDeliveryType):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, billing.ErrInvoiceAlreadyExists):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.InvoiceFromDomain(*created))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
