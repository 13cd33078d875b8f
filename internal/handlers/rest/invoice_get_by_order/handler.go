package invoice_get_by_order

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
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
	orderID := mux.Vars(r)["orderId"]

	invoiceEntity, err := h.service.GetInvoiceByOrder(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, billing.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, billing.ErrInvoiceNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.InvoiceFromDomain(*invoiceEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
