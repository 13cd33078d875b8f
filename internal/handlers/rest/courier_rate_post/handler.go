package courier_rate_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var rateDTO dto.CourierRate
	err = json.NewDecoder(r.Body).Decode(&rateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	rated, err := h.service.RateCourier(r.Context(), id, rateDTO.Score)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrInvalidCourierID),
			errors.Is(err, courier.ErrInvalidRating):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, courier.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.CourierFromDomain(*rated))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
