package assignment_release_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"logiflow/internal/handlers/rest/dto"
	"logiflow/internal/service/fleet"
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
	var releaseDTO dto.AssignmentRelease
	err := json.NewDecoder(r.Body).Decode(&releaseDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.Release(r.Context(), releaseDTO.OrderID, releaseDTO.Completed)
	if err != nil {
		switch {
		case errors.Is(err, fleet.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, fleet.ErrCourierStateConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
