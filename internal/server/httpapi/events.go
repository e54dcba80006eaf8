package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"teamcal/internal/common"
)

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())

	events, err := s.events.List(r.Context(), claims)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]eventDTO, 0, len(events))
	for i := range events {
		out = append(out, toEventDTO(&events[i]))
	}
	JSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())

	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.ErrValidation)
		return
	}

	event, err := s.events.Create(r.Context(), claims, req.toModel())
	if err != nil {
		writeError(w, err)
		return
	}

	JSON(w, http.StatusCreated, toEventDTO(event))
}

func (s *Server) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())

	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.ErrValidation)
		return
	}

	event, err := s.events.Update(r.Context(), claims, chi.URLParam(r, "eventID"), req.toModel())
	if err != nil {
		writeError(w, err)
		return
	}

	JSON(w, http.StatusOK, toEventDTO(event))
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())

	if err := s.events.Delete(r.Context(), claims, chi.URLParam(r, "eventID")); err != nil {
		writeError(w, err)
		return
	}

	JSON(w, http.StatusOK, nil)
}
