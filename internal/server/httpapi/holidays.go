package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"teamcal/internal/common"
)

func (s *Server) handleListHolidays(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())

	holidays, err := s.holidays.List(r.Context(), claims)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]holidayDTO, 0, len(holidays))
	for i := range holidays {
		out = append(out, toHolidayDTO(&holidays[i]))
	}
	JSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateHoliday(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())

	var req createHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.ErrValidation)
		return
	}

	// Reject malformed dates before they reach the service layer.
	if _, err := time.Parse(holidayDateFormat, req.Date); err != nil {
		writeError(w, common.ErrValidation)
		return
	}

	holiday, err := s.holidays.Create(r.Context(), claims, req.Name, req.Date)
	if err != nil {
		writeError(w, err)
		return
	}

	JSON(w, http.StatusCreated, toHolidayDTO(holiday))
}

func (s *Server) handleDeleteHoliday(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())

	if err := s.holidays.Delete(r.Context(), claims, chi.URLParam(r, "holidayID")); err != nil {
		writeError(w, err)
		return
	}

	JSON(w, http.StatusOK, nil)
}
