package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"teamcal/internal/common"
)

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.ErrValidation)
		return
	}

	token, err := s.users.Login(r.Context(), req.ID, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	JSON(w, http.StatusOK, loginResponse{Token: token})
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())

	users, err := s.users.List(r.Context(), claims)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]userDTO, 0, len(users))
	for i := range users {
		out = append(out, toUserDTO(&users[i]))
	}
	JSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())

	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.ErrValidation)
		return
	}

	user, err := s.users.CreateUser(r.Context(), claims, req.ID, req.DisplayName, req.Password, req.Color, req.IsAdmin)
	if err != nil {
		writeError(w, err)
		return
	}

	JSON(w, http.StatusCreated, toUserDTO(user))
}

func (s *Server) handleSetRole(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())

	var req setRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.ErrValidation)
		return
	}

	if err := s.users.SetRole(r.Context(), claims, chi.URLParam(r, "userID"), req.IsAdmin); err != nil {
		writeError(w, err)
		return
	}

	JSON(w, http.StatusOK, nil)
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())

	if err := s.users.Delete(r.Context(), claims, chi.URLParam(r, "userID")); err != nil {
		writeError(w, err)
		return
	}

	JSON(w, http.StatusOK, nil)
}
