package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/openhire/go-jobboard/apperrors"
	"github.com/openhire/go-jobboard/request"
	"github.com/openhire/go-jobboard/service"
)

// UserHandlers provides HTTP handlers for the users resource.
type UserHandlers struct {
	users service.UserService
}

func NewUserHandlers(users service.UserService) *UserHandlers {
	return &UserHandlers{users: users}
}

func (h *UserHandlers) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.GetUsers()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"users": users})
}

func (h *UserHandlers) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.GetUser(chi.URLParam(r, "username"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"user": user})
}

func (h *UserHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	user, err := h.users.UpdateUser(chi.URLParam(r, "username"), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"user": user})
}

func (h *UserHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if err := h.users.DeleteUser(username); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"deleted": username})
}

func (h *UserHandlers) Apply(w http.ResponseWriter, r *http.Request) {
	jobID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, apperrors.NewValidationError("id", "must be an integer"))
		return
	}

	applied, err := h.users.ApplyToJob(chi.URLParam(r, "username"), jobID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{"applied": applied})
}
