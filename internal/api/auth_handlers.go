package api

import (
	"net/http"

	"github.com/openhire/go-jobboard/apperrors"
	"github.com/openhire/go-jobboard/internal/auth"
	"github.com/openhire/go-jobboard/request"
	"github.com/openhire/go-jobboard/service"
)

// AuthHandlers handles registration and token issuance.
type AuthHandlers struct {
	users  service.UserService
	issuer *auth.TokenIssuer
}

func NewAuthHandlers(users service.UserService, issuer *auth.TokenIssuer) *AuthHandlers {
	return &AuthHandlers{users: users, issuer: issuer}
}

// Register creates a user account and returns a token for it. Accounts
// created through this endpoint are never admins.
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterUserRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if req.Username == "" || req.Password == "" {
		respondError(w, apperrors.NewValidationError("username", "username and password are required"))
		return
	}
	req.IsAdmin = false

	user, err := h.users.RegisterUser(req)
	if err != nil {
		respondError(w, err)
		return
	}

	token, err := h.issuer.Issue(user)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{"token": token})
}

// Token exchanges credentials for a signed token.
func (h *AuthHandlers) Token(w http.ResponseWriter, r *http.Request) {
	var req request.AuthenticateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	user, err := h.users.Authenticate(req)
	if err != nil {
		respondError(w, err)
		return
	}

	token, err := h.issuer.Issue(user)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"token": token})
}
