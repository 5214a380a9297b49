package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/ottstream/mylist/internal/usecase"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type VerifyResponse struct {
	Valid    bool   `json:"valid"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// AuthHandler handles the token-based login flow.
type AuthHandler struct {
	svc usecase.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc usecase.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	if req.Username == "" {
		Error(w, http.StatusBadRequest, "invalid_username", "Username is required")
		return
	}
	if req.Password == "" {
		Error(w, http.StatusBadRequest, "invalid_password", "Password is required")
		return
	}

	output, err := h.svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			Error(w, http.StatusUnauthorized, "invalid_credentials", "Invalid username or password")
			return
		}
		Error(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	JSON(w, http.StatusOK, output)
}

// Verify handles GET /v1/auth/verify
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	token, ok := bearerToken(r)
	if !ok {
		Error(w, http.StatusUnauthorized, "missing_token", "Authorization bearer token is required")
		return
	}

	claims, err := h.svc.Verify(r.Context(), token)
	if err != nil {
		Error(w, http.StatusUnauthorized, "invalid_token", "Token is invalid or expired")
		return
	}

	JSON(w, http.StatusOK, VerifyResponse{
		Valid:    true,
		UserID:   claims.UserID,
		Username: claims.Username,
	})
}

// bearerToken extracts the token from an Authorization: Bearer header.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}
