package handlers

import (
	"FileVault/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// UserHandler обрабатывает регистрацию пользователей.
type UserHandler struct {
	AuthService *service.AuthService
	Logger      *zap.SugaredLogger
}

func NewUserHandler(authService *service.AuthService, logger *zap.SugaredLogger) *UserHandler {
	return &UserHandler{AuthService: authService, Logger: logger}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register создаёт пользователя: 201 {id, email}.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Register: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	user, err := h.AuthService.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, service.ErrMissingEmail) &&
			!errors.Is(err, service.ErrMissingPassword) &&
			!errors.Is(err, service.ErrAlreadyExists) {
			h.Logger.Errorw("Register: service error", "error", err)
		}
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"id":    user.ID,
		"email": user.Email,
	})
}
