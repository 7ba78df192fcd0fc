package handlers

import (
	"FileVault/internal/middleware"
	"FileVault/internal/service"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// AuthHandler выдаёт и гасит сессионные токены.
type AuthHandler struct {
	AuthService *service.AuthService
	Logger      *zap.SugaredLogger
}

func NewAuthHandler(authService *service.AuthService, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{AuthService: authService, Logger: logger}
}

// Connect — логин по Basic-credentials: 200 {"token": t}.
func (h *AuthHandler) Connect(w http.ResponseWriter, r *http.Request) {
	basic, ok := basicPayload(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	token, err := h.AuthService.Login(r.Context(), basic)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Disconnect — логаут: 204 без тела.
func (h *AuthHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(middleware.TokenHeader)
	if token == "" {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.AuthService.Logout(r.Context(), token); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Me — текущий пользователь: {id, email}.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.AuthService.GetUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"id":    user.ID,
		"email": user.Email,
	})
}

// basicPayload достаёт base64-часть из заголовка Authorization: Basic.
func basicPayload(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	payload, found := strings.CutPrefix(header, "Basic ")
	if !found || payload == "" {
		return "", false
	}
	return payload, true
}
