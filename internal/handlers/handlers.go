package handlers

import (
	"FileVault/internal/config"
	"FileVault/internal/middleware"
	"FileVault/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	authService *service.AuthService,
	fileService *service.FileService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(authService))

	// Handlers
	appHandler := NewAppHandler(authService, fileService, logger)
	userHandler := NewUserHandler(authService, logger)
	authHandler := NewAuthHandler(authService, logger)
	fileHandler := NewFileHandler(fileService, logger, config)

	// Service routes
	r.Get("/status", appHandler.Status)
	r.Get("/stats", appHandler.Stats)

	// User routes
	r.Post("/users", userHandler.Register)
	r.Get("/users/me", authHandler.Me)

	// Session routes
	r.Get("/connect", authHandler.Connect)
	r.Get("/disconnect", authHandler.Disconnect)

	// File routes
	r.Post("/files", fileHandler.Upload)
	r.Get("/files", fileHandler.Index)
	r.Get("/files/{id}", fileHandler.Show)
	r.Put("/files/{id}/publish", fileHandler.Publish)
	r.Put("/files/{id}/unpublish", fileHandler.Unpublish)
	r.Get("/files/{id}/data", fileHandler.Data)

	return &Handler{Router: r}
}

// writeJSON сериализует ответ с указанным статусом.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError отвечает телом {"error": "..."} в формате исходного API.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError маппит типизированные ошибки сервисов в статусы HTTP.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, service.ErrMissingEmail):
		writeError(w, http.StatusBadRequest, "Missing email")
	case errors.Is(err, service.ErrMissingPassword):
		writeError(w, http.StatusBadRequest, "Missing password")
	case errors.Is(err, service.ErrAlreadyExists):
		writeError(w, http.StatusBadRequest, "Already exist")
	case errors.Is(err, service.ErrMissingName):
		writeError(w, http.StatusBadRequest, "Missing name")
	case errors.Is(err, service.ErrInvalidType):
		writeError(w, http.StatusBadRequest, "Missing type")
	case errors.Is(err, service.ErrMissingData):
		writeError(w, http.StatusBadRequest, "Missing data")
	case errors.Is(err, service.ErrInvalidParentID):
		writeError(w, http.StatusBadRequest, "Invalid parent id")
	case errors.Is(err, service.ErrParentNotFound):
		writeError(w, http.StatusBadRequest, "Parent not found")
	case errors.Is(err, service.ErrParentNotFolder):
		writeError(w, http.StatusBadRequest, "Parent is not a folder")
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, service.ErrStorageWrite):
		writeError(w, http.StatusInternalServerError, "Unable to save the file")
	default:
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
