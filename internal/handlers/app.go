package handlers

import (
	"FileVault/internal/service"
	"net/http"

	"go.uber.org/zap"
)

// AppHandler отдаёт служебные ручки /status и /stats.
type AppHandler struct {
	AuthService *service.AuthService
	FileService *service.FileService
	Logger      *zap.SugaredLogger
}

func NewAppHandler(authService *service.AuthService, fileService *service.FileService, logger *zap.SugaredLogger) *AppHandler {
	return &AppHandler{AuthService: authService, FileService: fileService, Logger: logger}
}

// Status — живость хранилища сессий и БД.
func (h *AppHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{
		"redis": h.AuthService.SessionsAvailable(r.Context()),
		"db":    h.FileService.DBAvailable(r.Context()),
	})
}

// Stats — счётчики пользователей и записей каталога.
func (h *AppHandler) Stats(w http.ResponseWriter, r *http.Request) {
	users, files, err := h.FileService.Stats(r.Context())
	if err != nil {
		h.Logger.Errorw("Stats: service error", "error", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{
		"users": users,
		"files": files,
	})
}
