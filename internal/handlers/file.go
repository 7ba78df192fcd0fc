package handlers

import (
	"FileVault/internal/config"
	"FileVault/internal/middleware"
	"FileVault/internal/model"
	"FileVault/internal/service"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// FileHandler обрабатывает загрузку, листинг и выдачу файлов.
type FileHandler struct {
	FileService *service.FileService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

func NewFileHandler(fileService *service.FileService, logger *zap.SugaredLogger, cfg *config.Config) *FileHandler {
	return &FileHandler{FileService: fileService, Logger: logger, Config: cfg}
}

type uploadRequest struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	ParentID string `json:"parentId"`
	IsPublic bool   `json:"isPublic"`
	Data     string `json:"data"`
}

// fileDTO — представление записи каталога в ответах API.
type fileDTO struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	IsPublic bool   `json:"isPublic"`
	ParentID string `json:"parentId"`
}

func toDTO(f *model.File) fileDTO {
	return fileDTO{
		ID:       f.ID,
		UserID:   f.UserID,
		Name:     f.Name,
		Type:     f.Type,
		IsPublic: f.IsPublic,
		ParentID: f.ParentID,
	}
}

// Upload — POST /files: папка или файл/изображение с base64-данными.
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	// лимит тела: данные приходят base64-строкой в JSON
	maxBody := int64(h.Config.UploadMaxSizeMB) * 1024 * 1024 * 2
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)

	var req uploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Upload: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	entry, err := h.FileService.Upload(r.Context(), userID, service.UploadRequest{
		Name:     req.Name,
		Type:     req.Type,
		ParentID: req.ParentID,
		IsPublic: req.IsPublic,
		Data:     req.Data,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDTO(entry))
}

// Show — GET /files/{id}: запись владельца.
func (h *FileHandler) Show(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	entry, err := h.FileService.Show(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toDTO(entry))
}

// Index — GET /files?parentId=&page=: страница детей родителя.
func (h *FileHandler) Index(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	parentID := r.URL.Query().Get("parentId")

	// кривой page трактуем как нулевую страницу, по духу листинга
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 0 {
		page = 0
	}

	files, err := h.FileService.Index(r.Context(), userID, parentID, page)
	if err != nil {
		h.Logger.Errorw("Index: service error", "user_id", userID, "error", err)
		writeServiceError(w, err)
		return
	}

	dtos := make([]fileDTO, 0, len(files))
	for i := range files {
		dtos = append(dtos, toDTO(&files[i]))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// Publish — PUT /files/{id}/publish.
func (h *FileHandler) Publish(w http.ResponseWriter, r *http.Request) {
	h.setVisibility(w, r, true)
}

// Unpublish — PUT /files/{id}/unpublish.
func (h *FileHandler) Unpublish(w http.ResponseWriter, r *http.Request) {
	h.setVisibility(w, r, false)
}

func (h *FileHandler) setVisibility(w http.ResponseWriter, r *http.Request, isPublic bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := chi.URLParam(r, "id")
	var entry *model.File
	var err error
	if isPublic {
		entry, err = h.FileService.Publish(r.Context(), userID, id)
	} else {
		entry, err = h.FileService.Unpublish(r.Context(), userID, id)
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toDTO(entry))
}

// Data — GET /files/{id}/data: сырые байты с mime-типом.
// Токен не обязателен: публичные записи доступны анониму.
// ?size=500|250|100 отдаёт миниатюру изображения.
func (h *FileHandler) Data(w http.ResponseWriter, r *http.Request) {
	requesterID, _ := middleware.GetUserIDFromContext(r.Context())

	size := 0
	if raw := r.URL.Query().Get("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusNotFound, "Not found")
			return
		}
		size = parsed
	}

	data, mimeType, err := h.FileService.FetchContent(r.Context(), requesterID, chi.URLParam(r, "id"), size)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", mimeType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
