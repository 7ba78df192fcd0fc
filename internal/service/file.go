package service

import (
	"FileVault/internal/blob"
	"FileVault/internal/model"
	"FileVault/internal/queue"
	"FileVault/internal/repo"
	"FileVault/internal/thumbnail"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UploadRequest — проверенный на границе сервиса запрос загрузки.
// Data — base64-кодированное содержимое, пустое для папок.
type UploadRequest struct {
	Name     string
	Type     string
	ParentID string
	IsPublic bool
	Data     string
}

// FileService оркестрирует валидацию, запись в каталог, blob-хранилище
// и постановку заданий на миниатюры.
type FileService struct {
	files  repo.FileRepository
	users  repo.UserRepository
	blobs  blob.Store
	jobs   queue.Queue
	logger *zap.SugaredLogger
}

// NewFileService создаёт файловый сервис.
func NewFileService(files repo.FileRepository, users repo.UserRepository, blobs blob.Store, jobs queue.Queue, logger *zap.SugaredLogger) *FileService {
	return &FileService{files: files, users: users, blobs: blobs, jobs: jobs, logger: logger}
}

// Upload создаёт папку либо файл/изображение с содержимым.
// Ошибки валидации возвращаются до любых побочных эффектов; неудачная
// запись содержимого не оставляет записи в каталоге.
func (s *FileService) Upload(ctx context.Context, userID string, req UploadRequest) (*model.File, error) {
	if req.Name == "" {
		return nil, ErrMissingName
	}
	if !model.ValidType(req.Type) {
		return nil, ErrInvalidType
	}
	if req.Type != model.TypeFolder && req.Data == "" {
		return nil, ErrMissingData
	}

	parentID := req.ParentID
	if parentID == "" {
		parentID = model.RootParentID
	}
	if parentID != model.RootParentID {
		if _, err := uuid.Parse(parentID); err != nil {
			return nil, ErrInvalidParentID
		}
		parent, err := s.files.GetByID(ctx, parentID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParentNotFound
		}
		if err != nil {
			return nil, err
		}
		if !parent.IsFolder() {
			return nil, ErrParentNotFolder
		}
	}

	file := &model.File{
		ID:       uuid.NewString(),
		UserID:   userID,
		Name:     req.Name,
		Type:     req.Type,
		ParentID: parentID,
		IsPublic: req.IsPublic,
	}

	if req.Type != model.TypeFolder {
		data, err := base64.StdEncoding.DecodeString(req.Data)
		if err != nil {
			return nil, ErrMissingData
		}
		ref, err := s.blobs.Write(ctx, data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorageWrite, err)
		}
		file.LocalPath = ref
	}

	if err := s.files.Create(ctx, file); err != nil {
		return nil, err
	}

	// миниатюры — best effort: отказ очереди не валит загрузку
	if req.Type == model.TypeImage {
		if err := s.jobs.Enqueue(ctx, queue.Job{UserID: userID, FileID: file.ID}); err != nil {
			s.logger.Warnw("Upload: thumbnail enqueue failed", "file_id", file.ID, "error", err)
		}
	}

	return file, nil
}

// Show возвращает запись владельца.
func (s *FileService) Show(ctx context.Context, userID, id string) (*model.File, error) {
	file, err := s.files.GetOwned(ctx, id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return file, nil
}

// Index отдаёт страницу детей родителя. Синтаксически кривой parentId —
// пустой результат, не ошибка: листинг permissive.
func (s *FileService) Index(ctx context.Context, userID, parentID string, page int) ([]model.File, error) {
	if parentID == "" {
		parentID = model.RootParentID
	}
	if parentID != model.RootParentID {
		if _, err := uuid.Parse(parentID); err != nil {
			return []model.File{}, nil
		}
	}
	return s.files.ListByParent(ctx, userID, parentID, page)
}

// Publish делает запись публичной. Идемпотентен.
func (s *FileService) Publish(ctx context.Context, userID, id string) (*model.File, error) {
	return s.setVisibility(ctx, userID, id, true)
}

// Unpublish делает запись приватной. Идемпотентен.
func (s *FileService) Unpublish(ctx context.Context, userID, id string) (*model.File, error) {
	return s.setVisibility(ctx, userID, id, false)
}

func (s *FileService) setVisibility(ctx context.Context, userID, id string, isPublic bool) (*model.File, error) {
	file, err := s.files.SetPublic(ctx, id, userID, isPublic)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return file, nil
}

// FetchContent отдаёт байты и mime-тип видимой записи. Папки, невидимые
// записи и повисшие локаторы — одинаковый ErrNotFound.
// size > 0 выбирает миниатюру соответствующей ширины; ещё не
// сгенерированная миниатюра — тоже ErrNotFound.
func (s *FileService) FetchContent(ctx context.Context, requesterID, id string, size int) ([]byte, string, error) {
	file, err := s.files.GetVisible(ctx, id, requesterID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", err
	}

	if file.IsFolder() {
		return nil, "", ErrNotFound
	}

	ref := file.LocalPath
	if size > 0 {
		if file.Type != model.TypeImage || !thumbnail.ValidWidth(size) {
			return nil, "", ErrNotFound
		}
		ref = fmt.Sprintf("%s_%d", file.LocalPath, size)
	}

	data, err := s.blobs.Read(ctx, ref)
	if errors.Is(err, blob.ErrNotFound) {
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", err
	}

	mimeType := mime.TypeByExtension(filepath.Ext(file.Name))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return data, mimeType, nil
}

// DBAvailable — живо ли подключение каталога к БД (для /status).
func (s *FileService) DBAvailable(ctx context.Context) bool {
	return s.files.Available(ctx)
}

// Stats — счётчики для /stats.
func (s *FileService) Stats(ctx context.Context) (int64, int64, error) {
	nUsers, err := s.users.CountUsers(ctx)
	if err != nil {
		return 0, 0, err
	}
	nFiles, err := s.files.CountFiles(ctx)
	if err != nil {
		return 0, 0, err
	}
	return nUsers, nFiles, nil
}
