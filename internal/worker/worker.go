package worker

import (
	"FileVault/internal/blob"
	"FileVault/internal/model"
	"FileVault/internal/queue"
	"FileVault/internal/repo"
	"FileVault/internal/thumbnail"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// dequeueTimeout — шаг блокирующего чтения очереди, чтобы вовремя
// замечать отмену контекста.
const dequeueTimeout = 5 * time.Second

// Worker потребляет очередь заданий и складывает миниатюры рядом
// с оригиналом под локаторами <ref>_<width>. Обработка идемпотентна:
// дубль задания перезаписывает те же локаторы.
type Worker struct {
	files  repo.FileRepository
	blobs  blob.Store
	jobs   queue.Queue
	logger *zap.SugaredLogger
}

// New создаёт воркер миниатюр.
func New(files repo.FileRepository, blobs blob.Store, jobs queue.Queue, logger *zap.SugaredLogger) *Worker {
	return &Worker{files: files, blobs: blobs, jobs: jobs, logger: logger}
}

// Run крутит цикл потребления до отмены контекста.
func (w *Worker) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}

		job, err := w.jobs.Dequeue(ctx, dequeueTimeout)
		if err != nil {
			w.logger.Errorw("dequeue failed", "error", err)
			// не молотим очередь в цикле при лежащем Redis
			select {
			case <-ctx.Done():
				return
			case <-time.After(dequeueTimeout):
			}
			continue
		}
		if job == nil {
			continue
		}

		if err := w.ProcessJob(ctx, *job); err != nil {
			w.logger.Errorw("job failed", "file_id", job.FileID, "error", err)
			continue
		}
		w.logger.Infow("thumbnails generated", "file_id", job.FileID, "user_id", job.UserID)
	}
}

// ProcessJob генерирует миниатюры для одного задания.
// Записи, которых уже нет, и не-изображения пропускаются без ошибки.
func (w *Worker) ProcessJob(ctx context.Context, job queue.Job) error {
	file, err := w.files.GetOwned(ctx, job.FileID, job.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		w.logger.Warnw("job for missing file, skipping", "file_id", job.FileID)
		return nil
	}
	if err != nil {
		return err
	}

	if file.Type != model.TypeImage {
		w.logger.Warnw("job for non-image, skipping", "file_id", job.FileID, "type", file.Type)
		return nil
	}

	data, err := w.blobs.Read(ctx, file.LocalPath)
	if errors.Is(err, blob.ErrNotFound) {
		w.logger.Warnw("job for dangling blob, skipping", "file_id", job.FileID, "ref", file.LocalPath)
		return nil
	}
	if err != nil {
		return err
	}

	thumbs, err := thumbnail.Generate(data, thumbnail.Widths)
	if err != nil {
		return fmt.Errorf("generate thumbnails: %w", err)
	}

	for width, encoded := range thumbs {
		ref := fmt.Sprintf("%s_%d", file.LocalPath, width)
		if err := w.blobs.WriteRef(ctx, ref, encoded); err != nil {
			return fmt.Errorf("store thumbnail %d: %w", width, err)
		}
	}
	return nil
}
