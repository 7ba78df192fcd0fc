package main

import (
	"FileVault/internal/blob"
	"FileVault/internal/config"
	"FileVault/internal/queue"
	"FileVault/internal/repo"
	"FileVault/internal/worker"
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	jobs := queue.NewRedisQueue(cfg.RedisURL, cfg.QueueKey)
	defer jobs.Close()

	blobs, err := newBlobStore(ctx, cfg)
	if err != nil {
		sugar.Fatalw("failed to initialize blob store", "error", err)
	}

	sugar.Infow("Starting thumbnail worker", "queue_key", cfg.QueueKey, "blob_backend", cfg.BlobBackend)

	w := worker.New(repo.NewFileRepository(gormDB), blobs, jobs, sugar)
	w.Run(ctx)
}

// newBlobStore выбирает бэкенд содержимого по конфигу.
func newBlobStore(ctx context.Context, cfg *config.Config) (blob.Store, error) {
	if cfg.BlobBackend == "s3" {
		return blob.NewS3Store(ctx, blob.S3Config{
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3Endpoint,
			Bucket:       cfg.S3Bucket,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
		})
	}
	return blob.NewDiskStore(cfg.BlobDir)
}
