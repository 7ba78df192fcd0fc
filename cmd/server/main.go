package main

import (
	"FileVault/internal/blob"
	"FileVault/internal/config"
	"FileVault/internal/handlers"
	"FileVault/internal/middleware"
	"FileVault/internal/queue"
	"FileVault/internal/repo"
	"FileVault/internal/service"
	"FileVault/internal/session"
	"context"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	sessions := session.NewRedisStore(cfg.RedisURL)
	defer sessions.Close()

	jobs := queue.NewRedisQueue(cfg.RedisURL, cfg.QueueKey)
	defer jobs.Close()

	blobs, err := newBlobStore(ctx, cfg)
	if err != nil {
		sugar.Fatalw("failed to initialize blob store", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	fileRepo := repo.NewFileRepository(gormDB)

	authService := service.NewAuthService(userRepo, sessions, sugar)
	fileService := service.NewFileService(fileRepo, userRepo, blobs, jobs, sugar)

	h := handlers.NewHandler(authService, fileService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"BlobBackend", cfg.BlobBackend,
		"QueueKey", cfg.QueueKey,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
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
