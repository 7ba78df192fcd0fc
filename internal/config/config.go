package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server-side settings
	DatabaseDSN string `env:"DATABASE_URI"`
	RedisURL    string `env:"REDIS_URL"`
	QueueKey    string `env:"QUEUE_KEY"`

	// Blob storage: disk | s3
	BlobBackend string `env:"BLOB_BACKEND"`
	BlobDir     string `env:"FOLDER_PATH"`

	S3Region    string `env:"S3_REGION"`
	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3Bucket    string `env:"S3_BUCKET"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`

	UploadMaxSizeMB int `env:"UPLOAD_MAX_MB"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL string `env:"-"`
	TokenFile string `env:"TOKEN_FILE"`
	Version   bool   `env:"-"` // show client version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД")
	flag.StringVar(&cfg.RedisURL, "redis", cfg.RedisURL, "redis:// URL хранилища сессий и очереди")
	flag.StringVar(&cfg.QueueKey, "queue-key", cfg.QueueKey, "ключ Redis-списка очереди миниатюр")
	flag.StringVar(&cfg.BlobBackend, "blob-backend", cfg.BlobBackend, "бэкенд содержимого: disk или s3")
	flag.StringVar(&cfg.BlobDir, "folder-path", cfg.BlobDir, "каталог содержимого для disk-бэкенда")
	flag.IntVar(&cfg.UploadMaxSizeMB, "upload-max-mb", cfg.UploadMaxSizeMB, "максимальный размер загрузки, МБ")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "base URL of the FileVault server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	// Client flags
	flag.StringVar(&cfg.TokenFile, "token-file", cfg.TokenFile, "path to auth token file (client)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	// Defaults
	if cfg.RedisURL == "" {
		cfg.RedisURL = "redis://localhost:6379"
	}
	if cfg.QueueKey == "" {
		cfg.QueueKey = "fileVault:thumbnails"
	}
	if cfg.BlobBackend == "" {
		cfg.BlobBackend = "disk"
	}
	if cfg.BlobDir == "" {
		cfg.BlobDir = "/tmp/files_manager"
	}
	if cfg.UploadMaxSizeMB <= 0 {
		cfg.UploadMaxSizeMB = 50
	}
	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:5000"
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	// Fill client defaults if empty
	if cfg.TokenFile == "" {
		home, _ := os.UserHomeDir()
		cfg.TokenFile = filepath.Join(home, ".filevault_token")
	}

	return cfg
}
