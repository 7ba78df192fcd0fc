package handlers_test

import (
	"FileVault/internal/blob"
	"FileVault/internal/config"
	"FileVault/internal/handlers"
	"FileVault/internal/model"
	"FileVault/internal/queue"
	"FileVault/internal/repo"
	"FileVault/internal/service"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// fakeSessionStore — TTL-хранилище в памяти вместо Redis
type fakeSessionStore struct {
	entries map[string]sessionEntry
}

type sessionEntry struct {
	value   string
	expires time.Time
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{entries: map[string]sessionEntry{}}
}

func (s *fakeSessionStore) Put(_ context.Context, key, value string, ttl time.Duration) error {
	s.entries[key] = sessionEntry{value: value, expires: time.Now().Add(ttl)}
	return nil
}

func (s *fakeSessionStore) Get(_ context.Context, key string) (string, bool, error) {
	e, ok := s.entries[key]
	if !ok || time.Now().After(e.expires) {
		return "", false, nil
	}
	return e.value, true, nil
}

func (s *fakeSessionStore) Delete(_ context.Context, key string) error {
	delete(s.entries, key)
	return nil
}

func (s *fakeSessionStore) Available(_ context.Context) bool { return true }

// expire принудительно старит сессию токена (для теста TTL)
func (s *fakeSessionStore) expire(token string) {
	key := "auth_" + token
	if e, ok := s.entries[key]; ok {
		e.expires = time.Now().Add(-time.Second)
		s.entries[key] = e
	}
}

// fakeBlobStore — blob-хранилище в памяти
type fakeBlobStore struct {
	data map[string][]byte
}

func newFakeBlobStore() *fakeBlobStore { return &fakeBlobStore{data: map[string][]byte{}} }

func (s *fakeBlobStore) Write(_ context.Context, data []byte) (string, error) {
	ref := fmt.Sprintf("ref-%d", len(s.data))
	s.data[ref] = data
	return ref, nil
}

func (s *fakeBlobStore) WriteRef(_ context.Context, ref string, data []byte) error {
	s.data[ref] = data
	return nil
}

func (s *fakeBlobStore) Read(_ context.Context, ref string) ([]byte, error) {
	data, ok := s.data[ref]
	if !ok {
		return nil, blob.ErrNotFound
	}
	return data, nil
}

func (s *fakeBlobStore) Exists(_ context.Context, ref string) (bool, error) {
	_, ok := s.data[ref]
	return ok, nil
}

// fakeQueue записывает поставленные задания
type fakeQueue struct {
	jobs []queue.Job
}

func (q *fakeQueue) Enqueue(_ context.Context, job queue.Job) error {
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *fakeQueue) Dequeue(_ context.Context, _ time.Duration) (*queue.Job, error) {
	if len(q.jobs) == 0 {
		return nil, nil
	}
	j := q.jobs[0]
	q.jobs = q.jobs[1:]
	return &j, nil
}

// testEnv — собранный сервер со всеми фейковыми коллаборантами
type testEnv struct {
	router   http.Handler
	sessions *fakeSessionStore
	blobs    *fakeBlobStore
	jobs     *fakeQueue
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: "file::memory:"}
	db, err := gorm.Open(dial, &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.File{}))

	logger := zap.NewNop().Sugar()
	cfg := &config.Config{UploadMaxSizeMB: 10}

	sessions := newFakeSessionStore()
	blobs := newFakeBlobStore()
	jobs := &fakeQueue{}

	userRepo := repo.NewUserRepository(db)
	fileRepo := repo.NewFileRepository(db)

	authService := service.NewAuthService(userRepo, sessions, logger)
	fileService := service.NewFileService(fileRepo, userRepo, blobs, jobs, logger)

	h := handlers.NewHandler(authService, fileService, logger, cfg)
	return &testEnv{router: h.Router, sessions: sessions, blobs: blobs, jobs: jobs}
}

// do выполняет запрос с опциональными JSON-телом и токеном
func (e *testEnv) do(t *testing.T, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("X-Token", token)
	}

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

// register создаёт пользователя через API и возвращает его id
func (e *testEnv) register(t *testing.T, email, password string) string {
	t.Helper()
	rr := e.do(t, http.MethodPost, "/users", "", map[string]string{"email": email, "password": password})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp["id"]
}

// login логинится базовыми кредами и возвращает токен
func (e *testEnv) login(t *testing.T, email, password string) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/connect", nil)
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(email+":"+password)))
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["token"])
	return resp["token"]
}

// decodeEntry разбирает JSON записи каталога из ответа
func decodeEntry(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &entry))
	return entry
}
