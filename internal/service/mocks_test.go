package service

import (
	"FileVault/internal/blob"
	"FileVault/internal/model"
	"FileVault/internal/queue"
	"FileVault/internal/repo"
	"FileVault/internal/session"
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// мок для repo.UserRepository
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

// мок для repo.FileRepository
type mockFileRepo struct{ mock.Mock }

func (m *mockFileRepo) Create(ctx context.Context, file *model.File) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *mockFileRepo) GetByID(ctx context.Context, id string) (*model.File, error) {
	args := m.Called(ctx, id)
	if f, ok := args.Get(0).(*model.File); ok {
		return f, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFileRepo) GetOwned(ctx context.Context, id, ownerID string) (*model.File, error) {
	args := m.Called(ctx, id, ownerID)
	if f, ok := args.Get(0).(*model.File); ok {
		return f, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFileRepo) GetVisible(ctx context.Context, id, requesterID string) (*model.File, error) {
	args := m.Called(ctx, id, requesterID)
	if f, ok := args.Get(0).(*model.File); ok {
		return f, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFileRepo) ListByParent(ctx context.Context, ownerID, parentID string, page int) ([]model.File, error) {
	args := m.Called(ctx, ownerID, parentID, page)
	if v, ok := args.Get(0).([]model.File); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFileRepo) SetPublic(ctx context.Context, id, ownerID string, isPublic bool) (*model.File, error) {
	args := m.Called(ctx, id, ownerID, isPublic)
	if f, ok := args.Get(0).(*model.File); ok {
		return f, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFileRepo) CountFiles(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockFileRepo) Available(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

var _ repo.FileRepository = (*mockFileRepo)(nil)

// мок для session.Store
type mockSessionStore struct{ mock.Mock }

func (m *mockSessionStore) Put(ctx context.Context, key, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *mockSessionStore) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *mockSessionStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *mockSessionStore) Available(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

var _ session.Store = (*mockSessionStore)(nil)

// мок для blob.Store
type mockBlobStore struct{ mock.Mock }

func (m *mockBlobStore) Write(ctx context.Context, data []byte) (string, error) {
	args := m.Called(ctx, data)
	return args.String(0), args.Error(1)
}

func (m *mockBlobStore) WriteRef(ctx context.Context, ref string, data []byte) error {
	args := m.Called(ctx, ref, data)
	return args.Error(0)
}

func (m *mockBlobStore) Read(ctx context.Context, ref string) ([]byte, error) {
	args := m.Called(ctx, ref)
	if b, ok := args.Get(0).([]byte); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBlobStore) Exists(ctx context.Context, ref string) (bool, error) {
	args := m.Called(ctx, ref)
	return args.Bool(0), args.Error(1)
}

var _ blob.Store = (*mockBlobStore)(nil)

// мок для queue.Queue
type mockQueue struct{ mock.Mock }

func (m *mockQueue) Enqueue(ctx context.Context, job queue.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *mockQueue) Dequeue(ctx context.Context, timeout time.Duration) (*queue.Job, error) {
	args := m.Called(ctx, timeout)
	if j, ok := args.Get(0).(*queue.Job); ok {
		return j, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ queue.Queue = (*mockQueue)(nil)
