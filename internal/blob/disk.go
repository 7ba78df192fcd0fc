package blob

import (
	"context"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DiskStore хранит содержимое в файлах со случайными именами
// внутри одного каталога. Локатор — абсолютный путь к файлу.
type DiskStore struct {
	root string
}

// NewDiskStore создаёт дисковое хранилище, при необходимости создавая каталог.
func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{root: root}, nil
}

func (s *DiskStore) Write(_ context.Context, data []byte) (string, error) {
	ref := filepath.Join(s.root, uuid.NewString())
	if err := os.WriteFile(ref, data, 0o644); err != nil {
		return "", err
	}
	return ref, nil
}

func (s *DiskStore) WriteRef(_ context.Context, ref string, data []byte) error {
	return os.WriteFile(ref, data, 0o644)
}

func (s *DiskStore) Read(_ context.Context, ref string) ([]byte, error) {
	data, err := os.ReadFile(ref)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *DiskStore) Exists(_ context.Context, ref string) (bool, error) {
	_, err := os.Stat(ref)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
