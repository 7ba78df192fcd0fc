package auth

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreSaveLoad(t *testing.T) {
	s := Store{Path: filepath.Join(t.TempDir(), "nested", "token")}

	if err := s.Save("tok-123"); err != nil {
		t.Fatalf("save: %v", err)
	}
	info, err := os.Stat(s.Path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("token file mode: %v", info.Mode().Perm())
	}

	token, err := s.Load()
	if err != nil || token != "tok-123" {
		t.Fatalf("load: %v %q", err, token)
	}
}

func TestStoreLoadTrimsWhitespace(t *testing.T) {
	s := Store{Path: filepath.Join(t.TempDir(), "token")}
	if err := os.WriteFile(s.Path, []byte("tok-123\n \t"), 0o600); err != nil {
		t.Fatalf("fixture: %v", err)
	}
	token, err := s.Load()
	if err != nil || token != "tok-123" {
		t.Fatalf("load: %v %q", err, token)
	}
}

func TestStoreErrors(t *testing.T) {
	s := Store{Path: filepath.Join(t.TempDir(), "token")}

	if err := s.Save(""); err == nil {
		t.Fatalf("empty token must not be saved")
	}
	if _, err := s.Load(); err == nil {
		t.Fatalf("missing file must error")
	}
	if err := os.WriteFile(s.Path, []byte("  \n"), 0o600); err != nil {
		t.Fatalf("fixture: %v", err)
	}
	if _, err := s.Load(); err == nil {
		t.Fatalf("blank file must error")
	}
}

func TestStoreClear(t *testing.T) {
	s := Store{Path: filepath.Join(t.TempDir(), "token")}

	// отсутствие файла не ошибка
	if err := s.Clear(); err != nil {
		t.Fatalf("clear on missing file: %v", err)
	}

	if err := s.Save("tok"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := os.Stat(s.Path); !os.IsNotExist(err) {
		t.Fatalf("file should be gone")
	}
}
