package auth

import (
	"errors"
	"os"
	"path/filepath"
)

// Store — файловое хранилище токена сессии для CLI.
type Store struct {
	Path string
}

// Save сохраняет токен в файл с правами 0600.
func (s Store) Save(token string) error {
	if token == "" {
		return errors.New("empty token")
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.Path, []byte(token), 0o600)
}

// Load читает токен из файла.
func (s Store) Load() (string, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return "", err
	}
	// обрезаем завершающие переводы строки/пробелы
	for len(b) > 0 {
		c := b[len(b)-1]
		if c == '\n' || c == '\r' || c == ' ' || c == '\t' {
			b = b[:len(b)-1]
			continue
		}
		break
	}
	if len(b) == 0 {
		return "", errors.New("empty token file")
	}
	return string(b), nil
}

// Clear удаляет файл токена. Отсутствие файла ошибкой не считается.
func (s Store) Clear() error {
	err := os.Remove(s.Path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
