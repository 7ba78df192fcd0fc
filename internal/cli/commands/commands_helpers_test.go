package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"FileVault/internal/config"
)

// testConfig собирает конфиг с токеном во временном файле.
func testConfig(t *testing.T, serverURL string) *config.Config {
	t.Helper()
	return &config.Config{
		ServerURL: serverURL,
		TokenFile: filepath.Join(t.TempDir(), "token"),
	}
}

// captureOut перенаправляет вывод CLI в буфер на время теста.
func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	old := Out
	buf := &bytes.Buffer{}
	Out = buf
	t.Cleanup(func() { Out = old })
	return buf
}
