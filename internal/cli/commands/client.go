package commands

import (
	"FileVault/internal/cli/api"
	"FileVault/internal/cli/auth"
	"FileVault/internal/config"
	"fmt"
)

// tokenStore возвращает файловое хранилище токена из конфигурации.
func tokenStore(cfg *config.Config) auth.Store {
	return auth.Store{Path: cfg.TokenFile}
}

// newClient собирает API-клиент с токеном из файла, если он сохранён.
func newClient(cfg *config.Config) *api.Client {
	token, _ := tokenStore(cfg).Load()
	return api.New(cfg.ServerURL, token)
}

// fileEntry — запись каталога в ответах сервера.
type fileEntry struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	IsPublic bool   `json:"isPublic"`
	ParentID string `json:"parentId"`
}

func printEntry(e fileEntry) {
	visibility := "private"
	if e.IsPublic {
		visibility = "public"
	}
	fmt.Fprintf(Out, "%s  %-6s %-8s %s\n", e.ID, e.Type, visibility, e.Name)
}
