package commands

import (
	"FileVault/internal/cli/api"
	"FileVault/internal/config"
	"context"
	"fmt"
	"net/http"
)

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Revoke session and forget token" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	client := newClient(cfg)
	resp, body, err := client.Do(ctx, http.MethodGet, "/disconnect", nil)
	if err != nil {
		return err
	}
	// локальный токен убираем в любом случае
	if err := tokenStore(cfg).Clear(); err != nil {
		return fmt.Errorf("clearing token: %w", err)
	}
	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusUnauthorized {
		return api.ServerError(resp, body)
	}
	fmt.Fprintln(Out, "Logged out")
	return nil
}

func init() { RegisterCmd(logoutCmd{}) }
