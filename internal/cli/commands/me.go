package commands

import (
	"FileVault/internal/cli/api"
	"FileVault/internal/config"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

type meCmd struct{}

func (meCmd) Name() string        { return "me" }
func (meCmd) Description() string { return "Show the current account" }
func (meCmd) Usage() string       { return "me" }

func (meCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	client := newClient(cfg)
	resp, body, err := client.Do(ctx, http.MethodGet, "/users/me", nil)
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return errors.New("not logged in")
	}
	if resp.StatusCode != http.StatusOK {
		return api.ServerError(resp, body)
	}

	var user struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(body, &user); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "id:    %s\nemail: %s\n", user.ID, user.Email)
	return nil
}

func init() { RegisterCmd(meCmd{}) }
