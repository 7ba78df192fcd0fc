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

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store session token" }
func (loginCmd) Usage() string       { return "login <email> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	email, password := args[0], args[1]

	client := api.New(cfg.ServerURL, "")
	resp, body, err := client.Connect(ctx, email, password)
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return errors.New("invalid email or password")
	}
	if resp.StatusCode != http.StatusOK {
		return api.ServerError(resp, body)
	}

	var tr struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &tr); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if err := tokenStore(cfg).Save(tr.Token); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}
	fmt.Fprintln(Out, "Logged in successfully")
	return nil
}

func init() { RegisterCmd(loginCmd{}) }
