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

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create a new account" }
func (registerCmd) Usage() string       { return "register <email> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	email, password := args[0], args[1]

	client := newClient(cfg)
	resp, body, err := client.Do(ctx, http.MethodPost, "/users", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusBadRequest {
		return errors.New(api.ErrorMessage(body))
	}
	if resp.StatusCode != http.StatusCreated {
		return api.ServerError(resp, body)
	}

	var user struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(body, &user); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "Registered %s (id %s)\n", user.Email, user.ID)
	return nil
}

func init() { RegisterCmd(registerCmd{}) }
