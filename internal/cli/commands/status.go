package commands

import (
	"FileVault/internal/cli/api"
	"FileVault/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show server health and counters" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	client := newClient(cfg)

	resp, body, err := client.Do(ctx, http.MethodGet, "/status", nil)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return api.ServerError(resp, body)
	}
	var health struct {
		Redis bool `json:"redis"`
		DB    bool `json:"db"`
	}
	if err := json.Unmarshal(body, &health); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "redis: %t\ndb:    %t\n", health.Redis, health.DB)

	resp, body, err = client.Do(ctx, http.MethodGet, "/stats", nil)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return api.ServerError(resp, body)
	}
	var stats struct {
		Users int64 `json:"users"`
		Files int64 `json:"files"`
	}
	if err := json.Unmarshal(body, &stats); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "users: %d\nfiles: %d\n", stats.Users, stats.Files)
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
