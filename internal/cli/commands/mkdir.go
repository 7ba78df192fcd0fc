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

type mkdirCmd struct{}

func (mkdirCmd) Name() string        { return "mkdir" }
func (mkdirCmd) Description() string { return "Create a folder" }
func (mkdirCmd) Usage() string       { return "mkdir <name> [parent-id]" }

func (mkdirCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	payload := map[string]any{
		"name": args[0],
		"type": "folder",
	}
	if len(args) > 1 {
		payload["parentId"] = args[1]
	}

	client := newClient(cfg)
	resp, body, err := client.Do(ctx, http.MethodPost, "/files", payload)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		return errors.New(api.ErrorMessage(body))
	}

	var entry fileEntry
	if err := json.Unmarshal(body, &entry); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "Created folder %s (id %s)\n", entry.Name, entry.ID)
	return nil
}

func init() { RegisterCmd(mkdirCmd{}) }
