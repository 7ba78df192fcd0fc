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

// visibilityCmd обслуживает обе команды смены видимости.
type visibilityCmd struct {
	name   string
	action string
}

func (c visibilityCmd) Name() string { return c.name }
func (c visibilityCmd) Description() string {
	if c.action == "publish" {
		return "Make an entry public"
	}
	return "Make an entry private"
}
func (c visibilityCmd) Usage() string { return c.name + " <id>" }

func (c visibilityCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}

	client := newClient(cfg)
	resp, body, err := client.Do(ctx, http.MethodPut, "/files/"+args[0]+"/"+c.action, nil)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return errors.New(api.ErrorMessage(body))
	}

	var entry fileEntry
	if err := json.Unmarshal(body, &entry); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	visibility := "private"
	if entry.IsPublic {
		visibility = "public"
	}
	fmt.Fprintf(Out, "%s is now %s\n", entry.Name, visibility)
	return nil
}

func init() {
	RegisterCmd(visibilityCmd{name: "publish", action: "publish"})
	RegisterCmd(visibilityCmd{name: "unpublish", action: "unpublish"})
}
