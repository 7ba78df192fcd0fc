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

type statCmd struct{}

func (statCmd) Name() string        { return "stat" }
func (statCmd) Description() string { return "Show a catalog entry" }
func (statCmd) Usage() string       { return "stat <id>" }

func (statCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}

	client := newClient(cfg)
	resp, body, err := client.Do(ctx, http.MethodGet, "/files/"+args[0], nil)
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
	fmt.Fprintf(Out, "id:       %s\nname:     %s\ntype:     %s\npublic:   %t\nparentId: %s\n",
		entry.ID, entry.Name, entry.Type, entry.IsPublic, entry.ParentID)
	return nil
}

func init() { RegisterCmd(statCmd{}) }
