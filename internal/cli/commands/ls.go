package commands

import (
	"FileVault/internal/cli/api"
	"FileVault/internal/config"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

type lsCmd struct{}

func (lsCmd) Name() string        { return "ls" }
func (lsCmd) Description() string { return "List folder contents (20 per page)" }
func (lsCmd) Usage() string       { return "ls [parent-id] [page]" }

func (lsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	q := url.Values{}
	if len(args) > 0 {
		q.Set("parentId", args[0])
	}
	if len(args) > 1 {
		page, err := strconv.Atoi(args[1])
		if err != nil || page < 0 {
			return ErrUsage
		}
		q.Set("page", args[1])
	}

	path := "/files"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	client := newClient(cfg)
	resp, body, err := client.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return errors.New(api.ErrorMessage(body))
	}

	var entries []fileEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if len(entries) == 0 {
		fmt.Fprintln(Out, "(empty)")
		return nil
	}
	for _, e := range entries {
		printEntry(e)
	}
	return nil
}

func init() { RegisterCmd(lsCmd{}) }
