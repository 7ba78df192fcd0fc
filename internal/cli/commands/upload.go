package commands

import (
	"FileVault/internal/cli/api"
	"FileVault/internal/config"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

type uploadCmd struct{}

func (uploadCmd) Name() string        { return "upload" }
func (uploadCmd) Description() string { return "Upload a local file" }
func (uploadCmd) Usage() string       { return "upload <path> [parent-id] [--public]" }

func (uploadCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}

	path := args[0]
	parentID := ""
	isPublic := false
	for _, a := range args[1:] {
		if a == "--public" {
			isPublic = true
			continue
		}
		parentID = a
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	name := filepath.Base(path)
	kind := "file"
	if strings.HasPrefix(mime.TypeByExtension(filepath.Ext(name)), "image/") {
		kind = "image"
	}

	payload := map[string]any{
		"name":     name,
		"type":     kind,
		"isPublic": isPublic,
		"data":     base64.StdEncoding.EncodeToString(data),
	}
	if parentID != "" {
		payload["parentId"] = parentID
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
	fmt.Fprintf(Out, "Uploaded %s as %s (id %s)\n", name, entry.Type, entry.ID)
	return nil
}

func init() { RegisterCmd(uploadCmd{}) }
