package commands

import (
	"FileVault/internal/cli/api"
	"FileVault/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
)

type getCmd struct{}

func (getCmd) Name() string        { return "get" }
func (getCmd) Description() string { return "Download entry content" }
func (getCmd) Usage() string       { return "get <id> [output-path]" }

func (getCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}

	client := newClient(cfg)
	resp, body, err := client.Do(ctx, http.MethodGet, "/files/"+args[0]+"/data", nil)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return errors.New(api.ErrorMessage(body))
	}

	if len(args) > 1 {
		if err := os.WriteFile(args[1], body, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(Out, "Saved %d bytes to %s\n", len(body), args[1])
		return nil
	}
	_, err = Out.Write(body)
	return err
}

func init() { RegisterCmd(getCmd{}) }
