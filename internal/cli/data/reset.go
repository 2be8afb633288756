package data

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/richezza/rmv/internal/cli"
	"github.com/richezza/rmv/internal/cli/handler"
	"github.com/richezza/rmv/internal/cli/styles"
	"github.com/richezza/rmv/internal/storage"
)

// ResetCmd returns the reset command
func ResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Remove every stored record, the session and settings",
		Long:  "Remove every application key (requires confirmation unless --force, --quiet or --json).",
		Args:  cobra.NoArgs,
		RunE:  handler.Command(handler.Func(runReset)),
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)

	return cmd
}

type resetResult struct {
	Cancelled bool     `json:"cancelled"`
	Cleared   []string `json:"cleared"`
}

func (r resetResult) Human() string {
	if r.Cancelled {
		return styles.Warning("Cancelled")
	}
	return styles.Success(fmt.Sprintf("Cleared %d keys", len(r.Cleared)))
}

func runReset(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	interactive := !args.Bool("force") && !args.Bool("quiet") && !args.Bool("json")
	if interactive && !confirm(args.GetCmd(), "Remove all stored data? (y/N): ") {
		return resetResult{Cancelled: true, Cleared: []string{}}, nil
	}

	c.App.Store.ClearAll(ctx)
	return resetResult{Cleared: storage.AppKeys()}, nil
}

func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Print(prompt)
	var response string
	if _, err := fmt.Fscanln(cmd.InOrStdin(), &response); err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
