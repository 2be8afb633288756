package data

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/richezza/rmv/internal/cli"
	"github.com/richezza/rmv/internal/cli/handler"
	"github.com/richezza/rmv/internal/store"
)

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a snapshot of every stored key",
		Long: `Write a JSON snapshot of every application key.

Examples:
  # To stdout
  rmv export > backup.json

  # To a file
  rmv export --out backup.json
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(handler.Func(runExport)),
	}

	cmd.Flags().String("out", "", "Write the snapshot to this file instead of stdout")
	cli.AddOutputFlags(cmd)

	return cmd
}

// snapshotOutput prints the snapshot itself
type snapshotOutput store.Snapshot

func (s snapshotOutput) Human() string {
	data, err := json.MarshalIndent(store.Snapshot(s), "", "  ")
	if err != nil {
		return fmt.Sprintf("error encoding snapshot: %v\n", err)
	}
	return string(data) + "\n"
}

func (s snapshotOutput) QuietLine() string {
	data, _ := json.Marshal(store.Snapshot(s))
	return string(data)
}

type exportResult struct {
	Path string   `json:"path"`
	Keys []string `json:"keys"`
}

func (r exportResult) QuietLine() string {
	return r.Path
}

func (r exportResult) Human() string {
	return fmt.Sprintf("✓ Exported %d keys to %s\n", len(r.Keys), r.Path)
}

func runExport(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	snap := c.App.Store.Export(ctx)

	out := args.String("out")
	if out == "" {
		return snapshotOutput(snap), nil
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(out, append(data, '\n'), 0o600); err != nil {
		return nil, fmt.Errorf("failed to write snapshot: %w", err)
	}

	keys := make([]string, 0, len(snap.Entries))
	for k := range snap.Entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return exportResult{Path: out, Keys: keys}, nil
}
