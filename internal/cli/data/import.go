package data

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/richezza/rmv/internal/cli"
	"github.com/richezza/rmv/internal/cli/handler"
	"github.com/richezza/rmv/internal/storage"
	"github.com/richezza/rmv/internal/store"
)

// ImportCmd returns the import command
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Restore a snapshot written by export",
		Long: `Restore every application key found in a snapshot file. Keys missing
from the snapshot are left as they are.`,
		Args: cobra.ExactArgs(1),
		RunE: handler.Command(handler.Func(runImport)),
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

type importResult struct {
	File     string   `json:"file"`
	Imported []string `json:"imported"`
	Skipped  []string `json:"skipped"`
}

func (r importResult) QuietLine() string {
	return fmt.Sprint(len(r.Imported))
}

func (r importResult) Human() string {
	msg := fmt.Sprintf("✓ Imported %d keys from %s\n", len(r.Imported), r.File)
	if len(r.Skipped) > 0 {
		msg += fmt.Sprintf("  Skipped unknown keys: %v\n", r.Skipped)
	}
	return msg
}

func runImport(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	path := args.Args[0]

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, cli.Exitf(cli.ExitNotFound, "snapshot file %s not found", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	snap, err := decodeSnapshot(data)
	if err != nil {
		return nil, cli.WithExitCode(cli.ExitDataErr, fmt.Errorf("%s: %w", path, err))
	}

	res := importResult{File: path, Imported: []string{}, Skipped: []string{}}
	known := storage.AppKeys()
	for key := range snap.Entries {
		if slices.Contains(known, key) {
			res.Imported = append(res.Imported, key)
		} else {
			res.Skipped = append(res.Skipped, key)
		}
	}
	slices.Sort(res.Imported)
	slices.Sort(res.Skipped)

	c.App.Store.Import(ctx, snap)

	return res, nil
}

func decodeSnapshot(data []byte) (store.Snapshot, error) {
	var snap store.Snapshot
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&snap); err != nil {
		return snap, fmt.Errorf("invalid snapshot: %w", err)
	}
	if snap.Entries == nil {
		return snap, errors.New("invalid snapshot: no entries")
	}
	return snap, nil
}
