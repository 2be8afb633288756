package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/richezza/rmv/internal/app"
	"github.com/richezza/rmv/internal/config"
	"github.com/richezza/rmv/internal/logging"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with the store

	logFile io.Closer
	owned   bool
}

// NewCLI loads the config, starts file logging and opens the store
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, WithExitCode(ExitValidation, fmt.Errorf("failed to load config: %w", err))
	}

	logFile, err := logging.Init(cfg.Log.Dir, cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	application, err := app.New(ctx, cfg, app.WithLogger(logging.Logger))
	if err != nil {
		_ = logFile.Close()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	return &CLI{App: application, logFile: logFile, owned: true}, nil
}

// Close cleans up CLI resources. An app taken from the context belongs to
// the caller and is left open.
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	err := c.App.Close()
	if c.logFile != nil {
		err = errors.Join(err, c.logFile.Close())
	}
	return err
}

// AddOutputFlags registers the agent-friendly flags every command takes
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")
}

// FormatterFromFlags builds the formatter selected by --json and --quiet
func FormatterFromFlags(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// Fail reports err through formatter under code and returns it for RunE,
// marked so main does not print it a second time
func Fail(formatter *OutputFormatter, code string, err error) error {
	if fmtErr := formatter.Error(code, err.Error()); fmtErr != nil {
		slog.Error("error formatting error message", "error", fmtErr)
	}
	return &reportedError{err}
}

type reportedError struct{ error }

func (e *reportedError) Unwrap() error { return e.error }

// Reported reports whether err was already shown to the user
func Reported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}
