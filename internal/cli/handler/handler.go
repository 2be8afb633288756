// Package handler provides command execution abstraction to reduce boilerplate
package handler

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/richezza/rmv/internal/cli"
)

// Handler defines the interface for command execution
type Handler interface {
	// Execute runs the command against an initialized CLI
	Execute(ctx context.Context, c *cli.CLI, args *Arguments) (any, error)
}

// Func adapts a plain function to Handler
type Func func(ctx context.Context, c *cli.CLI, args *Arguments) (any, error)

// Execute calls f
func (f Func) Execute(ctx context.Context, c *cli.CLI, args *Arguments) (any, error) {
	return f(ctx, c, args)
}

// Arguments captures parsed CLI arguments and flags
type Arguments struct {
	Args []string
	cmd  *cobra.Command
}

// GetCmd returns the cobra command for access to flag parsing utilities
func (a *Arguments) GetCmd() *cobra.Command {
	return a.cmd
}

// String returns a string flag, empty when unset or unknown
func (a *Arguments) String(name string) string {
	v, _ := a.cmd.Flags().GetString(name)
	return v
}

// Bool returns a bool flag, false when unset or unknown
func (a *Arguments) Bool(name string) bool {
	v, _ := a.cmd.Flags().GetBool(name)
	return v
}

// Command wraps common command execution logic
// Returns a cobra RunE compatible function
func Command(h Handler) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		formatter := cli.FormatterFromFlags(cmd)

		c, err := cli.GetCLIFromContext(ctx)
		if err != nil {
			return cli.Fail(formatter, "INITIALIZATION_ERROR", err)
		}
		defer func() {
			if err := c.Close(); err != nil {
				slog.Error("error closing CLI", "error", err)
			}
		}()

		result, err := h.Execute(ctx, c, &Arguments{Args: args, cmd: cmd})
		if err != nil {
			return cli.Fail(formatter, errorCode(err), err)
		}

		return formatter.Success(result)
	}
}

// errorCode names the failure class for JSON error output
func errorCode(err error) string {
	switch cli.ExitCode(err) {
	case cli.ExitUsage:
		return "USAGE_ERROR"
	case cli.ExitNotFound:
		return "NOT_FOUND"
	case cli.ExitDataErr:
		return "DATA_ERROR"
	case cli.ExitValidation:
		return "VALIDATION_ERROR"
	default:
		return "COMMAND_ERROR"
	}
}
