package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/richezza/rmv/internal/cli/data"
)

// NewRootCmd builds the rmv command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rmv",
		Short: "rmv - maintenance tooling for the local records file",
		Long: `rmv inspects and maintains the file that holds clients, employees,
invoices, payroll, attendance and leave records.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(data.Commands()...)

	return rootCmd
}

// Execute runs the command tree with ctx
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
