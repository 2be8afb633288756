package data

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/richezza/rmv/internal/cli"
	"github.com/richezza/rmv/internal/cli/handler"
	"github.com/richezza/rmv/internal/cli/styles"
	"github.com/richezza/rmv/internal/seed"
)

// SeedCmd returns the seed command
func SeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load sample data into an empty store",
		Long:  "Load sample clients, employees, invoices and HR records. Does nothing when clients already exist.",
		Args:  cobra.NoArgs,
		RunE:  handler.Command(handler.Func(runSeed)),
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

type seedResult struct {
	Seeded    bool `json:"seeded"`
	Clients   int  `json:"clients"`
	Employees int  `json:"employees"`
	Invoices  int  `json:"invoices"`
}

func runSeed(ctx context.Context, c *cli.CLI, _ *handler.Arguments) (any, error) {
	s := c.App.Store
	seeded := seed.SampleData(ctx, s, now())

	return seedResult{
		Seeded:    seeded,
		Clients:   s.Clients.Count(ctx),
		Employees: s.Employees.Count(ctx),
		Invoices:  s.Invoices.Count(ctx),
	}, nil
}

func (r seedResult) QuietLine() string {
	return fmt.Sprint(r.Seeded)
}

func (r seedResult) Human() string {
	if !r.Seeded {
		return styles.Warning(fmt.Sprintf("Store already has %d clients, nothing seeded", r.Clients))
	}
	return styles.Success(fmt.Sprintf("Seeded %d clients, %d employees and %d invoices", r.Clients, r.Employees, r.Invoices))
}
