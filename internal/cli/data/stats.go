package data

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/richezza/rmv/internal/cli"
	"github.com/richezza/rmv/internal/cli/handler"
	"github.com/richezza/rmv/internal/cli/styles"
	"github.com/richezza/rmv/internal/format"
	"github.com/richezza/rmv/internal/metrics"
	"github.com/richezza/rmv/internal/report"
)

// StatsCmd returns the stats command
func StatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show dashboard statistics",
		Long: `Show the dashboard figures computed from the stored records.

Examples:
  rmv stats
  rmv stats --json
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(handler.Func(runStats)),
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

type statsResult struct {
	AsOf       string                `json:"asOf"`
	Dashboard  report.DashboardStats `json:"dashboard"`
	Invoices   report.InvoiceSummary `json:"invoices"`
	NewClients int                   `json:"newClientsThisMonth"`
	Storage    metrics.Snapshot      `json:"storage"`
}

func runStats(ctx context.Context, c *cli.CLI, _ *handler.Arguments) (any, error) {
	t := now()
	s := c.App.Store

	return statsResult{
		AsOf:       format.Date(t),
		Dashboard:  report.Dashboard(ctx, s, t),
		Invoices:   report.Invoices(s.Invoices.GetAll(ctx)),
		NewClients: report.NewClientsInMonth(s.Clients.GetAll(ctx), t),
		Storage:    s.Metrics().GetSnapshot(),
	}, nil
}

func (r statsResult) QuietLine() string {
	return fmt.Sprintf("%d %d %d", r.Dashboard.TotalClients, r.Dashboard.TotalEmployees, r.Dashboard.TotalInvoices)
}

func (r statsResult) Human() string {
	d := r.Dashboard
	const w = len("Monthly payroll")
	rows := []string{
		styles.TitleStyle.Render("Dashboard as of " + r.AsOf),
		"",
		styles.Field("Revenue", w, fmt.Sprintf("%s (this month %s)", format.Currency(d.TotalRevenue), format.Currency(d.MonthlyRevenue))),
		styles.Field("Pending amount", w, format.Currency(r.Invoices.PendingAmount)),
		styles.Field("Invoices", w, fmt.Sprintf("%d (paid %d, pending %d, overdue %d)", d.TotalInvoices, d.PaidInvoices, d.PendingInvoices, d.OverdueInvoices)),
		styles.Field("Clients", w, fmt.Sprintf("%d (%d new this month)", d.TotalClients, r.NewClients)),
		styles.Field("Employees", w, fmt.Sprintf("%d (%d active)", d.TotalEmployees, d.ActiveEmployees)),
		styles.Field("Monthly payroll", w, format.Currency(d.MonthlyPayroll)),
	}

	return styles.RenderCard(strings.Join(rows, "\n"))
}
