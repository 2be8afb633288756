// Package report derives the dashboard and list-page aggregates from stored
// records
package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/richezza/rmv/internal/format"
	"github.com/richezza/rmv/internal/models"
	"github.com/richezza/rmv/internal/store"
)

// DashboardStats is the summary shown on the dashboard
type DashboardStats struct {
	TotalRevenue    float64 `json:"totalRevenue"`
	MonthlyRevenue  float64 `json:"monthlyRevenue"`
	TotalInvoices   int     `json:"totalInvoices"`
	PaidInvoices    int     `json:"paidInvoices"`
	PendingInvoices int     `json:"pendingInvoices"`
	OverdueInvoices int     `json:"overdueInvoices"`
	TotalEmployees  int     `json:"totalEmployees"`
	ActiveEmployees int     `json:"activeEmployees"`
	TotalClients    int     `json:"totalClients"`
	MonthlyPayroll  float64 `json:"monthlyPayroll"`
}

// Dashboard computes DashboardStats as of now. Pending means sent and not yet
// paid. Monthly figures use now's UTC calendar month and year.
func Dashboard(ctx context.Context, s *store.Store, now time.Time) DashboardStats {
	now = now.UTC()
	clients := s.Clients.GetAll(ctx)
	employees := s.Employees.GetAll(ctx)
	invoices := s.Invoices.GetAll(ctx)
	payroll := s.Payroll.ByPeriod(ctx, format.MonthName(now), now.Year())

	stats := DashboardStats{
		TotalClients:   len(clients),
		TotalEmployees: len(employees),
		TotalInvoices:  len(invoices),
	}

	for _, e := range employees {
		if e.Status == models.EmployeeActive {
			stats.ActiveEmployees++
		}
	}

	revenue, monthly := decimal.Zero, decimal.Zero
	for _, inv := range invoices {
		switch inv.Status {
		case models.InvoicePaid:
			stats.PaidInvoices++
			total := decimal.NewFromFloat(inv.Total)
			revenue = revenue.Add(total)
			if sameMonth(inv.Date, now) {
				monthly = monthly.Add(total)
			}
		case models.InvoiceSent:
			stats.PendingInvoices++
		case models.InvoiceOverdue:
			stats.OverdueInvoices++
		}
	}
	stats.TotalRevenue = revenue.InexactFloat64()
	stats.MonthlyRevenue = monthly.InexactFloat64()

	net := decimal.Zero
	for _, p := range payroll {
		net = net.Add(decimal.NewFromFloat(p.NetSalary))
	}
	stats.MonthlyPayroll = net.InexactFloat64()

	return stats
}

func sameMonth(a, b time.Time) bool {
	a, b = a.UTC(), b.UTC()
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// InvoiceSummary is the header of the invoices page
type InvoiceSummary struct {
	Total         int     `json:"total"`
	Draft         int     `json:"draft"`
	Sent          int     `json:"sent"`
	Paid          int     `json:"paid"`
	Overdue       int     `json:"overdue"`
	Cancelled     int     `json:"cancelled"`
	TotalRevenue  float64 `json:"totalRevenue"`
	PendingAmount float64 `json:"pendingAmount"`
}

// Invoices summarises invoices by status. PendingAmount covers sent and
// overdue invoices.
func Invoices(invoices []models.Invoice) InvoiceSummary {
	sum := InvoiceSummary{Total: len(invoices)}
	revenue, pending := decimal.Zero, decimal.Zero

	for _, inv := range invoices {
		total := decimal.NewFromFloat(inv.Total)
		switch inv.Status {
		case models.InvoiceDraft:
			sum.Draft++
		case models.InvoiceSent:
			sum.Sent++
			pending = pending.Add(total)
		case models.InvoicePaid:
			sum.Paid++
			revenue = revenue.Add(total)
		case models.InvoiceOverdue:
			sum.Overdue++
			pending = pending.Add(total)
		case models.InvoiceCancelled:
			sum.Cancelled++
		}
	}

	sum.TotalRevenue = revenue.InexactFloat64()
	sum.PendingAmount = pending.InexactFloat64()
	return sum
}

// NewClientsInMonth counts clients created in now's month. Only the UTC month
// is compared, so the same month of an earlier year also counts.
func NewClientsInMonth(clients []models.Client, now time.Time) int {
	month := now.UTC().Month()
	n := 0
	for _, c := range clients {
		if c.CreatedAt.UTC().Month() == month {
			n++
		}
	}
	return n
}
