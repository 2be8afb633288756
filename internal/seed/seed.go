// Package seed fills an empty store with sample records
package seed

import (
	"context"
	"log/slog"
	"time"

	"github.com/richezza/rmv/internal/calc"
	"github.com/richezza/rmv/internal/format"
	"github.com/richezza/rmv/internal/ids"
	"github.com/richezza/rmv/internal/models"
	"github.com/richezza/rmv/internal/store"
)

// SampleData seeds clients, employees, invoices and one record of each HR
// collection. It does nothing when clients already exist, and reports
// whether it seeded.
func SampleData(ctx context.Context, s *store.Store, now time.Time) bool {
	if s.Clients.Count(ctx) > 0 {
		return false
	}
	slog.Info("seeding sample data")

	now = now.UTC()
	clients := []models.Client{
		newClient(now, "Acme Co", "billing@acme.com", "555-0100", "1 Main St", "Springfield", "IL", "62701"),
		newClient(now, "Globex Corporation", "ap@globex.com", "555-0142", "900 Cypress Ave", "Cypress Creek", "OR", "97035"),
		newClient(now, "Initech", "accounts@initech.com", "555-0199", "4120 Freidrich Ln", "Austin", "TX", "78744"),
	}
	for _, c := range clients {
		s.Clients.Create(ctx, c)
	}

	employees := []models.Employee{
		newEmployee(now, "EMP001", "Maria Santos", "Accountant", "Accounts", 4400),
		newEmployee(now, "EMP002", "David Chen", "HR Officer", "Human Resources", 3800),
	}
	for _, e := range employees {
		s.Employees.Create(ctx, e)
	}

	s.Invoices.Create(ctx, newInvoice(now, "INV-0001", clients[0], models.InvoicePaid, []models.InvoiceItem{
		{ID: ids.New(), Description: "Monthly bookkeeping", Quantity: 1, Rate: 1200},
		{ID: ids.New(), Description: "Payroll processing", Quantity: 12, Rate: 25},
	}))
	s.Invoices.Create(ctx, newInvoice(now, "INV-0002", clients[1], models.InvoiceSent, []models.InvoiceItem{
		{ID: ids.New(), Description: "Tax filing", Quantity: 1, Rate: 850},
	}))

	emp := employees[0]
	fig := calc.Payroll(emp, calc.PayrollInput{WorkingDays: 22, PresentDays: 21, OvertimeHours: 3})
	s.Payroll.Create(ctx, models.PayrollEntry{
		ID:            ids.New(),
		EmployeeID:    emp.ID,
		Employee:      emp,
		Month:         format.MonthName(now),
		Year:          now.Year(),
		WorkingDays:   22,
		PresentDays:   21,
		AbsentDays:    1,
		OvertimeHours: 3,
		BaseSalary:    fig.BaseSalary,
		Allowances:    fig.Allowances,
		OvertimePay:   fig.OvertimePay,
		GrossSalary:   fig.GrossSalary,
		Deductions:    fig.Deductions,
		NetSalary:     fig.NetSalary,
		Status:        models.PayrollDraft,
		CreatedAt:     now,
	})

	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	clockIn, clockOut := day.Add(9*time.Hour), day.Add(18*time.Hour)
	s.Attendance.Create(ctx, models.AttendanceRecord{
		ID:         ids.New(),
		EmployeeID: emp.ID,
		Employee:   emp,
		Date:       day,
		ClockIn:    &clockIn,
		ClockOut:   &clockOut,
		TotalHours: 9,
		// one hour past the standard day
		OvertimeHours: 1,
		Status:        models.AttendancePresent,
		CreatedAt:     now,
	})

	other := employees[1]
	s.Leave.Create(ctx, models.LeaveRequest{
		ID:         ids.New(),
		EmployeeID: other.ID,
		Employee:   other,
		Type:       models.LeaveAnnual,
		StartDate:  day.AddDate(0, 0, 7),
		EndDate:    day.AddDate(0, 0, 9),
		Days:       3,
		Reason:     "Family visit",
		Status:     models.LeavePending,
		CreatedAt:  now,
	})

	return true
}

func newClient(now time.Time, name, email, phone, address, city, state, zip string) models.Client {
	return models.Client{
		ID:        ids.New(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Address:   address,
		City:      city,
		State:     state,
		ZipCode:   zip,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func newEmployee(now time.Time, staffNo, name, position, dept string, salary float64) models.Employee {
	return models.Employee{
		ID:         ids.New(),
		EmployeeID: staffNo,
		Name:       name,
		Position:   position,
		Department: dept,
		HireDate:   now.AddDate(-2, 0, 0),
		Salary:     salary,
		Allowances: models.Allowances{Housing: 500, Transport: 150, Medical: 100},
		Deductions: models.Deductions{Tax: salary * 0.1, Insurance: 120, ProvidentFund: 200},
		Status:     models.EmployeeActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

const sampleTaxRate = 8.25

func newInvoice(now time.Time, number string, client models.Client, status models.InvoiceStatus, items []models.InvoiceItem) models.Invoice {
	totals := calc.Invoice(items, sampleTaxRate)
	return models.Invoice{
		ID:            ids.New(),
		InvoiceNumber: number,
		ClientID:      client.ID,
		Client:        client,
		Date:          now,
		DueDate:       now.AddDate(0, 0, 30),
		Items:         totals.Items,
		Subtotal:      totals.Subtotal,
		Tax:           totals.Tax,
		TaxRate:       sampleTaxRate,
		Total:         totals.Total,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
