package store

import (
	"context"
	"strings"
	"time"

	"github.com/richezza/rmv/internal/models"
)

// Clients is the clients collection
type Clients struct {
	*Collection[models.Client]
}

// Search matches term case-insensitively against name and email, and as a
// plain substring of the phone number. An empty term matches everything.
func (c *Clients) Search(ctx context.Context, term string) []models.Client {
	lower := strings.ToLower(term)
	return c.Filter(ctx, func(cl models.Client) bool {
		return strings.Contains(strings.ToLower(cl.Name), lower) ||
			strings.Contains(strings.ToLower(cl.Email), lower) ||
			strings.Contains(cl.Phone, term)
	})
}

// Employees is the employees collection
type Employees struct {
	*Collection[models.Employee]
}

// ByDepartment returns employees of one department
func (e *Employees) ByDepartment(ctx context.Context, department string) []models.Employee {
	return e.Filter(ctx, func(emp models.Employee) bool {
		return emp.Department == department
	})
}

// Active returns employees whose status is active
func (e *Employees) Active(ctx context.Context) []models.Employee {
	return e.Filter(ctx, func(emp models.Employee) bool {
		return emp.Status == models.EmployeeActive
	})
}

// Invoices is the invoices collection
type Invoices struct {
	*Collection[models.Invoice]
}

// ByStatus returns invoices with the given status
func (i *Invoices) ByStatus(ctx context.Context, status models.InvoiceStatus) []models.Invoice {
	return i.Filter(ctx, func(inv models.Invoice) bool {
		return inv.Status == status
	})
}

// ByClient returns invoices billed to clientID
func (i *Invoices) ByClient(ctx context.Context, clientID string) []models.Invoice {
	return i.Filter(ctx, func(inv models.Invoice) bool {
		return inv.ClientID == clientID
	})
}

// StatusAll disables the status filter in Search
const StatusAll = "all"

// Search matches term case-insensitively against the invoice number and the
// embedded client's name and email, then filters by status. A status of ""
// or StatusAll keeps every status.
func (i *Invoices) Search(ctx context.Context, term string, status models.InvoiceStatus) []models.Invoice {
	lower := strings.ToLower(term)
	return i.Filter(ctx, func(inv models.Invoice) bool {
		matchesTerm := strings.Contains(strings.ToLower(inv.InvoiceNumber), lower) ||
			strings.Contains(strings.ToLower(inv.Client.Name), lower) ||
			strings.Contains(strings.ToLower(inv.Client.Email), lower)
		matchesStatus := status == "" || status == StatusAll || inv.Status == status
		return matchesTerm && matchesStatus
	})
}

// Payroll is the payroll entries collection
type Payroll struct {
	*Collection[models.PayrollEntry]
}

// ByEmployee returns one employee's payroll entries
func (p *Payroll) ByEmployee(ctx context.Context, employeeID string) []models.PayrollEntry {
	return p.Filter(ctx, func(e models.PayrollEntry) bool {
		return e.EmployeeID == employeeID
	})
}

// ByPeriod returns entries for a month name ("March") and year
func (p *Payroll) ByPeriod(ctx context.Context, month string, year int) []models.PayrollEntry {
	return p.Filter(ctx, func(e models.PayrollEntry) bool {
		return e.Month == month && e.Year == year
	})
}

// Attendance is the attendance records collection
type Attendance struct {
	*Collection[models.AttendanceRecord]
}

// ByEmployee returns one employee's attendance records
func (a *Attendance) ByEmployee(ctx context.Context, employeeID string) []models.AttendanceRecord {
	return a.Filter(ctx, func(r models.AttendanceRecord) bool {
		return r.EmployeeID == employeeID
	})
}

// ByDate returns records on the same UTC calendar day as day. Time of day is
// ignored on both sides.
func (a *Attendance) ByDate(ctx context.Context, day time.Time) []models.AttendanceRecord {
	want := calendarDay(day)
	return a.Filter(ctx, func(r models.AttendanceRecord) bool {
		return calendarDay(r.Date) == want
	})
}

func calendarDay(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

// Leave is the leave requests collection
type Leave struct {
	*Collection[models.LeaveRequest]
}

// ByEmployee returns one employee's leave requests
func (l *Leave) ByEmployee(ctx context.Context, employeeID string) []models.LeaveRequest {
	return l.Filter(ctx, func(r models.LeaveRequest) bool {
		return r.EmployeeID == employeeID
	})
}

// Pending returns requests still awaiting a decision
func (l *Leave) Pending(ctx context.Context) []models.LeaveRequest {
	return l.Filter(ctx, func(r models.LeaveRequest) bool {
		return r.Status == models.LeavePending
	})
}
