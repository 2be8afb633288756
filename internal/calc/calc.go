// Package calc computes the money figures callers store on invoices and
// payroll entries. The store never recomputes them.
package calc

import (
	"github.com/shopspring/decimal"

	"github.com/richezza/rmv/internal/models"
)

// OvertimeMultiplier is applied to the hourly rate for overtime hours
const OvertimeMultiplier = 1.5

// HoursPerDay is the standard working day used to derive an hourly rate
const HoursPerDay = 8

func cents(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// InvoiceTotals holds an invoice's computed figures
type InvoiceTotals struct {
	Items    []models.InvoiceItem
	Subtotal float64
	Tax      float64
	Total    float64
}

// Invoice sets each item's amount to quantity x rate and sums the invoice.
// taxRate is a percentage (8.25 means 8.25%).
func Invoice(items []models.InvoiceItem, taxRate float64) InvoiceTotals {
	out := make([]models.InvoiceItem, len(items))
	subtotal := decimal.Zero
	for i, item := range items {
		amount := decimal.NewFromFloat(item.Quantity).Mul(decimal.NewFromFloat(item.Rate)).Round(2)
		item.Amount = amount.InexactFloat64()
		out[i] = item
		subtotal = subtotal.Add(amount)
	}

	tax := subtotal.Mul(decimal.NewFromFloat(taxRate)).Div(decimal.NewFromInt(100)).Round(2)
	return InvoiceTotals{
		Items:    out,
		Subtotal: cents(subtotal),
		Tax:      cents(tax),
		Total:    cents(subtotal.Add(tax)),
	}
}

// PayrollInput is the attendance summary for one pay period
type PayrollInput struct {
	WorkingDays   int
	PresentDays   int
	OvertimeHours float64
}

// PayrollFigures holds a payroll entry's computed figures
type PayrollFigures struct {
	BaseSalary  float64
	Allowances  float64
	OvertimePay float64
	GrossSalary float64
	Deductions  float64
	NetSalary   float64
}

// Payroll prorates the employee's monthly salary by attendance and adds
// allowances and overtime. Deductions are taken in full.
func Payroll(emp models.Employee, in PayrollInput) PayrollFigures {
	salary := decimal.NewFromFloat(emp.Salary)

	base := salary
	hourly := decimal.Zero
	if in.WorkingDays > 0 {
		working := decimal.NewFromInt(int64(in.WorkingDays))
		present := decimal.NewFromInt(int64(min(max(in.PresentDays, 0), in.WorkingDays)))
		base = salary.Mul(present).Div(working)
		hourly = salary.Div(working).Div(decimal.NewFromInt(HoursPerDay))
	}

	overtime := hourly.
		Mul(decimal.NewFromFloat(in.OvertimeHours)).
		Mul(decimal.NewFromFloat(OvertimeMultiplier))

	allowances := decimal.NewFromFloat(emp.Allowances.Total())
	deductions := decimal.NewFromFloat(emp.Deductions.Total())

	base = base.Round(2)
	overtime = overtime.Round(2)
	gross := base.Add(allowances).Add(overtime)

	return PayrollFigures{
		BaseSalary:  cents(base),
		Allowances:  cents(allowances),
		OvertimePay: cents(overtime),
		GrossSalary: cents(gross),
		Deductions:  cents(deductions),
		NetSalary:   cents(gross.Sub(deductions)),
	}
}
