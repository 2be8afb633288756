package models

import "time"

// PayrollEntry is one employee's pay for one period. Month is the English
// month name ("January"), matching what the dashboard filters on.
type PayrollEntry struct {
	ID            string        `json:"id"`
	EmployeeID    string        `json:"employeeId"`
	Employee      Employee      `json:"employee"`
	Month         string        `json:"month"`
	Year          int           `json:"year"`
	WorkingDays   int           `json:"workingDays"`
	PresentDays   int           `json:"presentDays"`
	AbsentDays    int           `json:"absentDays"`
	OvertimeHours float64       `json:"overtimeHours"`
	BaseSalary    float64       `json:"baseSalary"`
	Allowances    float64       `json:"allowances"`
	OvertimePay   float64       `json:"overtimePay"`
	GrossSalary   float64       `json:"grossSalary"`
	Deductions    float64       `json:"deductions"`
	NetSalary     float64       `json:"netSalary"`
	Status        PayrollStatus `json:"status"`
	ProcessedAt   *time.Time    `json:"processedAt,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}

func (p PayrollEntry) RecordID() string { return p.ID }

// PayrollPatch carries the fields to merge over a stored PayrollEntry
type PayrollPatch struct {
	WorkingDays   *int           `json:"workingDays,omitempty"`
	PresentDays   *int           `json:"presentDays,omitempty"`
	AbsentDays    *int           `json:"absentDays,omitempty"`
	OvertimeHours *float64       `json:"overtimeHours,omitempty"`
	BaseSalary    *float64       `json:"baseSalary,omitempty"`
	Allowances    *float64       `json:"allowances,omitempty"`
	OvertimePay   *float64       `json:"overtimePay,omitempty"`
	GrossSalary   *float64       `json:"grossSalary,omitempty"`
	Deductions    *float64       `json:"deductions,omitempty"`
	NetSalary     *float64       `json:"netSalary,omitempty"`
	Status        *PayrollStatus `json:"status,omitempty"`
	ProcessedAt   *time.Time     `json:"processedAt,omitempty"`
}
