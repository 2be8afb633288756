package models

import "time"

// Allowances is the monthly allowance breakdown added on top of salary
type Allowances struct {
	Housing   float64 `json:"housing"`
	Transport float64 `json:"transport"`
	Medical   float64 `json:"medical"`
	Other     float64 `json:"other"`
}

// Total sums every allowance
func (a Allowances) Total() float64 {
	return a.Housing + a.Transport + a.Medical + a.Other
}

// Deductions is the monthly deduction breakdown
type Deductions struct {
	Tax           float64 `json:"tax"`
	Insurance     float64 `json:"insurance"`
	ProvidentFund float64 `json:"providentFund"`
	Other         float64 `json:"other"`
}

// Total sums every deduction
func (d Deductions) Total() float64 {
	return d.Tax + d.Insurance + d.ProvidentFund + d.Other
}

// BankAccount holds salary payment details
type BankAccount struct {
	AccountNumber string `json:"accountNumber"`
	BankName      string `json:"bankName"`
	RoutingNumber string `json:"routingNumber"`
}

// Employee is a staff member. EmployeeID is the human-facing staff number,
// ID is the record identifier.
type Employee struct {
	ID          string         `json:"id"`
	EmployeeID  string         `json:"employeeId"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Phone       string         `json:"phone"`
	Address     string         `json:"address"`
	Position    string         `json:"position"`
	Department  string         `json:"department"`
	HireDate    time.Time      `json:"hireDate"`
	Salary      float64        `json:"salary"`
	Allowances  Allowances     `json:"allowances"`
	Deductions  Deductions     `json:"deductions"`
	BankAccount BankAccount    `json:"bankAccount"`
	Status      EmployeeStatus `json:"status"`
	Avatar      string         `json:"avatar,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func (e Employee) RecordID() string { return e.ID }

// EmployeePatch carries the fields to merge over a stored Employee.
// Nested breakdowns are replaced whole, not merged.
type EmployeePatch struct {
	Name        *string         `json:"name,omitempty"`
	Email       *string         `json:"email,omitempty"`
	Phone       *string         `json:"phone,omitempty"`
	Address     *string         `json:"address,omitempty"`
	Position    *string         `json:"position,omitempty"`
	Department  *string         `json:"department,omitempty"`
	HireDate    *time.Time      `json:"hireDate,omitempty"`
	Salary      *float64        `json:"salary,omitempty"`
	Allowances  *Allowances     `json:"allowances,omitempty"`
	Deductions  *Deductions     `json:"deductions,omitempty"`
	BankAccount *BankAccount    `json:"bankAccount,omitempty"`
	Status      *EmployeeStatus `json:"status,omitempty"`
	UpdatedAt   *time.Time      `json:"updatedAt,omitempty"`
}
