package models

import "time"

// AttendanceRecord is one employee's attendance for one calendar day
type AttendanceRecord struct {
	ID            string           `json:"id"`
	EmployeeID    string           `json:"employeeId"`
	Employee      Employee         `json:"employee"`
	Date          time.Time        `json:"date"`
	ClockIn       *time.Time       `json:"clockIn,omitempty"`
	ClockOut      *time.Time       `json:"clockOut,omitempty"`
	BreakStart    *time.Time       `json:"breakStart,omitempty"`
	BreakEnd      *time.Time       `json:"breakEnd,omitempty"`
	TotalHours    float64          `json:"totalHours"`
	OvertimeHours float64          `json:"overtimeHours"`
	Status        AttendanceStatus `json:"status"`
	Notes         string           `json:"notes,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
}

func (a AttendanceRecord) RecordID() string { return a.ID }

// AttendancePatch carries the fields to merge over a stored AttendanceRecord
type AttendancePatch struct {
	ClockIn       *time.Time        `json:"clockIn,omitempty"`
	ClockOut      *time.Time        `json:"clockOut,omitempty"`
	BreakStart    *time.Time        `json:"breakStart,omitempty"`
	BreakEnd      *time.Time        `json:"breakEnd,omitempty"`
	TotalHours    *float64          `json:"totalHours,omitempty"`
	OvertimeHours *float64          `json:"overtimeHours,omitempty"`
	Status        *AttendanceStatus `json:"status,omitempty"`
	Notes         *string           `json:"notes,omitempty"`
}
