package models

import "time"

// LeaveRequest is a request for time off covering StartDate..EndDate
type LeaveRequest struct {
	ID         string      `json:"id"`
	EmployeeID string      `json:"employeeId"`
	Employee   Employee    `json:"employee"`
	Type       LeaveType   `json:"type"`
	StartDate  time.Time   `json:"startDate"`
	EndDate    time.Time   `json:"endDate"`
	Days       int         `json:"days"`
	Reason     string      `json:"reason"`
	Status     LeaveStatus `json:"status"`
	ApprovedBy string      `json:"approvedBy,omitempty"`
	ApprovedAt *time.Time  `json:"approvedAt,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
}

func (l LeaveRequest) RecordID() string { return l.ID }

// LeavePatch carries the fields to merge over a stored LeaveRequest
type LeavePatch struct {
	Type       *LeaveType   `json:"type,omitempty"`
	StartDate  *time.Time   `json:"startDate,omitempty"`
	EndDate    *time.Time   `json:"endDate,omitempty"`
	Days       *int         `json:"days,omitempty"`
	Reason     *string      `json:"reason,omitempty"`
	Status     *LeaveStatus `json:"status,omitempty"`
	ApprovedBy *string      `json:"approvedBy,omitempty"`
	ApprovedAt *time.Time   `json:"approvedAt,omitempty"`
}
