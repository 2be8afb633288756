// Package models defines the persisted entity shapes for the rmv record store
package models

// Record is anything stored in a collection. The identifier is unique within
// its collection by convention only; nothing enforces it.
type Record interface {
	RecordID() string
}

// Compile-time checks that every collection entity is a Record
var (
	_ Record = Client{}
	_ Record = Employee{}
	_ Record = Invoice{}
	_ Record = PayrollEntry{}
	_ Record = AttendanceRecord{}
	_ Record = LeaveRequest{}
)
