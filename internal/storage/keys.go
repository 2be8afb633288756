package storage

// Keys under which the application persists its state
const (
	KeyClients       = "rmv_clients"
	KeyEmployees     = "rmv_employees"
	KeyInvoices      = "rmv_invoices"
	KeyPayroll       = "rmv_payroll"
	KeyAttendance    = "rmv_attendance"
	KeyLeaveRequests = "rmv_leave_requests"
	KeyCurrentUser   = "rmv_current_user"
	KeySettings      = "rmv_settings"
)

// AppKeys returns every application key in a stable order
func AppKeys() []string {
	return []string{
		KeyClients,
		KeyEmployees,
		KeyInvoices,
		KeyPayroll,
		KeyAttendance,
		KeyLeaveRequests,
		KeyCurrentUser,
		KeySettings,
	}
}
