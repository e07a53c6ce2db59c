package attendance

import (
	"context"
)

// AttendanceRepository defines data access methods for the attendance ledger.
// All day matching uses half-open [start, end) intervals so stored records
// are found regardless of the exact instant recorded.
type AttendanceRepository interface {
	// Create inserts a new attendance record. The (employee_id, date) unique
	// constraint rejects a second record for the same canonical day.
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByEmployeeAndDay retrieves the record for an employee within one day
	// interval. Returns nil when no record exists.
	GetByEmployeeAndDay(ctx context.Context, employeeID string, day DayInterval) (*Attendance, error)

	// ListByEmployee retrieves an employee's records sorted by date
	// descending, optionally restricted to a single day interval.
	ListByEmployee(ctx context.Context, employeeID string, day *DayInterval) ([]Attendance, error)

	// CountPresentByEmployee returns the all-time count of Present records
	// for an employee.
	CountPresentByEmployee(ctx context.Context, employeeID string) (int64, error)

	// CountByStatusInDay returns the number of records with the given status
	// within one day interval.
	CountByStatusInDay(ctx context.Context, status Status, day DayInterval) (int64, error)
}
