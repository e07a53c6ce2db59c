package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// MarkAttendance validates and commits one attendance mark for an
	// employee on a canonical calendar day
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)

	// GetEmployeeAttendance retrieves an employee's history, optionally
	// filtered to a single day, plus the all-time Present total
	GetEmployeeAttendance(ctx context.Context, employeeID string, date string) (EmployeeAttendanceResponse, error)

	// GetDashboardSummary computes today's present/absent counts and the
	// total employee count
	GetDashboardSummary(ctx context.Context) (DashboardSummaryResponse, error)
}
