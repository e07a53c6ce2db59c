package attendance

import (
	"github.com/hrlabs/hrms-backend-go/internal/pkg/validator"
)

// MarkAttendanceRequest represents the request structure for marking
// attendance. Date accepts either a plain date (2006-01-02) or a timestamp;
// either way it is collapsed to one canonical calendar day.
type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	// EmployeeID
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	// Date
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	}

	// Status
	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	} else if !validator.IsInSlice(r.Status, []string{string(StatusPresent), string(StatusAbsent)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be either Present or Absent",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AttendanceResponse represents a single attendance record for display.
type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeCode *string `json:"employee_code,omitempty"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
}

// EmployeeSummary is the lightweight employee projection attached to
// attendance reads.
type EmployeeSummary struct {
	ID           string `json:"id"`
	EmployeeCode string `json:"employee_code"`
	FullName     string `json:"full_name"`
}

// EmployeeAttendanceResponse is the per-employee history response.
// TotalPresentDays is always the all-time Present count, independent of any
// date filter applied to Records.
type EmployeeAttendanceResponse struct {
	Employee         EmployeeSummary      `json:"employee"`
	TotalPresentDays int64                `json:"total_present_days"`
	Records          []AttendanceResponse `json:"records"`
}

// DashboardSummaryResponse holds today's aggregate counts.
type DashboardSummaryResponse struct {
	TotalEmployees int64 `json:"total_employees"`
	PresentToday   int64 `json:"present_today"`
	AbsentToday    int64 `json:"absent_today"`
}
