package response

import (
	"errors"
	"net/http"

	"github.com/hrlabs/hrms-backend-go/internal/domain/attendance"
	"github.com/hrlabs/hrms-backend-go/internal/domain/department"
	"github.com/hrlabs/hrms-backend-go/internal/domain/employee"
	"github.com/hrlabs/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrInvalidEmployeeID):
		BadRequest(w, "Invalid employee ID format", nil)
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already exists")

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrInvalidDepartmentID):
		BadRequest(w, "Invalid department ID format", nil)
	case errors.Is(err, department.ErrDepartmentExists):
		Conflict(w, "Department already exists")
	case errors.Is(err, department.ErrDepartmentInUse):
		Conflict(w, "Department still has employees assigned")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceAlreadyMarked):
		Conflict(w, "Attendance already marked for this employee on this date")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
