package employee

import (
	"github.com/hrlabs/hrms-backend-go/internal/pkg/validator"
)

// EmployeeResponse represents the response structure for an employee.
type EmployeeResponse struct {
	ID           string            `json:"id"`
	EmployeeCode string            `json:"employee_code"`
	FullName     string            `json:"full_name"`
	Email        string            `json:"email"`
	Department   DepartmentSummary `json:"department"`
	CreatedAt    string            `json:"created_at"`
}

// DepartmentSummary is the department projection embedded in employee reads.
type DepartmentSummary struct {
	ID   string  `json:"id"`
	Name *string `json:"name,omitempty"`
}

// CreateEmployeeRequest represents the request structure for adding an
// employee. The employee code is assigned by the system, never by the client.
type CreateEmployeeRequest struct {
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	DepartmentID string `json:"department_id"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	// FullName
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if len(r.FullName) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not exceed 100 characters",
		})
	}

	// Email
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	// DepartmentID
	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEmployeeRequest represents the request structure for updating an
// employee. Absent fields are left unchanged.
type UpdateEmployeeRequest struct {
	ID           string  `json:"-"` // From path
	FullName     *string `json:"full_name,omitempty"`
	Email        *string `json:"email,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	// FullName
	if r.FullName != nil {
		if validator.IsEmpty(*r.FullName) {
			errs = append(errs, validator.ValidationError{
				Field:   "full_name",
				Message: "full_name must not be empty",
			})
		}
		if len(*r.FullName) > 100 {
			errs = append(errs, validator.ValidationError{
				Field:   "full_name",
				Message: "full_name must not exceed 100 characters",
			})
		}
	}

	// Email
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	// DepartmentID
	if r.DepartmentID != nil && validator.IsEmpty(*r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListEmployeesFilter holds pagination and search parameters for listing
// employees.
type ListEmployeesFilter struct {
	Page         int
	Limit        int
	Search       string
	DepartmentID string
}
