package employee

import "context"

type EmployeeRepository interface {
	// Create inserts a new employee, claiming the next employee code from
	// the atomic sequence in the same statement.
	Create(ctx context.Context, newEmployee Employee) (Employee, error)

	// GetByID retrieves an employee by id, including the department name
	// projection.
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByEmail retrieves an employee by lowercased email.
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// List retrieves employees with search/department filters and
	// pagination, newest first. Returns the records and the total count
	// matching the filter.
	List(ctx context.Context, filter ListEmployeesFilter) ([]Employee, int64, error)

	// Update applies the non-nil fields of req.
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) error

	// Delete removes an employee; attendance rows cascade at the storage
	// layer.
	Delete(ctx context.Context, id string) error

	// Count returns the total number of employees.
	Count(ctx context.Context) (int64, error)
}
