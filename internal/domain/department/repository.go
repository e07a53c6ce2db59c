package department

import "context"

type DepartmentRepository interface {
	Create(ctx context.Context, newDepartment Department) (Department, error)
	GetByID(ctx context.Context, id string) (Department, error)

	// GetByName matches the department name case-insensitively. Returns nil
	// when no department exists with that name.
	GetByName(ctx context.Context, name string) (*Department, error)

	// List retrieves all departments sorted by name ascending.
	List(ctx context.Context) ([]Department, error)

	Delete(ctx context.Context, id string) error
}
