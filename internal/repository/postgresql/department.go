package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hrlabs/hrms-backend-go/internal/domain/department"
	"github.com/hrlabs/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type departmentRepository struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepository{db: db}
}

// Create implements department.DepartmentRepository.
func (d *departmentRepository) Create(ctx context.Context, newDepartment department.Department) (department.Department, error) {
	q := GetQuerier(ctx, d.db)

	id, err := uuid.NewV7()
	if err != nil {
		return department.Department{}, fmt.Errorf("failed to generate department id: %w", err)
	}
	newDepartment.ID = id.String()

	query := `
		INSERT INTO departments (id, name)
		VALUES ($1, $2)
		RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query, newDepartment.ID, newDepartment.Name).
		Scan(&newDepartment.CreatedAt, &newDepartment.UpdatedAt)

	if err != nil {
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	return newDepartment, nil
}

// GetByID implements department.DepartmentRepository.
func (d *departmentRepository) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT id, name, created_at, updated_at
		FROM departments
		WHERE id = $1
	`

	var dept department.Department
	err := q.QueryRow(ctx, query, id).Scan(&dept.ID, &dept.Name, &dept.CreatedAt, &dept.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department by ID: %w", err)
	}

	return dept, nil
}

// GetByName implements department.DepartmentRepository.
func (d *departmentRepository) GetByName(ctx context.Context, name string) (*department.Department, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT id, name, created_at, updated_at
		FROM departments
		WHERE LOWER(name) = LOWER($1)
	`

	var dept department.Department
	err := q.QueryRow(ctx, query, name).Scan(&dept.ID, &dept.Name, &dept.CreatedAt, &dept.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No department with this name
		}
		return nil, fmt.Errorf("failed to get department by name: %w", err)
	}

	return &dept, nil
}

// List implements department.DepartmentRepository.
func (d *departmentRepository) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, d.db)

	rows, err := q.Query(ctx, `
		SELECT id, name, created_at, updated_at
		FROM departments
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var dept department.Department
		if err := rows.Scan(&dept.ID, &dept.Name, &dept.CreatedAt, &dept.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan department row: %w", err)
		}
		departments = append(departments, dept)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read department rows: %w", err)
	}

	return departments, nil
}

// Delete implements department.DepartmentRepository.
func (d *departmentRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, d.db)

	tag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}

	return nil
}
