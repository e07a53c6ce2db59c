package department

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hrlabs/hrms-backend-go/internal/domain/department"
	"github.com/hrlabs/hrms-backend-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5/pgconn"
)

type DepartmentServiceImpl struct {
	department.DepartmentRepository
}

func NewDepartmentService(departmentRepo department.DepartmentRepository) department.DepartmentService {
	return &DepartmentServiceImpl{
		DepartmentRepository: departmentRepo,
	}
}

// CreateDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	name := strings.TrimSpace(req.Name)

	existing, err := s.DepartmentRepository.GetByName(ctx, name)
	if err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to check department name: %w", err)
	}
	if existing != nil {
		return department.DepartmentResponse{}, department.ErrDepartmentExists
	}

	created, err := s.DepartmentRepository.Create(ctx, department.Department{Name: name})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return department.DepartmentResponse{}, department.ErrDepartmentExists
		}
		return department.DepartmentResponse{}, fmt.Errorf("failed to create department: %w", err)
	}

	return department.DepartmentResponse{
		ID:   created.ID,
		Name: created.Name,
	}, nil
}

// ListDepartments implements department.DepartmentService.
func (s *DepartmentServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.DepartmentRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	results := make([]department.DepartmentResponse, 0, len(departments))
	for _, dept := range departments {
		results = append(results, department.DepartmentResponse{
			ID:   dept.ID,
			Name: dept.Name,
		})
	}

	return results, nil
}

// DeleteDepartment implements department.DepartmentService. Departments with
// employees still assigned are not deleted; that would leave dangling
// references.
func (s *DepartmentServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return department.ErrInvalidDepartmentID
	}

	if err := s.DepartmentRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, department.ErrDepartmentNotFound) {
			return department.ErrDepartmentNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return department.ErrDepartmentInUse
		}
		return fmt.Errorf("failed to delete department: %w", err)
	}

	return nil
}
