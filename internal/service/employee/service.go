package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hrlabs/hrms-backend-go/internal/domain/department"
	"github.com/hrlabs/hrms-backend-go/internal/domain/employee"
	"github.com/hrlabs/hrms-backend-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5/pgconn"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
		departmentRepo:     departmentRepo,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.EmployeeRepository.GetByEmail(ctx, email); err == nil {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check email uniqueness: %w", err)
	}

	if !validator.IsValidUUID(req.DepartmentID) {
		return employee.EmployeeResponse{}, department.ErrInvalidDepartmentID
	}
	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
		if errors.Is(err, department.ErrDepartmentNotFound) {
			return employee.EmployeeResponse{}, department.ErrDepartmentNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to resolve department: %w", err)
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		FullName:     req.FullName,
		Email:        email,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return employee.EmployeeResponse{}, employee.ErrEmailExists
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	// Re-read for the department name projection.
	return s.GetEmployee(ctx, created.ID)
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	if !validator.IsValidUUID(id) {
		return employee.EmployeeResponse{}, employee.ErrInvalidEmployeeID
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return toEmployeeResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.ListEmployeesFilter) ([]employee.EmployeeResponse, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	employees, total, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}

	results := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		results = append(results, toEmployeeResponse(emp))
	}

	return results, total, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if !validator.IsValidUUID(req.ID) {
		return employee.EmployeeResponse{}, employee.ErrInvalidEmployeeID
	}
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		req.Email = &email

		if email != current.Email {
			if _, err := s.EmployeeRepository.GetByEmail(ctx, email); err == nil {
				return employee.EmployeeResponse{}, employee.ErrEmailExists
			} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
				return employee.EmployeeResponse{}, fmt.Errorf("failed to check email uniqueness: %w", err)
			}
		}
	}

	if req.DepartmentID != nil {
		if !validator.IsValidUUID(*req.DepartmentID) {
			return employee.EmployeeResponse{}, department.ErrInvalidDepartmentID
		}
		if _, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID); err != nil {
			if errors.Is(err, department.ErrDepartmentNotFound) {
				return employee.EmployeeResponse{}, department.ErrDepartmentNotFound
			}
			return employee.EmployeeResponse{}, fmt.Errorf("failed to resolve department: %w", err)
		}
	}

	if err := s.EmployeeRepository.Update(ctx, req.ID, req); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return employee.EmployeeResponse{}, employee.ErrEmailExists
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return s.GetEmployee(ctx, req.ID)
}

// DeleteEmployee implements employee.EmployeeService. The ledger rows for
// the employee go with it via the storage-level cascade.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return employee.ErrInvalidEmployeeID
	}

	if err := s.EmployeeRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}

func toEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:           emp.ID,
		EmployeeCode: emp.EmployeeCode,
		FullName:     emp.FullName,
		Email:        emp.Email,
		Department: employee.DepartmentSummary{
			ID:   emp.DepartmentID,
			Name: emp.DepartmentName,
		},
		CreatedAt: emp.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
