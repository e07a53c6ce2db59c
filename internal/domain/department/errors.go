package department

import "errors"

var (
	ErrDepartmentNotFound  = errors.New("department not found")
	ErrDepartmentExists    = errors.New("department already exists")
	ErrDepartmentInUse     = errors.New("department still has employees assigned")
	ErrInvalidDepartmentID = errors.New("invalid department ID format")
)
