package employee

import "errors"

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrEmailExists       = errors.New("email already exists")
	ErrInvalidEmployeeID = errors.New("invalid employee ID format")
)
