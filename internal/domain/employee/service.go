package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// ListEmployees lists employees, newest first
	ListEmployees(ctx context.Context, filter EmployeeFilter) ([]EmployeeResponse, error)

	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// CreateEmployee provisions the login user and the employee record (HR only)
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (CreateEmployeeResponse, error)

	// UpdateEmployee applies a partial update (HR only)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee hard deletes the employee and its login user (HR only)
	DeleteEmployee(ctx context.Context, id string) error
}
