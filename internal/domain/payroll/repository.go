package payroll

import "context"

type Query struct {
	EmployeeID *string
	Month      *int
	Year       *int
	Status     *PayrollStatus
}

type PayrollRepository interface {
	// Create returns ErrPayrollExists when the (employee, month, year)
	// constraint rejects the row.
	Create(ctx context.Context, p Payroll) (Payroll, error)
	GetByID(ctx context.Context, id string) (Payroll, error)
	// GetByPeriod returns nil, nil when no record exists.
	GetByPeriod(ctx context.Context, employeeID string, month, year int) (*Payroll, error)
	// List orders by year, then month, newest first.
	List(ctx context.Context, q Query) ([]Payroll, error)
	Update(ctx context.Context, p Payroll) (Payroll, error)
}
