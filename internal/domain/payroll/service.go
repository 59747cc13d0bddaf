package payroll

import "context"

type PayrollService interface {
	// GetMySalary defaults month/year to the current period
	GetMySalary(ctx context.Context, filter MySalaryFilter) (PayrollResponse, error)
	ListPayrolls(ctx context.Context, filter PayrollFilter) ([]PayrollResponse, error)
	CreatePayroll(ctx context.Context, req CreatePayrollRequest) (PayrollResponse, error)
	UpdatePayroll(ctx context.Context, req UpdatePayrollRequest) (PayrollResponse, error)
	MarkPaid(ctx context.Context, id string) (PayrollResponse, error)
}
