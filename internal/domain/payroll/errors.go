package payroll

import "errors"

var (
	ErrPayrollNotFound      = errors.New("payroll record not found")
	ErrPayrollPeriodMissing = errors.New("payroll record not found for this month")
	ErrPayrollExists        = errors.New("payroll record already exists for this employee and period")
	ErrPayrollAlreadyPaid   = errors.New("payroll has already been paid")
)
