package payroll

import (
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// PayrollStatus enum
type PayrollStatus string

const (
	PayrollStatusPending PayrollStatus = "Pending"
	PayrollStatusPaid    PayrollStatus = "Paid"
)

var validStatuses = []string{string(PayrollStatusPending), string(PayrollStatusPaid)}

// Payroll is one employee's pay for a calendar month.
type Payroll struct {
	ID         string
	EmployeeID string
	Month      int
	Year       int
	Basic      decimal.Decimal
	Allowance  decimal.Decimal
	Deduction  decimal.Decimal
	Net        decimal.Decimal
	Status     PayrollStatus
	PaidAt     *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	Employee *employee.Summary
}

func ComputeNet(basic, allowance, deduction decimal.Decimal) decimal.Decimal {
	return basic.Add(allowance).Sub(deduction)
}

// ValidateNet rejects a net salary outside the stored column range.
func (p Payroll) ValidateNet() error {
	if p.Net.Abs().GreaterThanOrEqual(maxAmount) {
		return validator.ValidationErrors{{Field: "net", Message: "Net salary is too large"}}
	}
	return nil
}

// Recompute sets Net from the current basic, allowance and deduction.
func (p *Payroll) Recompute() {
	p.Net = ComputeNet(p.Basic, p.Allowance, p.Deduction)
}

// MarkPaid is the terminal Pending -> Paid transition.
func (p *Payroll) MarkPaid(now time.Time) error {
	if p.Status == PayrollStatusPaid {
		return ErrPayrollAlreadyPaid
	}
	p.Status = PayrollStatusPaid
	p.PaidAt = &now
	return nil
}
