package payroll

import (
	"strconv"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const (
	minYear = 1900
	maxYear = 9999
)

func validatePeriod(errs *validator.ValidationErrors, month, year *int) {
	if month != nil && (*month < 1 || *month > 12) {
		errs.Add("month", "Month must be between 1 and 12")
	}
	if year != nil && (*year < minYear || *year > maxYear) {
		errs.Add("year", "Valid year is required")
	}
}

// maxAmount is the exclusive bound of a NUMERIC(14,2) column.
var maxAmount = decimal.New(1, 12)

func validateAmount(errs *validator.ValidationErrors, field string, v *decimal.Decimal) {
	switch {
	case v == nil:
	case v.IsNegative():
		errs.Add(field, field+" must not be negative")
	case !v.Equal(v.Round(2)):
		errs.Add(field, field+" must have at most 2 decimal places")
	case v.GreaterThanOrEqual(maxAmount):
		errs.Add(field, field+" is too large")
	}
}

// ParseIntParam parses an optional integer query value.
func ParseIntParam(errs *validator.ValidationErrors, field, raw string) *int {
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		errs.Add(field, field+" must be a number")
		return nil
	}
	return &n
}

type MySalaryFilter struct {
	Month *int
	Year  *int
}

func (f MySalaryFilter) Validate() error {
	var errs validator.ValidationErrors
	validatePeriod(&errs, f.Month, f.Year)
	return errs.Err()
}

type PayrollFilter struct {
	EmployeeID *string
	Month      *int
	Year       *int
	Status     *string
}

func (f PayrollFilter) Validate() error {
	var errs validator.ValidationErrors
	validatePeriod(&errs, f.Month, f.Year)
	if f.EmployeeID != nil && !validator.IsValidUUID(*f.EmployeeID) {
		errs.Add("employeeId", "employeeId must be a valid id")
	}
	if f.Status != nil && !validator.IsInSlice(*f.Status, validStatuses) {
		errs.Add("status", "Invalid status")
	}
	return errs.Err()
}

type CreatePayrollRequest struct {
	EmployeeID string           `json:"employeeId"`
	Month      int              `json:"month"`
	Year       int              `json:"year"`
	Basic      *decimal.Decimal `json:"basic"`
	Allowance  *decimal.Decimal `json:"allowance,omitempty"`
	Deduction  *decimal.Decimal `json:"deduction,omitempty"`
}

func (r *CreatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs.Add("employeeId", "Employee ID is required")
	}
	validatePeriod(&errs, &r.Month, &r.Year)
	if r.Basic == nil {
		errs.Add("basic", "Basic salary must be a number")
	}
	validateAmount(&errs, "basic", r.Basic)
	validateAmount(&errs, "allowance", r.Allowance)
	validateAmount(&errs, "deduction", r.Deduction)

	return errs.Err()
}

type UpdatePayrollRequest struct {
	ID        string           `json:"-"`
	Basic     *decimal.Decimal `json:"basic,omitempty"`
	Allowance *decimal.Decimal `json:"allowance,omitempty"`
	Deduction *decimal.Decimal `json:"deduction,omitempty"`
	Status    *string          `json:"status,omitempty"`
}

func (r *UpdatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Basic == nil && r.Allowance == nil && r.Deduction == nil && r.Status == nil {
		errs.Add("body", "at least one field must be provided")
	}
	validateAmount(&errs, "basic", r.Basic)
	validateAmount(&errs, "allowance", r.Allowance)
	validateAmount(&errs, "deduction", r.Deduction)
	if r.Status != nil && !validator.IsInSlice(*r.Status, validStatuses) {
		errs.Add("status", "Invalid status")
	}

	return errs.Err()
}

// Apply merges the present amounts into p and recomputes Net when any of
// them changed. Status is handled by the service.
func (r UpdatePayrollRequest) Apply(p *Payroll) {
	changed := false
	if r.Basic != nil {
		p.Basic = *r.Basic
		changed = true
	}
	if r.Allowance != nil {
		p.Allowance = *r.Allowance
		changed = true
	}
	if r.Deduction != nil {
		p.Deduction = *r.Deduction
		changed = true
	}
	if changed {
		p.Recompute()
	}
}

type PayrollResponse struct {
	ID         string            `json:"id"`
	EmployeeID string            `json:"employeeId"`
	Employee   *employee.Summary `json:"employee,omitempty"`
	Month      int               `json:"month"`
	Year       int               `json:"year"`
	Basic      float64           `json:"basic"`
	Allowance  float64           `json:"allowance"`
	Deduction  float64           `json:"deduction"`
	Net        float64           `json:"net"`
	Status     string            `json:"status"`
	PaidAt     *string           `json:"paidAt,omitempty"`
	CreatedAt  string            `json:"createdAt"`
	UpdatedAt  string            `json:"updatedAt"`
}

func (p Payroll) ToResponse() PayrollResponse {
	resp := PayrollResponse{
		ID:         p.ID,
		EmployeeID: p.EmployeeID,
		Employee:   p.Employee,
		Month:      p.Month,
		Year:       p.Year,
		Basic:      p.Basic.InexactFloat64(),
		Allowance:  p.Allowance.InexactFloat64(),
		Deduction:  p.Deduction.InexactFloat64(),
		Net:        p.Net.InexactFloat64(),
		Status:     string(p.Status),
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  p.UpdatedAt.Format(time.RFC3339),
	}
	if p.PaidAt != nil {
		s := p.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &s
	}
	return resp
}
