package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
	tx           database.Transactor
	loc          *time.Location
	now          func() time.Time
}

func NewPayrollService(tx database.Transactor, payrollRepo payroll.PayrollRepository, employeeRepo employee.EmployeeRepository, loc *time.Location, now func() time.Time) payroll.PayrollService {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &PayrollServiceImpl{
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		tx:           tx,
		loc:          loc,
		now:          now,
	}
}

// GetMySalary implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetMySalary(ctx context.Context, filter payroll.MySalaryFilter) (payroll.PayrollResponse, error) {
	if err := filter.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}
	emp, err := employee.CurrentEmployee(ctx, s.employeeRepo)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	today := s.now().In(s.loc)
	month, year := int(today.Month()), today.Year()
	if filter.Month != nil {
		month = *filter.Month
	}
	if filter.Year != nil {
		year = *filter.Year
	}

	p, err := s.payrollRepo.GetByPeriod(ctx, emp.ID, month, year)
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to get payroll: %w", err)
	}
	if p == nil {
		return payroll.PayrollResponse{}, payroll.ErrPayrollPeriodMissing
	}
	return p.ToResponse(), nil
}

// ListPayrolls implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListPayrolls(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	q := payroll.Query{EmployeeID: filter.EmployeeID, Month: filter.Month, Year: filter.Year}
	if filter.Status != nil {
		status := payroll.PayrollStatus(*filter.Status)
		q.Status = &status
	}

	rows, err := s.payrollRepo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list payrolls: %w", err)
	}
	resp := make([]payroll.PayrollResponse, 0, len(rows))
	for _, p := range rows {
		resp = append(resp, p.ToResponse())
	}
	return resp, nil
}

// CreatePayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) CreatePayroll(ctx context.Context, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return payroll.PayrollResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to generate payroll id: %w", err)
	}

	p := payroll.Payroll{
		ID:         id.String(),
		EmployeeID: req.EmployeeID,
		Month:      req.Month,
		Year:       req.Year,
		Basic:      *req.Basic,
		Allowance:  valueOrZero(req.Allowance),
		Deduction:  valueOrZero(req.Deduction),
		Status:     payroll.PayrollStatusPending,
	}
	p.Recompute()
	if err := p.ValidateNet(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	created, err := s.payrollRepo.Create(ctx, p)
	if err != nil {
		if errors.Is(err, payroll.ErrPayrollExists) || errors.Is(err, employee.ErrEmployeeNotFound) {
			return payroll.PayrollResponse{}, err
		}
		return payroll.PayrollResponse{}, fmt.Errorf("failed to create payroll: %w", err)
	}

	slog.Info("payroll created", "payroll_id", created.ID, "employee_id", created.EmployeeID, "period", fmt.Sprintf("%04d-%02d", created.Year, created.Month))
	return created.ToResponse(), nil
}

func valueOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// UpdatePayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) UpdatePayroll(ctx context.Context, req payroll.UpdatePayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	var saved payroll.Payroll
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		p, err := s.payrollRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}

		if req.Status != nil {
			switch target := payroll.PayrollStatus(*req.Status); {
			case target == p.Status:
			case target == payroll.PayrollStatusPaid:
				if err := p.MarkPaid(s.now()); err != nil {
					return err
				}
			default:
				// Paid is terminal.
				return payroll.ErrPayrollAlreadyPaid
			}
		}
		req.Apply(&p)
		if err := p.ValidateNet(); err != nil {
			return err
		}

		saved, err = s.payrollRepo.Update(ctx, p)
		return err
	})
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return saved.ToResponse(), nil
}

// MarkPaid implements payroll.PayrollService.
func (s *PayrollServiceImpl) MarkPaid(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	var saved payroll.Payroll
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		p, err := s.payrollRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := p.MarkPaid(s.now()); err != nil {
			return err
		}
		saved, err = s.payrollRepo.Update(ctx, p)
		return err
	})
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	slog.Info("payroll marked paid", "payroll_id", saved.ID, "net", saved.Net.StringFixed(2))
	return saved.ToResponse(), nil
}
