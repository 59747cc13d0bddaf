package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

const payrollSelect = `
	SELECT p.id, p.employee_id, p.month, p.year, p.basic, p.allowance, p.deduction, p.net,
		   p.status, p.paid_at, p.created_at, p.updated_at,
		   e.employee_code, e.name, e.email, e.department
	FROM payrolls p
	JOIN employees e ON e.id = p.employee_id
`

func scanPayroll(row pgx.Row) (payroll.Payroll, error) {
	var p payroll.Payroll
	var emp employee.Summary
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.Month, &p.Year, &p.Basic, &p.Allowance, &p.Deduction, &p.Net,
		&p.Status, &p.PaidAt, &p.CreatedAt, &p.UpdatedAt,
		&emp.EmployeeCode, &emp.Name, &emp.Email, &emp.Department,
	)
	if err != nil {
		return payroll.Payroll{}, err
	}
	emp.ID = p.EmployeeID
	p.Employee = &emp
	return p, nil
}

// Create implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Create(ctx context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payrolls (id, employee_id, month, year, basic, allowance, deduction, net, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		p.ID, p.EmployeeID, p.Month, p.Year, p.Basic, p.Allowance, p.Deduction, p.Net, p.Status,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return payroll.Payroll{}, payroll.ErrPayrollExists
		}
		if isForeignKeyViolation(err) {
			return payroll.Payroll{}, employee.ErrEmployeeNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to create payroll: %w", err)
	}
	return p, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanPayroll(q.QueryRow(ctx, payrollSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll: %w", err)
	}
	return p, nil
}

// GetByPeriod implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByPeriod(ctx context.Context, employeeID string, month, year int) (*payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := payrollSelect + ` WHERE p.employee_id = $1 AND p.month = $2 AND p.year = $3`
	p, err := scanPayroll(q.QueryRow(ctx, query, employeeID, month, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payroll by period: %w", err)
	}
	return &p, nil
}

// List implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) List(ctx context.Context, filter payroll.Query) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	var where []string
	var args []interface{}
	argIdx := 1

	if filter.EmployeeID != nil {
		where = append(where, fmt.Sprintf("p.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Month != nil {
		where = append(where, fmt.Sprintf("p.month = $%d", argIdx))
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Year != nil {
		where = append(where, fmt.Sprintf("p.year = $%d", argIdx))
		args = append(args, *filter.Year)
		argIdx++
	}
	if filter.Status != nil {
		where = append(where, fmt.Sprintf("p.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	query := payrollSelect
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY p.year DESC, p.month DESC, e.name ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payrolls: %w", err)
	}
	defer rows.Close()

	payrolls := []payroll.Payroll{}
	for rows.Next() {
		p, err := scanPayroll(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll: %w", err)
		}
		payrolls = append(payrolls, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payrolls: %w", err)
	}
	return payrolls, nil
}

// Update implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Update(ctx context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payrolls
		SET basic = $1, allowance = $2, deduction = $3, net = $4, status = $5, paid_at = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at
	`
	err := q.QueryRow(ctx, query,
		p.Basic, p.Allowance, p.Deduction, p.Net, p.Status, p.PaidAt, p.ID,
	).Scan(&p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to update payroll: %w", err)
	}
	return p, nil
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{
		db: db,
	}
}
