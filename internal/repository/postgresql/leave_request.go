package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

const leaveSelect = `
	SELECT lr.id, lr.employee_id, lr.leave_type, lr.from_date, lr.to_date, lr.days, lr.reason,
		   lr.status, lr.applied_on, lr.reviewed_by, lr.reviewed_at, lr.rejection_reason,
		   lr.created_at, lr.updated_at,
		   e.employee_code, e.name, e.email, e.department,
		   u.name AS reviewer_name
	FROM leave_requests lr
	JOIN employees e ON e.id = lr.employee_id
	LEFT JOIN users u ON u.id = lr.reviewed_by
`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var l leave.LeaveRequest
	var emp employee.Summary
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.Type, &l.From, &l.To, &l.Days, &l.Reason,
		&l.Status, &l.AppliedOn, &l.ReviewedBy, &l.ReviewedAt, &l.RejectionReason,
		&l.CreatedAt, &l.UpdatedAt,
		&emp.EmployeeCode, &emp.Name, &emp.Email, &emp.Department,
		&l.ReviewerName,
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	emp.ID = l.EmployeeID
	l.Employee = &emp
	return l, nil
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (id, employee_id, leave_type, from_date, to_date, days, reason, status, applied_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		req.ID, req.EmployeeID, req.Type, req.From, req.To, req.Days, req.Reason, req.Status, req.AppliedOn,
	).Scan(&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return leave.LeaveRequest{}, employee.ErrEmployeeNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return req, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	l, err := scanLeaveRequest(q.QueryRow(ctx, leaveSelect+` WHERE lr.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return l, nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.Query) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	var where []string
	var args []interface{}
	argIdx := 1

	if filter.EmployeeID != nil {
		where = append(where, fmt.Sprintf("lr.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil {
		where = append(where, fmt.Sprintf("lr.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	query := leaveSelect
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY lr.applied_on DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, filter.Limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	leaves := []leave.LeaveRequest{}
	for rows.Next() {
		l, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		leaves = append(leaves, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave requests: %w", err)
	}
	return leaves, nil
}

// UpdateReview implements leave.LeaveRequestRepository. The status guard in
// the WHERE clause makes concurrent reviews lose cleanly.
func (r *leaveRequestRepositoryImpl) UpdateReview(ctx context.Context, l leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, reviewed_by = $2, reviewed_at = $3, rejection_reason = $4, updated_at = NOW()
		WHERE id = $5 AND status = $6
		RETURNING updated_at
	`
	err := q.QueryRow(ctx, query,
		l.Status, l.ReviewedBy, l.ReviewedAt, l.RejectionReason, l.ID, leave.StatusPending,
	).Scan(&l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveAlreadyProcessed
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave review: %w", err)
	}
	return l, nil
}

// HasOverlap implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) HasOverlap(ctx context.Context, employeeID string, from, to time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM leave_requests
			WHERE employee_id = $1
			  AND status IN ('Pending', 'Approved')
			  AND from_date <= $3
			  AND to_date >= $2
		)
	`
	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, from, to).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check leave overlap: %w", err)
	}
	return exists, nil
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{
		db: db,
	}
}
