package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/dashboard"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

// CountAttendedDays implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountAttendedDays(ctx context.Context, employeeID string, from, to time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM attendances
		WHERE employee_id = $1
		  AND date >= $2 AND date <= $3
		  AND status IN ('Present', 'Late')
	`
	var n int64
	if err := q.QueryRow(ctx, query, employeeID, from, to).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count attended days: %w", err)
	}
	return n, nil
}

// CountActiveEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountActiveEmployees(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var n int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE status = 'Active'`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count active employees: %w", err)
	}
	return n, nil
}

// CountAttendedOn implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountAttendedOn(ctx context.Context, day time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COUNT(*) FROM attendances WHERE date = $1 AND status IN ('Present', 'Late')`
	var n int64
	if err := q.QueryRow(ctx, query, day).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count attendance for day: %w", err)
	}
	return n, nil
}

// CountPendingLeaves implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountPendingLeaves(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var n int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests WHERE status = 'Pending'`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count pending leaves: %w", err)
	}
	return n, nil
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}
