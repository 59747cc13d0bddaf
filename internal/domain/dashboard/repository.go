package dashboard

import (
	"context"
	"time"
)

// DashboardRepository holds the counting queries behind both dashboards.
// Row listings come from the attendance, leave and payroll repositories.
type DashboardRepository interface {
	// CountAttendedDays counts Present or Late rows of an employee in [from, to]
	CountAttendedDays(ctx context.Context, employeeID string, from, to time.Time) (int64, error)

	// CountActiveEmployees counts employees with status Active
	CountActiveEmployees(ctx context.Context) (int64, error)

	// CountAttendedOn counts Present or Late rows for a single day
	CountAttendedOn(ctx context.Context, day time.Time) (int64, error)

	// CountPendingLeaves counts leave requests still waiting for review
	CountPendingLeaves(ctx context.Context) (int64, error)
}
