package attendance

import (
	"context"
	"time"
)

// Query is a resolved attendance lookup. Date matches a single day exactly;
// From/To are inclusive bounds and ignored when Date is set.
type Query struct {
	EmployeeID *string
	Date       *time.Time
	From       *time.Time
	To         *time.Time
	Limit      int
}

type AttendanceRepository interface {
	GetByID(ctx context.Context, id string) (Attendance, error)
	// GetByEmployeeAndDate returns nil, nil when no row exists for the day.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)
	Create(ctx context.Context, newAttendance Attendance) (Attendance, error)
	Update(ctx context.Context, a Attendance) (Attendance, error)
	List(ctx context.Context, q Query) ([]Attendance, error)
}
