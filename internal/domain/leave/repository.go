package leave

import (
	"context"
	"time"
)

type Query struct {
	EmployeeID *string
	Status     *Status
	Limit      int
}

type LeaveRequestRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	// List orders by applied_on descending.
	List(ctx context.Context, q Query) ([]LeaveRequest, error)
	// UpdateReview persists status and review fields; it only updates a row
	// still in Pending and returns ErrLeaveAlreadyProcessed otherwise.
	UpdateReview(ctx context.Context, l LeaveRequest) (LeaveRequest, error)
	// HasOverlap reports whether a Pending or Approved leave of the employee
	// intersects [from, to].
	HasOverlap(ctx context.Context, employeeID string, from, to time.Time) (bool, error)
}
