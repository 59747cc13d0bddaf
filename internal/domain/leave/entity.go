package leave

import (
	"math"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
)

type LeaveType string

const (
	LeaveTypeSick     LeaveType = "Sick Leave"
	LeaveTypePaid     LeaveType = "Paid Leave"
	LeaveTypeUnpaid   LeaveType = "Unpaid Leave"
	LeaveTypePersonal LeaveType = "Personal Leave"
	LeaveTypeAnnual   LeaveType = "Annual Leave"
)

var validTypes = []string{
	string(LeaveTypeSick),
	string(LeaveTypePaid),
	string(LeaveTypeUnpaid),
	string(LeaveTypePersonal),
	string(LeaveTypeAnnual),
}

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

var validStatuses = []string{string(StatusPending), string(StatusApproved), string(StatusRejected)}

// LeaveRequest entity
type LeaveRequest struct {
	ID              string
	EmployeeID      string
	Type            LeaveType
	From            time.Time
	To              time.Time
	Days            int
	Reason          string
	Status          Status
	AppliedOn       time.Time
	ReviewedBy      *string
	ReviewedAt      *time.Time
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Join
	Employee     *employee.Summary
	ReviewerName *string
}

// CountDays is the inclusive number of calendar days from from to to,
// rounding a partial trailing day up. Both ends are compared by wall clock,
// so a daylight-saving shift inside the range does not change the count.
func CountDays(from, to time.Time) int {
	days := wallClock(to).Sub(wallClock(from)).Hours() / 24
	return int(math.Ceil(days)) + 1
}

func wallClock(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// Approve moves a pending request to Approved.
func (l *LeaveRequest) Approve(reviewerID string, now time.Time) error {
	if l.Status != StatusPending {
		return ErrLeaveAlreadyProcessed
	}
	l.Status = StatusApproved
	l.ReviewedBy = &reviewerID
	l.ReviewedAt = &now
	return nil
}

// Reject moves a pending request to Rejected with an optional reason.
func (l *LeaveRequest) Reject(reviewerID string, reason *string, now time.Time) error {
	if l.Status != StatusPending {
		return ErrLeaveAlreadyProcessed
	}
	l.Status = StatusRejected
	l.ReviewedBy = &reviewerID
	l.ReviewedAt = &now
	l.RejectionReason = reason
	return nil
}
