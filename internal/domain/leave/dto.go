package leave

import (
	"strings"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
)

type ApplyLeaveRequest struct {
	Type   string `json:"type"`
	From   string `json:"from"`
	To     string `json:"to"`
	Reason string `json:"reason"`

	FromDate time.Time `json:"-"`
	ToDate   time.Time `json:"-"`
}

// Validate checks the request and resolves From/To into FromDate/ToDate
// as calendar days in loc.
func (r *ApplyLeaveRequest) Validate(loc *time.Location) error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Type, validTypes) {
		errs.Add("type", "Invalid leave type")
	}

	from, okFrom := validator.ParseDay(r.From, loc)
	if !okFrom {
		errs.Add("from", "Valid from date is required")
	}
	to, okTo := validator.ParseDay(r.To, loc)
	if !okTo {
		errs.Add("to", "Valid to date is required")
	}
	if okFrom && okTo && to.Before(from) {
		errs.Add("to", "to date must not be before from date")
	}

	if validator.IsEmpty(r.Reason) {
		errs.Add("reason", "Reason is required")
	}

	if err := errs.Err(); err != nil {
		return err
	}

	r.FromDate, r.ToDate = from, to
	r.Reason = strings.TrimSpace(r.Reason)
	return nil
}

type LeaveFilter struct {
	Status     *string
	EmployeeID *string
}

func (f LeaveFilter) Validate() error {
	var errs validator.ValidationErrors
	if f.Status != nil && !validator.IsInSlice(*f.Status, validStatuses) {
		errs.Add("status", "Invalid status")
	}
	if f.EmployeeID != nil && !validator.IsValidUUID(*f.EmployeeID) {
		errs.Add("employeeId", "employeeId must be a valid id")
	}
	return errs.Err()
}

type RejectLeaveRequest struct {
	ID              string  `json:"-"`
	RejectionReason *string `json:"rejectionReason,omitempty"`
}

type LeaveResponse struct {
	ID              string            `json:"id"`
	EmployeeID      string            `json:"employeeId"`
	Employee        *employee.Summary `json:"employee,omitempty"`
	Type            string            `json:"type"`
	From            string            `json:"from"`
	To              string            `json:"to"`
	Days            int               `json:"days"`
	Reason          string            `json:"reason"`
	Status          string            `json:"status"`
	AppliedOn       string            `json:"appliedOn"`
	ReviewedBy      *string           `json:"reviewedBy,omitempty"`
	ReviewerName    *string           `json:"reviewerName,omitempty"`
	ReviewedAt      *string           `json:"reviewedAt,omitempty"`
	RejectionReason *string           `json:"rejectionReason,omitempty"`
}

func (l LeaveRequest) ToResponse() LeaveResponse {
	resp := LeaveResponse{
		ID:              l.ID,
		EmployeeID:      l.EmployeeID,
		Employee:        l.Employee,
		Type:            string(l.Type),
		From:            l.From.Format(validator.DateLayout),
		To:              l.To.Format(validator.DateLayout),
		Days:            l.Days,
		Reason:          l.Reason,
		Status:          string(l.Status),
		AppliedOn:       l.AppliedOn.Format(time.RFC3339),
		ReviewedBy:      l.ReviewedBy,
		ReviewerName:    l.ReviewerName,
		RejectionReason: l.RejectionReason,
	}
	if l.ReviewedAt != nil {
		s := l.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &s
	}
	return resp
}
