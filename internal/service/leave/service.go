package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
	"github.com/google/uuid"
)

type LeaveServiceImpl struct {
	leaveRepo    leave.LeaveRequestRepository
	employeeRepo employee.EmployeeRepository
	loc          *time.Location
	now          func() time.Time
}

func NewLeaveService(leaveRepo leave.LeaveRequestRepository, employeeRepo employee.EmployeeRepository, loc *time.Location, now func() time.Time) leave.LeaveService {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &LeaveServiceImpl{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
		loc:          loc,
		now:          now,
	}
}

// Apply implements leave.LeaveService.
func (s *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(s.loc); err != nil {
		return leave.LeaveResponse{}, err
	}

	emp, err := employee.CurrentEmployee(ctx, s.employeeRepo)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	overlap, err := s.leaveRepo.HasOverlap(ctx, emp.ID, req.FromDate, req.ToDate)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to check overlapping leave: %w", err)
	}
	if overlap {
		return leave.LeaveResponse{}, leave.ErrLeaveOverlap
	}

	id, err := uuid.NewV7()
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to generate leave id: %w", err)
	}

	created, err := s.leaveRepo.Create(ctx, leave.LeaveRequest{
		ID:         id.String(),
		EmployeeID: emp.ID,
		Type:       leave.LeaveType(req.Type),
		From:       req.FromDate,
		To:         req.ToDate,
		Days:       leave.CountDays(req.FromDate, req.ToDate),
		Reason:     req.Reason,
		Status:     leave.StatusPending,
		AppliedOn:  s.now(),
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	slog.Info("leave requested", "leave_id", created.ID, "employee_id", emp.ID, "days", created.Days)
	return created.ToResponse(), nil
}

// GetMyLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) GetMyLeaves(ctx context.Context) ([]leave.LeaveResponse, error) {
	emp, err := employee.CurrentEmployee(ctx, s.employeeRepo)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, leave.Query{EmployeeID: &emp.ID})
}

// ListLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaves(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	q := leave.Query{EmployeeID: filter.EmployeeID}
	if filter.Status != nil {
		status := leave.Status(*filter.Status)
		q.Status = &status
	}
	return s.list(ctx, q)
}

func (s *LeaveServiceImpl) list(ctx context.Context, q leave.Query) ([]leave.LeaveResponse, error) {
	rows, err := s.leaveRepo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	resp := make([]leave.LeaveResponse, 0, len(rows))
	for _, l := range rows {
		resp = append(resp, l.ToResponse())
	}
	return resp, nil
}

// GetLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) GetLeave(ctx context.Context, id string) (leave.LeaveResponse, error) {
	identity, err := user.IdentityFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	l, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if !identity.IsHR() {
		emp, err := s.employeeRepo.GetByUserID(ctx, identity.UserID)
		if err != nil && !errors.Is(err, employee.ErrEmployeeRecordNotFound) {
			return leave.LeaveResponse{}, err
		}
		if err != nil || emp.ID != l.EmployeeID {
			return leave.LeaveResponse{}, leave.ErrLeaveAccessDenied
		}
	}
	return l.ToResponse(), nil
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, id string) (leave.LeaveResponse, error) {
	return s.review(ctx, id, func(l *leave.LeaveRequest, reviewerID string, now time.Time) error {
		return l.Approve(reviewerID, now)
	})
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, req leave.RejectLeaveRequest) (leave.LeaveResponse, error) {
	return s.review(ctx, req.ID, func(l *leave.LeaveRequest, reviewerID string, now time.Time) error {
		return l.Reject(reviewerID, req.RejectionReason, now)
	})
}

func (s *LeaveServiceImpl) review(ctx context.Context, id string, decide func(l *leave.LeaveRequest, reviewerID string, now time.Time) error) (leave.LeaveResponse, error) {
	identity, err := user.IdentityFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	l, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if err := decide(&l, identity.UserID, s.now()); err != nil {
		return leave.LeaveResponse{}, err
	}

	updated, err := s.leaveRepo.UpdateReview(ctx, l)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveAlreadyProcessed) || errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return leave.LeaveResponse{}, err
		}
		return leave.LeaveResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	slog.Info("leave reviewed", "leave_id", updated.ID, "status", updated.Status, "by", identity.UserID)
	return updated.ToResponse(), nil
}
