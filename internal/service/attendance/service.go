package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/database"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	tx             database.Transactor
	loc            *time.Location
	now            func() time.Time
}

func NewAttendanceService(tx database.Transactor, attendanceRepo attendance.AttendanceRepository, employeeRepo employee.EmployeeRepository, loc *time.Location, now func() time.Time) attendance.AttendanceService {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		tx:             tx,
		loc:            loc,
		now:            now,
	}
}

func (s *AttendanceServiceImpl) clock() time.Time {
	return s.now().In(s.loc)
}

// getOrCreateAttendanceDay returns the row of employeeID for day, or a new
// unsaved Absent row when none exists. It must run inside a transaction.
func (s *AttendanceServiceImpl) getOrCreateAttendanceDay(ctx context.Context, employeeID string, day time.Time) (attendance.Attendance, error) {
	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to load attendance day: %w", err)
	}
	if existing != nil {
		return *existing, nil
	}
	return attendance.Attendance{
		EmployeeID: employeeID,
		Date:       day,
		Status:     attendance.StatusAbsent,
	}, nil
}

// mutateDay loads or starts the day row, applies fn and persists the result.
// Nothing is written when fn fails.
func (s *AttendanceServiceImpl) mutateDay(ctx context.Context, employeeID string, day time.Time, fn func(a *attendance.Attendance) error) (saved attendance.Attendance, created bool, err error) {
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		a, err := s.getOrCreateAttendanceDay(ctx, employeeID, day)
		if err != nil {
			return err
		}
		if err := fn(&a); err != nil {
			return err
		}

		if a.IsNew() {
			id, err := uuid.NewV7()
			if err != nil {
				return fmt.Errorf("failed to generate attendance id: %w", err)
			}
			a.ID = id.String()
			created = true
			saved, err = s.attendanceRepo.Create(ctx, a)
			return err
		}
		saved, err = s.attendanceRepo.Update(ctx, a)
		return err
	})
	return saved, created, err
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context) (attendance.AttendanceResponse, bool, error) {
	emp, err := employee.CurrentEmployee(ctx, s.employeeRepo)
	if err != nil {
		return attendance.AttendanceResponse{}, false, err
	}

	now := s.clock()
	saved, created, err := s.mutateDay(ctx, emp.ID, validator.TruncateDay(now), func(a *attendance.Attendance) error {
		return a.CheckInAt(now)
	})
	if err != nil {
		// A concurrent check-in won the insert.
		if errors.Is(err, attendance.ErrAttendanceDayExists) {
			return attendance.AttendanceResponse{}, false, attendance.ErrAlreadyCheckedIn
		}
		return attendance.AttendanceResponse{}, false, err
	}

	slog.Debug("checked in", "employee_id", emp.ID, "status", saved.Status)
	return saved.ToResponse(), created, nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context) (attendance.AttendanceResponse, error) {
	emp, err := employee.CurrentEmployee(ctx, s.employeeRepo)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.clock()
	saved, _, err := s.mutateDay(ctx, emp.ID, validator.TruncateDay(now), func(a *attendance.Attendance) error {
		return a.CheckOutAt(now)
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	slog.Debug("checked out", "employee_id", emp.ID, "work_minutes", saved.WorkMinutes)
	return saved.ToResponse(), nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.MyAttendanceFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	emp, err := employee.CurrentEmployee(ctx, s.employeeRepo)
	if err != nil {
		return nil, err
	}

	q := attendance.Query{
		EmployeeID: &emp.ID,
		From:       s.parseDay(filter.StartDate),
		To:         s.parseDay(filter.EndDate),
		Limit:      attendance.MyAttendanceLimit,
	}
	return s.list(ctx, q)
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	q := attendance.Query{
		EmployeeID: filter.EmployeeID,
		Date:       s.parseDay(filter.Date),
		From:       s.parseDay(filter.StartDate),
		To:         s.parseDay(filter.EndDate),
		Limit:      attendance.ListAttendanceLimit,
	}
	return s.list(ctx, q)
}

func (s *AttendanceServiceImpl) list(ctx context.Context, q attendance.Query) ([]attendance.AttendanceResponse, error) {
	rows, err := s.attendanceRepo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	resp := make([]attendance.AttendanceResponse, 0, len(rows))
	for _, a := range rows {
		resp = append(resp, a.ToResponse())
	}
	return resp, nil
}

// parseDay resolves an already validated optional day filter.
func (s *AttendanceServiceImpl) parseDay(v *string) *time.Time {
	if v == nil {
		return nil
	}
	day, ok := validator.ParseDay(*v, s.loc)
	if !ok {
		return nil
	}
	return &day
}

// GetAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	a, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return a.ToResponse(), nil
}

// UpdateAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) UpdateAttendance(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	var saved attendance.Attendance
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		a, err := s.attendanceRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		req.Apply(&a)
		saved, err = s.attendanceRepo.Update(ctx, a)
		return err
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return saved.ToResponse(), nil
}

// OverrideDay implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) OverrideDay(ctx context.Context, req attendance.OverrideDayRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	day, _ := validator.ParseDay(req.Date, s.loc)
	saved, _, err := s.mutateDay(ctx, req.EmployeeID, day, func(a *attendance.Attendance) error {
		req.Apply(a)
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	slog.Info("attendance overridden", "employee_id", req.EmployeeID, "date", saved.Date.Format(validator.DateLayout), "status", saved.Status)
	return saved.ToResponse(), nil
}
