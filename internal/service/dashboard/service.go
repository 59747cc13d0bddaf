package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/dashboard"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboardRepo  dashboard.DashboardRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRequestRepository
	payrollRepo    payroll.PayrollRepository
	loc            *time.Location
	now            func() time.Time
}

func NewDashboardService(
	dashboardRepo dashboard.DashboardRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRequestRepository,
	payrollRepo payroll.PayrollRepository,
	loc *time.Location,
	now func() time.Time,
) dashboard.DashboardService {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &DashboardServiceImpl{
		dashboardRepo:  dashboardRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		payrollRepo:    payrollRepo,
		loc:            loc,
		now:            now,
	}
}

// GetEmployeeDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetEmployeeDashboard(ctx context.Context) (*dashboard.EmployeeDashboardResponse, error) {
	emp, err := employee.CurrentEmployee(ctx, s.employeeRepo)
	if err != nil {
		return nil, err
	}

	today := validator.TruncateDay(s.now().In(s.loc))
	monthStart := today.AddDate(0, 0, 1-today.Day())
	monthEnd := monthStart.AddDate(0, 1, -1)
	workingDays := monthEnd.Day()

	var (
		presentDays int64
		recent      []attendance.Attendance
		leaves      []leave.LeaveRequest
		salary      *payroll.Payroll
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.dashboardRepo.CountAttendedDays(gctx, emp.ID, monthStart, monthEnd)
		if err != nil {
			return fmt.Errorf("count attended days: %w", err)
		}
		presentDays = n
		return nil
	})
	g.Go(func() error {
		rows, err := s.attendanceRepo.List(gctx, attendance.Query{EmployeeID: &emp.ID, Limit: dashboard.RecentLimit})
		if err != nil {
			return fmt.Errorf("recent attendance: %w", err)
		}
		recent = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.leaveRepo.List(gctx, leave.Query{EmployeeID: &emp.ID, Limit: dashboard.RecentLimit})
		if err != nil {
			return fmt.Errorf("recent leaves: %w", err)
		}
		leaves = rows
		return nil
	})
	g.Go(func() error {
		p, err := s.payrollRepo.GetByPeriod(gctx, emp.ID, int(today.Month()), today.Year())
		if err != nil {
			return fmt.Errorf("current payroll: %w", err)
		}
		salary = p
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build employee dashboard: %w", err)
	}

	resp := &dashboard.EmployeeDashboardResponse{
		Employee:             emp.Summary(),
		WorkingDays:          workingDays,
		PresentDays:          presentDays,
		AttendancePercentage: dashboard.Percentage(presentDays, int64(workingDays)),
		SalaryStatus:         string(payroll.PayrollStatusPending),
		RecentAttendance:     attendanceResponses(recent),
		LeaveRequests:        leaveResponses(leaves),
	}
	if salary != nil {
		resp.CurrentMonthSalary = salary.Net.InexactFloat64()
		resp.SalaryStatus = string(salary.Status)
	}
	return resp, nil
}

// GetHRDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetHRDashboard(ctx context.Context) (*dashboard.HRDashboardResponse, error) {
	today := validator.TruncateDay(s.now().In(s.loc))
	pending := leave.StatusPending

	var (
		total, present, pendingCount int64
		todayRows                    []attendance.Attendance
		pendingRows, recentRows      []leave.LeaveRequest
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		total, err = s.dashboardRepo.CountActiveEmployees(gctx)
		return err
	})
	g.Go(func() (err error) {
		present, err = s.dashboardRepo.CountAttendedOn(gctx, today)
		return err
	})
	g.Go(func() (err error) {
		pendingCount, err = s.dashboardRepo.CountPendingLeaves(gctx)
		return err
	})
	g.Go(func() (err error) {
		todayRows, err = s.attendanceRepo.List(gctx, attendance.Query{Date: &today, Limit: attendance.ListAttendanceLimit})
		return err
	})
	g.Go(func() (err error) {
		pendingRows, err = s.leaveRepo.List(gctx, leave.Query{Status: &pending, Limit: dashboard.RecentLimit})
		return err
	})
	g.Go(func() (err error) {
		recentRows, err = s.leaveRepo.List(gctx, leave.Query{Limit: dashboard.RecentLimit})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build hr dashboard: %w", err)
	}

	return &dashboard.HRDashboardResponse{
		TotalEmployees:       total,
		PresentToday:         present,
		AttendancePercentage: dashboard.Percentage(present, total),
		PendingLeaves:        pendingCount,
		TodayAttendance:      attendanceResponses(todayRows),
		PendingLeaveRequests: leaveResponses(pendingRows),
		RecentActivities:     leaveResponses(recentRows),
	}, nil
}

func attendanceResponses(rows []attendance.Attendance) []attendance.AttendanceResponse {
	out := make([]attendance.AttendanceResponse, 0, len(rows))
	for _, a := range rows {
		out = append(out, a.ToResponse())
	}
	return out
}

func leaveResponses(rows []leave.LeaveRequest) []leave.LeaveResponse {
	out := make([]leave.LeaveResponse, 0, len(rows))
	for _, l := range rows {
		out = append(out, l.ToResponse())
	}
	return out
}
