package memory

import (
	"context"
	"sort"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/payroll"
)

// ---- attendance

type attendanceRepo struct{ s *Store }

func (r attendanceRepo) withJoin(a attendance.Attendance) attendance.Attendance {
	a.Employee = r.s.summary(a.EmployeeID)
	return a
}

func (r attendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a, ok := r.s.attendances[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return r.withJoin(a), nil
}

func (r attendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, a := range r.s.attendances {
		if a.EmployeeID == employeeID && a.Date.Equal(date) {
			joined := r.withJoin(a)
			return &joined, nil
		}
	}
	return nil, nil
}

func (r attendanceRepo) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.employees[a.EmployeeID]; !ok {
		return attendance.Attendance{}, employee.ErrEmployeeNotFound
	}
	for _, existing := range r.s.attendances {
		if existing.EmployeeID == a.EmployeeID && existing.Date.Equal(a.Date) {
			return attendance.Attendance{}, attendance.ErrAttendanceDayExists
		}
	}
	a.CreatedAt, a.UpdatedAt = r.s.now(), r.s.now()
	a.Employee = nil
	r.s.attendances[a.ID] = a
	return r.withJoin(a), nil
}

func (r attendanceRepo) Update(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.attendances[a.ID]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	a.CreatedAt = existing.CreatedAt
	a.UpdatedAt = r.s.now()
	a.Employee = nil
	r.s.attendances[a.ID] = a
	return r.withJoin(a), nil
}

func (r attendanceRepo) List(ctx context.Context, q attendance.Query) ([]attendance.Attendance, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []attendance.Attendance{}
	for _, a := range r.s.attendances {
		if q.EmployeeID != nil && a.EmployeeID != *q.EmployeeID {
			continue
		}
		if q.Date != nil {
			if !a.Date.Equal(*q.Date) {
				continue
			}
		} else {
			if q.From != nil && a.Date.Before(*q.From) {
				continue
			}
			if q.To != nil && a.Date.After(*q.To) {
				continue
			}
		}
		out = append(out, r.withJoin(a))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

// ---- leave requests

type leaveRepo struct{ s *Store }

func (r leaveRepo) withJoin(l leave.LeaveRequest) leave.LeaveRequest {
	l.Employee = r.s.summary(l.EmployeeID)
	l.ReviewerName = nil
	if l.ReviewedBy != nil {
		if u, ok := r.s.users[*l.ReviewedBy]; ok {
			name := u.Name
			l.ReviewerName = &name
		}
	}
	return l
}

func (r leaveRepo) Create(ctx context.Context, l leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.employees[l.EmployeeID]; !ok {
		return leave.LeaveRequest{}, employee.ErrEmployeeNotFound
	}
	l.CreatedAt, l.UpdatedAt = r.s.now(), r.s.now()
	r.s.leaves[l.ID] = l
	return r.withJoin(l), nil
}

func (r leaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	l, ok := r.s.leaves[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return r.withJoin(l), nil
}

func (r leaveRepo) List(ctx context.Context, q leave.Query) ([]leave.LeaveRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []leave.LeaveRequest{}
	for _, l := range r.s.leaves {
		if q.EmployeeID != nil && l.EmployeeID != *q.EmployeeID {
			continue
		}
		if q.Status != nil && l.Status != *q.Status {
			continue
		}
		out = append(out, r.withJoin(l))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedOn.After(out[j].AppliedOn) })
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (r leaveRepo) UpdateReview(ctx context.Context, l leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.leaves[l.ID]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	if existing.Status != leave.StatusPending {
		return leave.LeaveRequest{}, leave.ErrLeaveAlreadyProcessed
	}
	existing.Status = l.Status
	existing.ReviewedBy = l.ReviewedBy
	existing.ReviewedAt = l.ReviewedAt
	existing.RejectionReason = l.RejectionReason
	existing.UpdatedAt = r.s.now()
	r.s.leaves[l.ID] = existing
	return r.withJoin(existing), nil
}

func (r leaveRepo) HasOverlap(ctx context.Context, employeeID string, from, to time.Time) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, l := range r.s.leaves {
		if l.EmployeeID != employeeID || l.Status == leave.StatusRejected {
			continue
		}
		if !l.From.After(to) && !l.To.Before(from) {
			return true, nil
		}
	}
	return false, nil
}

// ---- payroll

type payrollRepo struct{ s *Store }

func (r payrollRepo) withJoin(p payroll.Payroll) payroll.Payroll {
	p.Employee = r.s.summary(p.EmployeeID)
	return p
}

func (r payrollRepo) Create(ctx context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.employees[p.EmployeeID]; !ok {
		return payroll.Payroll{}, employee.ErrEmployeeNotFound
	}
	for _, existing := range r.s.payrolls {
		if existing.EmployeeID == p.EmployeeID && existing.Month == p.Month && existing.Year == p.Year {
			return payroll.Payroll{}, payroll.ErrPayrollExists
		}
	}
	p.CreatedAt, p.UpdatedAt = r.s.now(), r.s.now()
	p.Employee = nil
	r.s.payrolls[p.ID] = p
	return r.withJoin(p), nil
}

func (r payrollRepo) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.payrolls[id]
	if !ok {
		return payroll.Payroll{}, payroll.ErrPayrollNotFound
	}
	return r.withJoin(p), nil
}

func (r payrollRepo) GetByPeriod(ctx context.Context, employeeID string, month, year int) (*payroll.Payroll, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.payrolls {
		if p.EmployeeID == employeeID && p.Month == month && p.Year == year {
			joined := r.withJoin(p)
			return &joined, nil
		}
	}
	return nil, nil
}

func (r payrollRepo) List(ctx context.Context, q payroll.Query) ([]payroll.Payroll, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []payroll.Payroll{}
	for _, p := range r.s.payrolls {
		if q.EmployeeID != nil && p.EmployeeID != *q.EmployeeID {
			continue
		}
		if q.Month != nil && p.Month != *q.Month {
			continue
		}
		if q.Year != nil && p.Year != *q.Year {
			continue
		}
		if q.Status != nil && p.Status != *q.Status {
			continue
		}
		out = append(out, r.withJoin(p))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year > out[j].Year
		}
		return out[i].Month > out[j].Month
	})
	return out, nil
}

func (r payrollRepo) Update(ctx context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.payrolls[p.ID]
	if !ok {
		return payroll.Payroll{}, payroll.ErrPayrollNotFound
	}
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = r.s.now()
	p.Employee = nil
	r.s.payrolls[p.ID] = p
	return r.withJoin(p), nil
}

// ---- dashboard

type dashboardRepo struct{ s *Store }

func (r dashboardRepo) CountAttendedDays(ctx context.Context, employeeID string, from, to time.Time) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var n int64
	for _, a := range r.s.attendances {
		if a.EmployeeID == employeeID && a.Status.Counted() && !a.Date.Before(from) && !a.Date.After(to) {
			n++
		}
	}
	return n, nil
}

func (r dashboardRepo) CountActiveEmployees(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var n int64
	for _, e := range r.s.employees {
		if e.Status == employee.StatusActive {
			n++
		}
	}
	return n, nil
}

func (r dashboardRepo) CountAttendedOn(ctx context.Context, day time.Time) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var n int64
	for _, a := range r.s.attendances {
		if a.Date.Equal(day) && a.Status.Counted() {
			n++
		}
	}
	return n, nil
}

func (r dashboardRepo) CountPendingLeaves(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var n int64
	for _, l := range r.s.leaves {
		if l.Status == leave.StatusPending {
			n++
		}
	}
	return n, nil
}
