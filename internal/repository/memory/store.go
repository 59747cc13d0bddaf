// Package memory provides in-process implementations of the repository
// interfaces. They enforce the same uniqueness rules as the PostgreSQL
// schema and back the service and handler tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/dashboard"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/database"
)

type Store struct {
	mu          sync.RWMutex
	users       map[string]user.User
	employees   map[string]employee.Employee
	attendances map[string]attendance.Attendance
	leaves      map[string]leave.LeaveRequest
	payrolls    map[string]payroll.Payroll
	now         func() time.Time
}

func NewStore() *Store {
	return &Store{
		users:       map[string]user.User{},
		employees:   map[string]employee.Employee{},
		attendances: map[string]attendance.Attendance{},
		leaves:      map[string]leave.LeaveRequest{},
		payrolls:    map[string]payroll.Payroll{},
		now:         time.Now,
	}
}

// SetClock overrides the timestamp source for created and updated times.
func (s *Store) SetClock(now func() time.Time) { s.now = now }

func (s *Store) Users() user.UserRepository                   { return userRepo{s} }
func (s *Store) Employees() employee.EmployeeRepository       { return employeeRepo{s} }
func (s *Store) Attendances() attendance.AttendanceRepository { return attendanceRepo{s} }
func (s *Store) LeaveRequests() leave.LeaveRequestRepository  { return leaveRepo{s} }
func (s *Store) Payrolls() payroll.PayrollRepository          { return payrollRepo{s} }
func (s *Store) Dashboard() dashboard.DashboardRepository     { return dashboardRepo{s} }
func (s *Store) Transactor() database.Transactor              { return transactor{} }

// transactor runs fn directly; the store has no rollback.
type transactor struct{}

func (transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (s *Store) summary(employeeID string) *employee.Summary {
	e, ok := s.employees[employeeID]
	if !ok {
		return nil
	}
	sum := e.Summary()
	return &sum
}

// ---- users

type userRepo struct{ s *Store }

func (r userRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r userRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r userRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return user.User{}, user.ErrUserEmailExists
		}
	}
	u.CreatedAt, u.UpdatedAt = r.s.now(), r.s.now()
	r.s.users[u.ID] = u
	return u, nil
}

func (r userRepo) Update(ctx context.Context, u user.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.users[u.ID]
	if !ok {
		return user.ErrUserNotFound
	}
	for id, other := range r.s.users {
		if id != u.ID && other.Email == u.Email {
			return user.ErrUserEmailExists
		}
	}
	existing.Name, existing.Email, existing.Phone = u.Name, u.Email, u.Phone
	existing.UpdatedAt = r.s.now()
	r.s.users[u.ID] = existing
	return nil
}

func (r userRepo) SetRole(ctx context.Context, id string, role user.Role) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.Role = role
	u.UpdatedAt = r.s.now()
	r.s.users[id] = u
	return nil
}

func (r userRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(r.s.users, id)
	for eid, e := range r.s.employees {
		if e.UserID == id {
			r.s.deleteEmployeeLocked(eid)
		}
	}
	return nil
}

// ---- employees

type employeeRepo struct{ s *Store }

func (r employeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	e, ok := r.s.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r employeeRepo) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, e := range r.s.employees {
		if e.UserID == userID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeRecordNotFound
}

func (r employeeRepo) ExistsByEmailOrCode(ctx context.Context, email, code string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, e := range r.s.employees {
		if e.Email == email || e.EmployeeCode == code {
			return true, nil
		}
	}
	for _, u := range r.s.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r employeeRepo) checkUniqueLocked(e employee.Employee) error {
	for id, other := range r.s.employees {
		if id == e.ID {
			continue
		}
		if other.EmployeeCode == e.EmployeeCode {
			return employee.ErrEmployeeCodeExists
		}
		if other.Email == e.Email {
			return employee.ErrEmailExists
		}
	}
	return nil
}

func (r employeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.checkUniqueLocked(e); err != nil {
		return employee.Employee{}, err
	}
	e.CreatedAt, e.UpdatedAt = r.s.now(), r.s.now()
	r.s.employees[e.ID] = e
	return e, nil
}

func (r employeeRepo) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.employees[e.ID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err := r.checkUniqueLocked(e); err != nil {
		return employee.Employee{}, err
	}
	e.CreatedAt = existing.CreatedAt
	e.UpdatedAt = r.s.now()
	r.s.employees[e.ID] = e
	return e, nil
}

func (r employeeRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	r.s.deleteEmployeeLocked(id)
	return nil
}

func (s *Store) deleteEmployeeLocked(id string) {
	delete(s.employees, id)
	for k, a := range s.attendances {
		if a.EmployeeID == id {
			delete(s.attendances, k)
		}
	}
	for k, l := range s.leaves {
		if l.EmployeeID == id {
			delete(s.leaves, k)
		}
	}
	for k, p := range s.payrolls {
		if p.EmployeeID == id {
			delete(s.payrolls, k)
		}
	}
}

func (r employeeRepo) List(ctx context.Context, f employee.EmployeeFilter) ([]employee.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []employee.Employee{}
	for _, e := range r.s.employees {
		if f.Status != nil && *f.Status != "" && string(e.Status) != *f.Status {
			continue
		}
		if f.Department != nil && *f.Department != "" && e.Department != *f.Department {
			continue
		}
		if f.Search != nil && *f.Search != "" {
			needle := strings.ToLower(*f.Search)
			if !strings.Contains(strings.ToLower(e.Name+" "+e.Email+" "+e.EmployeeCode), needle) {
				continue
			}
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r employeeRepo) Count(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.employees)), nil
}
