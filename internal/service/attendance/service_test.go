package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hr/dayflow-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	employeeID     = "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b"
	employeeUserID = "user-rajesh"
)

type testEnv struct {
	svc   attendance.AttendanceService
	store *memory.Store
	ctx   context.Context
	clock *time.Time
}

func setup(t *testing.T) *testEnv {
	t.Helper()
	store := memory.NewStore()
	_, err := store.Employees().Create(context.Background(), employee.Employee{
		ID:           employeeID,
		EmployeeCode: "EMP001",
		UserID:       employeeUserID,
		Name:         "Rajesh Kumar",
		Email:        "rajesh@dayflow.com",
		Department:   "Engineering",
		Status:       employee.StatusActive,
	})
	require.NoError(t, err)

	clock := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	env := &testEnv{store: store, clock: &clock}
	env.svc = NewAttendanceService(store.Transactor(), store.Attendances(), store.Employees(), time.UTC, func() time.Time { return *env.clock })
	env.ctx = user.WithIdentity(context.Background(), user.Identity{UserID: employeeUserID, Role: user.RoleEmployee})
	return env
}

func (e *testEnv) at(hour, minute int) {
	*e.clock = time.Date(2024, 1, 10, hour, minute, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestCheckIn_StatusByHour(t *testing.T) {
	cases := []struct {
		hour, minute int
		want         attendance.Status
	}{
		{8, 59, attendance.StatusPresent},
		{9, 0, attendance.StatusPresent},
		{9, 1, attendance.StatusPresent},
		{10, 0, attendance.StatusLate},
	}
	for _, c := range cases {
		env := setup(t)
		env.at(c.hour, c.minute)

		resp, created, err := env.svc.CheckIn(env.ctx)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, string(c.want), resp.Status, "check-in at %02d:%02d", c.hour, c.minute)
		assert.Equal(t, "2024-01-10", resp.Date)
		require.NotNil(t, resp.CheckIn)
		assert.Nil(t, resp.CheckOut)
	}
}

func TestCheckIn_Twice(t *testing.T) {
	env := setup(t)

	_, _, err := env.svc.CheckIn(env.ctx)
	require.NoError(t, err)

	env.at(9, 30)
	_, _, err = env.svc.CheckIn(env.ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

// racingAttendanceRepo reports no row for the day but loses the insert, as
// when a concurrent check-in commits between the lookup and the create.
type racingAttendanceRepo struct {
	attendance.AttendanceRepository
}

func (racingAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	return nil, nil
}

func (racingAttendanceRepo) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceDayExists
}

func TestCheckIn_LostInsertRace(t *testing.T) {
	env := setup(t)
	svc := NewAttendanceService(env.store.Transactor(), racingAttendanceRepo{env.store.Attendances()}, env.store.Employees(), time.UTC, func() time.Time { return *env.clock })

	_, created, err := svc.CheckIn(env.ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
	assert.False(t, created)
}

func TestCheckOut_Hours(t *testing.T) {
	cases := []struct {
		name            string
		outHour, outMin int
		work, extra     int
	}{
		{"overtime", 18, 30, 570, 90},
		{"short day", 16, 0, 420, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			env := setup(t)
			_, _, err := env.svc.CheckIn(env.ctx)
			require.NoError(t, err)

			env.at(c.outHour, c.outMin)
			resp, err := env.svc.CheckOut(env.ctx)
			require.NoError(t, err)
			assert.Equal(t, c.work, resp.WorkHours)
			assert.Equal(t, c.extra, resp.ExtraHours)
			assert.NotNil(t, resp.CheckOut)
		})
	}
}

func TestCheckOut_BeforeCheckIn(t *testing.T) {
	env := setup(t)

	_, err := env.svc.CheckOut(env.ctx)
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)

	rows, err := env.svc.GetMyAttendance(env.ctx, attendance.MyAttendanceFilter{})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCheckOut_Twice(t *testing.T) {
	env := setup(t)
	_, _, err := env.svc.CheckIn(env.ctx)
	require.NoError(t, err)
	env.at(17, 0)
	_, err = env.svc.CheckOut(env.ctx)
	require.NoError(t, err)

	_, err = env.svc.CheckOut(env.ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestCheckIn_NoEmployeeRecord(t *testing.T) {
	env := setup(t)
	ctx := user.WithIdentity(context.Background(), user.Identity{UserID: "stranger", Role: user.RoleEmployee})

	_, _, err := env.svc.CheckIn(ctx)
	assert.ErrorIs(t, err, employee.ErrEmployeeRecordNotFound)
}

func TestOverrideDay_CreatesThenEdits(t *testing.T) {
	env := setup(t)

	resp, err := env.svc.OverrideDay(env.ctx, attendance.OverrideDayRequest{
		EmployeeID: employeeID,
		Date:       "2024-01-09",
		OverrideFields: attendance.OverrideFields{
			CheckIn:  strPtr("2024-01-09T09:00:00Z"),
			CheckOut: strPtr("2024-01-09T18:30:00Z"),
			Status:   strPtr(string(attendance.StatusPresent)),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-09", resp.Date)
	assert.Equal(t, 570, resp.WorkHours)
	assert.Equal(t, 90, resp.ExtraHours)

	again, err := env.svc.OverrideDay(env.ctx, attendance.OverrideDayRequest{
		EmployeeID:     employeeID,
		Date:           "2024-01-09",
		OverrideFields: attendance.OverrideFields{Status: strPtr(string(attendance.StatusOnLeave))},
	})
	require.NoError(t, err)
	assert.Equal(t, resp.ID, again.ID)
	assert.Equal(t, string(attendance.StatusOnLeave), again.Status)

	all, err := env.svc.ListAttendance(env.ctx, attendance.AttendanceFilter{Date: strPtr("2024-01-09")})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestOverrideDay_UnknownEmployee(t *testing.T) {
	env := setup(t)
	_, err := env.svc.OverrideDay(env.ctx, attendance.OverrideDayRequest{
		EmployeeID:     "0188d0f2-7b8c-7b4a-8a2b-000000000000",
		Date:           "2024-01-09",
		OverrideFields: attendance.OverrideFields{Status: strPtr(string(attendance.StatusAbsent))},
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestUpdateAttendance(t *testing.T) {
	env := setup(t)
	created, _, err := env.svc.CheckIn(env.ctx)
	require.NoError(t, err)

	updated, err := env.svc.UpdateAttendance(env.ctx, attendance.UpdateAttendanceRequest{
		ID:             created.ID,
		OverrideFields: attendance.OverrideFields{WorkHours: intPtr(500)},
	})
	require.NoError(t, err)
	assert.Equal(t, 500, updated.WorkHours)
	assert.Equal(t, 20, updated.ExtraHours)

	_, err = env.svc.UpdateAttendance(env.ctx, attendance.UpdateAttendanceRequest{
		ID:             "missing",
		OverrideFields: attendance.OverrideFields{WorkHours: intPtr(1)},
	})
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestGetMyAttendance_RangeAndOrder(t *testing.T) {
	env := setup(t)
	for _, d := range []string{"2024-01-05", "2024-01-08", "2024-01-09"} {
		_, err := env.svc.OverrideDay(env.ctx, attendance.OverrideDayRequest{
			EmployeeID:     employeeID,
			Date:           d,
			OverrideFields: attendance.OverrideFields{Status: strPtr(string(attendance.StatusPresent))},
		})
		require.NoError(t, err)
	}

	rows, err := env.svc.GetMyAttendance(env.ctx, attendance.MyAttendanceFilter{StartDate: strPtr("2024-01-08")})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-01-09", rows[0].Date)
	assert.Equal(t, "2024-01-08", rows[1].Date)
	require.NotNil(t, rows[0].Employee)
	assert.Equal(t, "EMP001", rows[0].Employee.EmployeeCode)
}
