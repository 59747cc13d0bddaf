package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
	"github.com/dayflow-hr/dayflow-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const employeeID = "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b"

func setup(t *testing.T) (payroll.PayrollService, context.Context) {
	t.Helper()
	store := memory.NewStore()
	_, err := store.Employees().Create(context.Background(), employee.Employee{
		ID:           employeeID,
		EmployeeCode: "EMP001",
		UserID:       "user-rajesh",
		Name:         "Rajesh Kumar",
		Email:        "rajesh@dayflow.com",
	})
	require.NoError(t, err)

	now := func() time.Time { return time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC) }
	svc := NewPayrollService(store.Transactor(), store.Payrolls(), store.Employees(), time.UTC, now)
	ctx := user.WithIdentity(context.Background(), user.Identity{UserID: "user-rajesh", Role: user.RoleEmployee})
	return svc, ctx
}

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func januaryPayroll() payroll.CreatePayrollRequest {
	return payroll.CreatePayrollRequest{
		EmployeeID: employeeID,
		Month:      1,
		Year:       2024,
		Basic:      dec(50000),
		Allowance:  dec(2000),
		Deduction:  dec(500),
	}
}

func TestCreatePayroll_ComputesNet(t *testing.T) {
	svc, ctx := setup(t)

	resp, err := svc.CreatePayroll(ctx, januaryPayroll())
	require.NoError(t, err)
	assert.Equal(t, 51500.0, resp.Net)
	assert.Equal(t, string(payroll.PayrollStatusPending), resp.Status)
	assert.Nil(t, resp.PaidAt)
}

func TestCreatePayroll_DefaultsAllowanceAndDeduction(t *testing.T) {
	svc, ctx := setup(t)

	resp, err := svc.CreatePayroll(ctx, payroll.CreatePayrollRequest{EmployeeID: employeeID, Month: 2, Year: 2024, Basic: dec(40000)})
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.Allowance)
	assert.Equal(t, 0.0, resp.Deduction)
	assert.Equal(t, 40000.0, resp.Net)
}

func TestCreatePayroll_Duplicate(t *testing.T) {
	svc, ctx := setup(t)

	first, err := svc.CreatePayroll(ctx, januaryPayroll())
	require.NoError(t, err)

	second := januaryPayroll()
	second.Basic = dec(99999)
	_, err = svc.CreatePayroll(ctx, second)
	assert.ErrorIs(t, err, payroll.ErrPayrollExists)

	rows, err := svc.ListPayrolls(ctx, payroll.PayrollFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, first.Net, rows[0].Net)
}

func TestCreatePayroll_UnknownEmployee(t *testing.T) {
	svc, ctx := setup(t)
	req := januaryPayroll()
	req.EmployeeID = "0188d0f2-7b8c-7b4a-8a2b-000000000000"

	_, err := svc.CreatePayroll(ctx, req)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestUpdatePayroll_RecomputesNet(t *testing.T) {
	svc, ctx := setup(t)
	created, err := svc.CreatePayroll(ctx, januaryPayroll())
	require.NoError(t, err)

	updated, err := svc.UpdatePayroll(ctx, payroll.UpdatePayrollRequest{ID: created.ID, Deduction: dec(1000)})
	require.NoError(t, err)
	assert.Equal(t, 51000.0, updated.Net)
	assert.Equal(t, 50000.0, updated.Basic)
}

func TestPayroll_NetOutOfRange(t *testing.T) {
	svc, ctx := setup(t)
	near := decimal.RequireFromString("999999999999.99")

	req := januaryPayroll()
	req.Basic, req.Allowance = &near, &near
	_, err := svc.CreatePayroll(ctx, req)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "net")

	list, err := svc.ListPayrolls(ctx, payroll.PayrollFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)

	created, err := svc.CreatePayroll(ctx, januaryPayroll())
	require.NoError(t, err)
	_, err = svc.UpdatePayroll(ctx, payroll.UpdatePayrollRequest{ID: created.ID, Basic: &near, Allowance: &near})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "net")
}

func TestUpdatePayroll_StatusTransitions(t *testing.T) {
	svc, ctx := setup(t)
	created, err := svc.CreatePayroll(ctx, januaryPayroll())
	require.NoError(t, err)

	paid := string(payroll.PayrollStatusPaid)
	updated, err := svc.UpdatePayroll(ctx, payroll.UpdatePayrollRequest{ID: created.ID, Status: &paid})
	require.NoError(t, err)
	assert.Equal(t, paid, updated.Status)
	assert.NotNil(t, updated.PaidAt)

	pending := string(payroll.PayrollStatusPending)
	_, err = svc.UpdatePayroll(ctx, payroll.UpdatePayrollRequest{ID: created.ID, Status: &pending})
	assert.ErrorIs(t, err, payroll.ErrPayrollAlreadyPaid)
}

func TestMarkPaid(t *testing.T) {
	svc, ctx := setup(t)
	created, err := svc.CreatePayroll(ctx, januaryPayroll())
	require.NoError(t, err)

	paid, err := svc.MarkPaid(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(payroll.PayrollStatusPaid), paid.Status)
	require.NotNil(t, paid.PaidAt)
	assert.Equal(t, "2024-01-31T12:00:00Z", *paid.PaidAt)

	_, err = svc.MarkPaid(ctx, created.ID)
	assert.ErrorIs(t, err, payroll.ErrPayrollAlreadyPaid)

	_, err = svc.MarkPaid(ctx, "missing")
	assert.ErrorIs(t, err, payroll.ErrPayrollNotFound)
}

func TestGetMySalary(t *testing.T) {
	svc, ctx := setup(t)

	_, err := svc.GetMySalary(ctx, payroll.MySalaryFilter{})
	assert.ErrorIs(t, err, payroll.ErrPayrollPeriodMissing)

	_, err = svc.CreatePayroll(ctx, januaryPayroll())
	require.NoError(t, err)

	resp, err := svc.GetMySalary(ctx, payroll.MySalaryFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Month)
	assert.Equal(t, 2024, resp.Year)

	month := 2
	_, err = svc.GetMySalary(ctx, payroll.MySalaryFilter{Month: &month})
	assert.ErrorIs(t, err, payroll.ErrPayrollPeriodMissing)
}

func TestListPayrolls_Order(t *testing.T) {
	svc, ctx := setup(t)
	for _, period := range [][2]int{{1, 2023}, {3, 2024}, {1, 2024}} {
		req := januaryPayroll()
		req.Month, req.Year = period[0], period[1]
		_, err := svc.CreatePayroll(ctx, req)
		require.NoError(t, err)
	}

	rows, err := svc.ListPayrolls(ctx, payroll.PayrollFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, [2]int{3, 2024}, [2]int{rows[0].Month, rows[0].Year})
	assert.Equal(t, [2]int{1, 2024}, [2]int{rows[1].Month, rows[1].Year})
	assert.Equal(t, [2]int{1, 2023}, [2]int{rows[2].Month, rows[2].Year})

	year := 2024
	filtered, err := svc.ListPayrolls(ctx, payroll.PayrollFilter{Year: &year})
	require.NoError(t, err)
	assert.Len(t, filtered, 2)
}
