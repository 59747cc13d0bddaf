package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestComputeNet(t *testing.T) {
	net := ComputeNet(decimal.NewFromInt(50000), decimal.NewFromInt(2000), decimal.NewFromInt(500))
	assert.True(t, net.Equal(decimal.NewFromInt(51500)), net.String())

	frac := ComputeNet(decimal.RequireFromString("100.10"), decimal.RequireFromString("0.20"), decimal.Zero)
	assert.Equal(t, "100.3", frac.String())
}

func TestUpdatePayrollRequest_ApplyRecomputesFromMergedValues(t *testing.T) {
	p := Payroll{Basic: *dec(50000), Allowance: *dec(2000), Deduction: *dec(500)}
	p.Recompute()
	require.True(t, p.Net.Equal(decimal.NewFromInt(51500)))

	UpdatePayrollRequest{Deduction: dec(1000)}.Apply(&p)
	assert.True(t, p.Net.Equal(decimal.NewFromInt(51000)), p.Net.String())
	assert.True(t, p.Basic.Equal(decimal.NewFromInt(50000)))
	assert.True(t, p.Allowance.Equal(decimal.NewFromInt(2000)))
}

func TestPayroll_MarkPaid(t *testing.T) {
	now := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	p := Payroll{Status: PayrollStatusPending}

	require.NoError(t, p.MarkPaid(now))
	assert.Equal(t, PayrollStatusPaid, p.Status)
	assert.Equal(t, now, *p.PaidAt)

	assert.ErrorIs(t, p.MarkPaid(now.Add(time.Hour)), ErrPayrollAlreadyPaid)
	assert.Equal(t, now, *p.PaidAt)
}

func TestCreatePayrollRequest_Validate(t *testing.T) {
	ok := CreatePayrollRequest{
		EmployeeID: "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		Month:      1,
		Year:       2024,
		Basic:      dec(50000),
	}
	assert.NoError(t, ok.Validate())

	bad := CreatePayrollRequest{EmployeeID: "x", Month: 13, Year: 24, Deduction: dec(-1)}
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "month")
	assert.Contains(t, err.Error(), "year")
	assert.Contains(t, err.Error(), "basic")
	assert.Contains(t, err.Error(), "deduction")
}
