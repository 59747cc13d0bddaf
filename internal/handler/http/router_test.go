package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/authz"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hr/dayflow-backend-go/internal/repository/memory"
	attendanceservice "github.com/dayflow-hr/dayflow-backend-go/internal/service/attendance"
	authservice "github.com/dayflow-hr/dayflow-backend-go/internal/service/auth"
	dashboardservice "github.com/dayflow-hr/dayflow-backend-go/internal/service/dashboard"
	employeeservice "github.com/dayflow-hr/dayflow-backend-go/internal/service/employee"
	leaveservice "github.com/dayflow-hr/dayflow-backend-go/internal/service/leave"
	payrollservice "github.com/dayflow-hr/dayflow-backend-go/internal/service/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiClient struct {
	t      *testing.T
	server http.Handler
}

func newTestAPI(t *testing.T) *apiClient {
	t.Helper()
	store := memory.NewStore()
	now := func() time.Time { return time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC) }
	loc := time.UTC

	jwtService, err := jwt.NewJWTService("test-secret", "1h")
	require.NoError(t, err)
	authorizer, err := authz.NewAuthorizer(authz.ModeEnforce)
	require.NoError(t, err)

	tx := store.Transactor()
	handlers := Handlers{
		Auth:       NewAuthHandler(authservice.NewAuthService(tx, store.Users(), store.Employees(), jwtService, now)),
		Employee:   NewEmployeeHandler(employeeservice.NewEmployeeService(tx, store.Employees(), store.Users(), now)),
		Attendance: NewAttendanceHandler(attendanceservice.NewAttendanceService(tx, store.Attendances(), store.Employees(), loc, now)),
		Leave:      NewLeaveHandler(leaveservice.NewLeaveService(store.LeaveRequests(), store.Employees(), loc, now)),
		Payroll:    NewPayrollHandler(payrollservice.NewPayrollService(tx, store.Payrolls(), store.Employees(), loc, now)),
		Dashboard: NewDashboardHandler(dashboardservice.NewDashboardService(
			store.Dashboard(), store.Employees(), store.Attendances(), store.LeaveRequests(), store.Payrolls(), loc, now)),
	}

	router := NewRouter(RouterConfig{
		AppName:        "dayflow-hr-test",
		Version:        "test",
		Env:            "test",
		LogLevel:       slog.LevelError,
		AllowedOrigins: []string{"http://localhost:5173"},
		LogOutput:      io.Discard,
	}, jwtService, authorizer, handlers)

	return &apiClient{t: t, server: router}
}

func (c *apiClient) do(method, path, token string, body any) (int, map[string]any) {
	c.t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	c.server.ServeHTTP(rec, req)

	var out map[string]any
	if rec.Body.Len() > 0 && rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(c.t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec.Code, out
}

func data(body map[string]any) map[string]any {
	d, _ := body["data"].(map[string]any)
	return d
}

func TestRouter_Heartbeat(t *testing.T) {
	api := newTestAPI(t)
	code, _ := api.do(http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestRouter_RequiresToken(t *testing.T) {
	api := newTestAPI(t)
	code, body := api.do(http.MethodGet, "/api/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, false, body["success"])
}

func TestRouter_EndToEnd(t *testing.T) {
	api := newTestAPI(t)

	// Register the admin account.
	code, body := api.do(http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"companyName": "Dayflow",
		"name":        "Priya Sharma",
		"email":       "priya@dayflow.com",
		"phone":       "+91-9876543210",
		"password":    "password123",
	})
	require.Equal(t, http.StatusCreated, code, body)
	assert.Equal(t, true, body["success"])
	adminToken, _ := body["token"].(string)
	require.NotEmpty(t, adminToken)
	assert.Equal(t, "admin", body["user"].(map[string]any)["role"])

	code, body = api.do(http.MethodGet, "/api/v1/auth/me", adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "priya@dayflow.com", body["user"].(map[string]any)["email"])

	// Invalid registration is a 400 with field errors.
	code, body = api.do(http.MethodPost, "/api/v1/auth/register", "", map[string]any{"email": "bad"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.NotEmpty(t, body["errors"])

	// HR creates an employee with the default password.
	code, body = api.do(http.MethodPost, "/api/v1/employees", adminToken, map[string]any{
		"employeeCode": "EMP001",
		"name":         "Rajesh Kumar",
		"email":        "rajesh@dayflow.com",
		"department":   "Engineering",
		"role":         "Software Engineer",
	})
	require.Equal(t, http.StatusCreated, code, body)
	assert.Contains(t, body["message"], "password123")
	assert.Equal(t, "EMP001", data(body)["employeeCode"])
	employeeID := data(body)["id"].(string)

	code, body = api.do(http.MethodPost, "/api/v1/auth/login", "", map[string]any{"email": "rajesh@dayflow.com", "password": "password123"})
	require.Equal(t, http.StatusOK, code, body)
	empToken := body["token"].(string)

	code, _ = api.do(http.MethodPost, "/api/v1/auth/login", "", map[string]any{"email": "rajesh@dayflow.com", "password": "wrong-pass"})
	assert.Equal(t, http.StatusUnauthorized, code)

	// Attendance: first check-in creates the row, second is rejected.
	code, body = api.do(http.MethodPost, "/api/v1/attendance/checkin", empToken, nil)
	require.Equal(t, http.StatusCreated, code, body)
	assert.Equal(t, "Present", data(body)["status"])
	attendanceID := data(body)["id"].(string)

	code, body = api.do(http.MethodPost, "/api/v1/attendance/checkin", empToken, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Already checked in today", body["message"])

	code, _ = api.do(http.MethodGet, "/api/v1/attendance", empToken, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, body = api.do(http.MethodGet, "/api/v1/attendance?date=2024-01-10", adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), body["count"])

	code, body = api.do(http.MethodGet, "/api/v1/attendance/"+attendanceID, adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	// employeeId is always the record id; the human-readable code is employeeCode.
	assert.Equal(t, employeeID, data(body)["employeeId"])
	joined := data(body)["employee"].(map[string]any)
	assert.Equal(t, employeeID, joined["id"])
	assert.Equal(t, "EMP001", joined["employeeCode"])
	assert.NotContains(t, joined, "employeeId")

	code, _ = api.do(http.MethodGet, "/api/v1/attendance/not-an-id", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	// Employees directory is readable by everyone.
	code, body = api.do(http.MethodGet, "/api/v1/employees", empToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(2), body["count"])

	code, _ = api.do(http.MethodDelete, "/api/v1/employees/"+employeeID, empToken, nil)
	assert.Equal(t, http.StatusForbidden, code)

	// Leave workflow.
	code, body = api.do(http.MethodPost, "/api/v1/leaves", empToken, map[string]any{
		"type": "Sick Leave", "from": "2024-01-10", "to": "2024-01-12", "reason": "Flu",
	})
	require.Equal(t, http.StatusCreated, code, body)
	assert.Equal(t, float64(3), data(body)["days"])
	leaveID := data(body)["id"].(string)

	code, _ = api.do(http.MethodPut, "/api/v1/leaves/"+leaveID+"/approve", empToken, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, body = api.do(http.MethodPut, "/api/v1/leaves/"+leaveID+"/approve", adminToken, nil)
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "Approved", data(body)["status"])

	code, _ = api.do(http.MethodPut, "/api/v1/leaves/"+leaveID+"/reject", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = api.do(http.MethodGet, "/api/v1/leaves/my-leaves", empToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), body["count"])

	// Payroll.
	payload := map[string]any{"employeeId": employeeID, "month": 1, "year": 2024, "basic": 50000, "allowance": 2000, "deduction": 500}
	code, body = api.do(http.MethodPost, "/api/v1/payroll", adminToken, payload)
	require.Equal(t, http.StatusCreated, code, body)
	assert.Equal(t, 51500.0, data(body)["net"])
	payrollID := data(body)["id"].(string)

	code, _ = api.do(http.MethodPost, "/api/v1/payroll", adminToken, payload)
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = api.do(http.MethodPut, "/api/v1/payroll/"+payrollID, adminToken, map[string]any{"deduction": 1000})
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, 51000.0, data(body)["net"])

	code, body = api.do(http.MethodGet, "/api/v1/payroll/my-salary", empToken, nil)
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, 51000.0, data(body)["net"])

	code, body = api.do(http.MethodGet, "/api/v1/payroll/my-salary?month=2", empToken, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Payroll record not found for this month", body["message"])

	code, _ = api.do(http.MethodPut, "/api/v1/payroll/"+payrollID+"/mark-paid", adminToken, nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = api.do(http.MethodPut, "/api/v1/payroll/"+payrollID+"/mark-paid", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	// Dashboards.
	code, body = api.do(http.MethodGet, "/api/v1/dashboard/hr", adminToken, nil)
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, float64(2), data(body)["totalEmployees"])
	assert.Equal(t, float64(1), data(body)["presentToday"])
	assert.Equal(t, 50.0, data(body)["attendancePercentage"])

	code, _ = api.do(http.MethodGet, "/api/v1/dashboard/hr", empToken, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, body = api.do(http.MethodGet, "/api/v1/dashboard/employee", empToken, nil)
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, float64(31), data(body)["workingDays"])
	assert.Equal(t, "Paid", data(body)["salaryStatus"])

	// Hard delete.
	code, _ = api.do(http.MethodDelete, "/api/v1/employees/"+employeeID, adminToken, nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = api.do(http.MethodGet, "/api/v1/employees/"+employeeID, adminToken, nil)
	assert.Equal(t, http.StatusNotFound, code)
}
