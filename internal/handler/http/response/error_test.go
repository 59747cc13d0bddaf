package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError_StatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{leave.ErrLeaveAccessDenied, http.StatusForbidden},
		{payroll.ErrPayrollPeriodMissing, http.StatusNotFound},
		{fmt.Errorf("wrapped: %w", attendance.ErrAttendanceNotFound), http.StatusNotFound},
		{attendance.ErrAlreadyCheckedIn, http.StatusBadRequest},
		{payroll.ErrPayrollExists, http.StatusBadRequest},
		{leave.ErrLeaveAlreadyProcessed, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		HandleError(rec, c.err)
		assert.Equal(t, c.code, rec.Code, c.err.Error())

		var body Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.NotEmpty(t, body.Message)
	}
}

func TestHandleError_Validation(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add("email", "Valid email is required")

	rec := httptest.NewRecorder()
	HandleError(rec, errs)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "email", body.Errors[0].Field)
}

func TestList_IncludesCount(t *testing.T) {
	rec := httptest.NewRecorder()
	List[string](rec, nil)

	assert.JSONEq(t, `{"success":true,"data":[],"count":0}`, rec.Body.String())
}
