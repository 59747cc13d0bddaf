package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Business-rule conflicts
// are reported as 400 with the error text as message.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs)
		return
	}

	switch {
	// Auth and identity
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, user.ErrIdentityMissing):
		Unauthorized(w, "Not authorized, token failed")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Access denied")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		BadRequest(w, "User already exists", nil)

	// Employee
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeRecordNotFound):
		NotFound(w, "Employee record not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		BadRequest(w, "Employee ID already exists", nil)
	case errors.Is(err, employee.ErrEmailExists):
		BadRequest(w, "Employee with this email or ID already exists", nil)
	case errors.Is(err, employee.ErrCannotDeleteSelf):
		BadRequest(w, "You cannot delete your own employee record", nil)

	// Attendance
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		BadRequest(w, "Already checked in today", nil)
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "Please check in first", nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		BadRequest(w, "Already checked out today", nil)
	case errors.Is(err, attendance.ErrAttendanceDayExists):
		BadRequest(w, "Attendance record already exists for this day", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		BadRequest(w, "Leave request has already been processed", nil)
	case errors.Is(err, leave.ErrLeaveOverlap):
		BadRequest(w, "Leave request overlaps an existing pending or approved leave", nil)
	case errors.Is(err, leave.ErrLeaveAccessDenied):
		Forbidden(w, "Access denied")

	// Payroll
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollPeriodMissing):
		NotFound(w, "Payroll record not found for this month")
	case errors.Is(err, payroll.ErrPayrollExists):
		BadRequest(w, "Payroll record already exists for this period", nil)
	case errors.Is(err, payroll.ErrPayrollAlreadyPaid):
		BadRequest(w, "Payroll has already been paid", nil)

	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "Server error")
	}
}
