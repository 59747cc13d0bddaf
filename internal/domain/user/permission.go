package user

type Permission string

const (
	// Self service
	PermissionProfileViewOwn    Permission = "profile.view_own"
	PermissionAttendanceSelf    Permission = "attendance.self"
	PermissionLeaveCreate       Permission = "leave.create"
	PermissionLeaveViewOwn      Permission = "leave.view_own"
	PermissionPayrollViewOwn    Permission = "payroll.view_own"
	PermissionDashboardEmployee Permission = "dashboard.employee"
	PermissionEmployeeView      Permission = "employee.view"

	// HR
	PermissionAttendanceViewAll Permission = "attendance.view_all"
	PermissionAttendanceManage  Permission = "attendance.manage"
	PermissionLeaveViewAll      Permission = "leave.view_all"
	PermissionLeaveApprove      Permission = "leave.approve"
	PermissionEmployeeManage    Permission = "employee.manage"
	PermissionPayrollViewAll    Permission = "payroll.view_all"
	PermissionPayrollManage     Permission = "payroll.manage"
	PermissionDashboardHR       Permission = "dashboard.hr"
)

var selfService = []Permission{
	PermissionProfileViewOwn,
	PermissionAttendanceSelf,
	PermissionLeaveCreate,
	PermissionLeaveViewOwn,
	PermissionPayrollViewOwn,
	PermissionDashboardEmployee,
	PermissionEmployeeView,
}

var hrCapabilities = []Permission{
	PermissionAttendanceViewAll,
	PermissionAttendanceManage,
	PermissionLeaveViewAll,
	PermissionLeaveApprove,
	PermissionEmployeeManage,
	PermissionPayrollViewAll,
	PermissionPayrollManage,
	PermissionDashboardHR,
}

// RolePermissions maps roles to their permissions. It seeds the casbin
// policy in internal/pkg/authz.
var RolePermissions = map[Role][]Permission{
	RoleAdmin:    append(append([]Permission{}, selfService...), hrCapabilities...),
	RoleHR:       append(append([]Permission{}, selfService...), hrCapabilities...),
	RoleEmployee: append([]Permission{}, selfService...),
}

// Split returns the resource and action halves of "resource.action".
func (p Permission) Split() (resource, action string) {
	s := string(p)
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return s[:i], s[i+1:]
		}
	}
	return s, ""
}

// HasPermission checks the static role table. Request paths go through the
// casbin authorizer; this is the fallback used by services.
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
