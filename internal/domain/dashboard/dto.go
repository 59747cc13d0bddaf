package dashboard

import (
	"math"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/leave"
)

const RecentLimit = 5

// EmployeeDashboardResponse is the self-service view for the current month
type EmployeeDashboardResponse struct {
	Employee             employee.Summary                `json:"employee"`
	WorkingDays          int                             `json:"workingDays"`
	PresentDays          int64                           `json:"presentDays"`
	AttendancePercentage float64                         `json:"attendancePercentage"`
	CurrentMonthSalary   float64                         `json:"currentMonthSalary"`
	SalaryStatus         string                          `json:"salaryStatus"`
	RecentAttendance     []attendance.AttendanceResponse `json:"recentAttendance"`
	LeaveRequests        []leave.LeaveResponse           `json:"leaveRequests"`
}

// HRDashboardResponse is the fleet view for today
type HRDashboardResponse struct {
	TotalEmployees       int64                           `json:"totalEmployees"`
	PresentToday         int64                           `json:"presentToday"`
	AttendancePercentage float64                         `json:"attendancePercentage"`
	PendingLeaves        int64                           `json:"pendingLeaves"`
	TodayAttendance      []attendance.AttendanceResponse `json:"todayAttendance"`
	PendingLeaveRequests []leave.LeaveResponse           `json:"pendingLeaveRequests"`
	RecentActivities     []leave.LeaveResponse           `json:"recentActivities"`
}

// Percentage returns part/total*100 rounded to one decimal place, or 0 when
// total is not positive.
func Percentage(part, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}
