package dashboard

import "context"

// DashboardService builds the read-only rollups for both views.
type DashboardService interface {
	// GetEmployeeDashboard returns the caller's current-month summary
	GetEmployeeDashboard(ctx context.Context) (*EmployeeDashboardResponse, error)

	// GetHRDashboard returns today's fleet summary (HR only)
	GetHRDashboard(ctx context.Context) (*HRDashboardResponse, error)
}
