package http

import (
	"io"
	"log/slog"
	"os"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hr/dayflow-backend-go/internal/handler/http/middleware"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/authz"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	AppName        string
	Version        string
	Env            string
	LogLevel       slog.Level
	AllowedOrigins []string
	// LogOutput defaults to stdout.
	LogOutput io.Writer
}

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Payroll    PayrollHandler
	Dashboard  DashboardHandler
}

func NewRouter(cfg RouterConfig, jwtService jwt.Service, authorizer *authz.Authorizer, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	out := cfg.LogOutput
	if out == nil {
		out = os.Stdout
	}
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level:       cfg.LogLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.AppName),
		slog.String("version", cfg.Version),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	can := func(p user.Permission) func(chi.Router) chi.Router {
		return func(r chi.Router) chi.Router {
			return r.With(middleware.RequirePermission(authorizer, p))
		}
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
		})

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			can(user.PermissionProfileViewOwn)(r).Get("/auth/me", h.Auth.Me)

			r.Route("/attendance", func(r chi.Router) {
				self := can(user.PermissionAttendanceSelf)(r)
				self.Post("/checkin", h.Attendance.CheckIn)
				self.Post("/checkout", h.Attendance.CheckOut)
				self.Get("/my-attendance", h.Attendance.GetMyAttendance)

				can(user.PermissionAttendanceViewAll)(r).Get("/", h.Attendance.List)
				can(user.PermissionAttendanceViewAll)(r).Get("/{id}", h.Attendance.Get)
				can(user.PermissionAttendanceManage)(r).Put("/override", h.Attendance.Override)
				can(user.PermissionAttendanceManage)(r).Put("/{id}", h.Attendance.Update)
			})

			r.Route("/leaves", func(r chi.Router) {
				can(user.PermissionLeaveCreate)(r).Post("/", h.Leave.Apply)
				can(user.PermissionLeaveViewOwn)(r).Get("/my-leaves", h.Leave.GetMyLeaves)
				can(user.PermissionLeaveViewOwn)(r).Get("/{id}", h.Leave.Get)

				can(user.PermissionLeaveViewAll)(r).Get("/", h.Leave.List)
				approve := can(user.PermissionLeaveApprove)(r)
				approve.Put("/{id}/approve", h.Leave.Approve)
				approve.Put("/{id}/reject", h.Leave.Reject)
			})

			r.Route("/employees", func(r chi.Router) {
				view := can(user.PermissionEmployeeView)(r)
				view.Get("/", h.Employee.List)
				view.Get("/{id}", h.Employee.Get)

				manage := can(user.PermissionEmployeeManage)(r)
				manage.Post("/", h.Employee.Create)
				manage.Put("/{id}", h.Employee.Update)
				manage.Delete("/{id}", h.Employee.Delete)
			})

			r.Route("/payroll", func(r chi.Router) {
				can(user.PermissionPayrollViewOwn)(r).Get("/my-salary", h.Payroll.GetMySalary)
				can(user.PermissionPayrollViewAll)(r).Get("/", h.Payroll.List)

				manage := can(user.PermissionPayrollManage)(r)
				manage.Post("/", h.Payroll.Create)
				manage.Put("/{id}", h.Payroll.Update)
				manage.Put("/{id}/mark-paid", h.Payroll.MarkPaid)
			})

			r.Route("/dashboard", func(r chi.Router) {
				can(user.PermissionDashboardEmployee)(r).Get("/employee", h.Dashboard.GetEmployeeDashboard)
				can(user.PermissionDashboardHR)(r).Get("/hr", h.Dashboard.GetHRDashboard)
			})
		})
	})

	return r
}
