package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/staffhub-hr/hrms-backend-go/internal/config"
	"github.com/staffhub-hr/hrms-backend-go/internal/handler/http/middleware"
	"github.com/staffhub-hr/hrms-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth            AuthHandler
	Attendance      AttendanceHandler
	Leave           LeaveHandler
	Payroll         PayrollHandler
	Employee        EmployeeHandler
	SalaryStructure SalaryStructureHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, handlers Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", handlers.Auth.Login)
			r.Post("/refresh", handlers.Auth.Refresh)
			r.Post("/logout", handlers.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", handlers.Attendance.CheckIn)
				r.Post("/{id}/check-out", handlers.Attendance.CheckOut)
				r.Get("/", handlers.Attendance.List)
				r.Get("/summary", handlers.Attendance.Summary)

				// HR or admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/manual", handlers.Attendance.CreateManualEntry)
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Delete("/{id}", handlers.Attendance.Delete)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Post("/requests", handlers.Leave.CreateRequest)
				r.Get("/requests", handlers.Leave.List)
				r.Post("/requests/{id}/cancel", handlers.Leave.CancelRequest)
				r.Get("/summary", handlers.Leave.Summary)
				r.Get("/balances", handlers.Leave.Balances)

				// HR or admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/requests/{id}/approve", handlers.Leave.ApproveRequest)
					r.Post("/requests/{id}/reject", handlers.Leave.RejectRequest)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", handlers.Employee.ListActive)
				r.Get("/{id}", handlers.Employee.Get)
				r.Get("/code/{code}", handlers.Employee.GetByCode)

				// HR or admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/", handlers.Employee.Create)
					r.Put("/{id}", handlers.Employee.Update)
					r.Delete("/{id}", handlers.Employee.Deactivate)
				})
			})

			// HR or admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireHR)

				r.Route("/salary-structures", func(r chi.Router) {
					r.Post("/", handlers.SalaryStructure.Create)
					r.Get("/", handlers.SalaryStructure.List)
					r.Get("/{id}", handlers.SalaryStructure.Get)
					r.Put("/{id}", handlers.SalaryStructure.Update)
					r.Delete("/{id}", handlers.SalaryStructure.Delete)
				})

				r.Route("/payroll/runs", func(r chi.Router) {
					r.Post("/", handlers.Payroll.CreateRun)
					r.Get("/", handlers.Payroll.ListRuns)
					r.Get("/{id}", handlers.Payroll.GetRun)
					r.Delete("/{id}", handlers.Payroll.DeleteRun)
					r.Post("/{id}/calculate", handlers.Payroll.Calculate)
					r.Post("/{id}/approve", handlers.Payroll.ApproveRun)
					r.Post("/{id}/process", handlers.Payroll.ProcessRun)
					r.Get("/{id}/entries", handlers.Payroll.ListEntries)
					r.Put("/{id}/entries/{entryID}", handlers.Payroll.UpdateEntry)
					r.Get("/{id}/summary", handlers.Payroll.RunSummary)
					r.Get("/{id}/departments", handlers.Payroll.DepartmentSummaries)
				})
			})
		})
	})
	return r
}
