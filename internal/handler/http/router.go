package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/workstream-hr/payroll-backend-go/internal/config"
	"github.com/workstream-hr/payroll-backend-go/internal/handler/http/middleware"
	"github.com/workstream-hr/payroll-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Employee   EmployeeHandler
	Department DepartmentHandler
	Attendance AttendanceHandler
	Payroll    PayrollHandler
	Approval   ApprovalHandler
	Activity   ActivityHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workstream-payroll"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", h.Department.List)
				r.With(middleware.RequireAdmin).Post("/", h.Department.Create)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Patch("/{id}/status", h.Employee.ChangeStatus)
				})
			})

			r.Route("/attendances", func(r chi.Router) {
				r.Get("/", h.Attendance.List)
				r.Post("/check-in", h.Attendance.CheckIn)
				r.Patch("/{id}/check-out", h.Attendance.CheckOut)
			})

			r.Route("/approvals", func(r chi.Router) {
				r.Get("/", h.Approval.List)
				r.Get("/{id}", h.Approval.Get)
				r.Post("/", h.Approval.Submit)

				// Decisions change payroll inputs
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/{id}/approve", h.Approval.Approve)
					r.Post("/{id}/reject", h.Approval.Reject)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Route("/periods", func(r chi.Router) {
					r.Get("/", h.Payroll.ListPeriods)
					r.Get("/{id}", h.Payroll.GetPeriod)
					r.Get("/{id}/items", h.Payroll.ListItems)
					r.Get("/{id}/summary", h.Payroll.GetPeriodSummary)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireManager)
						r.Post("/", h.Payroll.CreatePeriod)
						r.Post("/{id}/process", h.Payroll.ProcessPeriod)
						r.Post("/{id}/items", h.Payroll.ComputeItem)
					})
				})

				r.Route("/items", func(r chi.Router) {
					r.Get("/{id}", h.Payroll.GetItem)
					r.With(middleware.RequireManager).Post("/finalize", h.Payroll.FinalizeItems)
				})

				r.Route("/deduction-types", func(r chi.Router) {
					r.Get("/", h.Payroll.ListDeductionTypes)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireManager)
						r.Post("/", h.Payroll.CreateDeductionType)
						r.Put("/{id}", h.Payroll.UpdateDeductionType)
					})
				})

				r.Route("/allowance-types", func(r chi.Router) {
					r.Get("/", h.Payroll.ListAllowanceTypes)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireManager)
						r.Post("/", h.Payroll.CreateAllowanceType)
						r.Put("/{id}", h.Payroll.UpdateAllowanceType)
					})
				})

				r.Route("/settings", func(r chi.Router) {
					r.Get("/", h.Payroll.ListSettings)
					r.With(middleware.RequireManager).Put("/", h.Payroll.UpdateSetting)
				})
			})

			r.Get("/activities", h.Activity.ListRecent)
		})
	})

	return r
}
