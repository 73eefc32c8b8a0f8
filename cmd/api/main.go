package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/workstream-hr/payroll-backend-go/internal/config"
	appHTTP "github.com/workstream-hr/payroll-backend-go/internal/handler/http"
	"github.com/workstream-hr/payroll-backend-go/internal/pkg/cron"
	"github.com/workstream-hr/payroll-backend-go/internal/pkg/database"
	"github.com/workstream-hr/payroll-backend-go/internal/pkg/jwt"
	"github.com/workstream-hr/payroll-backend-go/internal/repository/postgresql"
	activityService "github.com/workstream-hr/payroll-backend-go/internal/service/activity"
	approvalService "github.com/workstream-hr/payroll-backend-go/internal/service/approval"
	attendanceService "github.com/workstream-hr/payroll-backend-go/internal/service/attendance"
	departmentService "github.com/workstream-hr/payroll-backend-go/internal/service/department"
	employeeService "github.com/workstream-hr/payroll-backend-go/internal/service/employee"
	payrollService "github.com/workstream-hr/payroll-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	periodRepo := postgresql.NewPeriodRepository(db)
	itemRepo := postgresql.NewItemRepository(db)
	catalogRepo := postgresql.NewCatalogRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	approvalRepo := postgresql.NewApprovalRepository(db)
	activityRepo := postgresql.NewActivityRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	activitySvc := activityService.NewActivityService(activityRepo)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, departmentRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	approvalSvc := approvalService.NewApprovalService(approvalRepo, employeeRepo, activitySvc)
	payrollSvc := payrollService.NewPayrollService(
		cfg.Payroll,
		periodRepo,
		itemRepo,
		catalogRepo,
		settingsRepo,
		employeeRepo,
		attendanceRepo,
		approvalRepo,
		activitySvc,
	)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Department: appHTTP.NewDepartmentHandler(departmentSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Approval:   appHTTP.NewApprovalHandler(approvalSvc),
		Activity:   appHTTP.NewActivityHandler(activitySvc),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server starting", "port", cfg.App.Port, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	if err := server.Close(); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
}
