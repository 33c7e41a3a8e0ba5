package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/staffhub-hr/hrms-backend-go/internal/config"
	appHTTP "github.com/staffhub-hr/hrms-backend-go/internal/handler/http"
	"github.com/staffhub-hr/hrms-backend-go/internal/pkg/cron"
	"github.com/staffhub-hr/hrms-backend-go/internal/pkg/database"
	"github.com/staffhub-hr/hrms-backend-go/internal/pkg/jwt"
	"github.com/staffhub-hr/hrms-backend-go/internal/pkg/timezone"
	"github.com/staffhub-hr/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffhub-hr/hrms-backend-go/internal/service/attendance"
	authService "github.com/staffhub-hr/hrms-backend-go/internal/service/auth"
	employeeService "github.com/staffhub-hr/hrms-backend-go/internal/service/employee"
	leaveService "github.com/staffhub-hr/hrms-backend-go/internal/service/leave"
	payrollService "github.com/staffhub-hr/hrms-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	clock := timezone.SystemClock()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	structureRepo := postgresql.NewSalaryStructureRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	userRepo := postgresql.NewUserRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, clock)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, leaveBalanceRepo, employeeRepo, clock)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, structureRepo, employeeRepo, attendanceRepo, leaveRequestRepo, clock)
	structureSvc := payrollService.NewStructureService(structureRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	authSvc := authService.NewAuthService(userRepo, jwtService)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:            appHTTP.NewAuthHandler(authSvc, jwtService),
		Attendance:      appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:           appHTTP.NewLeaveHandler(leaveSvc, clock),
		Payroll:         appHTTP.NewPayrollHandler(payrollSvc, clock),
		Employee:        appHTTP.NewEmployeeHandler(employeeSvc),
		SalaryStructure: appHTTP.NewSalaryStructureHandler(structureSvc),
	})

	if cfg.Cron.Enabled {
		scheduler := cron.NewScheduler(clock)
		cron.NewAttendanceJobs(attendanceRepo, employeeRepo, leaveRequestRepo, clock).RegisterJobs(scheduler)
		cron.NewLeaveJobs(leaveBalanceRepo, employeeRepo, clock).RegisterJobs(scheduler)
		scheduler.Start()
		defer scheduler.Stop()
	}

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)

	server := &http.Server{Addr: port, Handler: router}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	_ = server.Close()
}
