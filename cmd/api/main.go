package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/caresuite/labops-backend-go/internal/config"
	appHTTP "github.com/caresuite/labops-backend-go/internal/handler/http"
	"github.com/caresuite/labops-backend-go/internal/pkg/database"
	"github.com/caresuite/labops-backend-go/internal/pkg/jwt"
	"github.com/caresuite/labops-backend-go/internal/repository/postgresql"
	attendanceService "github.com/caresuite/labops-backend-go/internal/service/attendance"
	deductionService "github.com/caresuite/labops-backend-go/internal/service/deduction"
	leaveService "github.com/caresuite/labops-backend-go/internal/service/leave"
	payrollService "github.com/caresuite/labops-backend-go/internal/service/payroll"
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

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "labops-backend"),
	)

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	deductionRepo := postgresql.NewDeductionRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	staffRepo := postgresql.NewStaffRepository(db)
	financeRepo := postgresql.NewFinanceRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)

	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		settingsRepo,
		deductionRepo,
		leaveRepo,
		staffRepo,
		logger,
	)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, staffRepo)
	deductionSvc := deductionService.NewDeductionService(deductionRepo, staffRepo)
	payrollSvc := payrollService.NewPayrollService(
		salaryRepo,
		attendanceRepo,
		settingsRepo,
		deductionRepo,
		leaveRepo,
		staffRepo,
		financeRepo,
		logger,
	)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	deductionHandler := appHTTP.NewDeductionHandler(deductionSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	staffHandler := appHTTP.NewStaffHandler(staffRepo)

	router := appHTTP.NewRouter(
		JWTService,
		cfg.App.FrontendURL,
		attendanceHandler,
		leaveHandler,
		deductionHandler,
		payrollHandler,
		staffHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
