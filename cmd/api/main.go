package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hrlabs/hrms-backend-go/internal/config"
	appHTTP "github.com/hrlabs/hrms-backend-go/internal/handler/http"
	"github.com/hrlabs/hrms-backend-go/internal/migrations"
	"github.com/hrlabs/hrms-backend-go/internal/pkg/database"
	"github.com/hrlabs/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/hrlabs/hrms-backend-go/internal/service/attendance"
	departmentService "github.com/hrlabs/hrms-backend-go/internal/service/department"
	employeeService "github.com/hrlabs/hrms-backend-go/internal/service/employee"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	ctx := context.Background()
	dsn := cfg.DatabaseURL()
	if err := migrations.Run(ctx, dsn); err != nil {
		fmt.Println("Error running migrations:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(ctx, dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, cfg.Attendance.Location)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, departmentRepo)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	departmentHandler := appHTTP.NewDepartmentHandler(departmentSvc)

	router := appHTTP.NewRouter(attendanceHandler, employeeHandler, departmentHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
