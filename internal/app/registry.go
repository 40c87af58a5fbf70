package app

import (
	"database/sql"

	"staff-tracker/internal/activity"
	"staff-tracker/internal/attendance"
	"staff-tracker/internal/auth"
	"staff-tracker/internal/employee"
	"staff-tracker/internal/expense"
	"staff-tracker/internal/lending"
	"staff-tracker/internal/messaging/kafka"
	"staff-tracker/internal/middleware"
	"staff-tracker/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	expenseRepo := expense.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	lendingSource := lending.NewStaticSource(lending.SeedRecords())

	// --- Services ---
	employeeService := employee.NewService(db, employeeRepo, rdb)
	attendanceService := attendance.NewServiceWithOutbox(db, attendanceRepo, employeeRepo, outboxRepo)
	expenseService := expense.NewServiceWithOutbox(db, expenseRepo, employeeRepo, outboxRepo)
	activityService := activity.NewService(attendanceRepo, expenseRepo, lendingSource, employeeService)
	reportService := report.NewService(attendanceRepo, expenseRepo, employeeService)
	authService := auth.NewService()

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	expenseHandler := expense.NewHandler(expenseService)
	activityHandler := activity.NewHandler(activityService)
	reportHandler := report.NewHandler(reportService)
	authHandler := auth.NewHandler(authService)

	// --- Routes ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler)
		attendance.RegisterRoutes(api, attendanceHandler)
		expense.RegisterRoutes(api, expenseHandler, middleware.Idempotency(rdb))
		activity.RegisterRoutes(api, activityHandler)
		report.RegisterRoutes(api, reportHandler)
	}

	return nil
}
