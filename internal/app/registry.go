package app

import (
	"go-payroll/internal/auth"
	"go-payroll/internal/employee"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/middleware"
	"go-payroll/internal/payperiod"
	"go-payroll/internal/payroll"
	"go-payroll/internal/reports"
	"go-payroll/internal/settings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	settingsRepo := settings.NewRepository(gormDB)
	payPeriodRepo := payperiod.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	reportsRepo := reports.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	settingsStore := settings.NewStore(settingsRepo)
	authService := auth.NewService(authRepo)
	employeeService := employee.NewService(employeeRepo, rdb)
	payPeriodService := payperiod.NewService(payPeriodRepo, settingsStore)
	payrollService := payroll.NewServiceWithOutbox(
		db,
		payrollRepo,
		employeeRepo,
		payPeriodRepo,
		settingsStore,
		payroll.StatutesFromEnv(),
		outboxRepo,
	)
	reportsService := reports.NewService(reportsRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	settingsHandler := settings.NewHandler(settingsStore)
	payPeriodHandler := payperiod.NewHandler(payPeriodService)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, rdb)
	reportsHandler := reports.NewHandler(reportsService)

	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler)
		settings.RegisterRoutes(api, settingsHandler)
		payperiod.RegisterRoutes(api, payPeriodHandler)
		payroll.RegisterRoutes(api, payrollHandler, rdb)
		reports.RegisterRoutes(api, reportsHandler)
	}

	return nil
}
