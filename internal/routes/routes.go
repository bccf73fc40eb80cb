package routes

import (
	"context"
	"net/http"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"equipment-system/internal/controllers"
	tgcontroller "equipment-system/internal/controllers/telegram"
	"equipment-system/internal/repositories"
	"equipment-system/internal/services"
	"equipment-system/pkg/config"
	"equipment-system/pkg/middleware"
	"equipment-system/pkg/service"
	"equipment-system/pkg/telegram"
)

func InitRouter(appCtx context.Context, e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger, cfg *config.Config) {
	logger.Info("InitRouter: начало создания маршрутов")

	// --- 1. РЕПОЗИТОРИИ ---
	txManager := repositories.NewTxManager(dbConn)
	employeeRepo := repositories.NewEmployeeRepository(dbConn)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn)
	movementRepo := repositories.NewMovementRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	// --- 2. СЕРВИСЫ ---
	directoryService := services.NewDirectoryService(equipmentRepo, employeeRepo, movementRepo, logger)
	transitionService := services.NewTransitionService(txManager, equipmentRepo, movementRepo, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, logger)
	employeeService := services.NewEmployeeService(employeeRepo, logger)
	reportService := services.NewReportService(movementRepo, logger)
	authService := services.NewAuthService(cfg.Admin, jwtSvc, logger)
	tgService := telegram.NewService(cfg.Telegram.BotToken)

	// --- 3. КОНТРОЛЛЕРЫ ---
	authCtrl := controllers.NewAuthController(authService, logger)
	employeeCtrl := controllers.NewEmployeeController(employeeService, logger)
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, directoryService, transitionService, logger)
	movementCtrl := controllers.NewMovementController(directoryService, logger)
	reportCtrl := controllers.NewReportController(reportService, logger)
	telegramCtrl := tgcontroller.NewTelegramController(directoryService, transitionService, tgService, cacheRepo, logger, cfg.Telegram)

	go telegramCtrl.StartCleanup(appCtx)

	// --- 4. МАРШРУТЫ ---
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	e.POST("/telegram/webhook", telegramCtrl.HandleTelegramWebhook)

	api := e.Group("/api")
	api.POST("/auth/login", authCtrl.Login)
	api.POST("/auth/refresh", authCtrl.Refresh)

	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)
	protected := api.Group("", authMW.Auth)

	protected.GET("/employees", employeeCtrl.GetEmployees)
	protected.GET("/employees/:id", employeeCtrl.FindEmployee)
	protected.POST("/employees", employeeCtrl.CreateEmployee)

	protected.GET("/equipment", equipmentCtrl.GetEquipment)
	protected.GET("/equipment/:id", equipmentCtrl.FindEquipment)
	protected.GET("/equipment/:id/responsible", equipmentCtrl.FindResponsible)
	protected.POST("/equipment", equipmentCtrl.CreateEquipment)
	protected.PUT("/equipment/:id/location", equipmentCtrl.Relocate)
	protected.PUT("/equipment/:id/status", equipmentCtrl.ChangeStatus)

	protected.GET("/movements", movementCtrl.GetMovements)
	protected.GET("/reports/movements", reportCtrl.DownloadMovementsReport)

	logger.Info("InitRouter: маршруты созданы")
}
