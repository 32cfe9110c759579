package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"repair-flow/internal/controllers"
	"repair-flow/internal/listeners"
	"repair-flow/internal/repositories"
	"repair-flow/internal/services"
	"repair-flow/pkg/eventbus"
)

// InitRouter собирает весь граф зависимостей: хранилище -> репозитории ->
// сервисы -> контроллеры -> маршруты. Персистентность трогают только
// репозитории, всё остальное ходит через них.
func InitRouter(e *echo.Echo, store repositories.BlobStoreInterface, logger *zap.Logger) {
	logger.Info("InitRouter: Начало создания маршрутов")

	api := e.Group("/api")
	bus := eventbus.New(logger)

	// --- 1. РЕПОЗИТОРИИ ---
	clientRepo := repositories.NewClientRepository(store, logger)
	partRepo := repositories.NewPartRepository(store, logger)
	orderRepo := repositories.NewOrderRepository(store, logger)

	// --- 2. СЕРВИСЫ ---
	clientService := services.NewClientService(clientRepo, logger)
	partService := services.NewPartService(partRepo, logger)
	orderService := services.NewOrderService(orderRepo, clientRepo, partRepo, bus, logger)
	intakeService := services.NewIntakeService(clientRepo, orderRepo, logger)
	dashboardService := services.NewDashboardService(orderRepo, partRepo, logger)
	notificationService := services.NewMockNotificationService(logger)

	// --- 3. СЛУШАТЕЛИ ---
	notificationListener := listeners.NewNotificationListener(notificationService, clientRepo, logger)
	notificationListener.Register(bus)

	// --- 4. КОНТРОЛЛЕРЫ ---
	clientController := controllers.NewClientController(clientService, logger)
	partController := controllers.NewPartController(partService, logger)
	orderController := controllers.NewOrderController(orderService, logger)
	intakeController := controllers.NewIntakeController(intakeService, logger)
	dashboardController := controllers.NewDashboardController(dashboardService, logger)
	reportController := controllers.NewReportController(orderService, logger)

	// --- 5. РОУТЕРЫ ---
	runDashboardRouter(api, dashboardController)
	runOrderRouter(api, orderController)
	runClientRouter(api, clientController)
	runPartRouter(api, partController)
	runReportRouter(api, reportController)
	runIntakeRouter(e, intakeController)

	logger.Info("InitRouter: Маршруты созданы")
}
