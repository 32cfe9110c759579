// Файл: main.go

package main

import (
	"context"
	"net/http"

	"repair-flow/internal/repositories"
	"repair-flow/internal/routes"
	"repair-flow/pkg/config"
	"repair-flow/pkg/customvalidator"
	apperrors "repair-flow/pkg/errors"
	applogger "repair-flow/pkg/logger"
	"repair-flow/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// 1. СНАЧАЛА создаем базовые экземпляры Echo и логгера
	e := echo.New()
	logger := applogger.NewLogger()

	// 2. Инициализируем конфиг (он же подхватывает .env)
	cfg := config.New()

	// 3. Middleware: паника не должна ронять процесс
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("!!! ОБНАРУЖЕНА ПАНИКА (PANIC) !!!",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Внутренняя ошибка сервера", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: true,
		ExposeHeaders:    []string{"Content-Disposition"},
	}))

	// 4. Валидатор
	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		logger.Fatal("Ошибка регистрации кастомных правил валидации", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	// 5. Блоб-хранилище: Redis в бою, память с имитацией задержки локально
	var store repositories.BlobStoreInterface
	switch cfg.Storage.Driver {
	case "memory":
		store = repositories.NewMemoryBlobStore(cfg.Storage.LatencyMin, cfg.Storage.LatencyMax)
		logger.Info("Хранилище: память (имитация задержки)",
			zap.Duration("latency_min", cfg.Storage.LatencyMin),
			zap.Duration("latency_max", cfg.Storage.LatencyMax),
		)
	default:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       0,
		})
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logger.Fatal("не удалось подключиться к Redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
		}
		store = repositories.NewRedisBlobStore(redisClient, logger)
		logger.Info("Хранилище: Redis", zap.String("address", cfg.Redis.Address))
	}

	// 6. Инициализируем роуты
	routes.InitRouter(e, store, logger)

	// 7. Запускаем сервер
	logger.Info("🚀 Сервер запущен на :" + cfg.Server.Port)
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Ошибка запуска сервера", zap.Error(err))
	}
}
