package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/forestbar/api/internal/pkg/config"
	"github.com/forestbar/api/internal/pkg/database"
	"github.com/forestbar/api/internal/pkg/health"
	"github.com/forestbar/api/internal/pkg/logger"
	"github.com/forestbar/api/internal/pkg/metrics"
	"github.com/forestbar/api/internal/pkg/middleware"
	"github.com/forestbar/api/internal/pkg/retry"
	"github.com/forestbar/api/internal/pkg/server"
	"github.com/forestbar/api/internal/utils"
	"github.com/forestbar/api/services/auth/gateway"
	"github.com/forestbar/api/services/auth/handler"
	httpHandler "github.com/forestbar/api/services/auth/handler/http"
	"github.com/forestbar/api/services/auth/repository"
	"github.com/forestbar/api/services/auth/usecase"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/auth.env"
	}
	configs := config.InitConfig(configPath)
	appName := configs.App.Name

	if err := configs.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
		zap.String("sms_provider", configs.SMS.Provider),
		zap.Bool("sms_test_mode", configs.SMS.TestMode),
	)

	// Dependencies may still be starting when the container comes up
	startupCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	retrier := retry.New(retry.DefaultConfig(), zapLogger)

	// Initialize PostgreSQL database connection
	var postgresClient *database.PostgresClient
	err = retrier.Execute(startupCtx, "postgres connect", func(ctx context.Context) error {
		client, connErr := database.NewPostgresClient(configs.Database)
		if connErr != nil {
			return connErr
		}
		postgresClient = client
		return nil
	})
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	// Initialize Redis client
	var redisClient *database.RedisClient
	err = retrier.Execute(startupCtx, "redis connect", func(ctx context.Context) error {
		client, connErr := database.NewRedisClient(configs.Redis)
		if connErr != nil {
			return connErr
		}
		redisClient = client
		return nil
	})
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// Initialize repository
	authRepo := repository.NewAuthRepo(postgresClient.GetDB())

	// Initialize Gateway
	authGW, err := gateway.NewAuthGW(configs.SMS, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to initialize SMS gateway", zap.Error(err))
	}

	// Initialize UseCase
	authUC := usecase.NewAuthUC(authRepo, authGW, configs)

	// Handlers for HTTP
	authHandler := httpHandler.NewAuthHandler(authUC)
	Handler := handler.NewHandler(authHandler, authUC, redisClient.GetClient(), configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = utils.HTTPErrorHandler
	e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(configs.Server.WriteTimeout) * time.Second
	e.IPExtractor, err = server.NewIPExtractor(configs.Server.TrustedProxies)
	if err != nil {
		zapLogger.Fatal("Invalid SERVER_TRUSTED_PROXIES", zap.Error(err))
	}

	// Add middlewares
	e.Use(middleware.RequestContextMiddleware())
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(metrics.Middleware())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: configs.CORS.AllowOrigins,
		AllowMethods: []string{echo.GET, echo.POST, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	// Register health endpoints
	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPingChecker(postgresClient))
	healthService.AddChecker("redis", health.NewPingChecker(redisClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)
	e.GET("/metrics", metrics.Handler())

	// Register service routes
	Handler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	srv.OnShutdown(func(context.Context) error { return postgresClient.Close() })
	srv.OnShutdown(func(context.Context) error { return redisClient.Close() })

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
