package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xsnapster/backend/internal/pkg/config"
	"github.com/xsnapster/backend/internal/pkg/database"
	"github.com/xsnapster/backend/internal/pkg/health"
	"github.com/xsnapster/backend/internal/pkg/logger"
	"github.com/xsnapster/backend/internal/pkg/middleware"
	authGateway "github.com/xsnapster/backend/services/auth/gateway"
	authHandler "github.com/xsnapster/backend/services/auth/handler"
	authHTTP "github.com/xsnapster/backend/services/auth/handler/http"
	authRepository "github.com/xsnapster/backend/services/auth/repository"
	authUsecase "github.com/xsnapster/backend/services/auth/usecase"
	productGateway "github.com/xsnapster/backend/services/products/gateway"
	productHandler "github.com/xsnapster/backend/services/products/handler"
	productHTTP "github.com/xsnapster/backend/services/products/handler/http"
	productRepository "github.com/xsnapster/backend/services/products/repository"
	productUsecase "github.com/xsnapster/backend/services/products/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "xsnapster-api"
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

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
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	gatewayTimeout := time.Duration(configs.Services.GatewayTimeoutSec) * time.Second

	// Auth service wiring
	authRepo := authRepository.NewAuthRepo(configs, postgresClient.GetDB())
	notifierGW := authGateway.NewNotifierGW(configs.Services.NotifierServiceURL, gatewayTimeout)
	authUC := authUsecase.NewAuthUC(authRepo, notifierGW, configs)
	authHTTPHandler := authHTTP.NewAuthHandler(authUC, configs)
	authRoutes := authHandler.NewHandler(authHTTPHandler, configs)

	// Products service wiring
	productRepo := productRepository.NewProductRepo(configs, postgresClient.GetDB())
	storageGW := productGateway.NewStorageGW(configs.Services.StorageServiceURL, gatewayTimeout)
	productUC := productUsecase.NewProductUC(configs, productRepo, storageGW)
	productHTTPHandler := productHTTP.NewProductHandler(productUC, configs)
	productRoutes := productHandler.NewHandler(productHTTPHandler, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName,
		health.NewPostgresChecker(postgresClient),
		health.NewRedisChecker(redisClient),
	)

	rateLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RedisClient: redisClient.GetClient(),
		Key:         "ratelimit:auth",
		Limit:       configs.OTP.RateLimit,
		Period:      time.Duration(configs.OTP.RatePeriodSec) * time.Second,
	})

	authRoutes.RegisterRoutes(e, rateLimiter)
	productRoutes.RegisterRoutes(e)

	// Start server
	go func() {
		zapLogger.Info("Starting server",
			zap.String("app", appName),
			zap.Int("port", configs.Server.Port),
		)

		if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server",
				zap.String("app", appName),
				zap.Error(err),
			)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	if shutdownTimeout == 0 {
		shutdownTimeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	zapLogger.Info("Shutting down server", zap.String("app", appName))
	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("Forced shutdown", zap.Error(err))
	}
}
