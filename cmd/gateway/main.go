package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/smartwaste360/gateway/internal/pkg/config"
	"github.com/smartwaste360/gateway/internal/pkg/database"
	"github.com/smartwaste360/gateway/internal/pkg/health"
	httpclient "github.com/smartwaste360/gateway/internal/pkg/http"
	"github.com/smartwaste360/gateway/internal/pkg/logger"
	"github.com/smartwaste360/gateway/internal/pkg/middleware"
	nrpkg "github.com/smartwaste360/gateway/internal/pkg/newrelic"
	"github.com/smartwaste360/gateway/internal/pkg/server"
	bookinggw "github.com/smartwaste360/gateway/services/booking/gateway/http"
	bookinghandler "github.com/smartwaste360/gateway/services/booking/handler"
	bookingusecase "github.com/smartwaste360/gateway/services/booking/usecase"
	colonygw "github.com/smartwaste360/gateway/services/colony/gateway/http"
	colonyhandler "github.com/smartwaste360/gateway/services/colony/handler"
	colonyusecase "github.com/smartwaste360/gateway/services/colony/usecase"
	"github.com/smartwaste360/gateway/services/locator/gateway/geo"
	locatorgw "github.com/smartwaste360/gateway/services/locator/gateway/http"
	locatorhandler "github.com/smartwaste360/gateway/services/locator/handler"
	locatorusecase "github.com/smartwaste360/gateway/services/locator/usecase"
	sessiongw "github.com/smartwaste360/gateway/services/session/gateway/http"
	sessionhandler "github.com/smartwaste360/gateway/services/session/handler"
	"github.com/smartwaste360/gateway/services/session/repository"
	sessionusecase "github.com/smartwaste360/gateway/services/session/usecase"
)

func main() {
	configPath := os.Getenv("GATEWAY_CONFIG")
	if configPath == "" {
		configPath = "config/gateway.env"
	}
	configs := config.InitConfig(configPath)
	appName := configs.App.Name

	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.NewZapLogger(configs.Logger, appName, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// session: token store and login gateway
	tokenRepo := repository.NewTokenRepository(redisClient)
	authGW := sessiongw.NewAuthClient(configs.Backend.BaseURL,
		time.Duration(configs.Backend.TimeoutSeconds)*time.Second)
	sessionUC := sessionusecase.NewSessionUC(authGW, tokenRepo)

	// one backend client shared by all authenticated reads and writes
	backendClient := httpclient.NewClient(httpclient.Config{
		BaseURL: configs.Backend.BaseURL,
		Timeout: time.Duration(configs.Backend.TimeoutSeconds) * time.Second,
	}, tokenRepo)

	// locator: saved-location read plus the position provider
	positionProvider := geo.NewProvider(geo.Config{
		ProviderURL: configs.Geolocation.ProviderURL,
		Timeout:     time.Duration(configs.Geolocation.TimeoutSeconds) * time.Second,
		MaxAge:      time.Duration(configs.Geolocation.MaxAgeSeconds) * time.Second,
	})
	locatorUC := locatorusecase.NewLocatorUC(
		locatorgw.NewLocationClient(backendClient), positionProvider)

	// colony list follows the resolver's output
	colonyUC := colonyusecase.NewColonyUC(colonyusecase.Config{
		CollectorRadiusKm: configs.Colony.CollectorRadiusKm,
		CitizenRadiusKm:   configs.Colony.CitizenRadiusKm,
	}, sessionUC, locatorUC, colonygw.NewColonyClient(backendClient))

	bookingUC := bookingusecase.NewBookingUC(bookingusecase.Config{
		MaxPickups:  configs.Booking.MaxPickups,
		MaxRadiusKm: configs.Booking.MaxRadiusKm,
	}, bookinggw.NewBookingClient(backendClient))

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.NewRelicMiddleware(nrApp))
	e.Use(logger.RequestLoggerMiddleware())

	e.GET("/ping", health.NewPingHandler(appName, map[string]health.Check{
		"redis": redisClient.Ping,
	}))

	sessionhandler.NewSessionHandler(sessionUC).RegisterRoutes(e)
	locatorhandler.NewLocatorHandler(locatorUC).RegisterRoutes(e)
	colonyhandler.NewColonyHandler(colonyUC).RegisterRoutes(e)
	bookinghandler.NewBookingHandler(bookingUC).RegisterRoutes(e)

	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})

	gracefulServer := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := gracefulServer.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Cleanup finished with errors", logger.Err(err))
	}
}
