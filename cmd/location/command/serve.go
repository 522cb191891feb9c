package command

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/fleetlocation/internal/pkg/config"
	"github.com/piresc/fleetlocation/internal/pkg/database"
	"github.com/piresc/fleetlocation/internal/pkg/health"
	httpclient "github.com/piresc/fleetlocation/internal/pkg/http"
	"github.com/piresc/fleetlocation/internal/pkg/logger"
	"github.com/piresc/fleetlocation/internal/pkg/middleware"
	nrpkg "github.com/piresc/fleetlocation/internal/pkg/newrelic"
	"github.com/piresc/fleetlocation/internal/pkg/server"
	"github.com/piresc/fleetlocation/services/location/gateway"
	"github.com/piresc/fleetlocation/services/location/handler"
	httpHandler "github.com/piresc/fleetlocation/services/location/handler/http"
	"github.com/piresc/fleetlocation/services/location/repository"
	"github.com/piresc/fleetlocation/services/location/usecase"
	"github.com/spf13/cobra"
)

func runServe(cmd *cobra.Command, _ []string) error {
	configs := config.InitConfig(cfgPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
		defer nrApp.Shutdown(5 * time.Second)
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		return err
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
		logger.String("broker", configs.Broker.Driver))

	ctx := cmd.Context()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Error("Failed to connect to Redis", logger.ErrorField(err))
		return err
	}

	// Initialize event broker
	eventBroker, err := newBroker(ctx, configs)
	if err != nil {
		zapLogger.Error("Failed to initialize broker", logger.ErrorField(err))
		_ = redisClient.Close()
		return err
	}

	// Initialize repository and gateways
	locationRepo := repository.NewLocationRepository(redisClient)
	vehicleGW := gateway.NewVehicleGW(httpclient.NewClient(httpclient.Config{
		BaseURL: configs.Vehicles.BaseURL,
		APIKey:  configs.Vehicles.APIKey,
		Timeout: configs.Vehicles.Timeout,
	}), configs.Vehicles.GetByID)
	locationGW := gateway.NewLocationGW(eventBroker.publisher, eventBroker.topic)

	// Initialize usecase and handlers
	locationUC := usecase.NewLocationUC(locationRepo, vehicleGW, locationGW)
	locationHandler := httpHandler.NewLocationHandler(locationUC)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(nrpkg.Middleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))

	healthService := health.NewHealthService()
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker(eventBroker.name, eventBroker.checker)
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	handler.RegisterRoutes(e, locationHandler)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server)
	srv.OnShutdown("redis", func(context.Context) error { return redisClient.Close() })
	srv.OnShutdown(eventBroker.name, eventBroker.close)

	return srv.Start()
}
