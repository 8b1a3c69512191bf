package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/swiftride/swiftride/internal/pkg/config"
	"github.com/swiftride/swiftride/internal/pkg/database"
	"github.com/swiftride/swiftride/internal/pkg/health"
	"github.com/swiftride/swiftride/internal/pkg/logger"
	"github.com/swiftride/swiftride/internal/pkg/middleware"
	"github.com/swiftride/swiftride/internal/pkg/nsq"
	"github.com/swiftride/swiftride/internal/pkg/server"
	dispatchGW "github.com/swiftride/swiftride/services/dispatch/gateway"
	dispatchHandler "github.com/swiftride/swiftride/services/dispatch/handler"
	dispatchRepo "github.com/swiftride/swiftride/services/dispatch/repository"
	dispatchUC "github.com/swiftride/swiftride/services/dispatch/usecase"
	driversHandler "github.com/swiftride/swiftride/services/drivers/handler"
	driversRepo "github.com/swiftride/swiftride/services/drivers/repository"
	driversUC "github.com/swiftride/swiftride/services/drivers/usecase"
	ridesGW "github.com/swiftride/swiftride/services/rides/gateway"
	ridesHandler "github.com/swiftride/swiftride/services/rides/handler"
	ridesRepo "github.com/swiftride/swiftride/services/rides/repository"
	ridesUC "github.com/swiftride/swiftride/services/rides/usecase"
)

func main() {
	cfg := config.InitConfig(".env")

	appLogger, err := logger.NewAppLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	logger.SetGlobalLogger(appLogger)

	shutdownManager := server.NewShutdownManager()
	shutdownManager.Register(func(context.Context) error { return appLogger.Close() })

	pgClient, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("failed to connect to postgres")
	}
	shutdownManager.Register(func(context.Context) error { return pgClient.Close() })
	db := pgClient.GetDB()

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.WithError(err).Fatal("failed to connect to redis")
	}
	shutdownManager.Register(func(context.Context) error { return redisClient.Close() })

	producer, err := nsq.NewProducer(cfg.NSQ.NSQDAddress)
	if err != nil {
		appLogger.WithError(err).Fatal("failed to connect to nsq")
	}
	shutdownManager.Register(func(context.Context) error {
		producer.Stop()
		return nil
	})

	// repositories
	driverRepository := driversRepo.NewDriverRepository(cfg, db, redisClient)
	dispatchRideRepository := dispatchRepo.NewRideRepository(db)
	otpIssuer := dispatchRepo.NewOTPRepository(db)
	riderRepository := dispatchRepo.NewRiderRepository(db)
	rideLedger := ridesRepo.NewRideRepository(db)
	otpVerifier := ridesRepo.NewOTPRepository(db)

	// gateways
	smsGateway := dispatchGW.NewSMSGateway(cfg.SMS)
	dispatchEvents := dispatchGW.NewEventGateway(producer)
	lifecycleEvents := ridesGW.NewEventGateway(producer)

	// use cases
	driverUseCase := driversUC.NewDriverUC(cfg, driverRepository)
	dispatchUseCase := dispatchUC.NewDispatchUC(
		cfg, driverRepository, dispatchRideRepository, otpIssuer,
		riderRepository, smsGateway, dispatchEvents,
	)
	rideUseCase := ridesUC.NewRideUC(cfg, rideLedger, otpVerifier, driverRepository, lifecycleEvents)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.LoggerMiddleware(appLogger.Logger))
	e.Use(middleware.PanicRecoveryMiddleware())
	e.Use(echoMiddleware.CORS())

	driversHandler.NewHandler(driverUseCase).RegisterRoutes(e)
	dispatchHandler.NewHandler(dispatchUseCase).RegisterRoutes(e)
	ridesHandler.NewHandler(rideUseCase).RegisterRoutes(e)

	healthService := health.NewService()
	healthService.AddChecker("postgres", health.CheckerFunc(pgClient.Ping))
	healthService.AddChecker("redis", health.CheckerFunc(redisClient.Ping))
	healthService.RegisterEndpoints(e, cfg.App.Name)

	srv := server.NewGracefulServer(e, cfg.Server.Port, time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		appLogger.WithError(err).Error("server stopped with error")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	shutdownManager.Shutdown(ctx)
}
