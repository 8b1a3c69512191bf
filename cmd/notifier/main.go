package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/swiftride/swiftride/internal/pkg/config"
	"github.com/swiftride/swiftride/internal/pkg/logger"
	notifierGW "github.com/swiftride/swiftride/services/notifier/gateway"
	notifierHandler "github.com/swiftride/swiftride/services/notifier/handler"
	notifierUC "github.com/swiftride/swiftride/services/notifier/usecase"
)

func main() {
	cfg := config.InitConfig(".env")

	appLogger, err := logger.NewAppLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	logger.SetGlobalLogger(appLogger)
	defer appLogger.Close()

	pushGateway := notifierGW.NewPushGateway(cfg.Push)
	smsGateway := notifierGW.NewSMSGateway(cfg.SMS)
	useCase := notifierUC.NewNotifierUC(pushGateway, smsGateway)

	handler := notifierHandler.NewHandler(cfg, useCase)
	if err := handler.Start(); err != nil {
		appLogger.WithError(err).Fatal("failed to start notifier consumers")
	}

	logger.Info("notifier started", logrus.Fields{
		"channel": cfg.NSQ.Channel,
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutting down notifier", logrus.Fields{"signal": sig.String()})
	handler.Stop()
}
