package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/fastbuka/rider/internal/pkg/config"
	"github.com/fastbuka/rider/internal/pkg/logger"
	nrpkg "github.com/fastbuka/rider/internal/pkg/newrelic"
	"github.com/fastbuka/rider/internal/pkg/server"
	"github.com/fastbuka/rider/services/sandbox/handler"
)

func main() {
	appName := handler.ServiceName
	configPath := "config/sandbox.env"
	configs := config.InitConfig(configPath)

	if configs.JWT.Secret == "" {
		log.Fatal("JWT_SECRET must be set for the sandbox")
	}

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
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	e, err := handler.NewServer(configs, zapLogger, nrApp)
	if err != nil {
		zapLogger.Fatal("Failed to build sandbox", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf("%s:%d", configs.Sandbox.Host, configs.Sandbox.Port)
	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.String("addr", addr),
	)

	if err := server.NewGracefulServer(e, addr).Start(ctx); err != nil {
		zapLogger.Fatal("Server stopped with error",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
	zapLogger.Info("Server stopped", zap.String("app", appName))
}
