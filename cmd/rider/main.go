package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/fastbuka/rider/internal/app"
	"github.com/fastbuka/rider/internal/pkg/config"
	"github.com/fastbuka/rider/internal/pkg/logger"
	nrpkg "github.com/fastbuka/rider/internal/pkg/newrelic"
)

func main() {
	appName := "fastbuka-rider"
	configPath := flag.String("config", "config/rider.env", "env file loaded when APP_ENV is local")
	flag.Usage = usage
	flag.Parse()

	configs := config.InitConfig(*configPath)

	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		defer nrApp.Shutdown(5 * time.Second)
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Debug("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("api", configs.API.BaseURL),
	)

	rider, err := app.New(configs, nrApp)
	if err != nil {
		zapLogger.Error("Failed to initialize rider client", zap.Error(err))
		os.Exit(1)
	}
	defer rider.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rider.Start(ctx)

	if err := run(ctx, rider, flag.Args(), os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		rider.Close()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprint(flag.CommandLine.Output(), `usage: rider [-config file] <command> [args]

commands:
  login -email <email> [-password <password>]   password defaults to $RIDER_PASSWORD
  logout
  whoami
  profile [-first-name ..] [-last-name ..] [-phone ..] [-address ..]
  delete-account
  orders -lat <latitude> -lng <longitude>
  shell -lat <latitude> -lng <longitude>        interactive accept/deliver session
  earnings
  dashboard
  history
  register <application.yaml>
  verify -email <email> -code <code>
  prefs [dark_mode|push_notifications|language|region <value>]
`)
}
