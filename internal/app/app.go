// Package app wires configuration, storage, the API gateway and every
// usecase into one client.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/fastbuka/rider/internal/gateway"
	"github.com/fastbuka/rider/internal/pkg/database"
	httpclient "github.com/fastbuka/rider/internal/pkg/http"
	"github.com/fastbuka/rider/internal/pkg/logger"
	"github.com/fastbuka/rider/internal/pkg/media"
	"github.com/fastbuka/rider/internal/pkg/models"
	"github.com/fastbuka/rider/internal/pkg/preferences"
	"github.com/fastbuka/rider/internal/pkg/retry"
	"github.com/fastbuka/rider/internal/pkg/storage"
	"github.com/fastbuka/rider/services/onboarding"
	onboardinguc "github.com/fastbuka/rider/services/onboarding/usecase"
	ordersuc "github.com/fastbuka/rider/services/orders/usecase"
	rideruc "github.com/fastbuka/rider/services/rider/usecase"
	sessionrepo "github.com/fastbuka/rider/services/session/repository"
	sessionuc "github.com/fastbuka/rider/services/session/usecase"
	shelluc "github.com/fastbuka/rider/services/shell/usecase"
)

// App is the assembled rider client
type App struct {
	Config *models.Config
	NRApp  *newrelic.Application

	Preferences *preferences.Store
	Session     *sessionuc.SessionUC
	Onboarding  *onboardinguc.OnboardingUC
	Orders      *ordersuc.OrdersUC
	Rider       *rideruc.RiderUC
	Shell       *shelluc.ShellUC

	redis *database.RedisClient
}

// New builds the client. Nothing talks to the API until a usecase is called.
func New(configs *models.Config, nrApp *newrelic.Application) (*App, error) {
	a := &App{Config: configs, NRApp: nrApp}

	if configs.Storage.Driver == storage.DriverRedis {
		redisClient, err := database.NewRedisClient(configs.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		a.redis = redisClient
	}
	if configs.Storage.Driver == storage.DriverFile && configs.Storage.Secret == "" {
		logger.Warn("STORAGE_SECRET is empty, the session file is encrypted with a default key")
	}

	store, err := storage.New(configs.Storage, a.redis)
	if err != nil {
		a.Close()
		return nil, err
	}

	prefs, err := preferences.Open(configs.Preferences.Path)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Preferences = prefs

	retryConfig := retry.DefaultConfig()
	retryConfig.MaxRetries = configs.API.MaxRetries

	client := httpclient.NewClient(httpclient.Config{
		BaseURL: configs.API.BaseURL,
		Timeout: time.Duration(configs.API.Timeout) * time.Second,
		NRApp:   nrApp,
		Retry:   retryConfig,
	})
	gw := gateway.NewClient(client)

	a.Session = sessionuc.NewSessionUC(sessionrepo.NewSessionRepo(store), gw)
	client.SetTokenSource(a.Session)

	var uploader onboarding.MediaUploader
	if configs.Cloudinary.Enabled() {
		cld, err := media.NewCloudinaryUploader(configs.Cloudinary)
		if err != nil {
			a.Close()
			return nil, err
		}
		uploader = cld
	} else {
		logger.Info("Cloudinary is not configured, media fields must already hold uploaded ids")
	}

	a.Onboarding = onboardinguc.NewOnboardingUC(gw, uploader)
	a.Orders = ordersuc.NewOrdersUC(gw)
	a.Rider = rideruc.NewRiderUC(gw, a.Session)
	a.Shell = shelluc.NewShellUC(a.Session, a.Orders)

	a.Session.OnReset(a.Orders.Reset)
	a.Session.OnReset(a.Onboarding.Reset)

	logger.Info("Rider client ready",
		logger.String("api", client.BaseURL()),
		logger.String("storage", configs.Storage.Driver),
		logger.Bool("media_uploads", uploader != nil))

	return a, nil
}

// Start restores a persisted session
func (a *App) Start(ctx context.Context) models.Session {
	return a.Session.Restore(ctx)
}

// Close releases the redis connection, if any
func (a *App) Close() error {
	var errs []error
	if a.redis != nil {
		errs = append(errs, a.redis.Close())
		a.redis = nil
	}
	return errors.Join(errs...)
}
