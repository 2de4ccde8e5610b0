package handler

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/fastbuka/rider/internal/pkg/health"
	"github.com/fastbuka/rider/internal/pkg/logger"
	"github.com/fastbuka/rider/internal/pkg/middleware"
	"github.com/fastbuka/rider/internal/pkg/models"
	"github.com/fastbuka/rider/services/sandbox/repository"
	"github.com/fastbuka/rider/services/sandbox/usecase"
)

const (
	// ServiceName identifies the sandbox in logs and health responses
	ServiceName = "rider-sandbox"
	// APIPrefix matches the path of the production base URL
	APIPrefix = "/api/v1"
)

// NewServer builds a seeded sandbox API with health endpoints at the root
// and the rider API under APIPrefix
func NewServer(configs *models.Config, zapLogger *logger.ZapLogger, nrApp *newrelic.Application) (*echo.Echo, error) {
	repo := repository.NewSandboxRepo()
	if err := repository.Seed(context.Background(), repo, models.Now()); err != nil {
		return nil, fmt.Errorf("failed to seed sandbox: %w", err)
	}

	sandboxUC := usecase.NewSandboxUC(repo, configs.JWT)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.NewRelicMiddleware(nrApp))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, ServiceName, configs.App.Version, nil)
	NewHandler(sandboxUC, configs.JWT).RegisterRoutes(e.Group(APIPrefix))

	return e, nil
}
