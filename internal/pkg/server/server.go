package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fastbuka/rider/internal/pkg/logger"
)

// ShutdownTimeout bounds how long in-flight requests may take to drain
const ShutdownTimeout = 10 * time.Second

// GracefulServer wraps Echo server with graceful shutdown capabilities
type GracefulServer struct {
	echo *echo.Echo
	addr string
}

// NewGracefulServer creates a new server listening on addr
func NewGracefulServer(e *echo.Echo, addr string) *GracefulServer {
	e.HideBanner = true
	e.HidePort = true
	return &GracefulServer{
		echo: e,
		addr: addr,
	}
}

// Start serves until ctx is cancelled, then shuts down gracefully.
// It returns early with the listen error if the server cannot start.
func (s *GracefulServer) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", logger.String("address", s.addr))
		if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("Failed to start server", logger.Err(err))
		}
		return err
	case <-ctx.Done():
		logger.Info("Received shutdown signal")
	}

	return s.Shutdown()
}

// Shutdown gracefully shuts down the server
func (s *GracefulServer) Shutdown() error {
	logger.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", logger.Err(err))
		return err
	}

	logger.Info("Server shutdown completed")
	return nil
}

// Addr returns the bound address once the server is listening
func (s *GracefulServer) Addr() string {
	if addr := s.echo.ListenerAddr(); addr != nil {
		return addr.String()
	}
	return ""
}
