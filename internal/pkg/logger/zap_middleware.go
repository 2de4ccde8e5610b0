package logger

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"go.uber.org/zap"
)

// ZapEchoMiddleware logs every request served by an echo instance
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())
			start := time.Now()

			err := next(c)
			if err != nil {
				// Let echo write the error response so the status below is final
				c.Error(err)
			}

			latency := time.Since(start)
			status := c.Response().Status

			if txn != nil {
				txn.AddAttribute("response_time_ms", latency.Milliseconds())
				if err != nil {
					txn.NoticeError(err)
				}
			}

			l := logger.WithNewRelicContext(txn).With(
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", status),
				zap.Duration("latency", latency),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)
			switch {
			case status >= 500:
				l.Error("Server error", zap.Error(err))
			case status >= 400:
				l.Warn("Client error")
			default:
				l.Info("Request processed")
			}

			return nil
		}
	}
}
