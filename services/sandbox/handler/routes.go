package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fastbuka/rider/internal/pkg/middleware"
	"github.com/fastbuka/rider/internal/pkg/models"
	"github.com/fastbuka/rider/internal/utils"
	"github.com/fastbuka/rider/services/sandbox"
	"github.com/fastbuka/rider/services/sandbox/handler/http"
)

// Handler registers the sandbox routes
type Handler struct {
	sandboxHandler *http.SandboxHandler
	sandboxUC      sandbox.SandboxUC
	cfg            models.JWTConfig
}

// NewHandler creates and initializes all handlers
func NewHandler(sandboxUC sandbox.SandboxUC, cfg models.JWTConfig) *Handler {
	return &Handler{
		sandboxHandler: http.NewSandboxHandler(sandboxUC),
		sandboxUC:      sandboxUC,
		cfg:            cfg,
	}
}

// rejectRevoked turns away tokens that were logged out
func (h *Handler) rejectRevoked() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, _ := c.Get(middleware.ContextToken).(string)
			if h.sandboxUC.IsRevoked(c.Request().Context(), token) {
				return utils.UnauthorizedResponse(c, "Token has been revoked")
			}
			return next(c)
		}
	}
}

// RegisterRoutes registers every rider API route under g
func (h *Handler) RegisterRoutes(g *echo.Group) {
	auth := g.Group("/auth")
	auth.POST("/login", h.sandboxHandler.Login)
	auth.POST("/register", h.sandboxHandler.Register)
	auth.POST("/verify_email", h.sandboxHandler.VerifyEmail)

	protected := g.Group("", middleware.JWTAuthMiddleware(h.cfg), h.rejectRevoked())
	protected.DELETE("/auth/logout", h.sandboxHandler.Logout)

	rider := protected.Group("/rider")
	rider.GET("", h.sandboxHandler.GetRider)
	rider.PATCH("", h.sandboxHandler.UpdateRider)
	rider.DELETE("", h.sandboxHandler.DeleteRider)
	rider.GET("/orders", h.sandboxHandler.ListOrders)
	rider.POST("/accept_order/:uuid", h.sandboxHandler.AcceptOrder)
	rider.POST("/deliver_order/:uuid", h.sandboxHandler.DeliverOrder)
	rider.GET("/earnings", h.sandboxHandler.Earnings)
	rider.GET("/dashboard", h.sandboxHandler.Dashboard)
	rider.GET("/history", h.sandboxHandler.History)
}
