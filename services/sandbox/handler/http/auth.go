package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fastbuka/rider/internal/pkg/middleware"
	"github.com/fastbuka/rider/internal/pkg/models"
	"github.com/fastbuka/rider/internal/utils"
)

// Login handles POST /auth/login
func (h *SandboxHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "Email and password are required")
	}

	resp, err := h.sandboxUC.Login(c.Request().Context(), req)
	if err != nil {
		return errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// Logout handles DELETE /auth/logout
func (h *SandboxHandler) Logout(c echo.Context) error {
	token, _ := c.Get(middleware.ContextToken).(string)

	if err := h.sandboxUC.Logout(c.Request().Context(), token); err != nil {
		return errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}

// Register handles POST /auth/register
func (h *SandboxHandler) Register(c echo.Context) error {
	var app models.RiderApplication
	if err := c.Bind(&app); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.sandboxUC.Register(c.Request().Context(), app)
	if err != nil {
		return errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated,
		"Registration successful, check your email for a verification code", result)
}

// VerifyEmail handles POST /auth/verify_email
func (h *SandboxHandler) VerifyEmail(c echo.Context) error {
	var req models.VerifyEmailRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" || req.Code == "" {
		return utils.BadRequestResponse(c, "Email and code are required")
	}

	if err := h.sandboxUC.VerifyEmail(c.Request().Context(), req); err != nil {
		return errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Email verified", nil)
}
