package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fastbuka/rider/internal/pkg/middleware"
	"github.com/fastbuka/rider/internal/pkg/models"
	"github.com/fastbuka/rider/internal/utils"
)

// GetRider handles GET /rider
func (h *SandboxHandler) GetRider(c echo.Context) error {
	profile, err := h.sandboxUC.GetRider(c.Request().Context(), middleware.RiderID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", profile)
}

// UpdateRider handles PATCH /rider
func (h *SandboxHandler) UpdateRider(c echo.Context) error {
	var update models.RiderUpdate
	if err := c.Bind(&update); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	profile, err := h.sandboxUC.UpdateRider(c.Request().Context(), middleware.RiderID(c), update)
	if err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Profile updated", profile)
}

// DeleteRider handles DELETE /rider
func (h *SandboxHandler) DeleteRider(c echo.Context) error {
	if err := h.sandboxUC.DeleteRider(c.Request().Context(), middleware.RiderID(c)); err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Account deleted", nil)
}

// Earnings handles GET /rider/earnings
func (h *SandboxHandler) Earnings(c echo.Context) error {
	earnings, err := h.sandboxUC.Earnings(c.Request().Context(), middleware.RiderID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", earnings)
}

// Dashboard handles GET /rider/dashboard
func (h *SandboxHandler) Dashboard(c echo.Context) error {
	dashboard, err := h.sandboxUC.Dashboard(c.Request().Context(), middleware.RiderID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", dashboard)
}

// History handles GET /rider/history
func (h *SandboxHandler) History(c echo.Context) error {
	entries, err := h.sandboxUC.History(c.Request().Context(), middleware.RiderID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", entries)
}
