package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fastbuka/rider/internal/pkg/middleware"
	"github.com/fastbuka/rider/internal/pkg/models"
	"github.com/fastbuka/rider/internal/utils"
)

// ListOrders handles GET /rider/orders?longitude&latitude
func (h *SandboxHandler) ListOrders(c echo.Context) error {
	var query models.NearbyOrdersQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return utils.BadRequestResponse(c, "longitude and latitude must be numbers")
	}
	if c.QueryParam("longitude") == "" || c.QueryParam("latitude") == "" {
		return utils.BadRequestResponse(c, "longitude and latitude are required")
	}

	coords := models.Coordinates{Latitude: query.Latitude, Longitude: query.Longitude}
	if err := coords.Validate(); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	orders, err := h.sandboxUC.NearbyOrders(c.Request().Context(), coords)
	if err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", orders)
}

// AcceptOrder handles POST /rider/accept_order/:uuid
func (h *SandboxHandler) AcceptOrder(c echo.Context) error {
	orderID := c.Param("uuid")
	middleware.SetOrderID(c, orderID)

	if err := h.sandboxUC.AcceptOrder(c.Request().Context(), middleware.RiderID(c), orderID); err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Order accepted", nil)
}

// DeliverOrder handles POST /rider/deliver_order/:uuid
func (h *SandboxHandler) DeliverOrder(c echo.Context) error {
	orderID := c.Param("uuid")
	middleware.SetOrderID(c, orderID)

	if err := h.sandboxUC.DeliverOrder(c.Request().Context(), middleware.RiderID(c), orderID); err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Order delivered", nil)
}
