package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fastbuka/rider/internal/pkg/logger"
	"github.com/fastbuka/rider/internal/pkg/middleware"
	"github.com/fastbuka/rider/internal/utils"
	"github.com/fastbuka/rider/services/sandbox"
)

// SandboxHandler serves the rider API over HTTP
type SandboxHandler struct {
	sandboxUC sandbox.SandboxUC
}

// NewSandboxHandler creates a new sandbox handler
func NewSandboxHandler(sandboxUC sandbox.SandboxUC) *SandboxHandler {
	return &SandboxHandler{
		sandboxUC: sandboxUC,
	}
}

var errorStatus = []struct {
	err    error
	status int
}{
	{sandbox.ErrInvalidCredentials, http.StatusUnauthorized},
	{sandbox.ErrEmailTaken, http.StatusConflict},
	{sandbox.ErrInvalidApplication, http.StatusUnprocessableEntity},
	{sandbox.ErrInvalidCode, http.StatusBadRequest},
	{sandbox.ErrRiderNotFound, http.StatusNotFound},
	{sandbox.ErrOrderNotFound, http.StatusNotFound},
	{sandbox.ErrOrderTaken, http.StatusConflict},
	{sandbox.ErrOrderNotAssigned, http.StatusForbidden},
}

// errorResponse maps a usecase error onto the envelope
func errorResponse(c echo.Context, err error) error {
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			return utils.ErrorResponseHandler(c, e.status, err.Error())
		}
	}

	middleware.NoticeError(c, err)
	logger.ErrorCtx(c.Request().Context(), "Sandbox request failed",
		logger.String("path", c.Path()),
		logger.Err(err))
	return utils.InternalServerErrorResponse(c, "")
}
