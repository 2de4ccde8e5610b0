package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/fastbuka/rider/internal/pkg/jwt"
	"github.com/fastbuka/rider/internal/pkg/models"
	"github.com/fastbuka/rider/internal/utils"
)

// Context keys set by JWTAuthMiddleware
const (
	ContextRiderID = "rider_id"
	ContextEmail   = "email"
	ContextToken   = "token"
)

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}
			tokenString := parts[1]

			claims, err := jwtpkg.ValidateToken(tokenString, config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			riderID, err := uuid.Parse(claims.RiderID)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: rider_id is not a valid UUID")
			}

			c.Set(ContextRiderID, riderID.String())
			c.Set(ContextEmail, claims.Email)
			c.Set(ContextToken, tokenString)
			SetRiderID(c, riderID.String())

			return next(c)
		}
	}
}

// RiderID returns the authenticated rider id, empty outside JWTAuthMiddleware
func RiderID(c echo.Context) string {
	id, _ := c.Get(ContextRiderID).(string)
	return id
}
