package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/electroway/electrowayapi/internal/service"
	"github.com/electroway/electrowayapi/pkg/utils/response"
	"github.com/labstack/echo/v4"
)

// userIDContextKey is the echo context key the verified identity is bound to
const userIDContextKey = "user_id"

// AuthMiddleware creates a new authorization middleware. It extracts the
// bearer token from the Authorization header, verifies it, and binds the
// verified user identity to the request context. Downstream handlers
// never re-derive identity.
func AuthMiddleware(tokenService *service.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if auth == "" {
				return response.ErrorResponse(c, http.StatusUnauthorized, "AuthorizationException", "No token provided")
			}

			parts := strings.SplitN(auth, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				return response.ErrorResponse(c, http.StatusUnauthorized, "AuthorizationException", "Token missing")
			}

			userID, err := tokenService.Verify(parts[1])
			if err != nil {
				return response.ErrorResponse(c, http.StatusUnauthorized, "AuthorizationException", "Invalid token")
			}

			// Add the verified identity to context for use in handlers
			c.Set(userIDContextKey, userID)

			return next(c)
		}
	}
}

// GetUserIDFromEchoContext returns the verified user identity bound by
// AuthMiddleware
func GetUserIDFromEchoContext(c echo.Context) (string, error) {
	userID, ok := c.Get(userIDContextKey).(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user identity not found in context")
	}
	return userID, nil
}
