package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/medicore/hospital-system/internal/api/metrics"
	"github.com/medicore/hospital-system/internal/core/domain"
	"github.com/medicore/hospital-system/internal/core/ports"
)

// Context keys populated by Auth for downstream middleware and handlers.
const (
	KeyUserID = "user_id"
	KeyEmail  = "email"
	KeyRole   = "role"
	KeyName   = "name"
)

const bearerPrefix = "Bearer "

// Auth is the authentication gate: it requires an Authorization header of
// exactly "Bearer <token>", verifies the token, and injects the claims into
// the echo context. It always runs before any role check.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			raw, ok := strings.CutPrefix(header, bearerPrefix)
			if !ok || raw == "" {
				// A wrong scheme counts as a missing token; it must not
				// leak whether the credential would otherwise parse.
				metrics.AccessDeniedTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrMissingToken.Error())
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				metrics.AccessDeniedTotal.WithLabelValues("invalid_or_expired").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "token is invalid or expired")
			}

			c.Set(KeyUserID, claims.UserID)
			c.Set(KeyEmail, claims.Subject)
			c.Set(KeyRole, claims.Role)
			c.Set(KeyName, claims.Name)

			return next(c)
		}
	}
}
