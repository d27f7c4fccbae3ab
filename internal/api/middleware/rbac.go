package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medicore/hospital-system/internal/api/metrics"
	"github.com/medicore/hospital-system/internal/core/domain"
)

// RBAC is the authorization gate: it rejects callers whose role is not in the
// operation's allowed set. The 403 body reports both the caller's role and
// the permitted set.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	required := make([]string, 0, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
		required = append(required, string(r))
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(KeyRole).(domain.Role)
			if _, ok := allowed[role]; !ok {
				metrics.AccessDeniedTotal.WithLabelValues("role_not_permitted").Inc()
				return c.JSON(http.StatusForbidden, echo.Map{
					"message":        "access denied",
					"required_roles": required,
					"your_role":      string(role),
				})
			}
			return next(c)
		}
	}
}
