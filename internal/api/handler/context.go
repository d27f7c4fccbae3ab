package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medicore/hospital-system/internal/api/middleware"
	"github.com/medicore/hospital-system/internal/core/domain"
)

// authClaims is the view of the verified token claims handlers work with.
type authClaims struct {
	UserID int
	Email  string
	Role   domain.Role
	Name   string
}

// ctxClaims extracts the claims injected by the Auth middleware. A non-empty
// role proves the middleware ran; its absence means the route was wired
// without the auth gate, which is rejected rather than served anonymously.
func ctxClaims(c echo.Context) (authClaims, error) {
	role, _ := c.Get(middleware.KeyRole).(domain.Role)
	if role == "" {
		return authClaims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userID, _ := c.Get(middleware.KeyUserID).(int)
	email, _ := c.Get(middleware.KeyEmail).(string)
	name, _ := c.Get(middleware.KeyName).(string)

	return authClaims{UserID: userID, Email: email, Role: role, Name: name}, nil
}
