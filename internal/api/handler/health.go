package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medicore/hospital-system/internal/core/ports"
)

// HealthHandler handles GET /health — liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// NotifyHealthHandler handles GET /health on the notification API; it also
// reports which transport the notifier is running on.
type NotifyHealthHandler struct {
	notifier ports.Notifier
}

func NewNotifyHealthHandler(notifier ports.Notifier) *NotifyHealthHandler {
	return &NotifyHealthHandler{notifier: notifier}
}

func (h *NotifyHealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":   "ok",
		"notifier": h.notifier.Mode(),
	})
}
