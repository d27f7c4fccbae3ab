package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/medicore/hospital-system/internal/api/handler"
	"github.com/medicore/hospital-system/internal/api/middleware"
	"github.com/medicore/hospital-system/internal/core/domain"
	"github.com/medicore/hospital-system/internal/core/ports"
)

// NewAuthRouter builds the Echo instance for the authentication API. All
// collaborators are constructed by the caller and passed in explicitly so
// tests can wire distinct fixtures per test.
func NewAuthRouter(store ports.CredentialStore, tokens ports.TokenService, authService ports.AuthService, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("authapi"))

	authHandler := handler.NewAuthHandler(authService)
	hospitalHandler := handler.NewHospitalHandler(store)
	authGate := middleware.Auth(tokens)

	// --- Public routes ---
	e.GET("/", hospitalHandler.Index)
	e.POST("/api/login", authHandler.Login)
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Guarded routes: authentication gate first, then role gate ---
	e.GET("/api/profile", hospitalHandler.Profile, authGate)
	e.GET("/api/admin/dashboard", hospitalHandler.Dashboard, authGate, middleware.RBAC(domain.RoleAdmin))
	e.GET("/api/medical-records", hospitalHandler.MedicalRecords, authGate, middleware.RBAC(domain.RoleAdmin, domain.RoleDoctor))
	e.POST("/api/prescribe", hospitalHandler.Prescribe, authGate, middleware.RBAC(domain.RoleDoctor))
	e.GET("/api/my-records", hospitalHandler.MyRecords, authGate, middleware.RBAC(domain.RolePatient))

	return e
}

// NewNotifyRouter builds the Echo instance for the notification API. The
// notification side is not authenticated by the auth core; its only contract
// with the notifier is destination + rendered message in, delivery status out.
func NewNotifyRouter(service ports.AppointmentService, queue handler.ReminderQueue, msgLog ports.MessageLog, notifier ports.Notifier, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("notifyapi"))

	appointmentHandler := handler.NewAppointmentHandler(service, queue, msgLog)

	e.GET("/", appointmentHandler.Index)
	e.POST("/api/book-appointment", appointmentHandler.Book)
	e.POST("/api/send-reminder", appointmentHandler.SendReminder)
	e.POST("/api/send-reminders", appointmentHandler.QueueReminders)
	e.POST("/api/send-test", appointmentHandler.SendTest)
	e.GET("/api/appointments", appointmentHandler.Appointments)
	e.GET("/api/whatsapp-log", appointmentHandler.MessageLog)
	e.GET("/health", handler.NewNotifyHealthHandler(notifier).Liveness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
