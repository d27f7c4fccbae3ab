package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medicore/hospital-system/internal/core/ports"
)

// ReminderQueue is the dispatcher-facing seam for batch reminder fan-out.
type ReminderQueue interface {
	EnqueueBatch(reminders []ports.Reminder)
}

// AppointmentHandler serves the notification API: booking, reminders and the
// delivery audit log.
type AppointmentHandler struct {
	service ports.AppointmentService
	queue   ReminderQueue
	msgLog  ports.MessageLog
}

func NewAppointmentHandler(service ports.AppointmentService, queue ReminderQueue, msgLog ports.MessageLog) *AppointmentHandler {
	return &AppointmentHandler{service: service, queue: queue, msgLog: msgLog}
}

func (h *AppointmentHandler) Index(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message":        "Hospital WhatsApp Notification System",
		"status":         "running",
		"total_messages": h.msgLog.Len(),
		"endpoints": map[string]string{
			"POST /api/book-appointment": "Book appointment and send WhatsApp",
			"POST /api/send-reminder":    "Send appointment reminder",
			"POST /api/send-reminders":   "Queue reminders for all appointments",
			"POST /api/send-test":        "Send test message",
			"GET /api/appointments":      "Get all appointments",
			"GET /api/whatsapp-log":      "View all messages sent",
		},
	})
}

// Book stores an appointment and sends the confirmation message. A delivery
// failure does not fail the booking; the provider outcome is reported in the
// response.
//
// @Summary      Book an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        body  body      bookAppointmentRequest  true  "Appointment details"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  map[string]string
// @Router       /api/book-appointment [post]
func (h *AppointmentHandler) Book(c echo.Context) error {
	var req bookAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Book(c.Request().Context(), ports.BookAppointmentInput{
		PatientName: req.PatientName,
		PhoneNumber: req.PhoneNumber,
		DoctorName:  req.DoctorName,
		Date:        req.Date,
		Time:        req.Time,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success":       true,
		"message":       "appointment booked successfully",
		"appointment":   result.Appointment,
		"whatsapp_sent": result.Delivery,
	})
}

// SendReminder delivers a single reminder synchronously.
func (h *AppointmentHandler) SendReminder(c echo.Context) error {
	req, err := bindReminder(c, "tomorrow", "10:00 AM")
	if err != nil {
		return err
	}

	rec := h.service.SendReminder(c.Request().Context(), ports.ReminderInput{
		PhoneNumber: req.PhoneNumber,
		Date:        req.Date,
		Time:        req.Time,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"success":       true,
		"message":       "reminder sent",
		"whatsapp_sent": rec,
	})
}

// SendTest exercises the delivery pipeline end to end.
func (h *AppointmentHandler) SendTest(c echo.Context) error {
	req, err := bindReminder(c, "December 1", "3:00 PM")
	if err != nil {
		return err
	}

	rec := h.service.SendReminder(c.Request().Context(), ports.ReminderInput{
		PhoneNumber: req.PhoneNumber,
		Date:        req.Date,
		Time:        req.Time,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"success":         true,
		"message":         "test whatsapp sent",
		"whatsapp_result": rec,
	})
}

// QueueReminders fans a reminder out to every stored appointment through the
// sharded dispatcher and returns immediately.
func (h *AppointmentHandler) QueueReminders(c echo.Context) error {
	appointments, err := h.service.Appointments(c.Request().Context())
	if err != nil {
		return err
	}

	reminders := make([]ports.Reminder, 0, len(appointments))
	for _, a := range appointments {
		reminders = append(reminders, ports.Reminder{
			PhoneNumber: a.PhoneNumber,
			PatientName: a.PatientName,
			Date:        a.Date,
			Time:        a.Time,
		})
	}
	h.queue.EnqueueBatch(reminders)

	return c.JSON(http.StatusAccepted, echo.Map{
		"success": true,
		"message": "reminders queued",
		"queued":  len(reminders),
	})
}

func (h *AppointmentHandler) Appointments(c echo.Context) error {
	appointments, err := h.service.Appointments(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":      true,
		"total":        len(appointments),
		"appointments": appointments,
	})
}

func (h *AppointmentHandler) MessageLog(c echo.Context) error {
	messages := h.msgLog.Snapshot()
	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"total":    len(messages),
		"messages": messages,
	})
}

func bindReminder(c echo.Context, defaultDate, defaultTime string) (*reminderRequest, error) {
	var req reminderRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Date == "" {
		req.Date = defaultDate
	}
	if req.Time == "" {
		req.Time = defaultTime
	}
	return &req, nil
}
