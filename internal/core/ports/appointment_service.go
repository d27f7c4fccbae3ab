package ports

import (
	"context"

	"github.com/medicore/hospital-system/internal/core/domain"
)

// BookAppointmentInput carries all data needed to book an appointment.
type BookAppointmentInput struct {
	PatientName string
	PhoneNumber string
	DoctorName  string
	Date        string
	Time        string
}

// BookingResult is returned after a booking: the stored appointment plus the
// outcome of the confirmation message.
type BookingResult struct {
	Appointment *domain.Appointment
	Delivery    *domain.MessageRecord
}

// ReminderInput carries the parameters for a single reminder send.
type ReminderInput struct {
	PhoneNumber string
	Date        string
	Time        string
}

// Reminder is the unit of work handed to the reminder dispatcher.
type Reminder struct {
	PhoneNumber string
	PatientName string
	Date        string
	Time        string
}

// AppointmentService implements booking and notification use cases.
type AppointmentService interface {
	Book(ctx context.Context, input BookAppointmentInput) (*BookingResult, error)
	// SendReminder delivers a single reminder synchronously.
	SendReminder(ctx context.Context, input ReminderInput) *domain.MessageRecord
	// Remind is the dispatcher-facing entry point for queued reminders.
	Remind(ctx context.Context, r Reminder) error
	Appointments(ctx context.Context) ([]domain.Appointment, error)
}
