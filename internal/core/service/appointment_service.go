package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/medicore/hospital-system/internal/api/metrics"
	"github.com/medicore/hospital-system/internal/core/domain"
	"github.com/medicore/hospital-system/internal/core/ports"
)

// AppointmentService books appointments and drives outbound notifications.
// Delivery failures never fail the booking — the provider outcome is reported
// back in the result instead.
type AppointmentService struct {
	repo     ports.AppointmentRepository
	notifier ports.Notifier
	msgLog   ports.MessageLog
	log      zerolog.Logger
}

func NewAppointmentService(repo ports.AppointmentRepository, notifier ports.Notifier, msgLog ports.MessageLog, log zerolog.Logger) *AppointmentService {
	return &AppointmentService{repo: repo, notifier: notifier, msgLog: msgLog, log: log}
}

func (s *AppointmentService) Book(ctx context.Context, in ports.BookAppointmentInput) (*ports.BookingResult, error) {
	appt := &domain.Appointment{
		PatientName: in.PatientName,
		PhoneNumber: in.PhoneNumber,
		DoctorName:  in.DoctorName,
		Date:        in.Date,
		Time:        in.Time,
		Status:      domain.AppointmentConfirmed,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, appt)
	if err != nil {
		return nil, err
	}
	metrics.AppointmentsBookedTotal.Inc()

	body := ConfirmationMessage(created.PatientName, created.DoctorName, created.Date, created.Time)
	rec := s.deliver(ctx, created.PhoneNumber, body)

	s.log.Info().
		Int("appointment_id", created.ID).
		Str("doctor", created.DoctorName).
		Str("delivery_status", string(rec.Status)).
		Msg("appointment booked")

	return &ports.BookingResult{Appointment: created, Delivery: rec}, nil
}

func (s *AppointmentService) SendReminder(ctx context.Context, in ports.ReminderInput) *domain.MessageRecord {
	return s.deliver(ctx, in.PhoneNumber, ReminderMessage(in.Date, in.Time))
}

// Remind is called by the dispatcher workers for queued reminder fan-out.
func (s *AppointmentService) Remind(ctx context.Context, r ports.Reminder) error {
	rec := s.deliver(ctx, r.PhoneNumber, ReminderMessage(r.Date, r.Time))
	if rec.Status == domain.DeliveryFailed {
		return fmt.Errorf("reminder to %s failed: %s", r.PhoneNumber, rec.Error)
	}
	return nil
}

func (s *AppointmentService) Appointments(ctx context.Context) ([]domain.Appointment, error) {
	return s.repo.List(ctx)
}

func (s *AppointmentService) deliver(ctx context.Context, to, body string) *domain.MessageRecord {
	rec := s.notifier.Send(ctx, to, body)
	s.msgLog.Append(*rec)
	metrics.NotificationsSentTotal.WithLabelValues(string(rec.Status)).Inc()
	if rec.Status == domain.DeliveryFailed {
		s.log.Warn().Str("to", to).Str("error", rec.Error).Msg("notification delivery failed")
	}
	return rec
}
