package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/medicore/hospital-system/internal/core/domain"
	"github.com/medicore/hospital-system/internal/core/ports"
	"github.com/medicore/hospital-system/internal/infrastructure/store/memory"
)

// stubNotifier records sends and returns a fixed delivery status.
type stubNotifier struct {
	status domain.DeliveryStatus
	sends  []domain.MessageRecord
}

func (n *stubNotifier) Mode() string { return "stub" }

func (n *stubNotifier) Send(_ context.Context, to, body string) *domain.MessageRecord {
	rec := &domain.MessageRecord{
		Status:    n.status,
		To:        to,
		Body:      body,
		Timestamp: time.Now().UTC(),
	}
	if n.status == domain.DeliveryFailed {
		rec.Error = "provider unreachable"
	}
	n.sends = append(n.sends, *rec)
	return rec
}

func newAppointmentFixture(status domain.DeliveryStatus) (*AppointmentService, *stubNotifier, *memory.MessageLog) {
	notifier := &stubNotifier{status: status}
	msgLog := memory.NewMessageLog()
	svc := NewAppointmentService(memory.NewAppointmentStore(), notifier, msgLog, zerolog.Nop())
	return svc, notifier, msgLog
}

func bookingInput() ports.BookAppointmentInput {
	return ports.BookAppointmentInput{
		PatientName: "John Doe",
		PhoneNumber: "+919876543210",
		DoctorName:  "Dr. Smith",
		Date:        "2026-09-01",
		Time:        "10:00 AM",
	}
}

func TestAppointmentService_Book(t *testing.T) {
	svc, notifier, msgLog := newAppointmentFixture(domain.DeliverySent)

	result, err := svc.Book(context.Background(), bookingInput())
	if err != nil {
		t.Fatalf("Book returned error: %v", err)
	}

	appt := result.Appointment
	if appt.ID != 1 {
		t.Fatalf("expected first appointment to get id 1, got %d", appt.ID)
	}
	if appt.Status != domain.AppointmentConfirmed {
		t.Fatalf("expected confirmed status, got %s", appt.Status)
	}

	if len(notifier.sends) != 1 {
		t.Fatalf("expected one send, got %d", len(notifier.sends))
	}
	body := notifier.sends[0].Body
	for _, want := range []string{"John Doe", "Dr. Smith", "2026-09-01", "10:00 AM"} {
		if !strings.Contains(body, want) {
			t.Fatalf("confirmation message missing %q:\n%s", want, body)
		}
	}

	if msgLog.Len() != 1 {
		t.Fatalf("expected one message log entry, got %d", msgLog.Len())
	}
	if result.Delivery.Status != domain.DeliverySent {
		t.Fatalf("unexpected delivery status: %s", result.Delivery.Status)
	}
}

// A provider failure must not fail the booking; the outcome is reported in
// the result and the attempt is still logged.
func TestAppointmentService_Book_DeliveryFailure(t *testing.T) {
	svc, _, msgLog := newAppointmentFixture(domain.DeliveryFailed)

	result, err := svc.Book(context.Background(), bookingInput())
	if err != nil {
		t.Fatalf("Book returned error: %v", err)
	}
	if result.Delivery.Status != domain.DeliveryFailed {
		t.Fatalf("expected failed delivery status, got %s", result.Delivery.Status)
	}
	if result.Delivery.Error == "" {
		t.Fatalf("expected delivery error to be reported")
	}
	if msgLog.Len() != 1 {
		t.Fatalf("failed attempt should still be logged")
	}

	appointments, err := svc.Appointments(context.Background())
	if err != nil {
		t.Fatalf("Appointments returned error: %v", err)
	}
	if len(appointments) != 1 {
		t.Fatalf("booking should have been stored, got %d appointments", len(appointments))
	}
}

func TestAppointmentService_SendReminder(t *testing.T) {
	svc, notifier, _ := newAppointmentFixture(domain.DeliverySimulated)

	rec := svc.SendReminder(context.Background(), ports.ReminderInput{
		PhoneNumber: "+10000000001",
		Date:        "tomorrow",
		Time:        "10:00 AM",
	})
	if rec.Status != domain.DeliverySimulated {
		t.Fatalf("unexpected status: %s", rec.Status)
	}
	if want := "Your appointment is coming up on tomorrow at 10:00 AM"; notifier.sends[0].Body != want {
		t.Fatalf("reminder body = %q, want %q", notifier.sends[0].Body, want)
	}
}

func TestAppointmentService_Remind_ReportsFailure(t *testing.T) {
	svc, _, _ := newAppointmentFixture(domain.DeliveryFailed)

	err := svc.Remind(context.Background(), ports.Reminder{
		PhoneNumber: "+10000000002",
		Date:        "2026-09-01",
		Time:        "09:00 AM",
	})
	if err == nil {
		t.Fatalf("expected error for failed reminder delivery")
	}
}
