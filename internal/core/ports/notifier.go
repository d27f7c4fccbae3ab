package ports

import (
	"context"

	"github.com/medicore/hospital-system/internal/core/domain"
)

// Notifier is the outbound SMS/WhatsApp collaborator: it accepts a
// destination and a rendered message and reports a delivery status. A
// provider-side delivery failure is encoded in the record's status, never
// returned as an error.
type Notifier interface {
	Send(ctx context.Context, to, body string) *domain.MessageRecord
	// Mode identifies the backing transport ("twilio" or "simulation").
	Mode() string
}

// MessageLog records every delivery attempt for the audit endpoint.
type MessageLog interface {
	Append(rec domain.MessageRecord)
	Snapshot() []domain.MessageRecord
	Len() int
}
