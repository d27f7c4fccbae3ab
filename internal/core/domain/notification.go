package domain

import "time"

// DeliveryStatus is the outcome reported by the messaging provider.
type DeliveryStatus string

const (
	DeliverySent      DeliveryStatus = "sent"
	DeliveryFailed    DeliveryStatus = "failed"
	DeliverySimulated DeliveryStatus = "simulated"
)

// MessageRecord captures one outbound SMS/WhatsApp delivery attempt.
type MessageRecord struct {
	Status    DeliveryStatus `json:"status"`
	SID       string         `json:"sid,omitempty"`
	To        string         `json:"to"`
	Body      string         `json:"message"`
	Error     string         `json:"error,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}
