package notify

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/medicore/hospital-system/internal/core/domain"
)

// Simulator stands in for Twilio when no credentials are configured. Every
// send is logged and reported back with the "simulated" status, keeping the
// rest of the pipeline (message log, metrics, responses) identical.
type Simulator struct {
	log zerolog.Logger
}

func NewSimulator(log zerolog.Logger) *Simulator {
	return &Simulator{log: log}
}

func (s *Simulator) Mode() string { return "simulation" }

func (s *Simulator) Send(_ context.Context, to, body string) *domain.MessageRecord {
	to = NormalizeWhatsApp(to)
	s.log.Info().Str("to", to).Str("body", body).Msg("whatsapp simulation")
	return &domain.MessageRecord{
		Status:    domain.DeliverySimulated,
		To:        to,
		Body:      body,
		Timestamp: time.Now().UTC(),
	}
}
