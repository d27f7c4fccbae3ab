package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/medicore/hospital-system/internal/core/domain"
	"github.com/medicore/hospital-system/internal/core/ports"
)

const (
	defaultBaseURL = "https://api.twilio.com"
	defaultTimeout = 10 * time.Second
)

// Config captures the Twilio Messages API settings.
type Config struct {
	AccountSID string
	AuthToken  string
	// From is the sender, e.g. "whatsapp:+14155238886".
	From string
	// BaseURL overrides the API host; used by tests.
	BaseURL string
	Timeout time.Duration
}

// TwilioNotifier delivers messages through the Twilio Messages REST API.
type TwilioNotifier struct {
	cfg    Config
	client *http.Client
	log    zerolog.Logger
}

func NewTwilioNotifier(cfg Config, log zerolog.Logger) *TwilioNotifier {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &TwilioNotifier{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

// FromConfig returns a Twilio-backed notifier when credentials are present,
// otherwise the simulation notifier.
func FromConfig(cfg Config, log zerolog.Logger) ports.Notifier {
	if cfg.AccountSID == "" || cfg.AuthToken == "" {
		log.Warn().Msg("twilio not configured, notifications run in simulation mode")
		return NewSimulator(log)
	}
	return NewTwilioNotifier(cfg, log)
}

func (n *TwilioNotifier) Mode() string { return "twilio" }

// twilioMessage is the subset of the Messages API response we care about.
type twilioMessage struct {
	SID     string `json:"sid"`
	Status  string `json:"status"`
	Message string `json:"message"` // error description on non-2xx
}

func (n *TwilioNotifier) Send(ctx context.Context, to, body string) *domain.MessageRecord {
	to = NormalizeWhatsApp(to)
	rec := &domain.MessageRecord{
		To:        to,
		Body:      body,
		Timestamp: time.Now().UTC(),
	}

	form := url.Values{
		"From": {n.cfg.From},
		"To":   {to},
		"Body": {body},
	}
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", n.cfg.BaseURL, n.cfg.AccountSID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		rec.Status = domain.DeliveryFailed
		rec.Error = err.Error()
		return rec
	}
	req.SetBasicAuth(n.cfg.AccountSID, n.cfg.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.client.Do(req)
	if err != nil {
		rec.Status = domain.DeliveryFailed
		rec.Error = err.Error()
		return rec
	}
	defer resp.Body.Close()

	var msg twilioMessage
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	_ = json.Unmarshal(raw, &msg)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		rec.Status = domain.DeliveryFailed
		rec.Error = msg.Message
		if rec.Error == "" {
			rec.Error = fmt.Sprintf("twilio returned status %d", resp.StatusCode)
		}
		return rec
	}

	rec.Status = domain.DeliverySent
	rec.SID = msg.SID
	n.log.Info().Str("to", to).Str("sid", msg.SID).Msg("whatsapp message sent")
	return rec
}

// NormalizeWhatsApp prefixes bare phone numbers with the whatsapp: scheme.
func NormalizeWhatsApp(to string) string {
	if strings.HasPrefix(to, "whatsapp:") {
		return to
	}
	return "whatsapp:" + to
}
