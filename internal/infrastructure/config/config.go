package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Env       string        `env:"ENV,        default=development"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=30m"`

	Auth   AuthConfig
	Notify NotifyConfig
	Twilio TwilioConfig
}

type AuthConfig struct {
	Port string `env:"AUTH_PORT, default=5000"`
}

type NotifyConfig struct {
	Port    string `env:"NOTIFY_PORT,    default=5005"`
	Workers int    `env:"NOTIFY_WORKERS, default=4"`
}

// TwilioConfig holds the messaging provider credentials. When AccountSID or
// AuthToken is empty the notifier runs in simulation mode.
type TwilioConfig struct {
	AccountSID string `env:"TWILIO_ACCOUNT_SID"`
	AuthToken  string `env:"TWILIO_AUTH_TOKEN"`
	From       string `env:"TWILIO_WHATSAPP_FROM, default=whatsapp:+14155238886"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
