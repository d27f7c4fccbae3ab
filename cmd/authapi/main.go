package main

import (
	"errors"
	"net/http"

	"github.com/medicore/hospital-system/internal/api"
	"github.com/medicore/hospital-system/internal/core/service"
	"github.com/medicore/hospital-system/internal/infrastructure/config"
	"github.com/medicore/hospital-system/internal/infrastructure/store/memory"
	"github.com/medicore/hospital-system/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	secret := cfg.JWTSecret
	if secret == "" {
		var err error
		secret, err = service.NewRandomSecret()
		if err != nil {
			// The process must not come up without a signing secret.
			log.Fatal().Err(err).Msg("failed to generate signing secret")
		}
		log.Warn().Msg("JWT_SECRET not set, using a fresh per-process secret; issued tokens will not survive a restart")
	}

	store, err := memory.NewSeededUserStore()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed credential store")
	}

	tokens := service.NewTokenService(secret)
	authService := service.NewAuthService(store, tokens, cfg.TokenTTL, log)

	e := api.NewAuthRouter(store, tokens, authService, log)

	log.Info().Str("port", cfg.Auth.Port).Msg("authentication API listening")
	if err := e.Start(":" + cfg.Auth.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
