package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/medicore/hospital-system/internal/api"
	"github.com/medicore/hospital-system/internal/core/service"
	"github.com/medicore/hospital-system/internal/infrastructure/config"
	"github.com/medicore/hospital-system/internal/infrastructure/notify"
	"github.com/medicore/hospital-system/internal/infrastructure/queue"
	"github.com/medicore/hospital-system/internal/infrastructure/store/memory"
	"github.com/medicore/hospital-system/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	notifier := notify.FromConfig(notify.Config{
		AccountSID: cfg.Twilio.AccountSID,
		AuthToken:  cfg.Twilio.AuthToken,
		From:       cfg.Twilio.From,
	}, log)

	repo := memory.NewAppointmentStore()
	msgLog := memory.NewMessageLog()
	appointments := service.NewAppointmentService(repo, notifier, msgLog, log)

	dispatcher := queue.NewDispatcher(cfg.Notify.Workers, appointments, log)
	dispatcher.Start(ctx)

	e := api.NewNotifyRouter(appointments, dispatcher, msgLog, notifier, log)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)
	}()

	log.Info().Str("port", cfg.Notify.Port).Str("notifier", notifier.Mode()).Msg("notification API listening")
	if err := e.Start(":" + cfg.Notify.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
