package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/contextclip/clipcal/internal/config"
	"github.com/contextclip/clipcal/internal/database"
	"github.com/contextclip/clipcal/internal/gcal"
	"github.com/contextclip/clipcal/internal/gemini"
	"github.com/contextclip/clipcal/internal/notify"
	"github.com/contextclip/clipcal/internal/processor"
	"github.com/contextclip/clipcal/internal/server"
	"github.com/contextclip/clipcal/internal/timeutil"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg := config.LoadFromEnv()

	db, err := database.New(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	gcalClient, err := gcal.NewClient(cfg.GoogleCredentialsFile, cfg.GoogleTokenFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create google calendar client")
	}
	if gcalClient.IsAuthenticated() {
		log.Info().Msg("google calendar connected")
	} else {
		log.Warn().Msg("google calendar not connected - open /api/gcal/connect to authorize")
	}

	geminiClient := initGemini(cfg)
	notifyService := initNotifyService(db, cfg)

	publisher := processor.NewPublisher(geminiClient, gcalClient, db, notifyService, cfg.TimeZone)

	srv := server.New(server.Config{
		DB:            db,
		Publisher:     publisher,
		GCalClient:    gcalClient,
		NotifyService: notifyService,
		Port:          cfg.HTTPPort,
	})

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("HTTP server error")
		}
	}()

	waitForShutdown(srv)
}

func initGemini(cfg *config.Config) *gemini.Client {
	if cfg.GeminiAPIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY not set, event extraction will fail")
	}
	return gemini.NewClient(
		cfg.GeminiAPIKey,
		cfg.GeminiModel,
		cfg.GeminiTemperature,
		timeutil.ResolveLocation(cfg.TimeZone),
	)
}

func initNotifyService(db *database.DB, cfg *config.Config) *notify.Service {
	var emailNotifier notify.Notifier
	if cfg.ResendAPIKey != "" {
		emailNotifier = notify.NewResendNotifier(cfg.ResendAPIKey, cfg.NotifyFromAddress, cfg.AppURL)
		if emailNotifier != nil && emailNotifier.IsConfigured() {
			log.Info().Msg("email notification service configured (Resend)")
		}
	}
	return notify.NewService(db, emailNotifier)
}

func waitForShutdown(srv *server.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}
}
