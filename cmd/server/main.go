package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/northbeam/corporate-site/internal/config"
	"github.com/northbeam/corporate-site/internal/database"
	"github.com/northbeam/corporate-site/internal/logger"
	"github.com/northbeam/corporate-site/internal/mailer"
	"github.com/northbeam/corporate-site/internal/migrator"
	natsclient "github.com/northbeam/corporate-site/internal/nats"
	"github.com/northbeam/corporate-site/internal/publisher"
	"github.com/northbeam/corporate-site/internal/repository"
	"github.com/northbeam/corporate-site/internal/web"
	"github.com/northbeam/corporate-site/internal/web/handlers"
	"github.com/northbeam/corporate-site/migrations"
)

func main() {
	// 1. Load config (.env is optional, real env wins)
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// 2. Initialize logger
	if err := logger.Init(cfg.LogLevel, cfg.LogFile); err != nil {
		panic("failed to init logger: " + err.Error())
	}
	log := logger.Get()
	log.Info().Msg("starting corporate site backend")

	// 3. Setup context with graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info().Msg("received shutdown signal")
		cancel()
	}()

	// 4. Connect to database and run migrations
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	m, err := migrator.NewWithFS(migrations.FS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create migrator")
	}
	if err := m.Up(cfg.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// 5. Connect to NATS (optional)
	var pub handlers.EventPublisher
	nc, err := natsclient.New(ctx, cfg.NatsURL)
	if err != nil {
		log.Warn().Err(err).Msg("failed to connect to nats, publishing disabled")
	} else {
		defer nc.Close()
		if err := nc.EnsureStream(ctx, "SUBMISSIONS", []string{"submissions.>"}); err != nil {
			log.Warn().Err(err).Msg("failed to ensure submissions stream")
		}
		pub = publisher.NewNATSPublisher(nc.Conn)
	}

	// 6. Initialize repositories
	submissionsRepo := repository.NewSubmissionsRepository(db.Pool, log)
	settingsRepo := repository.NewSettingsRepository(db.GORM, log)

	if err := settingsRepo.SeedCompanyInfo(ctx, cfg.CompanySeedFile); err != nil {
		log.Warn().Err(err).Msg("company info seed failed")
	}

	// 7. Initialize mail dispatch
	resolver := mailer.NewResolver(settingsRepo, cfg)
	transport := mailer.NewSMTPTransport()
	dispatcher := mailer.NewDispatcher(resolver, settingsRepo, transport)

	// 8. Initialize WebSocket hub
	hub := web.NewHub()
	go hub.Run()

	// 9. Initialize handlers
	contactHandler := handlers.NewContactHandler(submissionsRepo, dispatcher, pub, hub)
	applicationsHandler := handlers.NewApplicationsHandler(submissionsRepo, dispatcher, pub, hub)
	adminHandler := handlers.NewAdminHandler(settingsRepo, submissionsRepo, resolver, transport, cfg.AdminAPIToken)

	// 10. Initialize server and register routes
	webCfg := &web.Config{
		Port:      cfg.HTTPPort,
		StaticDir: cfg.StaticDir,
	}
	server := web.NewServer(webCfg, hub)
	server.RegisterFormHandlers(contactHandler, applicationsHandler)
	server.RegisterAdminHandler(adminHandler)

	// 11. Start server
	log.Info().Int("port", cfg.HTTPPort).Msg("starting web server")
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// 12. Wait for shutdown
	<-ctx.Done()
	log.Info().Msg("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("shutdown complete")
}
