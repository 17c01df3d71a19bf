package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/summoner-tracker/internal/config"
	"github.com/mauv0809/summoner-tracker/internal/database"
	server "github.com/mauv0809/summoner-tracker/internal/http"
	"github.com/mauv0809/summoner-tracker/internal/metrics"
	"github.com/mauv0809/summoner-tracker/internal/notifier"
	"github.com/mauv0809/summoner-tracker/internal/notifier/slack"
	"github.com/mauv0809/summoner-tracker/internal/player"
	"github.com/mauv0809/summoner-tracker/internal/pubsub"
	"github.com/mauv0809/summoner-tracker/internal/rank"
	"github.com/mauv0809/summoner-tracker/internal/riot"
	"github.com/mauv0809/summoner-tracker/internal/store"
	"github.com/mauv0809/summoner-tracker/internal/tracker"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.Warn("Unknown log level, keeping default", "level", cfg.LogLevel)
	}

	db, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		db.Close()
	}()

	documentStore := store.New(db)
	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	codec := rank.NewCodec()
	riotClient := riot.NewClient(riot.Options{
		APIKey:   cfg.Riot.APIKey,
		Platform: cfg.Riot.Platform,
		Region:   cfg.Riot.Region,
	})

	var rankNotifier notifier.Notifier = notifier.NewNop()
	if cfg.Slack.Enabled() {
		rankNotifier = slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc, codec)
	} else {
		log.Info("Slack not configured, rank changes will only be logged")
	}

	publisher := pubsub.NewNop()
	if cfg.ProjectID != "" {
		publisher, err = pubsub.New(context.Background(), cfg.ProjectID)
		if err != nil {
			log.Fatalf("Failed to initialize pubsub: %s", err)
		}
	}
	defer publisher.Close()

	queues := make([]player.QueueType, 0, len(cfg.Tracking.Queues))
	for _, q := range cfg.Tracking.Queues {
		queues = append(queues, player.QueueType(q))
	}

	manager := tracker.New(tracker.Deps{
		Store:     documentStore,
		Provider:  riotClient,
		Metrics:   metricsSvc,
		Codec:     codec,
		Notifier:  rankNotifier,
		Publisher: publisher,
	}, tracker.Options{
		Queues:                queues,
		MatchQueues:           cfg.Tracking.MatchQueues,
		MatchHistoryLimit:     cfg.Tracking.MatchHistoryLimit,
		FetchParticipantRanks: cfg.Tracking.FetchParticipantRanks,
		DefaultTag:            cfg.Riot.DefaultTag,
		IconDir:               cfg.IconDir,
	})
	if _, err := manager.LoadRoster(cfg.Tracking.Players); err != nil {
		log.Fatalf("Failed to load roster: %s", err)
	}

	scheduler, err := manager.Schedule(cfg.Sync.Schedule)
	if err != nil {
		log.Fatalf("Failed to start scheduler: %s", err)
	}
	defer manager.Close()
	if cfg.Sync.OnStartup {
		scheduler.RunNow()
	}

	s := server.NewServer(manager, metricsHandler, cfg)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Server started", "port", cfg.Port, "players", len(cfg.Tracking.Players))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Error("Server error", "error", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
