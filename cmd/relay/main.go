package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	webhookcontrollers "github.com/angelmondragon/licensing-relay/api/controllers/webhooks"
	"github.com/angelmondragon/licensing-relay/api/routes"
	"github.com/angelmondragon/licensing-relay/internal/cards"
	"github.com/angelmondragon/licensing-relay/internal/webhooks/licensing"
	"github.com/angelmondragon/licensing-relay/pkg/config"
	"github.com/angelmondragon/licensing-relay/pkg/logger"
	"github.com/angelmondragon/licensing-relay/pkg/metrics"
	"github.com/angelmondragon/licensing-relay/pkg/redis"
	"github.com/angelmondragon/licensing-relay/pkg/teams"
)

const guardScope = "licensing"

func main() {
	logg := logger.New(logger.Options{ServiceName: "relay"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "relay",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	teamsClient, err := teams.NewClient(context.Background(), cfg.Teams, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create teams client", err)
		os.Exit(1)
	}

	var redisPinger redis.Pinger
	var guard webhookcontrollers.DuplicateGuard
	if cfg.Redis.Enabled() {
		redisClient, err := redis.New(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()

		dupGuard, err := licensing.NewDuplicateGuard(redisClient, cfg.Webhook.IdempotencyTTL, guardScope)
		if err != nil {
			logg.Error(context.Background(), "failed to create duplicate guard", err)
			os.Exit(1)
		}
		redisPinger = redisClient
		guard = dupGuard
	} else {
		logg.Warn(context.Background(), "redis url not set, duplicate guard disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	webhookMetrics := metrics.NewWebhookMetrics(registry)

	relayService, err := licensing.NewService(licensing.ServiceParams{
		Composer:    cards.NewComposer(cfg.Dashboard.BaseURL),
		Sender:      teamsClient,
		Logger:      logg,
		Metrics:     webhookMetrics,
		LogPayloads: cfg.Webhook.LogPayloads,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create relay service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":          cfg.App.Env,
		"addr":         addr,
		"known_events": cards.KnownEventCount(),
	})
	logg.Info(ctx, "starting relay server")

	server := &http.Server{
		Addr:              addr,
		Handler:           routes.NewRouter(cfg, logg, redisPinger, relayService, guard, webhookMetrics, registry),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "relay server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-stop:
		ctx = logg.WithField(ctx, "signal", sig.String())
		logg.Info(ctx, "shutting down relay server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
			os.Exit(1)
		}
	}
}
