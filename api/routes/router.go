package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/licensing-relay/api/controllers"
	webhookcontrollers "github.com/angelmondragon/licensing-relay/api/controllers/webhooks"
	"github.com/angelmondragon/licensing-relay/api/middleware"
	"github.com/angelmondragon/licensing-relay/pkg/config"
	"github.com/angelmondragon/licensing-relay/pkg/logger"
	"github.com/angelmondragon/licensing-relay/pkg/metrics"
	"github.com/angelmondragon/licensing-relay/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisPinger redis.Pinger,
	relayService webhookcontrollers.LicensingRelayService,
	duplicateGuard webhookcontrollers.DuplicateGuard,
	webhookMetrics *metrics.WebhookMetrics,
	promRegistry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, redisPinger, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/events", controllers.ListEvents())
		r.Route("/webhooks", func(r chi.Router) {
			r.Post("/licensing", webhookcontrollers.LicensingWebhook(relayService, duplicateGuard, webhookMetrics, logg))
		})
	})

	if promRegistry != nil {
		r.Get("/metrics", promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}).ServeHTTP)
	}

	return r
}
