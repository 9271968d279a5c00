package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/multierr"

	"github.com/angelmondragon/licensing-relay/api/responses"
	"github.com/angelmondragon/licensing-relay/internal/cards"
	"github.com/angelmondragon/licensing-relay/pkg/config"
	pkgerrors "github.com/angelmondragon/licensing-relay/pkg/errors"
	"github.com/angelmondragon/licensing-relay/pkg/logger"
	"github.com/angelmondragon/licensing-relay/pkg/redis"
)

const envHeader = "X-Relay-Env"

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady verifies the relay can actually do its job: a configured Teams
// destination, a loaded taxonomy, and a reachable Redis when the duplicate
// guard is enabled.
func HealthReady(cfg *config.Config, pinger redis.Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		var combined error
		if strings.TrimSpace(cfg.Teams.WebhookURL) == "" {
			combined = multierr.Append(combined, errors.New("teams webhook url not configured"))
		}
		if cards.KnownEventCount() == 0 {
			combined = multierr.Append(combined, errors.New("event taxonomy is empty"))
		}
		if pinger != nil {
			if err := pinger.Ping(r.Context()); err != nil {
				combined = multierr.Append(combined, fmt.Errorf("redis: %w", err))
			}
		}

		if combined != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeDependency, combined, "readiness check failed"))
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"status":       "ready",
			"known_events": cards.KnownEventCount(),
		})
	}
}
