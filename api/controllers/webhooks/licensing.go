package webhooks

import (
	"context"
	"net/http"
	"strings"

	"github.com/angelmondragon/licensing-relay/api/responses"
	"github.com/angelmondragon/licensing-relay/api/validators"
	"github.com/angelmondragon/licensing-relay/internal/event"
	pkgerrors "github.com/angelmondragon/licensing-relay/pkg/errors"
	"github.com/angelmondragon/licensing-relay/pkg/logger"
	"github.com/angelmondragon/licensing-relay/pkg/metrics"
	"github.com/angelmondragon/licensing-relay/pkg/types"
)

type LicensingRelayService interface {
	Relay(ctx context.Context, env *event.Envelope) (*types.WebhookReceipt, error)
}

type DuplicateGuard interface {
	CheckAndMark(ctx context.Context, deliveryID string) (bool, error)
	Release(ctx context.Context, deliveryID string) error
}

// LicensingWebhook accepts licensing-platform webhook deliveries and relays
// them as Teams cards. Only a malformed body is rejected; once the envelope is
// understood the sender always gets a 200 so it never retry-storms the relay.
func LicensingWebhook(svc LicensingRelayService, guard DuplicateGuard, m *metrics.WebhookMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "relay service unavailable"))
			return
		}

		var env event.Envelope
		if err := validators.DecodeJSONBody(r, &env); err != nil {
			m.IncParseFailure()
			responses.WriteError(ctx, logg, w, err)
			return
		}

		deliveryID := strings.TrimSpace(env.Data.ID)
		if guard != nil && deliveryID != "" {
			duplicate, err := guard.CheckAndMark(ctx, deliveryID)
			switch {
			case err != nil:
				// A guard outage must not drop notifications; relay anyway.
				if logg != nil {
					ctx = logg.WithField(ctx, "error", err.Error())
					logg.Warn(ctx, "duplicate guard unavailable")
				}
			case duplicate:
				m.IncDuplicate()
				responses.WriteSuccess(w, types.WebhookReceipt{
					Received:   true,
					Duplicate:  true,
					DeliveryID: deliveryID,
				})
				return
			}
		}

		receipt, err := svc.Relay(ctx, &env)
		if err != nil {
			if guard != nil && deliveryID != "" {
				_ = guard.Release(ctx, deliveryID)
			}
			responses.WriteError(ctx, logg, w, err)
			return
		}

		// An undelivered card must not stay marked: releasing lets the sender's
		// redelivery post it instead of being swallowed as a duplicate.
		if guard != nil && deliveryID != "" && !receipt.Forwarded {
			_ = guard.Release(ctx, deliveryID)
		}

		responses.WriteSuccess(w, receipt)
	}
}
