package licensing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/licensing-relay/internal/cards"
	"github.com/angelmondragon/licensing-relay/internal/event"
	pkgerrors "github.com/angelmondragon/licensing-relay/pkg/errors"
	"github.com/angelmondragon/licensing-relay/pkg/logger"
	"github.com/angelmondragon/licensing-relay/pkg/metrics"
	"github.com/angelmondragon/licensing-relay/pkg/teams"
	"github.com/angelmondragon/licensing-relay/pkg/types"
)

type ServiceParams struct {
	Composer    *cards.Composer
	Sender      teams.Sender
	Logger      *logger.Logger
	Metrics     *metrics.WebhookMetrics
	LogPayloads bool
}

// Service relays one webhook delivery: unwrap, compose, deliver.
type Service struct {
	composer    *cards.Composer
	sender      teams.Sender
	logg        *logger.Logger
	metrics     *metrics.WebhookMetrics
	logPayloads bool
}

func NewService(params ServiceParams) (*Service, error) {
	if params.Composer == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "card composer required")
	}
	if params.Sender == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "teams sender required")
	}
	return &Service{
		composer:    params.Composer,
		sender:      params.Sender,
		logg:        params.Logger,
		metrics:     params.Metrics,
		logPayloads: params.LogPayloads,
	}, nil
}

// Relay processes a decoded envelope. A parse failure is returned as an error
// for the boundary to reject; a delivery failure is folded into the receipt so
// the boundary still acknowledges the sender and the upstream never
// retry-storms on a Teams outage.
func (s *Service) Relay(ctx context.Context, env *event.Envelope) (*types.WebhookReceipt, error) {
	start := time.Now()

	payload, err := env.Unwrap()
	if err != nil {
		s.metrics.IncParseFailure()
		return nil, err
	}

	meta := cards.Classify(payload.Event)
	s.metrics.IncReceived(string(meta.Category))

	if s.logg != nil {
		ctx = s.logg.WithEventName(ctx, payload.Event)
		ctx = s.logg.WithCategory(ctx, string(meta.Category))
		if payload.DeliveryID != "" {
			ctx = s.logg.WithDeliveryID(ctx, payload.DeliveryID)
		}
		if s.logPayloads {
			ctx = s.logg.WithField(ctx, "payload", payload.Object.Attributes)
		}
		s.logg.Info(ctx, "webhook event received")
	}

	createdAt := payload.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	card := s.composer.Compose(payload.Event, payload.Object, payload.Included, createdAt)

	receipt := &types.WebhookReceipt{
		Received:   true,
		DeliveryID: deliveryID(payload),
	}

	if err := s.sender.Send(ctx, card); err != nil {
		s.metrics.IncDeliveryFailure()
		s.metrics.ObserveRelayDuration(metrics.OutcomeFailed, time.Since(start))
		if s.logg != nil {
			s.logg.Error(ctx, "card delivery failed", err)
		}
		receipt.Error = err.Error()
		return receipt, nil
	}

	s.metrics.IncForwarded()
	s.metrics.ObserveRelayDuration(metrics.OutcomeDelivered, time.Since(start))
	if s.logg != nil {
		s.logg.Info(ctx, "card forwarded to teams")
	}

	receipt.Forwarded = true
	return receipt, nil
}

func deliveryID(payload *event.Payload) string {
	if payload.DeliveryID != "" {
		return payload.DeliveryID
	}
	return uuid.NewString()
}
