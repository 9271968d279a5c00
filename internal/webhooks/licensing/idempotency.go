package licensing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/angelmondragon/licensing-relay/pkg/redis"
)

// DuplicateGuard remembers delivery ids so a redelivered webhook is
// acknowledged without posting a second card.
type DuplicateGuard struct {
	store redis.IdempotencyStore
	ttl   time.Duration
	scope string
}

func NewDuplicateGuard(store redis.IdempotencyStore, ttl time.Duration, scope string) (*DuplicateGuard, error) {
	if store == nil {
		return nil, errors.New("idempotency store is required")
	}
	if ttl < 0 {
		return nil, errors.New("ttl must be non-negative")
	}
	if scope == "" {
		return nil, errors.New("scope is required")
	}
	return &DuplicateGuard{
		store: store,
		ttl:   ttl,
		scope: scope,
	}, nil
}

// CheckAndMark reports whether the delivery was already seen, marking it as
// seen otherwise.
func (g *DuplicateGuard) CheckAndMark(ctx context.Context, deliveryID string) (bool, error) {
	if deliveryID == "" {
		return false, errors.New("delivery id is required")
	}
	key := g.store.IdempotencyKey(g.scope, deliveryID)
	set, err := g.store.SetNX(ctx, key, "1", g.ttl)
	if err != nil {
		return false, fmt.Errorf("set idempotency key: %w", err)
	}
	return !set, nil
}

// Release drops the mark so a failed delivery can be retried by the sender.
func (g *DuplicateGuard) Release(ctx context.Context, deliveryID string) error {
	if deliveryID == "" {
		return errors.New("delivery id is required")
	}
	key := g.store.IdempotencyKey(g.scope, deliveryID)
	return g.store.Del(ctx, key)
}
