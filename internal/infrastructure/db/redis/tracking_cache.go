package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/a4co/transportista-service/internal/core/domain"
)

const (
	defaultTrackingTTL = 5 * time.Minute
	trackingKeyPrefix  = "tracking:"
	maxSetAttempts     = 3
)

// TrackingCache stores tracking projections as JSON under tracking:<code>.
type TrackingCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTrackingCache creates a TrackingCache. A non-positive ttl falls back to five minutes.
func NewTrackingCache(client *redis.Client, ttl time.Duration) *TrackingCache {
	if ttl <= 0 {
		ttl = defaultTrackingTTL
	}
	return &TrackingCache{client: client, ttl: ttl}
}

func (c *TrackingCache) Get(ctx context.Context, trackingNumber string) (*domain.Tracking, bool, error) {
	raw, err := c.client.Get(ctx, trackingKeyPrefix+trackingNumber).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("tracking cache get: %w", err)
	}

	var t domain.Tracking
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, false, fmt.Errorf("tracking cache decode: %w", err)
	}
	return &t, true, nil
}

// Add writes t with SET NX, so a projection read before a concurrent update
// never replaces the one that update stored.
func (c *TrackingCache) Add(ctx context.Context, t *domain.Tracking) error {
	raw, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("tracking cache encode: %w", err)
	}
	if err := c.client.SetNX(ctx, trackingKeyPrefix+t.TrackingNumber, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("tracking cache add: %w", err)
	}
	return nil
}

// Set overwrites the cached projection inside a WATCH transaction. A cached
// projection with a longer history is newer and is left in place.
func (c *TrackingCache) Set(ctx context.Context, t *domain.Tracking) error {
	raw, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("tracking cache encode: %w", err)
	}
	key := trackingKeyPrefix + t.TrackingNumber

	txf := func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
		case err != nil:
			return err
		default:
			var cached domain.Tracking
			if json.Unmarshal(current, &cached) == nil && len(cached.History) > len(t.History) {
				return nil
			}
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, raw, c.ttl)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxSetAttempts; attempt++ {
		err = c.client.Watch(ctx, txf, key)
		if !errors.Is(err, redis.TxFailedErr) {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("tracking cache set: %w", err)
	}
	return nil
}

func (c *TrackingCache) Invalidate(ctx context.Context, trackingNumber string) error {
	if err := c.client.Del(ctx, trackingKeyPrefix+trackingNumber).Err(); err != nil {
		return fmt.Errorf("tracking cache invalidate: %w", err)
	}
	return nil
}
