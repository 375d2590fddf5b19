package ports

import (
	"context"

	"github.com/a4co/transportista-service/internal/core/domain"
)

// TrackingCache stores tracking projections by tracking number.
type TrackingCache interface {
	Get(ctx context.Context, trackingNumber string) (*domain.Tracking, bool, error)
	// Add stores t only when nothing is cached for its tracking number.
	// Reads fill the cache through Add so they never overwrite a write.
	Add(ctx context.Context, t *domain.Tracking) error
	// Set replaces the cached projection unless the cached one has a longer
	// history.
	Set(ctx context.Context, t *domain.Tracking) error
	Invalidate(ctx context.Context, trackingNumber string) error
}

// StatusPublisher notifies downstream consumers of status changes.
type StatusPublisher interface {
	PublishStatusChanged(ctx context.Context, change domain.StatusChange) error
}
