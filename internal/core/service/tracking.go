package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/a4co/transportista-service/internal/core/domain"
	"github.com/a4co/transportista-service/internal/core/ports"
	"github.com/a4co/transportista-service/internal/pkg/metrics"
)

// GetTracking resolves a tracking number to its projection. Unknown codes are
// reported as found=false. Projections are served cache-aside.
func (s *ShipmentService) GetTracking(ctx context.Context, trackingNumber string) (*domain.Tracking, bool, error) {
	cached, ok, err := s.cache.Get(ctx, trackingNumber)
	if err != nil {
		s.logger.Warn().Err(err).Str("tracking_number", trackingNumber).Msg("tracking cache read failed")
	} else if ok {
		metrics.TrackingCacheTotal.WithLabelValues("hit").Inc()
		return cached, true, nil
	}
	metrics.TrackingCacheTotal.WithLabelValues("miss").Inc()

	shipment, err := s.shipments.FindByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		if errors.Is(err, domain.ErrTrackingNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get tracking: %w", err)
	}

	tracking := shipment.Tracking()
	if err := s.cache.Add(ctx, tracking); err != nil {
		s.logger.Warn().Err(err).Str("tracking_number", trackingNumber).Msg("tracking cache write failed")
	}
	return tracking, true, nil
}

// UpdateStatus sets the status verbatim, appends a history entry stamped now
// and, for "delivered", stamps the actual delivery time.
func (s *ShipmentService) UpdateStatus(ctx context.Context, trackingNumber string, input ports.UpdateStatusInput) (*domain.Shipment, error) {
	entry := domain.HistoryEntry{
		Status:    domain.ShipmentStatus(input.Status),
		Location:  input.Location,
		Timestamp: s.now(),
		Notes:     input.Notes,
	}

	shipment, err := s.shipments.AppendStatus(ctx, trackingNumber, entry)
	if err != nil {
		if errors.Is(err, domain.ErrTrackingNotFound) {
			return nil, fmt.Errorf("tracking number %s: %w", trackingNumber, domain.ErrTrackingNotFound)
		}
		s.logger.Error().Err(err).Str("tracking_number", trackingNumber).Msg("failed to update status")
		return nil, fmt.Errorf("update status: %w", err)
	}

	s.refreshCache(ctx, shipment)
	if err := s.publisher.PublishStatusChanged(ctx, domain.NewStatusChange(shipment)); err != nil {
		s.logger.Warn().Err(err).Str("tracking_number", trackingNumber).Msg("failed to publish status change")
	}

	metrics.StatusUpdatesTotal.WithLabelValues(metrics.StatusLabel(input.Status)).Inc()
	s.logger.Info().
		Str("tracking_number", trackingNumber).
		Str("status", input.Status).
		Int("history_len", len(shipment.History)).
		Msg("status updated")

	return shipment, nil
}

// refreshCache stores the projection of the updated shipment. When that fails
// the entry is dropped so the next read reloads it from the store.
func (s *ShipmentService) refreshCache(ctx context.Context, shipment *domain.Shipment) {
	err := s.cache.Set(ctx, shipment.Tracking())
	if err == nil {
		return
	}
	s.logger.Warn().Err(err).Str("tracking_number", shipment.TrackingNumber).Msg("tracking cache refresh failed")
	if err := s.cache.Invalidate(ctx, shipment.TrackingNumber); err != nil {
		s.logger.Warn().Err(err).Str("tracking_number", shipment.TrackingNumber).Msg("tracking cache invalidation failed")
	}
}

type nopTrackingCache struct{}

func (nopTrackingCache) Get(context.Context, string) (*domain.Tracking, bool, error) {
	return nil, false, nil
}

func (nopTrackingCache) Add(context.Context, *domain.Tracking) error { return nil }

func (nopTrackingCache) Set(context.Context, *domain.Tracking) error { return nil }

func (nopTrackingCache) Invalidate(context.Context, string) error { return nil }

type nopPublisher struct{}

func (nopPublisher) PublishStatusChanged(context.Context, domain.StatusChange) error { return nil }
