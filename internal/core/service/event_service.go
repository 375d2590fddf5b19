package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/a4co/transportista-service/internal/core/domain"
	"github.com/a4co/transportista-service/internal/core/ports"
	"github.com/a4co/transportista-service/internal/pkg/metrics"
)

// DedupChecker abstracts the idempotency store (Redis or in-memory).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, trackingNumber, status string, ts time.Time) (bool, error)
	Mark(ctx context.Context, trackingNumber, status string, ts time.Time) error
}

// StatusUpdater is the part of the tracking engine events are applied to.
type StatusUpdater interface {
	UpdateStatus(ctx context.Context, trackingNumber string, input ports.UpdateStatusInput) (*domain.Shipment, error)
}

type eventService struct {
	updater StatusUpdater
	dedup   DedupChecker
	log     zerolog.Logger
}

// NewEventService returns an EventService implementation.
func NewEventService(updater StatusUpdater, dedup DedupChecker, log zerolog.Logger) ports.EventService {
	return &eventService{
		updater: updater,
		dedup:   dedup,
		log:     log,
	}
}

// Process deduplicates a single tracking event and applies it as a status update.
func (s *eventService) Process(ctx context.Context, in ports.TrackingEventInput) error {
	// 1. Idempotency check: duplicates are skipped silently.
	isDup, err := s.dedup.IsDuplicate(ctx, in.TrackingNumber, in.Status, in.Timestamp)
	if err != nil {
		s.log.Warn().Err(err).Str("tracking", in.TrackingNumber).Msg("dedup check failed, processing anyway")
	} else if isDup {
		metrics.EventsDedupTotal.WithLabelValues("hit").Inc()
		s.log.Debug().Str("tracking", in.TrackingNumber).Str("status", in.Status).Msg("duplicate event skipped")
		return nil
	}
	metrics.EventsDedupTotal.WithLabelValues("miss").Inc()

	// 2. Apply through the tracking engine.
	_, err = s.updater.UpdateStatus(ctx, in.TrackingNumber, ports.UpdateStatusInput{
		Status:   in.Status,
		Location: in.Location,
		Notes:    eventNotes(in),
	})
	if err != nil {
		reason := "update_failed"
		if errors.Is(err, domain.ErrTrackingNotFound) {
			reason = "tracking_not_found"
		}
		metrics.EventsErrorsTotal.WithLabelValues(reason).Inc()
		return fmt.Errorf("process event: %w", err)
	}

	// 3. Mark only after the update landed so a failed event can be retried.
	if markErr := s.dedup.Mark(ctx, in.TrackingNumber, in.Status, in.Timestamp); markErr != nil {
		s.log.Warn().Err(markErr).Str("tracking", in.TrackingNumber).Msg("failed to set dedup key")
	}

	metrics.EventsProcessedTotal.WithLabelValues(metrics.StatusLabel(in.Status)).Inc()
	s.log.Info().
		Str("tracking", in.TrackingNumber).
		Str("status", in.Status).
		Str("source", in.Source).
		Msg("event processed")

	return nil
}

// eventNotes keeps caller notes and falls back to the event source.
func eventNotes(in ports.TrackingEventInput) string {
	if in.Notes != "" {
		return in.Notes
	}
	if in.Source != "" {
		return "source: " + in.Source
	}
	return ""
}
