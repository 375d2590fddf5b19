package ports

import (
	"context"
	"time"
)

// TrackingEventInput is a status update received asynchronously from an
// external source (driver app, carrier integration).
type TrackingEventInput struct {
	TrackingNumber string
	Status         string
	Location       string
	Notes          string
	Source         string
	Timestamp      time.Time
}

// EventService processes incoming tracking events.
type EventService interface {
	Process(ctx context.Context, event TrackingEventInput) error
}
