package ports

import (
	"context"

	"github.com/a4co/transportista-service/internal/core/domain"
)

// ShipmentFilter carries exact-match predicates for listing shipments.
// Empty fields are ignored; set fields are ANDed.
type ShipmentFilter struct {
	CarrierID string
	Status    string
	OrderID   string
}

// ShipmentRepository defines persistence operations for shipments (the Shipment Store).
// It owns the secondary tracking number -> shipment id index.
type ShipmentRepository interface {
	// Create returns domain.ErrDuplicateTrackingNumber when the tracking
	// number is already indexed.
	Create(ctx context.Context, s *domain.Shipment) error
	// FindByID returns domain.ErrShipmentNotFound when absent.
	FindByID(ctx context.Context, id string) (*domain.Shipment, error)
	// FindByTrackingNumber returns domain.ErrTrackingNotFound when the code is
	// unknown or resolves to a missing record.
	FindByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Shipment, error)
	// AppendStatus atomically applies entry to the shipment (see
	// domain.Shipment.ApplyStatus) and returns the updated record.
	AppendStatus(ctx context.Context, trackingNumber string, entry domain.HistoryEntry) (*domain.Shipment, error)
	// List returns matching shipments in insertion order.
	List(ctx context.Context, filter ShipmentFilter) ([]*domain.Shipment, error)
}
