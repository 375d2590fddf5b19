package ports

import (
	"context"
	"time"

	"github.com/a4co/transportista-service/internal/core/domain"
)

// LocationInput holds a geographic point and its postal description.
type LocationInput struct {
	Lat     float64
	Lng     float64
	Address string
	City    string
	Region  string
}

// CreateShipmentInput carries all data needed to create a new shipment.
type CreateShipmentInput struct {
	OrderID             string
	CarrierID           string
	Origin              LocationInput
	Destination         LocationInput
	WeightKg            float64
	EstimatedDelivery   time.Time
	SpecialInstructions string
}

// UpdateStatusInput is applied verbatim; the status is not checked against
// any vocabulary at the service layer.
type UpdateStatusInput struct {
	Status   string
	Location string
	Notes    string
}

// ListShipmentsInput carries the optional list filters. Empty means no filter.
type ListShipmentsInput struct {
	CarrierID string
	Status    string
}

// ShipmentService defines use-case operations for shipments and tracking.
type ShipmentService interface {
	CreateShipment(ctx context.Context, input CreateShipmentInput) (*domain.Shipment, error)
	GetShipment(ctx context.Context, id string) (*domain.Shipment, bool, error)
	// GetTracking reports found=false, with a nil error, for unknown codes.
	GetTracking(ctx context.Context, trackingNumber string) (*domain.Tracking, bool, error)
	UpdateStatus(ctx context.Context, trackingNumber string, input UpdateStatusInput) (*domain.Shipment, error)
	ListShipments(ctx context.Context, input ListShipmentsInput) ([]*domain.Shipment, error)
	ListByOrder(ctx context.Context, orderID string) ([]*domain.Shipment, error)
}
