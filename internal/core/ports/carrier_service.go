package ports

import (
	"context"

	"github.com/a4co/transportista-service/internal/core/domain"
)

// RegisterCarrierInput carries the already validated carrier data.
type RegisterCarrierInput struct {
	Name        string
	RUT         string
	Phone       string
	Email       string
	Address     string
	VehicleType string
	CapacityKg  float64
	Active      bool
}

// CarrierService defines use-case operations for carriers.
type CarrierService interface {
	Register(ctx context.Context, input RegisterCarrierInput) (*domain.Carrier, error)
	// GetCarrier reports found=false, with a nil error, when the id is unknown.
	GetCarrier(ctx context.Context, id string) (*domain.Carrier, bool, error)
	ListCarriers(ctx context.Context, active *bool) ([]*domain.Carrier, error)
}
