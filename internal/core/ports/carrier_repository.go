package ports

import (
	"context"

	"github.com/a4co/transportista-service/internal/core/domain"
)

// CarrierFilter narrows a carrier listing. A nil Active disables the filter.
type CarrierFilter struct {
	Active *bool
}

// CarrierRepository defines persistence operations for carriers (the Carrier Registry).
type CarrierRepository interface {
	// Create stores a new carrier. The rut/email uniqueness check and the
	// insert are one atomic step; a clash returns *domain.DuplicateIdentifierError.
	Create(ctx context.Context, c *domain.Carrier) error
	// FindByID returns domain.ErrCarrierNotFound when no carrier matches.
	FindByID(ctx context.Context, id string) (*domain.Carrier, error)
	// List returns carriers in insertion order.
	List(ctx context.Context, filter CarrierFilter) ([]*domain.Carrier, error)
}
