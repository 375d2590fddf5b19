package memory

import (
	"context"
	"sync"

	"github.com/a4co/transportista-service/internal/core/domain"
	"github.com/a4co/transportista-service/internal/core/ports"
)

// CarrierRepository implements ports.CarrierRepository in process memory.
// RUT and email are indexed so the uniqueness check and the insert happen
// under one lock.
type CarrierRepository struct {
	mu      sync.RWMutex
	byID    map[string]*domain.Carrier
	byRUT   map[string]string
	byEmail map[string]string
	order   []string
}

// NewCarrierRepository creates an empty CarrierRepository.
func NewCarrierRepository() *CarrierRepository {
	return &CarrierRepository{
		byID:    make(map[string]*domain.Carrier),
		byRUT:   make(map[string]string),
		byEmail: make(map[string]string),
	}
}

// Create stores c when neither its RUT nor its email is taken. RUT is checked first.
func (r *CarrierRepository) Create(_ context.Context, c *domain.Carrier) error {
	rut := domain.NormalizeRUT(c.RUT)
	email := domain.NormalizeEmail(c.Email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byRUT[rut]; taken {
		return &domain.DuplicateIdentifierError{Field: domain.FieldRUT, Value: c.RUT}
	}
	if _, taken := r.byEmail[email]; taken {
		return &domain.DuplicateIdentifierError{Field: domain.FieldEmail, Value: c.Email}
	}

	r.byID[c.ID] = c.Clone()
	r.byRUT[rut] = c.ID
	r.byEmail[email] = c.ID
	r.order = append(r.order, c.ID)
	return nil
}

// FindByID returns a copy of the carrier or domain.ErrCarrierNotFound.
func (r *CarrierRepository) FindByID(_ context.Context, id string) (*domain.Carrier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrCarrierNotFound
	}
	return c.Clone(), nil
}

// List returns copies of the matching carriers in insertion order.
func (r *CarrierRepository) List(_ context.Context, filter ports.CarrierFilter) ([]*domain.Carrier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Carrier, 0, len(r.order))
	for _, id := range r.order {
		c := r.byID[id]
		if filter.Active != nil && c.Active != *filter.Active {
			continue
		}
		out = append(out, c.Clone())
	}
	return out, nil
}
