package memory

import (
	"context"
	"sync"

	"github.com/a4co/transportista-service/internal/core/domain"
	"github.com/a4co/transportista-service/internal/core/ports"
)

// ShipmentRepository implements ports.ShipmentRepository in process memory.
type ShipmentRepository struct {
	mu         sync.RWMutex
	byID       map[string]*domain.Shipment
	byTracking map[string]string
	order      []string
}

// NewShipmentRepository creates an empty ShipmentRepository.
func NewShipmentRepository() *ShipmentRepository {
	return &ShipmentRepository{
		byID:       make(map[string]*domain.Shipment),
		byTracking: make(map[string]string),
	}
}

// Create stores s and indexes its tracking number.
func (r *ShipmentRepository) Create(_ context.Context, s *domain.Shipment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byTracking[s.TrackingNumber]; taken {
		return domain.ErrDuplicateTrackingNumber
	}
	r.byID[s.ID] = s.Clone()
	r.byTracking[s.TrackingNumber] = s.ID
	r.order = append(r.order, s.ID)
	return nil
}

func (r *ShipmentRepository) FindByID(_ context.Context, id string) (*domain.Shipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrShipmentNotFound
	}
	return s.Clone(), nil
}

func (r *ShipmentRepository) FindByTrackingNumber(_ context.Context, trackingNumber string) (*domain.Shipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.lookupLocked(trackingNumber)
	if !ok {
		return nil, domain.ErrTrackingNotFound
	}
	return s.Clone(), nil
}

// AppendStatus applies entry while holding the write lock so concurrent
// updates to one shipment never lose a history entry.
func (r *ShipmentRepository) AppendStatus(_ context.Context, trackingNumber string, entry domain.HistoryEntry) (*domain.Shipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.lookupLocked(trackingNumber)
	if !ok {
		return nil, domain.ErrTrackingNotFound
	}
	s.ApplyStatus(entry)
	return s.Clone(), nil
}

func (r *ShipmentRepository) List(_ context.Context, filter ports.ShipmentFilter) ([]*domain.Shipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Shipment, 0)
	for _, id := range r.order {
		s := r.byID[id]
		if filter.CarrierID != "" && s.CarrierID != filter.CarrierID {
			continue
		}
		if filter.Status != "" && string(s.Status) != filter.Status {
			continue
		}
		if filter.OrderID != "" && s.OrderID != filter.OrderID {
			continue
		}
		out = append(out, s.Clone())
	}
	return out, nil
}

// lookupLocked resolves the tracking index. An index entry pointing at a
// missing record counts as unknown.
func (r *ShipmentRepository) lookupLocked(trackingNumber string) (*domain.Shipment, bool) {
	id, ok := r.byTracking[trackingNumber]
	if !ok {
		return nil, false
	}
	s, ok := r.byID[id]
	return s, ok
}
