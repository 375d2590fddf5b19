package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/a4co/transportista-service/internal/core/domain"
	"github.com/a4co/transportista-service/internal/core/ports"
	"github.com/a4co/transportista-service/internal/pkg/metrics"
)

// maxTrackingAttempts bounds tracking number regeneration on collision.
const maxTrackingAttempts = 5

type ShipmentService struct {
	shipments ports.ShipmentRepository
	carriers  ports.CarrierRepository
	cache     ports.TrackingCache
	publisher ports.StatusPublisher
	logger    zerolog.Logger
	now       func() time.Time
	newCode   func(time.Time) string
}

// NewShipmentService wires the shipment store and tracking engine. cache and
// publisher may be nil, in which case caching and publishing are disabled.
func NewShipmentService(
	shipments ports.ShipmentRepository,
	carriers ports.CarrierRepository,
	cache ports.TrackingCache,
	publisher ports.StatusPublisher,
	logger zerolog.Logger,
) *ShipmentService {
	if cache == nil {
		cache = nopTrackingCache{}
	}
	if publisher == nil {
		publisher = nopPublisher{}
	}
	return &ShipmentService{
		shipments: shipments,
		carriers:  carriers,
		cache:     cache,
		publisher: publisher,
		logger:    logger,
		now:       utcNow,
		newCode:   generateTrackingNumber,
	}
}

// CreateShipment validates the weight against the carrier's capacity, issues
// a tracking number and seeds the history with a "pending" entry.
func (s *ShipmentService) CreateShipment(ctx context.Context, input ports.CreateShipmentInput) (*domain.Shipment, error) {
	carrier, err := s.carriers.FindByID(ctx, input.CarrierID)
	if err != nil {
		if errors.Is(err, domain.ErrCarrierNotFound) {
			metrics.ShipmentRejectionsTotal.WithLabelValues("carrier_not_found").Inc()
			return nil, fmt.Errorf("carrier %s: %w", input.CarrierID, domain.ErrCarrierNotFound)
		}
		return nil, fmt.Errorf("create shipment: %w", err)
	}

	// Equal weight is allowed.
	if input.WeightKg > carrier.CapacityKg {
		metrics.ShipmentRejectionsTotal.WithLabelValues("capacity_exceeded").Inc()
		return nil, &domain.CapacityExceededError{WeightKg: input.WeightKg, CapacityKg: carrier.CapacityKg}
	}

	now := s.now()
	origin := toLocation(input.Origin)
	shipment := &domain.Shipment{
		ID:                  uuid.NewString(),
		OrderID:             input.OrderID,
		CarrierID:           carrier.ID,
		CarrierName:         carrier.Name,
		Status:              domain.StatusPending,
		Origin:              origin,
		Destination:         toLocation(input.Destination),
		CurrentLocation:     origin,
		WeightKg:            input.WeightKg,
		EstimatedDelivery:   input.EstimatedDelivery.UTC(),
		SpecialInstructions: strings.TrimSpace(input.SpecialInstructions),
		CreatedAt:           now,
		UpdatedAt:           now,
		History: []domain.HistoryEntry{{
			Status:    domain.StatusPending,
			Location:  origin.City,
			Timestamp: now,
			Notes:     domain.InitialHistoryNote,
		}},
	}

	if err := s.insertWithTrackingNumber(ctx, shipment, now); err != nil {
		s.logger.Error().Err(err).Str("carrier_id", carrier.ID).Msg("failed to create shipment")
		return nil, fmt.Errorf("create shipment: %w", err)
	}

	metrics.ShipmentsCreatedTotal.Inc()
	s.logger.Info().
		Str("tracking_number", shipment.TrackingNumber).
		Str("carrier_id", carrier.ID).
		Str("order_id", shipment.OrderID).
		Msg("shipment created")

	return shipment, nil
}

// insertWithTrackingNumber assigns a fresh tracking number and stores the
// shipment, regenerating the number when the store reports a collision.
func (s *ShipmentService) insertWithTrackingNumber(ctx context.Context, shipment *domain.Shipment, now time.Time) error {
	var err error
	for attempt := 1; attempt <= maxTrackingAttempts; attempt++ {
		shipment.TrackingNumber = s.newCode(now)
		err = s.shipments.Create(ctx, shipment)
		if !errors.Is(err, domain.ErrDuplicateTrackingNumber) {
			return err
		}
		s.logger.Warn().Str("tracking_number", shipment.TrackingNumber).Int("attempt", attempt).Msg("tracking number collision")
	}
	return err
}

// GetShipment is a pure lookup by internal id.
func (s *ShipmentService) GetShipment(ctx context.Context, id string) (*domain.Shipment, bool, error) {
	shipment, err := s.shipments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrShipmentNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get shipment: %w", err)
	}
	return shipment, true, nil
}

// ListShipments filters by exact carrier id and/or exact status; both ANDed.
func (s *ShipmentService) ListShipments(ctx context.Context, input ports.ListShipmentsInput) ([]*domain.Shipment, error) {
	shipments, err := s.shipments.List(ctx, ports.ShipmentFilter{
		CarrierID: input.CarrierID,
		Status:    input.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	return shipments, nil
}

// ListByOrder returns the shipments of one order. An empty order ID matches
// nothing.
func (s *ShipmentService) ListByOrder(ctx context.Context, orderID string) ([]*domain.Shipment, error) {
	if orderID == "" {
		return []*domain.Shipment{}, nil
	}
	shipments, err := s.shipments.List(ctx, ports.ShipmentFilter{OrderID: orderID})
	if err != nil {
		return nil, fmt.Errorf("list shipments by order: %w", err)
	}
	return shipments, nil
}

// generateTrackingNumber returns "TR" + YYYYMMDD + 6 random decimal digits.
func generateTrackingNumber(now time.Time) string {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("%s%s%06d", domain.TrackingPrefix, now.Format("20060102"), time.Now().UnixNano()%1_000_000)
	}
	return fmt.Sprintf("%s%s%06d", domain.TrackingPrefix, now.Format("20060102"), n.Int64())
}

func toLocation(in ports.LocationInput) domain.Location {
	return domain.Location{
		Lat:     in.Lat,
		Lng:     in.Lng,
		Address: in.Address,
		City:    in.City,
		Region:  in.Region,
	}
}
