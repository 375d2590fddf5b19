package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/a4co/transportista-service/internal/core/domain"
	"github.com/a4co/transportista-service/internal/core/ports"
	"github.com/a4co/transportista-service/internal/pkg/metrics"
)

// CarrierService implements carrier registration and lookups.
type CarrierService struct {
	repo   ports.CarrierRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewCarrierService(repo ports.CarrierRepository, logger zerolog.Logger) *CarrierService {
	return &CarrierService{repo: repo, logger: logger, now: utcNow}
}

// Register stores a new carrier. Rut and email are compared in their
// normalized forms; a clash fails with *domain.DuplicateIdentifierError.
func (s *CarrierService) Register(ctx context.Context, input ports.RegisterCarrierInput) (*domain.Carrier, error) {
	carrier := &domain.Carrier{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(input.Name),
		RUT:         domain.NormalizeRUT(input.RUT),
		Phone:       input.Phone,
		Email:       domain.NormalizeEmail(input.Email),
		Address:     strings.TrimSpace(input.Address),
		VehicleType: domain.VehicleType(strings.ToLower(strings.TrimSpace(input.VehicleType))),
		CapacityKg:  input.CapacityKg,
		Active:      input.Active,
		CreatedAt:   s.now(),
	}

	if err := s.repo.Create(ctx, carrier); err != nil {
		var dup *domain.DuplicateIdentifierError
		if errors.As(err, &dup) {
			metrics.CarrierRejectionsTotal.WithLabelValues(dup.Field).Inc()
			s.logger.Warn().Str("field", dup.Field).Str("value", dup.Value).Msg("duplicate carrier identifier")
			return nil, err
		}
		s.logger.Error().Err(err).Msg("failed to register carrier")
		return nil, fmt.Errorf("register carrier: %w", err)
	}

	metrics.CarriersRegisteredTotal.WithLabelValues(string(carrier.VehicleType)).Inc()
	s.logger.Info().Str("carrier_id", carrier.ID).Str("rut", carrier.RUT).Msg("carrier registered")

	return carrier, nil
}

// GetCarrier is a pure lookup; an unknown id is reported as found=false.
func (s *CarrierService) GetCarrier(ctx context.Context, id string) (*domain.Carrier, bool, error) {
	carrier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrCarrierNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get carrier: %w", err)
	}
	return carrier, true, nil
}

// ListCarriers returns all carriers, or only those whose active flag equals
// *active when a filter is given.
func (s *CarrierService) ListCarriers(ctx context.Context, active *bool) ([]*domain.Carrier, error) {
	carriers, err := s.repo.List(ctx, ports.CarrierFilter{Active: active})
	if err != nil {
		return nil, fmt.Errorf("list carriers: %w", err)
	}
	return carriers, nil
}

func utcNow() time.Time {
	return time.Now().UTC()
}
