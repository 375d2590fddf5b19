package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/a4co/transportista-service/internal/core/domain"
	"github.com/a4co/transportista-service/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubCarrierService struct {
	registerFn func(ctx context.Context, in ports.RegisterCarrierInput) (*domain.Carrier, error)
	carriers   map[string]*domain.Carrier
	lastActive *bool
}

func (s *stubCarrierService) Register(ctx context.Context, in ports.RegisterCarrierInput) (*domain.Carrier, error) {
	return s.registerFn(ctx, in)
}

func (s *stubCarrierService) GetCarrier(_ context.Context, id string) (*domain.Carrier, bool, error) {
	c, ok := s.carriers[id]
	return c, ok, nil
}

func (s *stubCarrierService) ListCarriers(_ context.Context, active *bool) ([]*domain.Carrier, error) {
	s.lastActive = active
	out := make([]*domain.Carrier, 0, len(s.carriers))
	for _, c := range s.carriers {
		out = append(out, c)
	}
	return out, nil
}

type stubShipmentService struct {
	createFn   func(ctx context.Context, in ports.CreateShipmentInput) (*domain.Shipment, error)
	updateFn   func(ctx context.Context, code string, in ports.UpdateStatusInput) (*domain.Shipment, error)
	shipments  map[string]*domain.Shipment
	trackings  map[string]*domain.Tracking
	lastList   ports.ListShipmentsInput
	lastOrder  string
	updateCall int
}

func (s *stubShipmentService) CreateShipment(ctx context.Context, in ports.CreateShipmentInput) (*domain.Shipment, error) {
	return s.createFn(ctx, in)
}

func (s *stubShipmentService) GetShipment(_ context.Context, id string) (*domain.Shipment, bool, error) {
	sh, ok := s.shipments[id]
	return sh, ok, nil
}

func (s *stubShipmentService) GetTracking(_ context.Context, code string) (*domain.Tracking, bool, error) {
	t, ok := s.trackings[code]
	return t, ok, nil
}

func (s *stubShipmentService) UpdateStatus(ctx context.Context, code string, in ports.UpdateStatusInput) (*domain.Shipment, error) {
	s.updateCall++
	return s.updateFn(ctx, code, in)
}

func (s *stubShipmentService) ListShipments(_ context.Context, in ports.ListShipmentsInput) ([]*domain.Shipment, error) {
	s.lastList = in
	return []*domain.Shipment{}, nil
}

func (s *stubShipmentService) ListByOrder(_ context.Context, orderID string) ([]*domain.Shipment, error) {
	s.lastOrder = orderID
	return []*domain.Shipment{}, nil
}

type stubDispatcher struct {
	events []ports.TrackingEventInput
}

func (d *stubDispatcher) Enqueue(e ports.TrackingEventInput) {
	d.events = append(d.events, e)
}

func (d *stubDispatcher) EnqueueBatch(es []ports.TrackingEventInput) {
	d.events = append(d.events, es...)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func newContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func requireAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T (%v)", err, err)
	}
	if apiErr.Status != status || apiErr.Code != code {
		t.Fatalf("expected %d %s, got %d %s", status, code, apiErr.Status, apiErr.Code)
	}
}

func requireViolation(t *testing.T, err error, field string) {
	t.Helper()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T (%v)", err, err)
	}
	for _, v := range ve.Violations {
		if v.Field == field {
			return
		}
	}
	t.Fatalf("expected a violation on %q, got %+v", field, ve.Violations)
}

func sampleShipment() *domain.Shipment {
	ts := time.Date(2026, 2, 19, 10, 0, 0, 0, time.UTC)
	return &domain.Shipment{
		ID:              "s1",
		TrackingNumber:  "TR20260219000001",
		OrderID:         "order-1",
		CarrierID:       "c1",
		CarrierName:     "Transportes Andes",
		Status:          domain.StatusPending,
		Origin:          domain.Location{Lat: 40.4168, Lng: -3.7038, Address: "Gran Vía 1", City: "Madrid"},
		Destination:     domain.Location{Lat: 41.3851, Lng: 2.1734, Address: "Rambla 2", City: "Barcelona"},
		CurrentLocation: domain.Location{Lat: 40.4168, Lng: -3.7038, Address: "Gran Vía 1", City: "Madrid"},
		WeightKg:        10,
		History:         []domain.HistoryEntry{{Status: domain.StatusPending, Location: "Madrid", Timestamp: ts}},
		CreatedAt:       ts,
		UpdatedAt:       ts,
	}
}
