package service

import (
	"context"
	"errors"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/rs/zerolog"

	"github.com/a4co/transportista-service/internal/core/domain"
	"github.com/a4co/transportista-service/internal/core/ports"
	"github.com/a4co/transportista-service/internal/pkg/metrics"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubUpdater struct {
	err    error
	calls  []string
	lastIn ports.UpdateStatusInput
}

func (u *stubUpdater) UpdateStatus(_ context.Context, code string, in ports.UpdateStatusInput) (*domain.Shipment, error) {
	u.calls = append(u.calls, code)
	u.lastIn = in
	if u.err != nil {
		return nil, u.err
	}
	return &domain.Shipment{TrackingNumber: code, Status: domain.ShipmentStatus(in.Status)}, nil
}

type stubDedup struct {
	dupResult bool
	dupErr    error
	markErr   error
	marked    []string
}

func (d *stubDedup) IsDuplicate(_ context.Context, tracking, status string, _ time.Time) (bool, error) {
	return d.dupResult, d.dupErr
}

func (d *stubDedup) Mark(_ context.Context, tracking, status string, _ time.Time) error {
	if d.markErr != nil {
		return d.markErr
	}
	d.marked = append(d.marked, tracking+":"+status)
	return nil
}

func sampleEvent() ports.TrackingEventInput {
	return ports.TrackingEventInput{
		TrackingNumber: "TR20260219000001",
		Status:         "in_transit",
		Location:       "Rancagua",
		Source:         "driver_app",
		Timestamp:      time.Date(2026, 2, 19, 12, 0, 0, 0, time.UTC),
	}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestEventService_AppliesNewEvent(t *testing.T) {
	upd := &stubUpdater{}
	dedup := &stubDedup{}
	svc := NewEventService(upd, dedup, zerolog.Nop())

	if err := svc.Process(context.Background(), sampleEvent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(upd.calls) != 1 || upd.calls[0] != "TR20260219000001" {
		t.Fatalf("expected one update for the tracking number, got %v", upd.calls)
	}
	if upd.lastIn.Status != "in_transit" || upd.lastIn.Location != "Rancagua" {
		t.Errorf("unexpected update input: %+v", upd.lastIn)
	}
	if upd.lastIn.Notes != "source: driver_app" {
		t.Errorf("notes must fall back to the source, got %q", upd.lastIn.Notes)
	}
	if len(dedup.marked) != 1 || dedup.marked[0] != "TR20260219000001:in_transit" {
		t.Errorf("expected event to be marked, got %v", dedup.marked)
	}
}

func TestEventService_KeepsCallerNotes(t *testing.T) {
	upd := &stubUpdater{}
	svc := NewEventService(upd, &stubDedup{}, zerolog.Nop())

	ev := sampleEvent()
	ev.Notes = "handed to neighbour"
	_ = svc.Process(context.Background(), ev)

	if upd.lastIn.Notes != "handed to neighbour" {
		t.Errorf("expected caller notes, got %q", upd.lastIn.Notes)
	}
}

func TestEventService_SkipsDuplicate(t *testing.T) {
	upd := &stubUpdater{}
	svc := NewEventService(upd, &stubDedup{dupResult: true}, zerolog.Nop())

	if err := svc.Process(context.Background(), sampleEvent()); err != nil {
		t.Fatalf("duplicates must be skipped silently, got %v", err)
	}
	if len(upd.calls) != 0 {
		t.Errorf("duplicate must not reach the tracking engine, got %d calls", len(upd.calls))
	}
}

func TestEventService_DedupErrorStillProcesses(t *testing.T) {
	upd := &stubUpdater{}
	svc := NewEventService(upd, &stubDedup{dupErr: errors.New("redis down")}, zerolog.Nop())

	if err := svc.Process(context.Background(), sampleEvent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(upd.calls) != 1 {
		t.Errorf("expected processing despite dedup failure, got %d calls", len(upd.calls))
	}
}

func TestEventService_MarkFailureIsNotFatal(t *testing.T) {
	svc := NewEventService(&stubUpdater{}, &stubDedup{markErr: errors.New("redis down")}, zerolog.Nop())

	if err := svc.Process(context.Background(), sampleEvent()); err != nil {
		t.Errorf("mark failure must be logged only, got %v", err)
	}
}

func TestEventService_UnknownTrackingNumber(t *testing.T) {
	dedup := &stubDedup{}
	upd := &stubUpdater{err: domain.ErrTrackingNotFound}
	svc := NewEventService(upd, dedup, zerolog.Nop())

	err := svc.Process(context.Background(), sampleEvent())
	if !errors.Is(err, domain.ErrTrackingNotFound) {
		t.Fatalf("expected ErrTrackingNotFound, got %v", err)
	}
	if len(dedup.marked) != 0 {
		t.Error("failed events must stay retryable (not marked)")
	}
}

func counterValue(t *testing.T, c interface{ Write(*dto.Metric) error }) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("read counter: %v", err)
	}
	return m.GetCounter().GetValue()
}

func TestEventService_UnknownStatusUsesBoundedLabel(t *testing.T) {
	svc := NewEventService(&stubUpdater{}, &stubDedup{}, zerolog.Nop())
	other := metrics.EventsProcessedTotal.WithLabelValues(metrics.OtherStatus)
	before := counterValue(t, other)

	for i, status := range []string{"arrived_at_hub", "scanned_gate_7", "custom_status_x"} {
		ev := sampleEvent()
		ev.Status = status
		ev.Source = "source-" + string(rune('a'+i))
		if err := svc.Process(context.Background(), ev); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := counterValue(t, other) - before; got != 3 {
		t.Errorf("expected 3 events under %q, got %v", metrics.OtherStatus, got)
	}
}
