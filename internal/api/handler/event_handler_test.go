package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/a4co/transportista-service/internal/core/domain"
)

func TestEventHandler_Receive(t *testing.T) {
	d := &stubDispatcher{}
	body := `{"tracking_number":"TR1","status":"in_transit","timestamp":"2026-02-19T12:00:00Z","source":"driver_app","location":"Rancagua"}`

	c, rec := newContext(newEcho(), http.MethodPost, "/events", body)
	if err := NewEventHandler(d, false).Receive(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	if len(d.events) != 1 || d.events[0].Location != "Rancagua" || d.events[0].Source != "driver_app" {
		t.Errorf("unexpected enqueued events: %+v", d.events)
	}
}

func TestEventHandler_Receive_Validation(t *testing.T) {
	c, _ := newContext(newEcho(), http.MethodPost, "/events", `{"status":"in_transit"}`)
	requireViolation(t, NewEventHandler(&stubDispatcher{}, false).Receive(c), "tracking_number")
}

func TestEventHandler_Receive_Strict(t *testing.T) {
	d := &stubDispatcher{}
	body := `{"tracking_number":"TR1","status":"lost_in_space","timestamp":"2026-02-19T12:00:00Z","source":"driver_app"}`

	c, _ := newContext(newEcho(), http.MethodPost, "/events", body)
	if err := NewEventHandler(d, true).Receive(c); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if len(d.events) != 0 {
		t.Error("rejected event must not be enqueued")
	}
}

func TestEventHandler_ReceiveBatch(t *testing.T) {
	d := &stubDispatcher{}
	body := `[
		{"tracking_number":"TR1","status":"in_transit","timestamp":"2026-02-19T12:00:00Z","source":"a"},
		{"tracking_number":"TR1","status":"delivered","timestamp":"2026-02-19T13:00:00Z","source":"a"}
	]`

	c, rec := newContext(newEcho(), http.MethodPost, "/events/batch", body)
	if err := NewEventHandler(d, false).ReceiveBatch(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	if len(d.events) != 2 || d.events[1].Status != "delivered" {
		t.Errorf("batch order must be kept: %+v", d.events)
	}
}

func TestEventHandler_ReceiveBatch_Errors(t *testing.T) {
	h := NewEventHandler(&stubDispatcher{}, false)

	c, _ := newContext(newEcho(), http.MethodPost, "/events/batch", `[]`)
	requireAPIError(t, h.ReceiveBatch(c), http.StatusBadRequest, "INVALID_PAYLOAD")

	body := `[{"tracking_number":"TR1","status":"in_transit","timestamp":"2026-02-19T12:00:00Z","source":"a"},{"status":"x"}]`
	c, _ = newContext(newEcho(), http.MethodPost, "/events/batch", body)
	requireViolation(t, h.ReceiveBatch(c), "[1].tracking_number")
}
