package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/a4co/transportista-service/internal/core/ports"
)

// EventDispatcher is the interface the handler uses to enqueue events.
type EventDispatcher interface {
	Enqueue(event ports.TrackingEventInput)
	EnqueueBatch(events []ports.TrackingEventInput)
}

// EventHandler handles tracking event ingestion.
type EventHandler struct {
	dispatcher EventDispatcher
	strict     bool
}

// NewEventHandler creates an EventHandler backed by the given dispatcher.
func NewEventHandler(dispatcher EventDispatcher, strict bool) *EventHandler {
	return &EventHandler{dispatcher: dispatcher, strict: strict}
}

// Receive handles POST /events. It enqueues a single event and returns 202.
//
// @Summary      Ingest a single tracking event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        body  body      trackingEventRequest  true  "Tracking event"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /events [post]
func (h *EventHandler) Receive(c echo.Context) error {
	var req trackingEventRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidPayload()
	}
	if err := h.check(c, &req); err != nil {
		return err
	}

	h.dispatcher.Enqueue(toEventInput(req))
	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "event accepted"})
}

// ReceiveBatch handles POST /events/batch. It enqueues the whole batch and returns 202.
//
// @Summary      Ingest a batch of tracking events
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        body  body      []trackingEventRequest  true  "Array of tracking events"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /events/batch [post]
func (h *EventHandler) ReceiveBatch(c echo.Context) error {
	var reqs []trackingEventRequest
	if err := c.Bind(&reqs); err != nil {
		return errInvalidPayload()
	}
	if len(reqs) == 0 {
		return newAPIError(http.StatusBadRequest, "INVALID_PAYLOAD", "batch cannot be empty")
	}

	inputs := make([]ports.TrackingEventInput, 0, len(reqs))
	for i := range reqs {
		if err := h.check(c, &reqs[i]); err != nil {
			return indexed(i, err)
		}
		inputs = append(inputs, toEventInput(reqs[i]))
	}

	h.dispatcher.EnqueueBatch(inputs)
	return c.JSON(http.StatusAccepted, acceptedResponse{
		Message: "events accepted",
		Count:   len(inputs),
	})
}

func (h *EventHandler) check(c echo.Context, req *trackingEventRequest) error {
	if err := c.Validate(req); err != nil {
		return err
	}
	return checkStatus(h.strict, req.Status)
}

// indexed prefixes validation failures with the position of the event in the batch.
func indexed(i int, err error) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		for j := range ve.Violations {
			ve.Violations[j].Field = fmt.Sprintf("[%d].%s", i, ve.Violations[j].Field)
		}
		return ve
	}
	return fmt.Errorf("event[%d]: %w", i, err)
}

// toEventInput maps the HTTP request to the service DTO.
func toEventInput(r trackingEventRequest) ports.TrackingEventInput {
	return ports.TrackingEventInput{
		TrackingNumber: r.TrackingNumber,
		Status:         r.Status,
		Location:       r.Location,
		Notes:          r.Notes,
		Source:         r.Source,
		Timestamp:      r.Timestamp,
	}
}
