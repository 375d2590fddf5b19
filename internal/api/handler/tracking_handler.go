package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/a4co/transportista-service/internal/core/domain"
	"github.com/a4co/transportista-service/internal/core/ports"
)

// TrackingHandler serves the public tracking lookup and status updates.
type TrackingHandler struct {
	service ports.ShipmentService
	strict  bool
}

// NewTrackingHandler creates a TrackingHandler. With strict set, status
// updates outside the known vocabulary are rejected.
func NewTrackingHandler(service ports.ShipmentService, strict bool) *TrackingHandler {
	return &TrackingHandler{service: service, strict: strict}
}

// Get handles GET /tracking/:code.
//
// @Summary      Track a shipment
// @Tags         tracking
// @Produce      json
// @Param        code  path      string  true  "Tracking number (e.g. TR20260219123456)"
// @Success      200   {object}  trackingResponse
// @Failure      404   {object}  errorResponse
// @Router       /tracking/{code} [get]
func (h *TrackingHandler) Get(c echo.Context) error {
	code := c.Param("code")

	tracking, found, err := h.service.GetTracking(c.Request().Context(), code)
	if err != nil {
		return err
	}
	if !found {
		return newAPIError(http.StatusNotFound, "TRACKING_NOT_FOUND",
			fmt.Sprintf("tracking number %s not found", code))
	}

	return c.JSON(http.StatusOK, toTrackingResponse(tracking))
}

// UpdateStatus handles PUT /tracking/:code/status.
//
// @Summary      Update the status of a shipment
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Param        code  path      string               true  "Tracking number"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  shipmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /tracking/{code}/status [put]
func (h *TrackingHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidPayload()
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if err := checkStatus(h.strict, req.Status); err != nil {
		return err
	}

	shipment, err := h.service.UpdateStatus(c.Request().Context(), c.Param("code"), toUpdateStatusInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toShipmentResponse(shipment))
}

func checkStatus(strict bool, status string) error {
	if strict && !domain.KnownStatus(status) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}
	return nil
}
