package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/a4co/transportista-service/internal/api/handler"
	"github.com/a4co/transportista-service/internal/core/domain"
	"github.com/a4co/transportista-service/pkg/geo"
)

const (
	validationMessage = "Datos de entrada inválidos"
	internalMessage   = "Error interno del servidor"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Success bool           `json:"success"`
	Error   string         `json:"error"`
	Code    string         `json:"code"`
	Details map[string]any `json:"details,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"success": false, "error": "<message>", "code": "<CODE>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	var apiErr *handler.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status, envelope(apiErr.Message, apiErr.Code, apiErr.Details)
	}

	var ve *handler.ValidationError
	if errors.As(err, &ve) {
		return http.StatusUnprocessableEntity, envelope(validationMessage, "VALIDATION_ERROR",
			map[string]any{"validation_errors": ve.Violations})
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrDuplicateIdentifier):
		return http.StatusBadRequest, envelope(err.Error(), "DUPLICATE_DATA_ERROR", nil)
	case errors.Is(err, domain.ErrCarrierNotFound):
		return http.StatusBadRequest, envelope(err.Error(), "CARRIER_NOT_FOUND", nil)
	case errors.Is(err, domain.ErrCapacityExceeded):
		return http.StatusBadRequest, envelope(err.Error(), "CAPACITY_EXCEEDED", nil)
	case errors.Is(err, domain.ErrTrackingNotFound):
		return http.StatusNotFound, envelope(err.Error(), "TRACKING_NOT_FOUND", nil)
	case errors.Is(err, domain.ErrShipmentNotFound):
		return http.StatusNotFound, envelope(err.Error(), "SHIPMENT_NOT_FOUND", nil)
	case errors.Is(err, domain.ErrInvalidStatus), errors.Is(err, geo.ErrCoordinateOutOfRange):
		return http.StatusUnprocessableEntity, envelope(err.Error(), "VALIDATION_ERROR", nil)
	}

	// Echo's own errors (404 from router, 405, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, envelope(fmt.Sprintf("%v", he.Message), statusCode(he.Code), nil)
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, envelope(internalMessage, "INTERNAL_SERVER_ERROR", nil)
}

func envelope(msg, code string, details map[string]any) errorResponse {
	return errorResponse{Success: false, Error: msg, Code: code, Details: details}
}

// statusCode turns an HTTP status into an envelope code: 404 -> NOT_FOUND.
func statusCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "HTTP_ERROR"
	}
	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}
