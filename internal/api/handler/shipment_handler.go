package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/a4co/transportista-service/internal/core/ports"
)

// ShipmentHandler handles HTTP requests for shipment operations.
type ShipmentHandler struct {
	service ports.ShipmentService
}

func NewShipmentHandler(service ports.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{service: service}
}

// Create handles POST /shipments.
//
// @Summary      Create a new shipment
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Param        body  body      createShipmentRequest  true  "Shipment details"
// @Success      201   {object}  shipmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /shipments [post]
func (h *ShipmentHandler) Create(c echo.Context) error {
	var req createShipmentRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidPayload()
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	shipment, err := h.service.CreateShipment(c.Request().Context(), toCreateInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toShipmentResponse(shipment))
}

// Get handles GET /shipments/:id.
//
// @Summary      Get a shipment by id
// @Tags         shipments
// @Produce      json
// @Param        id   path      string  true  "Shipment id"
// @Success      200  {object}  shipmentResponse
// @Failure      404  {object}  errorResponse
// @Router       /shipments/{id} [get]
func (h *ShipmentHandler) Get(c echo.Context) error {
	id := c.Param("id")

	shipment, found, err := h.service.GetShipment(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !found {
		return newAPIError(http.StatusNotFound, "SHIPMENT_NOT_FOUND",
			fmt.Sprintf("shipment %s not found", id))
	}

	return c.JSON(http.StatusOK, toShipmentResponse(shipment))
}

// List handles GET /shipments?transportista_id=&status=.
//
// @Summary      List shipments
// @Tags         shipments
// @Produce      json
// @Param        transportista_id  query     string  false  "Filter by carrier id"
// @Param        status            query     string  false  "Filter by status"
// @Success      200               {array}   shipmentResponse
// @Router       /shipments [get]
func (h *ShipmentHandler) List(c echo.Context) error {
	shipments, err := h.service.ListShipments(c.Request().Context(), ports.ListShipmentsInput{
		CarrierID: c.QueryParam("transportista_id"),
		Status:    c.QueryParam("status"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toShipmentList(shipments))
}

// ListByOrder handles GET /shipments/order/:order_id.
//
// @Summary      List the shipments of an order
// @Tags         shipments
// @Produce      json
// @Param        order_id  path      string  true  "Order id"
// @Success      200       {array}   shipmentResponse
// @Router       /shipments/order/{order_id} [get]
func (h *ShipmentHandler) ListByOrder(c echo.Context) error {
	shipments, err := h.service.ListByOrder(c.Request().Context(), c.Param("order_id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toShipmentList(shipments))
}
