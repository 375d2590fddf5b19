package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/a4co/transportista-service/internal/core/ports"
)

const carrierCreatedMessage = "Transportista creado exitosamente"

// CarrierHandler handles HTTP requests for carrier ("transportista") operations.
type CarrierHandler struct {
	service ports.CarrierService
}

func NewCarrierHandler(service ports.CarrierService) *CarrierHandler {
	return &CarrierHandler{service: service}
}

// Create handles POST /transportistas.
//
// @Summary      Register a carrier
// @Tags         transportistas
// @Accept       json
// @Produce      json
// @Param        body  body      createCarrierRequest  true  "Carrier data"
// @Success      201   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /transportistas [post]
func (h *CarrierHandler) Create(c echo.Context) error {
	var req createCarrierRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidPayload()
	}
	req.normalize()
	if err := c.Validate(&req); err != nil {
		return err
	}

	carrier, err := h.service.Register(c.Request().Context(), toRegisterInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, successResponse{
		Success: true,
		Data:    toCarrierResponse(carrier),
		Message: carrierCreatedMessage,
	})
}

// Get handles GET /transportistas/:id.
//
// @Summary      Get a carrier by id
// @Tags         transportistas
// @Produce      json
// @Param        id   path      string  true  "Carrier id"
// @Success      200  {object}  carrierResponse
// @Failure      404  {object}  errorResponse
// @Router       /transportistas/{id} [get]
func (h *CarrierHandler) Get(c echo.Context) error {
	id := c.Param("id")

	carrier, found, err := h.service.GetCarrier(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !found {
		return newAPIError(http.StatusNotFound, "TRANSPORTISTA_NOT_FOUND",
			fmt.Sprintf("Transportista con ID %s no encontrado", id))
	}

	return c.JSON(http.StatusOK, toCarrierResponse(carrier))
}

// List handles GET /transportistas?activo=.
//
// @Summary      List carriers
// @Tags         transportistas
// @Produce      json
// @Param        activo  query     bool  false  "Filter by active flag"
// @Success      200     {array}   carrierResponse
// @Failure      400     {object}  errorResponse
// @Router       /transportistas [get]
func (h *CarrierHandler) List(c echo.Context) error {
	active, err := queryBool(c, "activo")
	if err != nil {
		return err
	}

	carriers, err := h.service.ListCarriers(c.Request().Context(), active)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toCarrierList(carriers))
}
