package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/a4co/transportista-service/pkg/geo"
)

type distanceResponse struct {
	Distance float64 `json:"distance"`
	Unit     string  `json:"unit"`
}

// GeoHandler exposes the GPS distance utility.
type GeoHandler struct{}

func NewGeoHandler() *GeoHandler {
	return &GeoHandler{}
}

// Distance handles GET /distance?lat1=&lon1=&lat2=&lon2=&unit=.
//
// @Summary      Great-circle distance between two coordinates
// @Tags         geo
// @Produce      json
// @Param        lat1  query     number  true   "Latitude of the first point"
// @Param        lon1  query     number  true   "Longitude of the first point"
// @Param        lat2  query     number  true   "Latitude of the second point"
// @Param        lon2  query     number  true   "Longitude of the second point"
// @Param        unit  query     string  false  "km (default) or m"
// @Success      200   {object}  distanceResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /distance [get]
func (h *GeoHandler) Distance(c echo.Context) error {
	var coords [4]float64
	for i, name := range []string{"lat1", "lon1", "lat2", "lon2"} {
		v, err := queryFloat(c, name)
		if err != nil {
			return err
		}
		coords[i] = v
	}

	unit := c.QueryParam("unit")
	var (
		d   float64
		err error
	)
	switch unit {
	case "", "km":
		unit = "km"
		d, err = geo.Distance(coords[0], coords[1], coords[2], coords[3])
	case "m":
		d, err = geo.DistanceMeters(coords[0], coords[1], coords[2], coords[3])
	default:
		return errInvalidParameter("unit", "must be km or m")
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, distanceResponse{Distance: d, Unit: unit})
}
