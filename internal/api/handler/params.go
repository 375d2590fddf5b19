package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// queryBool parses an optional boolean query parameter. Absent means nil.
func queryBool(c echo.Context, name string) (*bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, errInvalidParameter(name, "must be a boolean")
	}
	return &v, nil
}

// queryFloat parses a required float query parameter.
func queryFloat(c echo.Context, name string) (float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, errInvalidParameter(name, "is required")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errInvalidParameter(name, "must be a number")
	}
	return v, nil
}
