package controllers

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// parseUintParam reads a numeric path parameter. Path ids are unsigned
// integers everywhere on this API.
func parseUintParam(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
