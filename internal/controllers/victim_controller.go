package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MadhavSinha007/CrimeFile/internal/models"
	"github.com/MadhavSinha007/CrimeFile/internal/services"
	"github.com/MadhavSinha007/CrimeFile/internal/validator"
)

// VictimController groups the HTTP routes for victims.
type VictimController struct {
	svc services.VictimService
	val *validator.Validator
}

func NewVictimController(svc services.VictimService, val *validator.Validator) *VictimController {
	return &VictimController{svc: svc, val: val}
}

func (ctr *VictimController) Register(g *echo.Group) {
	g.POST("/victims", ctr.CreateVictim)
	g.GET("/victims/crime/:crimeId", ctr.ListByCrime)
	g.DELETE("/victims/crime/:crimeId", ctr.DeleteByCrime)
}

// CreateVictim handles POST /victims; same required-field rule as suspects.
func (ctr *VictimController) CreateVictim(c echo.Context) error {
	req := new(models.CreateVictimRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body", "error": err.Error()})
	}
	if err := ctr.val.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "All fields are required."})
	}

	victimID, err := ctr.svc.CreateVictim(c.Request().Context(), req)
	if errors.Is(err, services.ErrUnknownCrime) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "No crime exists with this crime_id."})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to create victim", "error": err.Error(),
		})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message":   "Victim created successfully.",
		"victim_id": victimID,
	})
}

// ListByCrime handles GET /victims/crime/:crimeId.
func (ctr *VictimController) ListByCrime(c echo.Context) error {
	crimeID, err := parseUintParam(c, "crimeId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid crime id."})
	}

	victims, err := ctr.svc.ListByCrime(c.Request().Context(), crimeID)
	if errors.Is(err, services.ErrNoneForCrime) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "No victims found for this crime."})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to fetch victims", "error": err.Error(),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"victims": victims})
}

// DeleteByCrime handles DELETE /victims/crime/:crimeId.
func (ctr *VictimController) DeleteByCrime(c echo.Context) error {
	crimeID, err := parseUintParam(c, "crimeId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid crime id."})
	}

	if err := ctr.svc.DeleteByCrime(c.Request().Context(), crimeID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to delete victims", "error": err.Error(),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("Victims linked to crime ID %d deleted.", crimeID),
	})
}
