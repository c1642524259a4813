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

// SuspectController groups the HTTP routes for suspects.
type SuspectController struct {
	svc services.SuspectService
	val *validator.Validator
}

func NewSuspectController(svc services.SuspectService, val *validator.Validator) *SuspectController {
	return &SuspectController{svc: svc, val: val}
}

func (ctr *SuspectController) Register(g *echo.Group) {
	g.POST("/suspects", ctr.CreateSuspect)
	g.GET("/suspects/crime/:crimeId", ctr.ListByCrime)
	g.DELETE("/suspects/crime/:crimeId", ctr.DeleteByCrime)
}

// CreateSuspect handles POST /suspects. Name, age, gender and crime_id are
// all required on create even though age and gender are nullable columns.
func (ctr *SuspectController) CreateSuspect(c echo.Context) error {
	req := new(models.CreateSuspectRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body", "error": err.Error()})
	}
	if err := ctr.val.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "All fields are required."})
	}

	suspectID, err := ctr.svc.CreateSuspect(c.Request().Context(), req)
	if errors.Is(err, services.ErrUnknownCrime) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "No crime exists with this crime_id."})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to create suspect", "error": err.Error(),
		})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message":    "Suspect created successfully.",
		"suspect_id": suspectID,
	})
}

// ListByCrime handles GET /suspects/crime/:crimeId.
func (ctr *SuspectController) ListByCrime(c echo.Context) error {
	crimeID, err := parseUintParam(c, "crimeId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid crime id."})
	}

	suspects, err := ctr.svc.ListByCrime(c.Request().Context(), crimeID)
	if errors.Is(err, services.ErrNoneForCrime) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "No suspects found for this crime."})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to fetch suspects", "error": err.Error(),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"suspects": suspects})
}

// DeleteByCrime handles DELETE /suspects/crime/:crimeId.
func (ctr *SuspectController) DeleteByCrime(c echo.Context) error {
	crimeID, err := parseUintParam(c, "crimeId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid crime id."})
	}

	if err := ctr.svc.DeleteByCrime(c.Request().Context(), crimeID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to delete suspects", "error": err.Error(),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("Suspects linked to crime ID %d deleted.", crimeID),
	})
}
