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

// OfficerController groups the HTTP routes for officers.
type OfficerController struct {
	svc services.OfficerService
	val *validator.Validator
}

func NewOfficerController(svc services.OfficerService, val *validator.Validator) *OfficerController {
	return &OfficerController{svc: svc, val: val}
}

func (ctr *OfficerController) Register(g *echo.Group) {
	g.POST("/officers", ctr.CreateOfficer)
	g.GET("/officers/crime/:crimeId", ctr.ListByCrime)
	g.DELETE("/officers/crime/:crimeId", ctr.DeleteByCrime)
}

// CreateOfficer handles POST /officers. Name and crime_id are required,
// and the crime_id must reference an existing crime.
func (ctr *OfficerController) CreateOfficer(c echo.Context) error {
	req := new(models.CreateOfficerRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body", "error": err.Error()})
	}
	if err := ctr.val.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "All fields are required."})
	}

	officerID, err := ctr.svc.CreateOfficer(c.Request().Context(), req)
	if errors.Is(err, services.ErrUnknownCrime) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "No crime exists with this crime_id."})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to create officer", "error": err.Error(),
		})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message":    "Officer created successfully.",
		"officer_id": officerID,
	})
}

// ListByCrime handles GET /officers/crime/:crimeId. Zero matching rows is
// a 404, not an empty list.
func (ctr *OfficerController) ListByCrime(c echo.Context) error {
	crimeID, err := parseUintParam(c, "crimeId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid crime id."})
	}

	officers, err := ctr.svc.ListByCrime(c.Request().Context(), crimeID)
	if errors.Is(err, services.ErrNoneForCrime) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "No officers found for this crime."})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to fetch officers", "error": err.Error(),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"officers": officers})
}

// DeleteByCrime handles DELETE /officers/crime/:crimeId. Idempotent:
// deleting zero rows still answers 200.
func (ctr *OfficerController) DeleteByCrime(c echo.Context) error {
	crimeID, err := parseUintParam(c, "crimeId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid crime id."})
	}

	if err := ctr.svc.DeleteByCrime(c.Request().Context(), crimeID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to delete officers", "error": err.Error(),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("Officers linked to crime ID %d deleted.", crimeID),
	})
}
