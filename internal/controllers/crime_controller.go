package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MadhavSinha007/CrimeFile/internal/models"
	"github.com/MadhavSinha007/CrimeFile/internal/services"
	"github.com/MadhavSinha007/CrimeFile/internal/validator"
)

// CrimeController groups the HTTP routes for the crime aggregate root.
type CrimeController struct {
	svc services.CrimeService
	val *validator.Validator
}

func NewCrimeController(svc services.CrimeService, val *validator.Validator) *CrimeController {
	return &CrimeController{svc: svc, val: val}
}

// Register wires the crime routes onto the router group.
func (ctr *CrimeController) Register(g *echo.Group) {
	g.GET("/crimes", ctr.ListCrimes)
	g.GET("/crimes/:id", ctr.GetCrime)
	g.POST("/crimes", ctr.CreateCrime)
	g.POST("/crimes/full", ctr.CreateCrimeFull)
	g.PUT("/crimes/:id", ctr.UpdateCrime)
}

// ListCrimes handles GET /crimes and returns the full caseload.
func (ctr *CrimeController) ListCrimes(c echo.Context) error {
	crimes, err := ctr.svc.ListCrimes(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to retrieve crimes", "error": err.Error(),
		})
	}
	if crimes == nil {
		crimes = []models.Crime{}
	}
	return c.JSON(http.StatusOK, echo.Map{"crimes": crimes})
}

// GetCrime handles GET /crimes/:id.
func (ctr *CrimeController) GetCrime(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid crime id."})
	}

	crime, err := ctr.svc.GetCrime(c.Request().Context(), id)
	if errors.Is(err, services.ErrCrimeNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "No crime found with this ID."})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to retrieve crime", "error": err.Error(),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"crime": crime})
}

// CreateCrime handles POST /crimes. No field is required; an omitted
// status is stored as "open".
func (ctr *CrimeController) CreateCrime(c echo.Context) error {
	req := new(models.CreateCrimeRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body", "error": err.Error()})
	}

	crimeID, err := ctr.svc.CreateCrime(c.Request().Context(), req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to create crime", "error": err.Error(),
		})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message":  "Crime created successfully",
		"crime_id": crimeID,
	})
}

// CreateCrimeFull handles POST /crimes/full: the crime and its people in
// one transaction.
func (ctr *CrimeController) CreateCrimeFull(c echo.Context) error {
	req := new(models.CreateCrimeFullRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body", "error": err.Error()})
	}
	if err := ctr.val.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "All person entries require a name."})
	}

	detail, err := ctr.svc.CreateCrimeFull(c.Request().Context(), req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to create crime", "error": err.Error(),
		})
	}
	return c.JSON(http.StatusCreated, detail)
}

// UpdateCrime handles PUT /crimes/:id. The update reports success whether
// or not the id matched a row; that has always been this API's contract.
func (ctr *CrimeController) UpdateCrime(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid crime id."})
	}

	req := new(models.UpdateCrimeRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body", "error": err.Error()})
	}

	if err := ctr.svc.UpdateCrime(c.Request().Context(), id, req); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to update crime", "error": err.Error(),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Crime updated successfully."})
}
