package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/MadhavSinha007/CrimeFile/internal/models"
	"github.com/MadhavSinha007/CrimeFile/internal/services"
	"github.com/MadhavSinha007/CrimeFile/internal/validator"
)

// newTestApp wires the controllers against an in-memory store, mirroring
// the server's composition root.
func newTestApp(t *testing.T) *echo.Echo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.Crime{}, &models.Officer{}, &models.Suspect{}, &models.Victim{},
	))

	val := validator.New()
	e := echo.New()
	g := e.Group("")
	NewCrimeController(services.NewCrimeService(db), val).Register(g)
	NewOfficerController(services.NewOfficerService(db), val).Register(g)
	NewSuspectController(services.NewSuspectService(db), val).Register(g)
	NewVictimController(services.NewVictimService(db), val).Register(g)
	return e
}

// doJSON performs a request against the app and decodes the JSON reply.
func doJSON(t *testing.T, e *echo.Echo, method, path, body string) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec.Code, decoded
}

// createCrime is a fixture shortcut used across the controller tests.
func createCrime(t *testing.T, e *echo.Echo, body string) uint {
	t.Helper()
	code, resp := doJSON(t, e, http.MethodPost, "/crimes", body)
	require.Equal(t, http.StatusCreated, code)
	id, ok := resp["crime_id"].(float64)
	require.True(t, ok, "crime_id should be numeric, got %v", resp["crime_id"])
	return uint(id)
}
