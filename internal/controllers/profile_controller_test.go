package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestProfileEndpoint_NotConfigured(t *testing.T) {
	e := echo.New()
	NewProfileController(nil).Register(e.Group(""))

	req := httptest.NewRequest(http.MethodPost, "/profile", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
