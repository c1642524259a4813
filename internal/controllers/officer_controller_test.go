package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateOfficer_MissingFieldCreatesNoRow(t *testing.T) {
	e := newTestApp(t)
	crimeID := createCrime(t, e, `{"description":"Robbery"}`)

	code, resp := doJSON(t, e, http.MethodPost, "/officers", fmt.Sprintf(`{"crime_id":%d}`, crimeID))
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "All fields are required.", resp["message"])

	// The rejected create left nothing behind.
	code, _ = doJSON(t, e, http.MethodGet, fmt.Sprintf("/officers/crime/%d", crimeID), "")
	require.Equal(t, http.StatusNotFound, code)
}

func TestCreateOfficer_UnknownCrime(t *testing.T) {
	e := newTestApp(t)

	code, resp := doJSON(t, e, http.MethodPost, "/officers", `{"name":"John Smith","crime_id":777}`)
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "No crime exists with this crime_id.", resp["message"])
}

func TestOfficersByCrime_EmptyIs404(t *testing.T) {
	e := newTestApp(t)
	crimeID := createCrime(t, e, `{"description":"Robbery"}`)

	// Fresh crime, zero officers: 404 rather than an empty 200 list.
	code, resp := doJSON(t, e, http.MethodGet, fmt.Sprintf("/officers/crime/%d", crimeID), "")
	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, "No officers found for this crime.", resp["message"])

	code, resp = doJSON(t, e, http.MethodPost, "/officers",
		fmt.Sprintf(`{"name":"John Smith","crime_id":%d}`, crimeID))
	require.Equal(t, http.StatusCreated, code)
	require.NotZero(t, resp["officer_id"])

	code, resp = doJSON(t, e, http.MethodGet, fmt.Sprintf("/officers/crime/%d", crimeID), "")
	require.Equal(t, http.StatusOK, code)
	officers := resp["officers"].([]interface{})
	require.Len(t, officers, 1)
	require.Equal(t, "John Smith", officers[0].(map[string]interface{})["name"])
}

func TestDeleteOfficersByCrime_Idempotent(t *testing.T) {
	e := newTestApp(t)
	crimeID := createCrime(t, e, `{"description":"Robbery"}`)
	doJSON(t, e, http.MethodPost, "/officers", fmt.Sprintf(`{"name":"John Smith","crime_id":%d}`, crimeID))

	path := fmt.Sprintf("/officers/crime/%d", crimeID)

	firstCode, firstResp := doJSON(t, e, http.MethodDelete, path, "")
	require.Equal(t, http.StatusOK, firstCode)

	code, _ := doJSON(t, e, http.MethodGet, path, "")
	require.Equal(t, http.StatusNotFound, code)

	// Second delete matches zero rows and answers identically.
	secondCode, secondResp := doJSON(t, e, http.MethodDelete, path, "")
	require.Equal(t, firstCode, secondCode)
	require.Equal(t, firstResp, secondResp)
}
