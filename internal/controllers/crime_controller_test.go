package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateAndGetCrime(t *testing.T) {
	e := newTestApp(t)

	// Status omitted: the server stores "open".
	id := createCrime(t, e, `{"description":"Bank robbery","type":"Robbery","severity_level":"High"}`)

	code, resp := doJSON(t, e, http.MethodGet, fmt.Sprintf("/crimes/%d", id), "")
	require.Equal(t, http.StatusOK, code)

	crime, ok := resp["crime"].(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "Bank robbery", crime["description"])
	require.Equal(t, "Robbery", crime["type"])
	require.Equal(t, "High", crime["severity_level"])
	require.Equal(t, "open", crime["status"])
}

func TestCreateCrime_NumericSeverity(t *testing.T) {
	e := newTestApp(t)

	id := createCrime(t, e, `{"description":"Shoplifting","severity_level":2}`)

	code, resp := doJSON(t, e, http.MethodGet, fmt.Sprintf("/crimes/%d", id), "")
	require.Equal(t, http.StatusOK, code)
	crime := resp["crime"].(map[string]interface{})
	require.Equal(t, "2", crime["severity_level"])
}

func TestGetCrime_NotFound(t *testing.T) {
	e := newTestApp(t)

	code, resp := doJSON(t, e, http.MethodGet, "/crimes/999", "")
	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, "No crime found with this ID.", resp["message"])
}

func TestGetCrime_InvalidID(t *testing.T) {
	e := newTestApp(t)

	code, _ := doJSON(t, e, http.MethodGet, "/crimes/abc", "")
	require.Equal(t, http.StatusBadRequest, code)
}

func TestListCrimes(t *testing.T) {
	e := newTestApp(t)

	code, resp := doJSON(t, e, http.MethodGet, "/crimes", "")
	require.Equal(t, http.StatusOK, code)
	require.Empty(t, resp["crimes"])

	createCrime(t, e, `{"description":"First"}`)
	createCrime(t, e, `{"description":"Second"}`)

	code, resp = doJSON(t, e, http.MethodGet, "/crimes", "")
	require.Equal(t, http.StatusOK, code)
	crimes := resp["crimes"].([]interface{})
	require.Len(t, crimes, 2)
	require.Equal(t, "First", crimes[0].(map[string]interface{})["description"])
	require.Equal(t, "Second", crimes[1].(map[string]interface{})["description"])
}

func TestUpdateCrime_SameShapeForExistingAndMissing(t *testing.T) {
	e := newTestApp(t)

	id := createCrime(t, e, `{"description":"Theft"}`)
	body := `{"description":"Grand theft","type":"Theft","severity_level":"Low","status":"closed"}`

	code, resp := doJSON(t, e, http.MethodPut, fmt.Sprintf("/crimes/%d", id), body)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "Crime updated successfully.", resp["message"])

	codeMissing, respMissing := doJSON(t, e, http.MethodPut, "/crimes/4242", body)
	require.Equal(t, code, codeMissing)
	require.Equal(t, resp, respMissing)

	// The existing row really changed.
	code, resp = doJSON(t, e, http.MethodGet, fmt.Sprintf("/crimes/%d", id), "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "closed", resp["crime"].(map[string]interface{})["status"])
}

func TestCreateCrimeFull(t *testing.T) {
	e := newTestApp(t)

	code, resp := doJSON(t, e, http.MethodPost, "/crimes/full", `{
		"description":"Bank robbery","type":"Robbery","severity_level":"High",
		"officers":[{"name":"John Smith"}],
		"suspects":[{"name":"James Wilson","age":32,"gender":"Male"}],
		"victims":[{"name":"Bank Corp"}]
	}`)
	require.Equal(t, http.StatusCreated, code)

	crime := resp["crime"].(map[string]interface{})
	crimeID := uint(crime["crime_id"].(float64))
	require.NotZero(t, crimeID)

	// The aggregate was really persisted: dependents answer on their own
	// endpoints.
	code, resp = doJSON(t, e, http.MethodGet, fmt.Sprintf("/suspects/crime/%d", crimeID), "")
	require.Equal(t, http.StatusOK, code)
	suspects := resp["suspects"].([]interface{})
	require.Len(t, suspects, 1)
	require.Equal(t, "James Wilson", suspects[0].(map[string]interface{})["name"])
}

func TestCreateCrimeFull_UnnamedPerson(t *testing.T) {
	e := newTestApp(t)

	code, _ := doJSON(t, e, http.MethodPost, "/crimes/full",
		`{"description":"Robbery","officers":[{"name":""}]}`)
	require.Equal(t, http.StatusBadRequest, code)

	// Nothing was committed.
	code, resp := doJSON(t, e, http.MethodGet, "/crimes", "")
	require.Equal(t, http.StatusOK, code)
	require.Empty(t, resp["crimes"])
}
