// Package client is the typed consumer of the CrimeFile REST API. It
// covers everything the browser front-end did against the service: listing
// and filtering crimes, the four-way detail lookup, and the multi-step
// case creation workflow.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/MadhavSinha007/CrimeFile/internal/models"
)

// ErrNotFound reports a 404. Note the API answers 404 both for a missing
// crime and for a crime with zero dependents of the requested kind;
// callers distinguish the two by which endpoint they asked.
var ErrNotFound = errors.New("not found")

// APIError carries a non-2xx response the server explained.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL string
	httpc   *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
}

// ListCrimes fetches the full caseload.
func (c *Client) ListCrimes(ctx context.Context) ([]models.Crime, error) {
	var envelope struct {
		Crimes []models.Crime `json:"crimes"`
	}
	if err := c.do(ctx, http.MethodGet, "/crimes", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Crimes, nil
}

// GetCrime fetches one crime; ErrNotFound when the id matches nothing.
func (c *Client) GetCrime(ctx context.Context, id uint) (*models.Crime, error) {
	var envelope struct {
		Crime *models.Crime `json:"crime"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/crimes/%d", id), nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Crime, nil
}

// CreateCrime posts a new crime and returns the generated id.
func (c *Client) CreateCrime(ctx context.Context, req *models.CreateCrimeRequest) (uint, error) {
	var envelope struct {
		CrimeID uint `json:"crime_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/crimes", req, &envelope); err != nil {
		return 0, err
	}
	return envelope.CrimeID, nil
}

// UpdateCrime overwrites a crime. The server reports success whether or
// not the id exists, so a nil error does not prove the row was there.
func (c *Client) UpdateCrime(ctx context.Context, id uint, req *models.UpdateCrimeRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/crimes/%d", id), req, nil)
}

// CreateCrimeFull creates the crime and its people in one server-side
// transaction.
func (c *Client) CreateCrimeFull(ctx context.Context, req *models.CreateCrimeFullRequest) (*models.CrimeDetail, error) {
	var detail models.CrimeDetail
	if err := c.do(ctx, http.MethodPost, "/crimes/full", req, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// CreateOfficer posts a new officer for a crime.
func (c *Client) CreateOfficer(ctx context.Context, req *models.CreateOfficerRequest) (uint, error) {
	var envelope struct {
		OfficerID uint `json:"officer_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/officers", req, &envelope); err != nil {
		return 0, err
	}
	return envelope.OfficerID, nil
}

// OfficersByCrime lists a crime's officers; ErrNotFound when it has none.
func (c *Client) OfficersByCrime(ctx context.Context, crimeID uint) ([]models.Officer, error) {
	var envelope struct {
		Officers []models.Officer `json:"officers"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/officers/crime/%d", crimeID), nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Officers, nil
}

// DeleteOfficersByCrime removes every officer linked to a crime.
func (c *Client) DeleteOfficersByCrime(ctx context.Context, crimeID uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/officers/crime/%d", crimeID), nil, nil)
}

// CreateSuspect posts a new suspect for a crime.
func (c *Client) CreateSuspect(ctx context.Context, req *models.CreateSuspectRequest) (uint, error) {
	var envelope struct {
		SuspectID uint `json:"suspect_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/suspects", req, &envelope); err != nil {
		return 0, err
	}
	return envelope.SuspectID, nil
}

// SuspectsByCrime lists a crime's suspects; ErrNotFound when it has none.
func (c *Client) SuspectsByCrime(ctx context.Context, crimeID uint) ([]models.Suspect, error) {
	var envelope struct {
		Suspects []models.Suspect `json:"suspects"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/suspects/crime/%d", crimeID), nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Suspects, nil
}

// DeleteSuspectsByCrime removes every suspect linked to a crime.
func (c *Client) DeleteSuspectsByCrime(ctx context.Context, crimeID uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/suspects/crime/%d", crimeID), nil, nil)
}

// CreateVictim posts a new victim for a crime.
func (c *Client) CreateVictim(ctx context.Context, req *models.CreateVictimRequest) (uint, error) {
	var envelope struct {
		VictimID uint `json:"victim_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/victims", req, &envelope); err != nil {
		return 0, err
	}
	return envelope.VictimID, nil
}

// VictimsByCrime lists a crime's victims; ErrNotFound when it has none.
func (c *Client) VictimsByCrime(ctx context.Context, crimeID uint) ([]models.Victim, error) {
	var envelope struct {
		Victims []models.Victim `json:"victims"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/victims/crime/%d", crimeID), nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Victims, nil
}

// DeleteVictimsByCrime removes every victim linked to a crime.
func (c *Client) DeleteVictimsByCrime(ctx context.Context, crimeID uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/victims/crime/%d", crimeID), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Message string `json:"message"`
			Err     string `json:"error"`
		}
		msg := resp.Status
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
			msg = apiErr.Message
			if apiErr.Err != "" {
				msg += ": " + apiErr.Err
			}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
