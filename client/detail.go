package client

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/MadhavSinha007/CrimeFile/internal/models"
)

// Detail is the crime aggregate the detail view renders. Partial holds
// the dependent-list fetches that failed; the view shows what it has and
// surfaces those as a non-fatal notice.
type Detail struct {
	Crime    *models.Crime
	Officers []models.Officer
	Suspects []models.Suspect
	Victims  []models.Victim
	Partial  []error
}

// CrimeDetail issues the four lookups concurrently. Only a failed crime
// fetch fails the whole call; a 404 on a dependent list just means the
// crime has none of that kind.
func (c *Client) CrimeDetail(ctx context.Context, id uint) (*Detail, error) {
	detail := &Detail{}
	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		crimeErr error
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		detail.Crime, crimeErr = c.GetCrime(ctx, id)
	}()
	go func() {
		defer wg.Done()
		officers, err := c.OfficersByCrime(ctx, id)
		mu.Lock()
		defer mu.Unlock()
		detail.Officers = officers
		if err != nil && !errors.Is(err, ErrNotFound) {
			detail.Partial = append(detail.Partial, err)
		}
	}()
	go func() {
		defer wg.Done()
		suspects, err := c.SuspectsByCrime(ctx, id)
		mu.Lock()
		defer mu.Unlock()
		detail.Suspects = suspects
		if err != nil && !errors.Is(err, ErrNotFound) {
			detail.Partial = append(detail.Partial, err)
		}
	}()
	go func() {
		defer wg.Done()
		victims, err := c.VictimsByCrime(ctx, id)
		mu.Lock()
		defer mu.Unlock()
		detail.Victims = victims
		if err != nil && !errors.Is(err, ErrNotFound) {
			detail.Partial = append(detail.Partial, err)
		}
	}()
	wg.Wait()

	if crimeErr != nil {
		return nil, crimeErr
	}
	return detail, nil
}

// FilterCrimes narrows an already-fetched list by a case-insensitive
// substring match on one field: description, type, severity or status.
// A blank term returns the list unchanged.
func FilterCrimes(crimes []models.Crime, field, term string) []models.Crime {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return crimes
	}

	var out []models.Crime
	for _, crime := range crimes {
		var value string
		switch field {
		case "description":
			value = deref(crime.Description)
		case "type":
			value = deref(crime.Type)
		case "severity", "severity_level":
			value = deref(crime.SeverityLevel)
		case "status":
			value = crime.Status
		}
		if strings.Contains(strings.ToLower(value), term) {
			out = append(out, crime)
		}
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
