package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/MadhavSinha007/CrimeFile/internal/models"
)

// CaseDraft is the admin form's pending state: a crime plus the people to
// attach once its id is known. Entries with a blank name are skipped, as
// the form always kept one empty row per section.
type CaseDraft struct {
	Crime    models.CreateCrimeRequest
	Officers []models.PersonInput
	Suspects []models.PersonInput
	Victims  []models.PersonInput
}

// CreatedCase reports the ids minted by a successful workflow run.
type CreatedCase struct {
	CrimeID    uint
	OfficerIDs []uint
	SuspectIDs []uint
	VictimIDs  []uint
}

// PartialCreateError reports a workflow that created the crime but failed
// on one or more people. The server has no DELETE /crimes route, so the
// orphaned crime cannot be compensated away; it is named here explicitly
// instead of being silently dropped.
type PartialCreateError struct {
	CrimeID uint
	Errs    []error
}

func (e *PartialCreateError) Error() string {
	return fmt.Sprintf("crime %d created but %d related record(s) failed: %v",
		e.CrimeID, len(e.Errs), e.Errs)
}

// CreateCaseWithPeople runs the legacy sequential workflow: POST the
// crime, then tag and POST each person with the returned id. It is not
// atomic; prefer CreateCrimeFull when the server supports it.
func (c *Client) CreateCaseWithPeople(ctx context.Context, draft *CaseDraft) (*CreatedCase, error) {
	crimeID, err := c.CreateCrime(ctx, &draft.Crime)
	if err != nil {
		return nil, fmt.Errorf("creating crime: %w", err)
	}

	created := &CreatedCase{CrimeID: crimeID}
	var errs []error

	for _, p := range draft.Officers {
		if strings.TrimSpace(p.Name) == "" {
			continue
		}
		id, err := c.CreateOfficer(ctx, &models.CreateOfficerRequest{Name: p.Name, CrimeID: crimeID})
		if err != nil {
			errs = append(errs, fmt.Errorf("officer %q: %w", p.Name, err))
			continue
		}
		created.OfficerIDs = append(created.OfficerIDs, id)
	}

	for _, p := range draft.Suspects {
		if strings.TrimSpace(p.Name) == "" {
			continue
		}
		id, err := c.CreateSuspect(ctx, &models.CreateSuspectRequest{
			Name: p.Name, Age: derefInt(p.Age), Gender: deref(p.Gender), CrimeID: crimeID,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("suspect %q: %w", p.Name, err))
			continue
		}
		created.SuspectIDs = append(created.SuspectIDs, id)
	}

	for _, p := range draft.Victims {
		if strings.TrimSpace(p.Name) == "" {
			continue
		}
		id, err := c.CreateVictim(ctx, &models.CreateVictimRequest{
			Name: p.Name, Age: derefInt(p.Age), Gender: deref(p.Gender), CrimeID: crimeID,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("victim %q: %w", p.Name, err))
			continue
		}
		created.VictimIDs = append(created.VictimIDs, id)
	}

	if len(errs) > 0 {
		return created, &PartialCreateError{CrimeID: crimeID, Errs: errs}
	}
	return created, nil
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
