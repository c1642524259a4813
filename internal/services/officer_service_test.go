package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MadhavSinha007/CrimeFile/internal/models"
)

func TestCreateOfficer_UnknownCrime(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOfficerService(db)

	_, err := svc.CreateOfficer(context.Background(), &models.CreateOfficerRequest{
		Name: "John Smith", CrimeID: 42,
	})
	require.ErrorIs(t, err, ErrUnknownCrime)
}

func TestOfficerListByCrime(t *testing.T) {
	db := setupTestDB(t)
	crimeID, err := NewCrimeService(db).CreateCrime(context.Background(), &models.CreateCrimeRequest{Description: "Robbery"})
	require.NoError(t, err)

	svc := NewOfficerService(db)

	// A crime with no officers is a tagged "none" outcome, not an empty
	// list.
	_, err = svc.ListByCrime(context.Background(), crimeID)
	require.ErrorIs(t, err, ErrNoneForCrime)

	id, err := svc.CreateOfficer(context.Background(), &models.CreateOfficerRequest{
		Name: "John Smith", CrimeID: crimeID,
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	officers, err := svc.ListByCrime(context.Background(), crimeID)
	require.NoError(t, err)
	require.Len(t, officers, 1)
	require.Equal(t, "John Smith", officers[0].Name)
	require.Equal(t, crimeID, officers[0].CrimeID)
}

func TestOfficerDeleteByCrime_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	crimeID, err := NewCrimeService(db).CreateCrime(context.Background(), &models.CreateCrimeRequest{Description: "Robbery"})
	require.NoError(t, err)

	svc := NewOfficerService(db)
	_, err = svc.CreateOfficer(context.Background(), &models.CreateOfficerRequest{Name: "John Smith", CrimeID: crimeID})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteByCrime(context.Background(), crimeID))
	_, err = svc.ListByCrime(context.Background(), crimeID)
	require.ErrorIs(t, err, ErrNoneForCrime)

	// Second delete matches zero rows and still succeeds.
	require.NoError(t, svc.DeleteByCrime(context.Background(), crimeID))
}
