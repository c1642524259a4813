package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/MadhavSinha007/CrimeFile/internal/models"
)

// setupTestDB opens an in-memory SQLite store and migrates all four
// tables; the dependent services need Crimes present for their
// existence checks.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A second pooled connection would see its own empty :memory: database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Crime{}, &models.Officer{}, &models.Suspect{}, &models.Victim{},
	))
	return db
}

func TestCreateCrime_DefaultsStatusToOpen(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCrimeService(db)

	id, err := svc.CreateCrime(context.Background(), &models.CreateCrimeRequest{
		Description:   "Bank robbery",
		Type:          "Robbery",
		SeverityLevel: "High",
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	crime, err := svc.GetCrime(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, "open", crime.Status)
	require.Equal(t, "Bank robbery", *crime.Description)
	require.Equal(t, "High", *crime.SeverityLevel)
}

func TestCreateCrime_AllFieldsEmpty(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCrimeService(db)

	// No server-side validation on crime creation: an empty body is an
	// accepted, if useless, crime.
	id, err := svc.CreateCrime(context.Background(), &models.CreateCrimeRequest{})
	require.NoError(t, err)

	crime, err := svc.GetCrime(context.Background(), id)
	require.NoError(t, err)
	require.Nil(t, crime.Description)
	require.Nil(t, crime.Type)
	require.Equal(t, "open", crime.Status)
}

func TestGetCrime_Missing(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCrimeService(db)

	_, err := svc.GetCrime(context.Background(), 999)
	require.ErrorIs(t, err, ErrCrimeNotFound)
}

func TestUpdateCrime_SucceedsForExistingAndMissing(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCrimeService(db)

	id, err := svc.CreateCrime(context.Background(), &models.CreateCrimeRequest{Description: "Theft"})
	require.NoError(t, err)

	update := &models.UpdateCrimeRequest{
		Description: "Grand theft", Type: "Theft", SeverityLevel: "Low", Status: "closed",
	}
	require.NoError(t, svc.UpdateCrime(context.Background(), id, update))

	crime, err := svc.GetCrime(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, "Grand theft", *crime.Description)
	require.Equal(t, "closed", crime.Status)

	// Updating a missing id reports success identically.
	require.NoError(t, svc.UpdateCrime(context.Background(), 12345, update))
}

func TestListCrimes_InsertionOrder(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCrimeService(db)

	descriptions := []string{"First", "Second", "Third"}
	for _, d := range descriptions {
		_, err := svc.CreateCrime(context.Background(), &models.CreateCrimeRequest{Description: d})
		require.NoError(t, err)
	}

	for range 2 {
		crimes, err := svc.ListCrimes(context.Background())
		require.NoError(t, err)
		require.Len(t, crimes, 3)
		for i, d := range descriptions {
			require.Equal(t, d, *crimes[i].Description)
		}
	}
}

func TestCreateCrimeFull(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCrimeService(db)

	age := 32
	gender := "Male"
	detail, err := svc.CreateCrimeFull(context.Background(), &models.CreateCrimeFullRequest{
		Description:   "Bank robbery",
		Type:          "Robbery",
		SeverityLevel: "High",
		Officers:      []models.PersonInput{{Name: "John Smith"}},
		Suspects:      []models.PersonInput{{Name: "James Wilson", Age: &age, Gender: &gender}},
		Victims:       []models.PersonInput{{Name: "Bank Corp"}},
	})
	require.NoError(t, err)
	require.NotZero(t, detail.Crime.CrimeID)
	require.Equal(t, "open", detail.Crime.Status)

	require.Len(t, detail.Officers, 1)
	require.Equal(t, detail.Crime.CrimeID, detail.Officers[0].CrimeID)

	require.Len(t, detail.Suspects, 1)
	require.Equal(t, 32, *detail.Suspects[0].Age)

	// Everyone is queryable through the per-entity services afterwards.
	officers, err := NewOfficerService(db).ListByCrime(context.Background(), detail.Crime.CrimeID)
	require.NoError(t, err)
	require.Len(t, officers, 1)

	victims, err := NewVictimService(db).ListByCrime(context.Background(), detail.Crime.CrimeID)
	require.NoError(t, err)
	require.Equal(t, "Bank Corp", victims[0].Name)
}
