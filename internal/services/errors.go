package services

import (
	"context"
	"errors"

	"github.com/MadhavSinha007/CrimeFile/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrCrimeNotFound reports a point lookup that matched no crime.
	ErrCrimeNotFound = errors.New("no crime found with this id")

	// ErrNoneForCrime reports a list-by-crime lookup that matched zero
	// rows. Kept distinct from an empty slice on purpose: the API layer
	// answers 404 for it, never an empty 200 list.
	ErrNoneForCrime = errors.New("no records linked to this crime")

	// ErrUnknownCrime reports a dependent create whose crime_id references
	// no crime row.
	ErrUnknownCrime = errors.New("referenced crime does not exist")
)

// crimeExists checks the referential-integrity rule shared by the three
// dependent services before they insert.
func crimeExists(ctx context.Context, db *gorm.DB, crimeID uint) (bool, error) {
	var crime models.Crime
	err := db.WithContext(ctx).Select("crime_id").First(&crime, "crime_id = ?", crimeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// nullable maps an empty string to NULL so optional text columns stay
// NULL instead of collecting empty strings.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
