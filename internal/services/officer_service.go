package services

import (
	"context"

	"github.com/MadhavSinha007/CrimeFile/internal/models"
	"gorm.io/gorm"
)

// OfficerService defines the operations on officers assigned to a crime.
type OfficerService interface {
	// CreateOfficer inserts an officer and returns the generated id, or
	// ErrUnknownCrime when the crime_id references no crime.
	CreateOfficer(ctx context.Context, req *models.CreateOfficerRequest) (uint, error)

	// ListByCrime returns the officers linked to a crime, or
	// ErrNoneForCrime when there are none.
	ListByCrime(ctx context.Context, crimeID uint) ([]models.Officer, error)

	// DeleteByCrime removes every officer linked to a crime. Deleting
	// zero rows is still success, so repeated calls behave identically.
	DeleteByCrime(ctx context.Context, crimeID uint) error
}

type officerService struct {
	db *gorm.DB
}

func NewOfficerService(db *gorm.DB) OfficerService {
	return &officerService{db: db}
}

func (s *officerService) CreateOfficer(ctx context.Context, req *models.CreateOfficerRequest) (uint, error) {
	ok, err := crimeExists(ctx, s.db, req.CrimeID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrUnknownCrime
	}

	officer := models.Officer{Name: req.Name, CrimeID: req.CrimeID}
	if err := s.db.WithContext(ctx).Create(&officer).Error; err != nil {
		return 0, err
	}
	return officer.OfficerID, nil
}

func (s *officerService) ListByCrime(ctx context.Context, crimeID uint) ([]models.Officer, error) {
	var officers []models.Officer
	if err := s.db.WithContext(ctx).Where("crime_id = ?", crimeID).Order("officer_id").Find(&officers).Error; err != nil {
		return nil, err
	}
	if len(officers) == 0 {
		return nil, ErrNoneForCrime
	}
	return officers, nil
}

func (s *officerService) DeleteByCrime(ctx context.Context, crimeID uint) error {
	return s.db.WithContext(ctx).Where("crime_id = ?", crimeID).Delete(&models.Officer{}).Error
}
