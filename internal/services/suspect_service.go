package services

import (
	"context"

	"github.com/MadhavSinha007/CrimeFile/internal/models"
	"gorm.io/gorm"
)

// SuspectService defines the operations on suspects linked to a crime.
type SuspectService interface {
	CreateSuspect(ctx context.Context, req *models.CreateSuspectRequest) (uint, error)
	ListByCrime(ctx context.Context, crimeID uint) ([]models.Suspect, error)
	DeleteByCrime(ctx context.Context, crimeID uint) error
}

type suspectService struct {
	db *gorm.DB
}

func NewSuspectService(db *gorm.DB) SuspectService {
	return &suspectService{db: db}
}

func (s *suspectService) CreateSuspect(ctx context.Context, req *models.CreateSuspectRequest) (uint, error) {
	ok, err := crimeExists(ctx, s.db, req.CrimeID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrUnknownCrime
	}

	suspect := models.Suspect{
		Name:    req.Name,
		Age:     &req.Age,
		Gender:  nullable(req.Gender),
		CrimeID: req.CrimeID,
	}
	if err := s.db.WithContext(ctx).Create(&suspect).Error; err != nil {
		return 0, err
	}
	return suspect.SuspectID, nil
}

func (s *suspectService) ListByCrime(ctx context.Context, crimeID uint) ([]models.Suspect, error) {
	var suspects []models.Suspect
	if err := s.db.WithContext(ctx).Where("crime_id = ?", crimeID).Order("suspect_id").Find(&suspects).Error; err != nil {
		return nil, err
	}
	if len(suspects) == 0 {
		return nil, ErrNoneForCrime
	}
	return suspects, nil
}

func (s *suspectService) DeleteByCrime(ctx context.Context, crimeID uint) error {
	return s.db.WithContext(ctx).Where("crime_id = ?", crimeID).Delete(&models.Suspect{}).Error
}
