package services

import (
	"context"

	"github.com/MadhavSinha007/CrimeFile/internal/models"
	"gorm.io/gorm"
)

// VictimService defines the operations on victims linked to a crime.
type VictimService interface {
	CreateVictim(ctx context.Context, req *models.CreateVictimRequest) (uint, error)
	ListByCrime(ctx context.Context, crimeID uint) ([]models.Victim, error)
	DeleteByCrime(ctx context.Context, crimeID uint) error
}

type victimService struct {
	db *gorm.DB
}

func NewVictimService(db *gorm.DB) VictimService {
	return &victimService{db: db}
}

func (s *victimService) CreateVictim(ctx context.Context, req *models.CreateVictimRequest) (uint, error) {
	ok, err := crimeExists(ctx, s.db, req.CrimeID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrUnknownCrime
	}

	victim := models.Victim{
		Name:    req.Name,
		Age:     &req.Age,
		Gender:  nullable(req.Gender),
		CrimeID: req.CrimeID,
	}
	if err := s.db.WithContext(ctx).Create(&victim).Error; err != nil {
		return 0, err
	}
	return victim.VictimID, nil
}

func (s *victimService) ListByCrime(ctx context.Context, crimeID uint) ([]models.Victim, error) {
	var victims []models.Victim
	if err := s.db.WithContext(ctx).Where("crime_id = ?", crimeID).Order("victim_id").Find(&victims).Error; err != nil {
		return nil, err
	}
	if len(victims) == 0 {
		return nil, ErrNoneForCrime
	}
	return victims, nil
}

func (s *victimService) DeleteByCrime(ctx context.Context, crimeID uint) error {
	return s.db.WithContext(ctx).Where("crime_id = ?", crimeID).Delete(&models.Victim{}).Error
}
