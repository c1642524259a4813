package services

import (
	"context"
	"errors"

	"github.com/MadhavSinha007/CrimeFile/internal/models"
	"gorm.io/gorm"
)

// CrimeService defines the operations on the crime aggregate root.
type CrimeService interface {
	// CreateCrime inserts a crime and returns the generated id. Status
	// defaults to "open" when the caller omits it.
	CreateCrime(ctx context.Context, req *models.CreateCrimeRequest) (uint, error)

	// GetCrime returns ErrCrimeNotFound when the id matches no row.
	GetCrime(ctx context.Context, id uint) (*models.Crime, error)

	// ListCrimes returns every crime in insertion (crime_id) order.
	ListCrimes(ctx context.Context) ([]models.Crime, error)

	// UpdateCrime overwrites all tracked columns. It reports success
	// whether or not the row existed; callers cannot tell the two apart.
	UpdateCrime(ctx context.Context, id uint, req *models.UpdateCrimeRequest) error

	// CreateCrimeFull creates a crime and its people in one transaction,
	// so a failed person insert leaves no orphaned crime behind.
	CreateCrimeFull(ctx context.Context, req *models.CreateCrimeFullRequest) (*models.CrimeDetail, error)
}

type crimeService struct {
	db *gorm.DB
}

// NewCrimeService injects the store handle and returns a ready CrimeService.
func NewCrimeService(db *gorm.DB) CrimeService {
	return &crimeService{db: db}
}

func (s *crimeService) CreateCrime(ctx context.Context, req *models.CreateCrimeRequest) (uint, error) {
	crime := crimeFromFields(req.Description, req.SeverityLevel, req.Type, req.Status)
	if err := s.db.WithContext(ctx).Create(crime).Error; err != nil {
		return 0, err
	}
	return crime.CrimeID, nil
}

func (s *crimeService) GetCrime(ctx context.Context, id uint) (*models.Crime, error) {
	var crime models.Crime
	err := s.db.WithContext(ctx).First(&crime, "crime_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCrimeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &crime, nil
}

func (s *crimeService) ListCrimes(ctx context.Context) ([]models.Crime, error) {
	var crimes []models.Crime
	if err := s.db.WithContext(ctx).Order("crime_id").Find(&crimes).Error; err != nil {
		return nil, err
	}
	return crimes, nil
}

func (s *crimeService) UpdateCrime(ctx context.Context, id uint, req *models.UpdateCrimeRequest) error {
	// RowsAffected is deliberately ignored: updating a missing id has
	// always reported success on this API.
	return s.db.WithContext(ctx).
		Model(&models.Crime{}).
		Where("crime_id = ?", id).
		Updates(map[string]interface{}{
			"description":    nullable(req.Description),
			"severity_level": nullable(req.SeverityLevel.String()),
			"type":           nullable(req.Type),
			"status":         req.Status,
		}).Error
}

func (s *crimeService) CreateCrimeFull(ctx context.Context, req *models.CreateCrimeFullRequest) (*models.CrimeDetail, error) {
	detail := &models.CrimeDetail{}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		crime := crimeFromFields(req.Description, req.SeverityLevel, req.Type, req.Status)
		if err := tx.Create(crime).Error; err != nil {
			return err
		}
		detail.Crime = *crime

		for _, p := range req.Officers {
			officer := models.Officer{Name: p.Name, CrimeID: crime.CrimeID}
			if err := tx.Create(&officer).Error; err != nil {
				return err
			}
			detail.Officers = append(detail.Officers, officer)
		}
		for _, p := range req.Suspects {
			suspect := models.Suspect{Name: p.Name, Age: p.Age, Gender: p.Gender, CrimeID: crime.CrimeID}
			if err := tx.Create(&suspect).Error; err != nil {
				return err
			}
			detail.Suspects = append(detail.Suspects, suspect)
		}
		for _, p := range req.Victims {
			victim := models.Victim{Name: p.Name, Age: p.Age, Gender: p.Gender, CrimeID: crime.CrimeID}
			if err := tx.Create(&victim).Error; err != nil {
				return err
			}
			detail.Victims = append(detail.Victims, victim)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

func crimeFromFields(description string, severity models.SeverityText, crimeType, status string) *models.Crime {
	if status == "" {
		status = "open"
	}
	return &models.Crime{
		Description:   nullable(description),
		SeverityLevel: nullable(severity.String()),
		Type:          nullable(crimeType),
		Status:        status,
	}
}
