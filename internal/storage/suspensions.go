package storage

import (
	"errors"

	"github.com/google/uuid"
	"github.com/resonate-app/resonate-backend/internal/moderation"
	"github.com/resonate-app/resonate-backend/internal/models"
	"gorm.io/gorm"
)

type Suspensions struct {
	db *gorm.DB
}

func NewSuspensions(db *gorm.DB) *Suspensions {
	return &Suspensions{db: db}
}

func (s *Suspensions) Save(susp *models.Suspension) error {
	return s.db.Create(susp).Error
}

func (s *Suspensions) GetByID(id uuid.UUID) (*models.Suspension, error) {
	var susp models.Suspension
	if err := s.db.First(&susp, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, moderation.ErrSuspensionNotFound
		}
		return nil, err
	}
	return &susp, nil
}

func (s *Suspensions) Update(susp *models.Suspension) error {
	return s.db.Save(susp).Error
}

func (s *Suspensions) GetByUser(userID uuid.UUID) ([]models.Suspension, error) {
	var suspensions []models.Suspension
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&suspensions).Error
	return suspensions, err
}

func (s *Suspensions) GetActiveByUser(userID uuid.UUID) ([]models.Suspension, error) {
	var suspensions []models.Suspension
	err := s.db.Where("user_id = ? AND is_active = true", userID).Find(&suspensions).Error
	return suspensions, err
}

func (s *Suspensions) GetActive() ([]models.Suspension, error) {
	var suspensions []models.Suspension
	err := s.db.Where("is_active = true").Find(&suspensions).Error
	return suspensions, err
}

func (s *Suspensions) GetAll() ([]models.Suspension, error) {
	var suspensions []models.Suspension
	err := s.db.Order("created_at DESC").Find(&suspensions).Error
	return suspensions, err
}
