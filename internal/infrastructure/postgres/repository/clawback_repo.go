package repository

import (
	"github.com/tutorstack/settlement-service/internal/domain"
	"github.com/tutorstack/settlement-service/internal/infrastructure/postgres/mappers"
	"github.com/tutorstack/settlement-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultClawbackRepository struct {
	DB *gorm.DB
}

func NewDefaultClawbackRepository(db *gorm.DB) *DefaultClawbackRepository {
	return &DefaultClawbackRepository{DB: db}
}

func (r *DefaultClawbackRepository) CreateClawback(clawback *domain.Clawback) error {
	return r.DB.Create(mappers.ToGORMClawback(clawback)).Error
}

func (r *DefaultClawbackRepository) ListOpenByCoach(coachID string) ([]*domain.Clawback, error) {
	var clawbackModels []models.ClawbackModel
	err := r.DB.
		Where("coach_id = ? AND remaining_paise > 0", coachID).
		Order("created_at ASC").
		Find(&clawbackModels).Error
	if err != nil {
		return nil, err
	}
	return toDomainClawbacks(clawbackModels), nil
}

func (r *DefaultClawbackRepository) ListOpen() ([]*domain.Clawback, error) {
	var clawbackModels []models.ClawbackModel
	err := r.DB.
		Where("remaining_paise > 0").
		Order("created_at ASC").
		Find(&clawbackModels).Error
	if err != nil {
		return nil, err
	}
	return toDomainClawbacks(clawbackModels), nil
}

func toDomainClawbacks(clawbackModels []models.ClawbackModel) []*domain.Clawback {
	clawbacks := make([]*domain.Clawback, 0, len(clawbackModels))
	for i := range clawbackModels {
		clawbacks = append(clawbacks, mappers.ToDomainClawback(&clawbackModels[i]))
	}
	return clawbacks
}
