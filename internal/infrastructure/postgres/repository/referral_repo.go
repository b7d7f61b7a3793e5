package repository

import (
	"github.com/tutorstack/settlement-service/internal/domain"
	"github.com/tutorstack/settlement-service/internal/infrastructure/postgres/mappers"
	"github.com/tutorstack/settlement-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultReferralVisitRepository struct {
	DB *gorm.DB
}

func NewDefaultReferralVisitRepository(db *gorm.DB) *DefaultReferralVisitRepository {
	return &DefaultReferralVisitRepository{DB: db}
}

func (r *DefaultReferralVisitRepository) CreateVisit(visit *domain.ReferralVisit) error {
	return r.DB.Create(mappers.ToGORMReferralVisit(visit)).Error
}

func (r *DefaultReferralVisitRepository) ListVisitsByLead(leadID string) ([]*domain.ReferralVisit, error) {
	var visitModels []models.ReferralVisitModel
	err := r.DB.
		Where("lead_id = ?", leadID).
		Order("created_at ASC").
		Find(&visitModels).Error
	if err != nil {
		return nil, err
	}
	visits := make([]*domain.ReferralVisit, 0, len(visitModels))
	for i := range visitModels {
		visits = append(visits, mappers.ToDomainReferralVisit(&visitModels[i]))
	}
	return visits, nil
}

func (r *DefaultReferralVisitRepository) MarkConverted(leadID string) error {
	return r.DB.Model(&models.ReferralVisitModel{}).
		Where("lead_id = ? AND coach_id <> '' AND converted = ?", leadID, false).
		Update("converted", true).Error
}
