package mappers

import (
	"github.com/tutorstack/settlement-service/internal/domain"
	"github.com/tutorstack/settlement-service/internal/infrastructure/postgres/models"
)

func ToGORMReferralVisit(visit *domain.ReferralVisit) *models.ReferralVisitModel {
	return &models.ReferralVisitModel{
		ID:        visit.ID,
		Code:      visit.Code,
		CoachID:   visit.CoachID,
		LeadID:    visit.LeadID,
		Converted: visit.Converted,
		CreatedAt: visit.CreatedAt,
	}
}

func ToDomainReferralVisit(model *models.ReferralVisitModel) *domain.ReferralVisit {
	return &domain.ReferralVisit{
		ID:        model.ID,
		Code:      model.Code,
		CoachID:   model.CoachID,
		LeadID:    model.LeadID,
		Converted: model.Converted,
		CreatedAt: model.CreatedAt,
	}
}
