package mappers

import (
	"github.com/tutorstack/settlement-service/internal/domain"
	"github.com/tutorstack/settlement-service/internal/infrastructure/postgres/models"
)

func ToGORMEnrollment(enrollment *domain.Enrollment) *models.EnrollmentModel {
	return &models.EnrollmentModel{
		ID:                 enrollment.ID,
		LeadID:             enrollment.LeadID,
		CoachID:            enrollment.CoachID,
		GrossPaise:         enrollment.GrossPaise,
		DeductionPaise:     enrollment.DeductionPaise,
		NetBasePaise:       enrollment.NetBasePaise,
		SourceType:         string(enrollment.FrozenSource.Type),
		SourceCoachID:      enrollment.FrozenSource.CoachID,
		SplitPolicyVersion: enrollment.SplitPolicyVersion,
		Disputed:           enrollment.Disputed,
		CreatedAt:          enrollment.CreatedAt,
	}
}

func ToDomainEnrollment(model *models.EnrollmentModel) *domain.Enrollment {
	return &domain.Enrollment{
		ID:             model.ID,
		LeadID:         model.LeadID,
		CoachID:        model.CoachID,
		GrossPaise:     model.GrossPaise,
		DeductionPaise: model.DeductionPaise,
		NetBasePaise:   model.NetBasePaise,
		FrozenSource: domain.LeadSource{
			Type:    domain.SourceType(model.SourceType),
			CoachID: model.SourceCoachID,
		},
		SplitPolicyVersion: model.SplitPolicyVersion,
		Disputed:           model.Disputed,
		CreatedAt:          model.CreatedAt,
	}
}
