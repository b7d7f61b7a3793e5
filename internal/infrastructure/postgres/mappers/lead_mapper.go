package mappers

import (
	"github.com/tutorstack/settlement-service/internal/domain"
	"github.com/tutorstack/settlement-service/internal/infrastructure/postgres/models"
)

func ToGORMLead(lead *domain.Lead) *models.LeadModel {
	model := &models.LeadModel{
		ID:              lead.ID,
		StudentName:     lead.StudentName,
		Phone:           lead.Phone,
		StampedAt:       lead.StampedAt,
		AssignmentState: string(lead.AssignmentState),
		AssignedCoachID: lead.AssignedCoachID,
		AssignedBy:      lead.AssignedBy,
		AssignedAt:      lead.AssignedAt,
		CreatedAt:       lead.CreatedAt,
		UpdatedAt:       lead.UpdatedAt,
	}
	if lead.Source != nil {
		sourceType := string(lead.Source.Type)
		model.SourceType = &sourceType
		if lead.Source.CoachID != "" {
			coachID := lead.Source.CoachID
			model.SourceCoachID = &coachID
		}
	}
	return model
}

func ToDomainLead(model *models.LeadModel) *domain.Lead {
	lead := &domain.Lead{
		ID:              model.ID,
		StudentName:     model.StudentName,
		Phone:           model.Phone,
		StampedAt:       model.StampedAt,
		AssignmentState: domain.AssignmentState(model.AssignmentState),
		AssignedCoachID: model.AssignedCoachID,
		AssignedBy:      model.AssignedBy,
		AssignedAt:      model.AssignedAt,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
	if model.SourceType != nil {
		source := domain.LeadSource{Type: domain.SourceType(*model.SourceType)}
		if model.SourceCoachID != nil {
			source.CoachID = *model.SourceCoachID
		}
		lead.Source = &source
	}
	return lead
}
