package mappers

import (
	"github.com/tutorstack/settlement-service/internal/domain"
	"github.com/tutorstack/settlement-service/internal/infrastructure/postgres/models"
)

func ToGORMCoach(coach *domain.Coach) *models.CoachModel {
	return &models.CoachModel{
		ID:                 coach.ID,
		FullName:           coach.FullName,
		Phone:              coach.Phone,
		Active:             coach.Active,
		Available:          coach.Available,
		ExitStatus:         string(coach.ExitStatus),
		TaxIDType:          string(coach.TaxIdentity.Type),
		TaxIDValue:         coach.TaxIdentity.Value,
		TaxLinkageVerified: coach.TaxIdentity.LinkageVerified,
		BankAccountNumber:  coach.Destination.AccountNumber,
		BankIFSC:           coach.Destination.IFSC,
		BankHolderName:     coach.Destination.HolderName,
		ReferralCode:       coach.ReferralCode,
		CreatedAt:          coach.CreatedAt,
		UpdatedAt:          coach.UpdatedAt,
	}
}

func ToDomainCoach(model *models.CoachModel) *domain.Coach {
	return &domain.Coach{
		ID:         model.ID,
		FullName:   model.FullName,
		Phone:      model.Phone,
		Active:     model.Active,
		Available:  model.Available,
		ExitStatus: domain.ExitStatus(model.ExitStatus),
		TaxIdentity: domain.TaxIdentity{
			Type:            domain.TaxIDType(model.TaxIDType),
			Value:           model.TaxIDValue,
			LinkageVerified: model.TaxLinkageVerified,
		},
		Destination: domain.PayoutDestination{
			AccountNumber: model.BankAccountNumber,
			IFSC:          model.BankIFSC,
			HolderName:    model.BankHolderName,
		},
		ReferralCode: model.ReferralCode,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}
