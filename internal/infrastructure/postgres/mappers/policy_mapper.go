package mappers

import (
	"github.com/tutorstack/settlement-service/internal/domain"
	"github.com/tutorstack/settlement-service/internal/infrastructure/postgres/models"
)

func ToGORMSplitPolicy(policy *domain.SplitPolicy) *models.SplitPolicyModel {
	return &models.SplitPolicyModel{
		Version:     policy.Version,
		PlatformPct: policy.PlatformPct,
		CoachPct:    policy.CoachPct,
		LeadPct:     policy.LeadPct,
		CreatedBy:   policy.CreatedBy,
		CreatedAt:   policy.CreatedAt,
	}
}

func ToDomainSplitPolicy(model *models.SplitPolicyModel) *domain.SplitPolicy {
	return &domain.SplitPolicy{
		Version:     model.Version,
		PlatformPct: model.PlatformPct,
		CoachPct:    model.CoachPct,
		LeadPct:     model.LeadPct,
		CreatedBy:   model.CreatedBy,
		CreatedAt:   model.CreatedAt,
	}
}

func ToGORMWithholdingPolicy(policy *domain.WithholdingPolicy) *models.WithholdingPolicyModel {
	return &models.WithholdingPolicyModel{
		Version:         policy.Version,
		StandardRatePct: policy.StandardRatePct,
		PenalRatePct:    policy.PenalRatePct,
		ThresholdPaise:  policy.ThresholdPaise,
		CreatedBy:       policy.CreatedBy,
		CreatedAt:       policy.CreatedAt,
	}
}

func ToDomainWithholdingPolicy(model *models.WithholdingPolicyModel) *domain.WithholdingPolicy {
	return &domain.WithholdingPolicy{
		Version:         model.Version,
		StandardRatePct: model.StandardRatePct,
		PenalRatePct:    model.PenalRatePct,
		ThresholdPaise:  model.ThresholdPaise,
		CreatedBy:       model.CreatedBy,
		CreatedAt:       model.CreatedAt,
	}
}
