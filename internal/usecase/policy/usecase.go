package policy

import (
	"log/slog"
	"time"

	"github.com/tutorstack/settlement-service/internal/domain"
)

// DefaultPolicyUsecase manages the versioned money rules. Policies are
// append-only: a new save becomes the active version for leads and runs
// from then on, and enrollments already frozen under an older version
// are never recomputed.
type DefaultPolicyUsecase struct {
	policyRepo domain.PolicyRepository
}

func NewDefaultPolicyUsecase(policyRepo domain.PolicyRepository) *DefaultPolicyUsecase {
	return &DefaultPolicyUsecase{policyRepo: policyRepo}
}

type SaveSplitPolicyInput struct {
	PlatformPct float64
	CoachPct    float64
	LeadPct     float64
	AdminID     string
}

// SaveSplitPolicy rejects a bad configuration before it can touch any
// enrollment: percentages must sum to 100 within the epsilon.
func (uc *DefaultPolicyUsecase) SaveSplitPolicy(input *SaveSplitPolicyInput) (*domain.SplitPolicy, error) {
	policy := &domain.SplitPolicy{
		PlatformPct: input.PlatformPct,
		CoachPct:    input.CoachPct,
		LeadPct:     input.LeadPct,
		CreatedBy:   input.AdminID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := policy.Validate(); err != nil {
		slog.Error("split policy rejected",
			"platform_pct", input.PlatformPct,
			"coach_pct", input.CoachPct,
			"lead_pct", input.LeadPct,
			"admin_id", input.AdminID,
			"error", err.Error(),
		)
		return nil, err
	}
	if err := uc.policyRepo.SaveSplitPolicy(policy); err != nil {
		return nil, err
	}
	slog.Info("split policy saved", "version", policy.Version, "admin_id", input.AdminID)
	return policy, nil
}

func (uc *DefaultPolicyUsecase) ActiveSplitPolicy() (*domain.SplitPolicy, error) {
	return uc.policyRepo.ActiveSplitPolicy()
}

type SaveWithholdingPolicyInput struct {
	StandardRatePct float64
	PenalRatePct    float64
	ThresholdPaise  int64
	AdminID         string
}

func (uc *DefaultPolicyUsecase) SaveWithholdingPolicy(input *SaveWithholdingPolicyInput) (*domain.WithholdingPolicy, error) {
	policy := &domain.WithholdingPolicy{
		StandardRatePct: input.StandardRatePct,
		PenalRatePct:    input.PenalRatePct,
		ThresholdPaise:  input.ThresholdPaise,
		CreatedBy:       input.AdminID,
		CreatedAt:       time.Now().UTC(),
	}
	if err := policy.Validate(); err != nil {
		slog.Error("withholding policy rejected",
			"standard_rate_pct", input.StandardRatePct,
			"penal_rate_pct", input.PenalRatePct,
			"threshold_paise", input.ThresholdPaise,
			"admin_id", input.AdminID,
			"error", err.Error(),
		)
		return nil, err
	}
	if err := uc.policyRepo.SaveWithholdingPolicy(policy); err != nil {
		return nil, err
	}
	slog.Info("withholding policy saved", "version", policy.Version, "admin_id", input.AdminID)
	return policy, nil
}

func (uc *DefaultPolicyUsecase) ActiveWithholdingPolicy() (*domain.WithholdingPolicy, error) {
	return uc.policyRepo.ActiveWithholdingPolicy()
}
