package split

import (
	enrollmentdto "github.com/tutorstack/settlement-service/internal/usecase/dto/enrollment"
)

// ExplainEnrollment re-derives an enrollment's breakdown from its
// frozen source and the policy version it was captured under. Because
// policies are append-only and the source is frozen, the recomputed
// shares match what was persisted at capture time, however many
// policies have shipped since.
func (uc *DefaultSplitUsecase) ExplainEnrollment(enrollmentID string) (*enrollmentdto.ExplainOutput, error) {
	enrollment, err := uc.enrollmentRepo.GetEnrollmentByID(enrollmentID)
	if err != nil {
		return nil, err
	}

	policy, err := uc.policyRepo.SplitPolicyByVersion(enrollment.SplitPolicyVersion)
	if err != nil {
		return nil, err
	}

	breakdown, _, err := Compute(enrollment.GrossPaise, enrollment.DeductionPaise, enrollment.FrozenSource, enrollment.CoachID, policy)
	if err != nil {
		return nil, err
	}

	return &enrollmentdto.ExplainOutput{
		EnrollmentID:   enrollment.ID,
		LeadID:         enrollment.LeadID,
		CoachID:        enrollment.CoachID,
		GrossPaise:     enrollment.GrossPaise,
		DeductionPaise: enrollment.DeductionPaise,
		NetBasePaise:   breakdown.NetBasePaise,
		PlatformPaise:  breakdown.PlatformPaise,
		CoachPaise:     breakdown.CoachPaise,
		LeadBonusPaise: breakdown.LeadBonusPaise,
		PolicyVersion:  policy.Version,
		SourceType:     enrollment.FrozenSource.Type,
		SourceCoachID:  enrollment.FrozenSource.CoachID,
		Disputed:       enrollment.Disputed,
		CapturedAt:     enrollment.CreatedAt,
	}, nil
}
