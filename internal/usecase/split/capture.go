package split

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/tutorstack/settlement-service/internal/domain"
	enrollmentdto "github.com/tutorstack/settlement-service/internal/usecase/dto/enrollment"
	"gorm.io/gorm"
)

// CaptureEnrollment runs on successful payment capture. It is the only
// writer of the enrollment's frozen source: the lead's stamp is copied
// here, once, and every later computation reads the copy. A lead with
// no stamp (intake never saw a touchpoint) freezes as platform.
func (uc *DefaultSplitUsecase) CaptureEnrollment(input *enrollmentdto.CaptureInput) (*enrollmentdto.CaptureOutput, error) {
	lead, err := uc.leadRepo.GetLeadByID(input.LeadID)
	if err != nil {
		return nil, err
	}
	if lead.AssignedCoachID == nil {
		return nil, domain.ErrLeadNotAssigned
	}

	existing, err := uc.enrollmentRepo.GetEnrollmentByLeadID(input.LeadID)
	switch {
	case err == nil && existing != nil:
		return nil, domain.ErrEnrollmentExists
	case err != nil && !errors.Is(err, domain.ErrEnrollmentNotFound) && !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	source := domain.LeadSource{Type: domain.SourcePlatform}
	if lead.Source != nil {
		source = *lead.Source
	}

	policy, err := uc.policyRepo.ActiveSplitPolicy()
	if err != nil {
		slog.Error("no active split policy, refusing capture",
			"lead_id", input.LeadID,
			"gross_paise", input.GrossPaise,
			"deduction_paise", input.DeductionPaise,
			"error", err.Error(),
		)
		return nil, err
	}

	breakdown, drafts, err := Compute(input.GrossPaise, input.DeductionPaise, source, *lead.AssignedCoachID, policy)
	if err != nil {
		slog.Error("split computation rejected",
			"lead_id", input.LeadID,
			"gross_paise", input.GrossPaise,
			"deduction_paise", input.DeductionPaise,
			"source_type", source.Type,
			"policy_version", policy.Version,
			"error", err.Error(),
		)
		return nil, err
	}

	now := time.Now().UTC()
	enrollment := &domain.Enrollment{
		ID:                 uuid.New().String(),
		LeadID:             lead.ID,
		CoachID:            *lead.AssignedCoachID,
		GrossPaise:         input.GrossPaise,
		DeductionPaise:     input.DeductionPaise,
		NetBasePaise:       breakdown.NetBasePaise,
		FrozenSource:       source,
		SplitPolicyVersion: policy.Version,
		CreatedAt:          now,
	}
	for _, record := range drafts {
		record.ID = uuid.New().String()
		record.EnrollmentID = enrollment.ID
		record.CreatedAt = now
	}
	if err := uc.enrollmentRepo.CreateEnrollmentWithRecords(enrollment, drafts); err != nil {
		slog.Error("failed to persist enrollment with payout records",
			"lead_id", lead.ID,
			"gross_paise", input.GrossPaise,
			"error", err.Error(),
		)
		return nil, err
	}

	if source.Type == domain.SourceCoachReferral {
		if err := uc.visitRepo.MarkConverted(lead.ID); err != nil {
			slog.Error("failed to flip referral visit conversion", "lead_id", lead.ID, "error", err.Error())
		}
	}

	if uc.metrics != nil {
		uc.metrics.EnrollmentsCapturedTotal.Inc()
		uc.metrics.EnrollmentsAmountTotal.WithLabelValues("platform").Add(float64(breakdown.PlatformPaise))
		uc.metrics.EnrollmentsAmountTotal.WithLabelValues("coach").Add(float64(breakdown.CoachPaise))
		uc.metrics.EnrollmentsAmountTotal.WithLabelValues("lead_bonus").Add(float64(breakdown.LeadBonusPaise))
	}

	slog.Info("enrollment captured",
		"enrollment_id", enrollment.ID,
		"lead_id", lead.ID,
		"coach_id", enrollment.CoachID,
		"source_type", source.Type,
		"net_base_paise", breakdown.NetBasePaise,
		"policy_version", policy.Version,
	)

	return &enrollmentdto.CaptureOutput{
		EnrollmentID:   enrollment.ID,
		NetBasePaise:   breakdown.NetBasePaise,
		PlatformPaise:  breakdown.PlatformPaise,
		CoachPaise:     breakdown.CoachPaise,
		LeadBonusPaise: breakdown.LeadBonusPaise,
		PolicyVersion:  policy.Version,
		SourceType:     source.Type,
		Records:        drafts,
	}, nil
}
