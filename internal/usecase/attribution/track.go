package attribution

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tutorstack/settlement-service/internal/domain"
	"gorm.io/gorm"
)

// Track resolves the referral code and stamps the lead's source. An
// empty or unknown code is the normal case and attributes to the
// platform. The stamp is first-touch: if the lead already carries a
// source the new touch is recorded as telemetry only and the existing
// stamp is returned unchanged.
func (uc *DefaultAttributionUsecase) Track(leadID, code string, at time.Time) (*domain.LeadSource, error) {
	source := domain.LeadSource{Type: domain.SourcePlatform}

	if code != "" {
		coach, err := uc.coachRepo.GetCoachByReferralCode(strings.ToLower(code))
		switch {
		case err == nil && coach.Active:
			source = domain.LeadSource{Type: domain.SourceCoachReferral, CoachID: coach.ID}
		case err == nil:
			// Code of an inactive coach: falls back to platform.
		case errors.Is(err, domain.ErrCoachNotFound) || errors.Is(err, gorm.ErrRecordNotFound):
			// Unknown code is not an error.
		default:
			return nil, err
		}

		visit := &domain.ReferralVisit{
			ID:        uuid.New().String(),
			Code:      strings.ToLower(code),
			CoachID:   source.CoachID,
			LeadID:    leadID,
			CreatedAt: at,
		}
		if err := uc.visitRepo.CreateVisit(visit); err != nil {
			slog.Error("failed to record referral visit", "lead_id", leadID, "code", code, "error", err.Error())
		}
	}

	stamped, err := uc.leadRepo.StampSource(leadID, source, at)
	if err != nil {
		return nil, err
	}
	if stamped {
		return &source, nil
	}

	// A concurrent or earlier touch won. Surface the stamped source and
	// flag a conflict only when this touch would have differed.
	lead, err := uc.leadRepo.GetLeadByID(leadID)
	if err != nil {
		return nil, err
	}
	if lead.Source == nil {
		slog.Warn("lead source stamp lost without a stored source", "lead_id", leadID)
		return &source, nil
	}
	if lead.Source.Type != source.Type || lead.Source.CoachID != source.CoachID {
		slog.Warn("attribution conflict ignored, first touch wins",
			"lead_id", leadID,
			"stamped_type", lead.Source.Type,
			"stamped_coach_id", lead.Source.CoachID,
			"late_type", source.Type,
			"late_coach_id", source.CoachID,
		)
	}
	return lead.Source, nil
}
