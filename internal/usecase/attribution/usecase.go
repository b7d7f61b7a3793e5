package attribution

import (
	"github.com/tutorstack/settlement-service/internal/domain"
)

// DefaultAttributionUsecase resolves referral codes to coaches and
// stamps first-touch attribution onto leads.
type DefaultAttributionUsecase struct {
	leadRepo  domain.LeadRepository
	coachRepo domain.CoachRepository
	visitRepo domain.ReferralVisitRepository
}

func NewDefaultAttributionUsecase(
	leadRepo domain.LeadRepository,
	coachRepo domain.CoachRepository,
	visitRepo domain.ReferralVisitRepository,
) *DefaultAttributionUsecase {
	return &DefaultAttributionUsecase{
		leadRepo:  leadRepo,
		coachRepo: coachRepo,
		visitRepo: visitRepo,
	}
}
