package attribution

import "github.com/tutorstack/settlement-service/internal/domain"

// VisitsForLead returns the lead's touch telemetry, oldest first. The
// list is evidence for support reviews: it shows every code the lead
// arrived with, including the late touches the first-touch stamp
// ignored.
func (uc *DefaultAttributionUsecase) VisitsForLead(leadID string) ([]*domain.ReferralVisit, error) {
	if _, err := uc.leadRepo.GetLeadByID(leadID); err != nil {
		return nil, err
	}
	return uc.visitRepo.ListVisitsByLead(leadID)
}
