package split

import (
	"github.com/tutorstack/settlement-service/internal/domain"
	"github.com/tutorstack/settlement-service/internal/infrastructure/metrics"
)

// DefaultSplitUsecase is the payment-capture entry point: it freezes
// the lead's source onto the enrollment and persists the computed
// payout record drafts.
type DefaultSplitUsecase struct {
	leadRepo       domain.LeadRepository
	enrollmentRepo domain.EnrollmentRepository
	policyRepo     domain.PolicyRepository
	visitRepo      domain.ReferralVisitRepository
	metrics        *metrics.SettlementMetrics
}

func NewDefaultSplitUsecase(
	leadRepo domain.LeadRepository,
	enrollmentRepo domain.EnrollmentRepository,
	policyRepo domain.PolicyRepository,
	visitRepo domain.ReferralVisitRepository,
	m *metrics.SettlementMetrics,
) *DefaultSplitUsecase {
	return &DefaultSplitUsecase{
		leadRepo:       leadRepo,
		enrollmentRepo: enrollmentRepo,
		policyRepo:     policyRepo,
		visitRepo:      visitRepo,
		metrics:        m,
	}
}
