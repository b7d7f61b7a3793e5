package assignment

import (
	"github.com/tutorstack/settlement-service/internal/domain"
	"github.com/tutorstack/settlement-service/internal/infrastructure/kafka"
	"github.com/tutorstack/settlement-service/internal/infrastructure/metrics"
)

// Ranker picks the winning coach from a non-empty eligible set. The
// heuristic (lowest load, longest idle, ...) belongs to the caller;
// the matcher owns only eligibility and the state transition.
type Ranker func(eligible []*domain.Coach) *domain.Coach

// Constraint is an optional extra servicing filter (capacity caps and
// the like) applied after the base eligibility check.
type Constraint func(coach *domain.Coach) bool

// FirstEligible is the fallback ranker when the caller supplies none.
func FirstEligible(eligible []*domain.Coach) *domain.Coach {
	return eligible[0]
}

type AssignmentPublisher interface {
	PublishAssignment(event kafka.AssignmentEvent) error
}

type DefaultAssignmentUsecase struct {
	leadRepo  domain.LeadRepository
	coachRepo domain.CoachRepository
	publisher AssignmentPublisher
	metrics   *metrics.SettlementMetrics
}

func NewDefaultAssignmentUsecase(
	leadRepo domain.LeadRepository,
	coachRepo domain.CoachRepository,
	publisher AssignmentPublisher,
	m *metrics.SettlementMetrics,
) *DefaultAssignmentUsecase {
	return &DefaultAssignmentUsecase{
		leadRepo:  leadRepo,
		coachRepo: coachRepo,
		publisher: publisher,
		metrics:   m,
	}
}
