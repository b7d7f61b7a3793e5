package payout

import (
	"github.com/tutorstack/settlement-service/internal/domain"
	"github.com/tutorstack/settlement-service/internal/infrastructure/kafka"
	"github.com/tutorstack/settlement-service/internal/infrastructure/metrics"
	"github.com/tutorstack/settlement-service/internal/usecase/tax"
)

type BatchPublisher interface {
	PublishBatch(event kafka.PayoutBatchEvent) error
	PublishClawback(event kafka.ClawbackEvent) error
}

type DefaultPayoutUsecase struct {
	payoutRepo     domain.PayoutRepository
	clawbackRepo   domain.ClawbackRepository
	coachRepo      domain.CoachRepository
	enrollmentRepo domain.EnrollmentRepository
	policyRepo     domain.PolicyRepository
	resolver       *tax.Resolver
	publisher      BatchPublisher
	metrics        *metrics.SettlementMetrics
}

func NewDefaultPayoutUsecase(
	payoutRepo domain.PayoutRepository,
	clawbackRepo domain.ClawbackRepository,
	coachRepo domain.CoachRepository,
	enrollmentRepo domain.EnrollmentRepository,
	policyRepo domain.PolicyRepository,
	resolver *tax.Resolver,
	publisher BatchPublisher,
	m *metrics.SettlementMetrics,
) *DefaultPayoutUsecase {
	return &DefaultPayoutUsecase{
		payoutRepo:     payoutRepo,
		clawbackRepo:   clawbackRepo,
		coachRepo:      coachRepo,
		enrollmentRepo: enrollmentRepo,
		policyRepo:     policyRepo,
		resolver:       resolver,
		publisher:      publisher,
		metrics:        m,
	}
}
