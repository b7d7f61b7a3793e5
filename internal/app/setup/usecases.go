package setup

import (
	"github.com/tutorstack/settlement-service/internal/usecase/assignment"
	"github.com/tutorstack/settlement-service/internal/usecase/attribution"
	"github.com/tutorstack/settlement-service/internal/usecase/coach"
	"github.com/tutorstack/settlement-service/internal/usecase/intake"
	"github.com/tutorstack/settlement-service/internal/usecase/payout"
	"github.com/tutorstack/settlement-service/internal/usecase/policy"
	"github.com/tutorstack/settlement-service/internal/usecase/split"
	"github.com/tutorstack/settlement-service/internal/usecase/tax"
)

type UseCases struct {
	CoachUsecase       *coach.DefaultCoachUsecase
	PolicyUsecase      *policy.DefaultPolicyUsecase
	AttributionUsecase *attribution.DefaultAttributionUsecase
	AssignmentUsecase  *assignment.DefaultAssignmentUsecase
	IntakeUsecase      *intake.DefaultIntakeUsecase
	SplitUsecase       *split.DefaultSplitUsecase
	PayoutUsecase      *payout.DefaultPayoutUsecase
}

func InitializeUseCases(deps *Dependencies) *UseCases {
	repos := deps.Repositories

	coachUsecase := coach.NewDefaultCoachUsecase(repos.CoachRepo)
	policyUsecase := policy.NewDefaultPolicyUsecase(repos.PolicyRepo)

	attributionUsecase := attribution.NewDefaultAttributionUsecase(
		repos.LeadRepo,
		repos.CoachRepo,
		repos.VisitRepo,
	)

	assignmentUsecase := assignment.NewDefaultAssignmentUsecase(
		repos.LeadRepo,
		repos.CoachRepo,
		deps.AssignmentPublisher,
		deps.Metrics,
	)

	intakeUsecase := intake.NewDefaultIntakeUsecase(
		repos.LeadRepo,
		attributionUsecase,
		assignmentUsecase,
	)

	splitUsecase := split.NewDefaultSplitUsecase(
		repos.LeadRepo,
		repos.EnrollmentRepo,
		repos.PolicyRepo,
		repos.VisitRepo,
		deps.Metrics,
	)

	payoutUsecase := payout.NewDefaultPayoutUsecase(
		repos.PayoutRepo,
		repos.ClawbackRepo,
		repos.CoachRepo,
		repos.EnrollmentRepo,
		repos.PolicyRepo,
		tax.NewResolver(),
		deps.PayoutPublisher,
		deps.Metrics,
	)

	return &UseCases{
		CoachUsecase:       coachUsecase,
		PolicyUsecase:      policyUsecase,
		AttributionUsecase: attributionUsecase,
		AssignmentUsecase:  assignmentUsecase,
		IntakeUsecase:      intakeUsecase,
		SplitUsecase:       splitUsecase,
		PayoutUsecase:      payoutUsecase,
	}
}
