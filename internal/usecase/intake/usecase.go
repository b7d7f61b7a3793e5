package intake

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/tutorstack/settlement-service/internal/domain"
	"github.com/tutorstack/settlement-service/internal/usecase/assignment"
	"github.com/tutorstack/settlement-service/internal/usecase/attribution"
	leaddto "github.com/tutorstack/settlement-service/internal/usecase/dto/lead"
)

// DefaultIntakeUsecase is the front door for a new discovery call:
// create the lead, stamp attribution, then try auto-assignment.
type DefaultIntakeUsecase struct {
	leadRepo    domain.LeadRepository
	attribution *attribution.DefaultAttributionUsecase
	assignment  *assignment.DefaultAssignmentUsecase
}

func NewDefaultIntakeUsecase(
	leadRepo domain.LeadRepository,
	attributionUC *attribution.DefaultAttributionUsecase,
	assignmentUC *assignment.DefaultAssignmentUsecase,
) *DefaultIntakeUsecase {
	return &DefaultIntakeUsecase{
		leadRepo:    leadRepo,
		attribution: attributionUC,
		assignment:  assignmentUC,
	}
}

// CreateLead registers the lead and runs attribution and matching in
// order. The ranker and constraint come from the caller; the intake
// handler passes its configured defaults.
func (uc *DefaultIntakeUsecase) CreateLead(input *leaddto.IntakeInput, ranker assignment.Ranker, constraint assignment.Constraint) (*leaddto.AssignmentOutcome, error) {
	if input.StudentName == "" {
		return nil, fmt.Errorf("student name is required")
	}

	now := time.Now().UTC()
	lead := &domain.Lead{
		ID:              uuid.New().String(),
		StudentName:     input.StudentName,
		Phone:           input.Phone,
		AssignmentState: domain.AssignmentUnassigned,
		CreatedAt:       now,
	}
	if err := uc.leadRepo.CreateLead(lead); err != nil {
		return nil, err
	}

	source, err := uc.attribution.Track(lead.ID, input.ReferralCode, now)
	if err != nil {
		return nil, err
	}
	slog.Info("lead created", "lead_id", lead.ID, "source_type", source.Type, "referral_coach_id", source.CoachID)

	return uc.assignment.AutoAssign(lead.ID, ranker, constraint)
}
