package assignment

import (
	"log/slog"
	"time"

	"github.com/tutorstack/settlement-service/internal/domain"
	"github.com/tutorstack/settlement-service/internal/infrastructure/kafka"
	leaddto "github.com/tutorstack/settlement-service/internal/usecase/dto/lead"
)

// ManualAssign is the admin path. It is permitted from any state,
// including over an existing auto-assignment, and always records the
// admin as the actor. Reassigning a converted lead changes servicing
// only; the enrollment's frozen source is untouched.
func (uc *DefaultAssignmentUsecase) ManualAssign(input *leaddto.ManualAssignInput) (*leaddto.AssignmentOutcome, error) {
	lead, err := uc.leadRepo.GetLeadByID(input.LeadID)
	if err != nil {
		return nil, err
	}

	coach, err := uc.coachRepo.GetCoachByID(input.CoachID)
	if err != nil {
		return nil, err
	}
	if !coach.Eligible() {
		slog.Warn("manual assignment to ineligible coach",
			"lead_id", input.LeadID,
			"coach_id", coach.ID,
			"admin_id", input.AdminID,
			"available", coach.Available,
			"exit_status", coach.ExitStatus,
		)
	}

	wasPending := lead.AssignmentState == domain.AssignmentPendingManual

	if err := uc.leadRepo.AssignManual(input.LeadID, input.CoachID, input.AdminID, time.Now().UTC()); err != nil {
		return nil, err
	}

	slog.Info("lead manually assigned", "lead_id", input.LeadID, "coach_id", input.CoachID, "admin_id", input.AdminID)
	if uc.metrics != nil {
		uc.metrics.AssignmentsTotal.WithLabelValues(string(domain.AssignmentManual)).Inc()
		if wasPending {
			uc.metrics.LeadsPendingManual.Dec()
		}
	}
	uc.publishEvent(kafka.AssignmentEvent{
		LeadID:         input.LeadID,
		CoachID:        input.CoachID,
		AssignmentType: string(domain.AssignmentManual),
		AssignedBy:     input.AdminID,
	})

	coachID := input.CoachID
	return &leaddto.AssignmentOutcome{
		LeadID:         input.LeadID,
		AssignmentType: domain.AssignmentManual,
		CoachID:        &coachID,
		SourceType:     sourceType(lead),
	}, nil
}

// PendingQueue lists leads waiting on a human, the operational signal
// behind the pending-manual gauge.
func (uc *DefaultAssignmentUsecase) PendingQueue() ([]*domain.Lead, error) {
	return uc.leadRepo.ListPendingManual()
}

// SeedPendingGauge sets the pending-manual gauge from the database.
// The gauge is otherwise only Inc'd and Dec'd in-process, so a restart
// would report zero until the queue churns. Called once at startup.
func (uc *DefaultAssignmentUsecase) SeedPendingGauge() error {
	if uc.metrics == nil {
		return nil
	}
	count, err := uc.leadRepo.CountPendingManual()
	if err != nil {
		return err
	}
	uc.metrics.LeadsPendingManual.Set(float64(count))
	return nil
}
