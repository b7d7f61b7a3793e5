package assignment

import (
	"log/slog"
	"time"

	"github.com/tutorstack/settlement-service/internal/domain"
	"github.com/tutorstack/settlement-service/internal/infrastructure/kafka"
	leaddto "github.com/tutorstack/settlement-service/internal/usecase/dto/lead"
)

// AutoAssign moves an unassigned lead to AUTO_ASSIGNED or, when no
// coach is eligible, to PENDING_MANUAL. An empty eligible set is a
// valid outcome, never an error: assigning an unavailable or exiting
// coach instead would be an incident.
//
// The unassigned->assigned transition is a conditional write. When a
// concurrent attempt wins, this one reloads the lead and returns the
// now-current assignment without touching it.
func (uc *DefaultAssignmentUsecase) AutoAssign(leadID string, ranker Ranker, constraint Constraint) (*leaddto.AssignmentOutcome, error) {
	lead, err := uc.leadRepo.GetLeadByID(leadID)
	if err != nil {
		return nil, err
	}
	if lead.AssignmentState != domain.AssignmentUnassigned {
		return outcomeFromLead(lead), nil
	}

	pool, err := uc.coachRepo.ListActiveCoaches()
	if err != nil {
		return nil, err
	}

	eligible := make([]*domain.Coach, 0, len(pool))
	for _, coach := range pool {
		if !coach.Eligible() {
			continue
		}
		if constraint != nil && !constraint(coach) {
			continue
		}
		eligible = append(eligible, coach)
	}

	now := time.Now().UTC()

	if len(eligible) == 0 {
		ok, err := uc.leadRepo.MarkPendingManual(leadID, now)
		if err != nil {
			return nil, err
		}
		if !ok {
			return uc.reload(leadID)
		}
		slog.Info("no eligible coach, lead queued for manual assignment", "lead_id", leadID, "pool_size", len(pool))
		if uc.metrics != nil {
			uc.metrics.LeadsPendingManual.Inc()
			uc.metrics.AssignmentsTotal.WithLabelValues(string(domain.AssignmentPendingManual)).Inc()
		}
		uc.publishEvent(kafka.AssignmentEvent{
			LeadID:         leadID,
			AssignmentType: string(domain.AssignmentPendingManual),
			AssignedBy:     domain.SystemActor,
		})
		return &leaddto.AssignmentOutcome{
			LeadID:         leadID,
			AssignmentType: domain.AssignmentPendingManual,
			SourceType:     sourceType(lead),
		}, nil
	}

	if ranker == nil {
		ranker = FirstEligible
	}
	chosen := ranker(eligible)

	ok, err := uc.leadRepo.AssignAuto(leadID, chosen.ID, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return uc.reload(leadID)
	}

	slog.Info("lead auto-assigned", "lead_id", leadID, "coach_id", chosen.ID)
	if uc.metrics != nil {
		uc.metrics.AssignmentsTotal.WithLabelValues(string(domain.AssignmentAuto)).Inc()
	}
	uc.publishEvent(kafka.AssignmentEvent{
		LeadID:         leadID,
		CoachID:        chosen.ID,
		AssignmentType: string(domain.AssignmentAuto),
		AssignedBy:     domain.SystemActor,
	})

	coachID := chosen.ID
	return &leaddto.AssignmentOutcome{
		LeadID:         leadID,
		AssignmentType: domain.AssignmentAuto,
		CoachID:        &coachID,
		SourceType:     sourceType(lead),
	}, nil
}

func (uc *DefaultAssignmentUsecase) reload(leadID string) (*leaddto.AssignmentOutcome, error) {
	lead, err := uc.leadRepo.GetLeadByID(leadID)
	if err != nil {
		return nil, err
	}
	return outcomeFromLead(lead), nil
}

func (uc *DefaultAssignmentUsecase) publishEvent(event kafka.AssignmentEvent) {
	if uc.publisher == nil {
		return
	}
	go func() {
		if err := uc.publisher.PublishAssignment(event); err != nil {
			slog.Error("failed to publish AssignmentEvent", "lead_id", event.LeadID, "error", err.Error())
		}
	}()
}

func outcomeFromLead(lead *domain.Lead) *leaddto.AssignmentOutcome {
	return &leaddto.AssignmentOutcome{
		LeadID:         lead.ID,
		AssignmentType: lead.AssignmentState,
		CoachID:        lead.AssignedCoachID,
		SourceType:     sourceType(lead),
	}
}

func sourceType(lead *domain.Lead) domain.SourceType {
	if lead.Source == nil {
		return domain.SourcePlatform
	}
	return lead.Source.Type
}
