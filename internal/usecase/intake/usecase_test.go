package intake

import (
	"testing"
	"time"

	"github.com/tutorstack/settlement-service/internal/domain"
	"github.com/tutorstack/settlement-service/internal/usecase/assignment"
	"github.com/tutorstack/settlement-service/internal/usecase/attribution"
	leaddto "github.com/tutorstack/settlement-service/internal/usecase/dto/lead"
)

// fakeLeadRepo is an in-memory lead store with the same conditional
// write semantics as the real repository.
type fakeLeadRepo struct {
	leads map[string]*domain.Lead
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{leads: make(map[string]*domain.Lead)}
}

func (r *fakeLeadRepo) CreateLead(lead *domain.Lead) error {
	copied := *lead
	r.leads[lead.ID] = &copied
	return nil
}

func (r *fakeLeadRepo) GetLeadByID(leadID string) (*domain.Lead, error) {
	lead, ok := r.leads[leadID]
	if !ok {
		return nil, domain.ErrLeadNotFound
	}
	copied := *lead
	return &copied, nil
}

func (r *fakeLeadRepo) StampSource(leadID string, source domain.LeadSource, at time.Time) (bool, error) {
	lead, ok := r.leads[leadID]
	if !ok {
		return false, domain.ErrLeadNotFound
	}
	if lead.Source != nil {
		return false, nil
	}
	lead.Source = &source
	lead.StampedAt = &at
	return true, nil
}

func (r *fakeLeadRepo) AssignAuto(leadID, coachID string, at time.Time) (bool, error) {
	lead, ok := r.leads[leadID]
	if !ok {
		return false, domain.ErrLeadNotFound
	}
	if lead.AssignmentState != domain.AssignmentUnassigned {
		return false, nil
	}
	lead.AssignmentState = domain.AssignmentAuto
	lead.AssignedCoachID = &coachID
	lead.AssignedBy = domain.SystemActor
	lead.AssignedAt = &at
	return true, nil
}

func (r *fakeLeadRepo) MarkPendingManual(leadID string, at time.Time) (bool, error) {
	lead, ok := r.leads[leadID]
	if !ok {
		return false, domain.ErrLeadNotFound
	}
	if lead.AssignmentState != domain.AssignmentUnassigned {
		return false, nil
	}
	lead.AssignmentState = domain.AssignmentPendingManual
	return true, nil
}

func (r *fakeLeadRepo) AssignManual(leadID, coachID, adminID string, at time.Time) error {
	lead, ok := r.leads[leadID]
	if !ok {
		return domain.ErrLeadNotFound
	}
	lead.AssignmentState = domain.AssignmentManual
	lead.AssignedCoachID = &coachID
	lead.AssignedBy = adminID
	lead.AssignedAt = &at
	return nil
}

func (r *fakeLeadRepo) ListPendingManual() ([]*domain.Lead, error) {
	var pending []*domain.Lead
	for _, lead := range r.leads {
		if lead.AssignmentState == domain.AssignmentPendingManual {
			pending = append(pending, lead)
		}
	}
	return pending, nil
}

func (r *fakeLeadRepo) CountPendingManual() (int64, error) {
	pending, _ := r.ListPendingManual()
	return int64(len(pending)), nil
}

type fakeCoachRepo struct {
	domain.CoachRepository
	coaches []*domain.Coach
}

func (r *fakeCoachRepo) ListActiveCoaches() ([]*domain.Coach, error) {
	return r.coaches, nil
}

func (r *fakeCoachRepo) GetCoachByReferralCode(code string) (*domain.Coach, error) {
	for _, coach := range r.coaches {
		if coach.ReferralCode == code {
			return coach, nil
		}
	}
	return nil, domain.ErrCoachNotFound
}

type fakeVisitRepo struct {
	domain.ReferralVisitRepository
	visits []*domain.ReferralVisit
}

func (r *fakeVisitRepo) CreateVisit(visit *domain.ReferralVisit) error {
	r.visits = append(r.visits, visit)
	return nil
}

func newIntake(leadRepo *fakeLeadRepo, coachRepo *fakeCoachRepo) *DefaultIntakeUsecase {
	attributionUC := attribution.NewDefaultAttributionUsecase(leadRepo, coachRepo, &fakeVisitRepo{})
	assignmentUC := assignment.NewDefaultAssignmentUsecase(leadRepo, coachRepo, nil, nil)
	return NewDefaultIntakeUsecase(leadRepo, attributionUC, assignmentUC)
}

func TestCreateLeadAttributesAndAssigns(t *testing.T) {
	leadRepo := newFakeLeadRepo()
	coachRepo := &fakeCoachRepo{coaches: []*domain.Coach{
		{ID: "coach-1", Active: true, Available: true, ReferralCode: "ref42abc"},
	}}

	uc := newIntake(leadRepo, coachRepo)

	outcome, err := uc.CreateLead(&leaddto.IntakeInput{StudentName: "Ravi", ReferralCode: "REF42ABC"}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.AssignmentType != domain.AssignmentAuto {
		t.Fatalf("assignment = %s, want AUTO_ASSIGNED", outcome.AssignmentType)
	}
	if outcome.SourceType != domain.SourceCoachReferral {
		t.Fatalf("source = %s, want COACH_REFERRAL", outcome.SourceType)
	}

	lead, err := leadRepo.GetLeadByID(outcome.LeadID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lead.Source == nil || lead.Source.CoachID != "coach-1" {
		t.Fatalf("lead not stamped: %+v", lead.Source)
	}
	if lead.AssignedBy != domain.SystemActor {
		t.Fatalf("assigned by %q, want the system actor", lead.AssignedBy)
	}
}

func TestCreateLeadNoEligibleCoachQueues(t *testing.T) {
	leadRepo := newFakeLeadRepo()
	coachRepo := &fakeCoachRepo{coaches: []*domain.Coach{
		{ID: "coach-1", Active: true, Available: false},
	}}

	uc := newIntake(leadRepo, coachRepo)

	outcome, err := uc.CreateLead(&leaddto.IntakeInput{StudentName: "Ravi"}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.AssignmentType != domain.AssignmentPendingManual {
		t.Fatalf("assignment = %s, want PENDING_MANUAL", outcome.AssignmentType)
	}

	count, _ := leadRepo.CountPendingManual()
	if count != 1 {
		t.Fatalf("pending count = %d, want 1", count)
	}
}

func TestCreateLeadRequiresStudentName(t *testing.T) {
	uc := newIntake(newFakeLeadRepo(), &fakeCoachRepo{})
	if _, err := uc.CreateLead(&leaddto.IntakeInput{}, nil, nil); err == nil {
		t.Fatalf("nameless lead accepted")
	}
}
