package assignment

import (
	"testing"
	"time"

	"github.com/tutorstack/settlement-service/internal/domain"
	leaddto "github.com/tutorstack/settlement-service/internal/usecase/dto/lead"
)

type leadRepoMock struct {
	domain.LeadRepository
	GetLeadByIDFn        func(leadID string) (*domain.Lead, error)
	AssignAutoFn         func(leadID, coachID string, at time.Time) (bool, error)
	MarkPendingManualFn  func(leadID string, at time.Time) (bool, error)
	AssignManualFn       func(leadID, coachID, adminID string, at time.Time) error
	CountPendingManualFn func() (int64, error)
}

func (m *leadRepoMock) GetLeadByID(leadID string) (*domain.Lead, error) {
	return m.GetLeadByIDFn(leadID)
}

func (m *leadRepoMock) AssignAuto(leadID, coachID string, at time.Time) (bool, error) {
	return m.AssignAutoFn(leadID, coachID, at)
}

func (m *leadRepoMock) MarkPendingManual(leadID string, at time.Time) (bool, error) {
	return m.MarkPendingManualFn(leadID, at)
}

func (m *leadRepoMock) AssignManual(leadID, coachID, adminID string, at time.Time) error {
	return m.AssignManualFn(leadID, coachID, adminID, at)
}

func (m *leadRepoMock) CountPendingManual() (int64, error) {
	return m.CountPendingManualFn()
}

type coachRepoMock struct {
	domain.CoachRepository
	ListActiveCoachesFn func() ([]*domain.Coach, error)
	GetCoachByIDFn      func(coachID string) (*domain.Coach, error)
}

func (m *coachRepoMock) ListActiveCoaches() ([]*domain.Coach, error) {
	return m.ListActiveCoachesFn()
}

func (m *coachRepoMock) GetCoachByID(coachID string) (*domain.Coach, error) {
	return m.GetCoachByIDFn(coachID)
}

func unassignedLead(id string) *domain.Lead {
	return &domain.Lead{ID: id, AssignmentState: domain.AssignmentUnassigned}
}

func TestAutoAssignNeverPicksIneligibleCoach(t *testing.T) {
	pool := []*domain.Coach{
		{ID: "busy", Active: true, Available: false},
		{ID: "exiting", Active: true, Available: true, ExitStatus: domain.ExitPending},
		{ID: "exited", Active: true, Available: true, ExitStatus: domain.ExitExited},
		{ID: "good", Active: true, Available: true, ExitStatus: domain.ExitNone},
	}

	var assignedTo string
	leadRepo := &leadRepoMock{
		GetLeadByIDFn: func(leadID string) (*domain.Lead, error) { return unassignedLead(leadID), nil },
		AssignAutoFn: func(leadID, coachID string, at time.Time) (bool, error) {
			assignedTo = coachID
			return true, nil
		},
	}
	coachRepo := &coachRepoMock{
		ListActiveCoachesFn: func() ([]*domain.Coach, error) { return pool, nil },
	}

	uc := NewDefaultAssignmentUsecase(leadRepo, coachRepo, nil, nil)

	outcome, err := uc.AutoAssign("lead-1", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if assignedTo != "good" {
		t.Fatalf("assigned to %q, want the only eligible coach", assignedTo)
	}
	if outcome.AssignmentType != domain.AssignmentAuto || outcome.CoachID == nil || *outcome.CoachID != "good" {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}
}

func TestAutoAssignEmptyPoolQueuesForManual(t *testing.T) {
	var queued bool
	leadRepo := &leadRepoMock{
		GetLeadByIDFn: func(leadID string) (*domain.Lead, error) { return unassignedLead(leadID), nil },
		MarkPendingManualFn: func(leadID string, at time.Time) (bool, error) {
			queued = true
			return true, nil
		},
	}
	coachRepo := &coachRepoMock{
		ListActiveCoachesFn: func() ([]*domain.Coach, error) {
			return []*domain.Coach{{ID: "busy", Active: true, Available: false}}, nil
		},
	}

	uc := NewDefaultAssignmentUsecase(leadRepo, coachRepo, nil, nil)

	outcome, err := uc.AutoAssign("lead-1", nil, nil)
	if err != nil {
		t.Fatalf("empty eligible set must not be an error: %v", err)
	}
	if !queued {
		t.Fatalf("lead was not queued for manual assignment")
	}
	if outcome.AssignmentType != domain.AssignmentPendingManual {
		t.Fatalf("outcome type = %s, want PENDING_MANUAL", outcome.AssignmentType)
	}
	if outcome.CoachID != nil {
		t.Fatalf("pending outcome carries a coach: %v", *outcome.CoachID)
	}
}

func TestAutoAssignConcurrentLoserKeepsWinner(t *testing.T) {
	winner := "coach-winner"
	leadRepo := &leadRepoMock{
		GetLeadByIDFn: func(leadID string) (*domain.Lead, error) {
			return unassignedLead(leadID), nil
		},
		AssignAutoFn: func(leadID, coachID string, at time.Time) (bool, error) {
			// Another run committed first.
			return false, nil
		},
	}
	leadRepo.GetLeadByIDFn = func() func(string) (*domain.Lead, error) {
		calls := 0
		return func(leadID string) (*domain.Lead, error) {
			calls++
			if calls == 1 {
				return unassignedLead(leadID), nil
			}
			now := time.Now()
			return &domain.Lead{
				ID:              leadID,
				AssignmentState: domain.AssignmentAuto,
				AssignedCoachID: &winner,
				AssignedBy:      domain.SystemActor,
				AssignedAt:      &now,
			}, nil
		}
	}()
	coachRepo := &coachRepoMock{
		ListActiveCoachesFn: func() ([]*domain.Coach, error) {
			return []*domain.Coach{{ID: "coach-loser", Active: true, Available: true}}, nil
		},
	}

	uc := NewDefaultAssignmentUsecase(leadRepo, coachRepo, nil, nil)

	outcome, err := uc.AutoAssign("lead-1", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.CoachID == nil || *outcome.CoachID != winner {
		t.Fatalf("loser did not surface the winner's assignment: %+v", outcome)
	}
}

func TestAutoAssignAlreadyAssignedShortCircuits(t *testing.T) {
	coachID := "coach-1"
	leadRepo := &leadRepoMock{
		GetLeadByIDFn: func(leadID string) (*domain.Lead, error) {
			return &domain.Lead{ID: leadID, AssignmentState: domain.AssignmentManual, AssignedCoachID: &coachID}, nil
		},
	}
	coachRepo := &coachRepoMock{
		ListActiveCoachesFn: func() ([]*domain.Coach, error) {
			t.Fatalf("pool must not be consulted for an assigned lead")
			return nil, nil
		},
	}

	uc := NewDefaultAssignmentUsecase(leadRepo, coachRepo, nil, nil)

	outcome, err := uc.AutoAssign("lead-1", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.AssignmentType != domain.AssignmentManual {
		t.Fatalf("outcome type = %s, want existing MANUALLY_ASSIGNED", outcome.AssignmentType)
	}
}

func TestAutoAssignRankerAndConstraint(t *testing.T) {
	pool := []*domain.Coach{
		{ID: "a", Active: true, Available: true},
		{ID: "b", Active: true, Available: true},
		{ID: "c", Active: true, Available: true},
	}

	var assignedTo string
	leadRepo := &leadRepoMock{
		GetLeadByIDFn: func(leadID string) (*domain.Lead, error) { return unassignedLead(leadID), nil },
		AssignAutoFn: func(leadID, coachID string, at time.Time) (bool, error) {
			assignedTo = coachID
			return true, nil
		},
	}
	coachRepo := &coachRepoMock{
		ListActiveCoachesFn: func() ([]*domain.Coach, error) { return pool, nil },
	}

	uc := NewDefaultAssignmentUsecase(leadRepo, coachRepo, nil, nil)

	notA := func(coach *domain.Coach) bool { return coach.ID != "a" }
	lastOne := func(eligible []*domain.Coach) *domain.Coach { return eligible[len(eligible)-1] }

	if _, err := uc.AutoAssign("lead-1", lastOne, notA); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if assignedTo != "c" {
		t.Fatalf("assigned to %q, want ranker's pick c", assignedTo)
	}
}

func TestManualAssignAllowedFromAnyState(t *testing.T) {
	coachID := "other"
	var manualCalled bool
	leadRepo := &leadRepoMock{
		GetLeadByIDFn: func(leadID string) (*domain.Lead, error) {
			return &domain.Lead{ID: leadID, AssignmentState: domain.AssignmentAuto, AssignedCoachID: &coachID}, nil
		},
		AssignManualFn: func(leadID, newCoachID, adminID string, at time.Time) error {
			manualCalled = true
			if adminID != "admin-7" {
				t.Fatalf("admin actor = %q, want admin-7", adminID)
			}
			return nil
		},
	}
	coachRepo := &coachRepoMock{
		GetCoachByIDFn: func(coachID string) (*domain.Coach, error) {
			// Ineligible on purpose: manual assignment still goes through.
			return &domain.Coach{ID: coachID, Active: true, Available: false}, nil
		},
	}

	uc := NewDefaultAssignmentUsecase(leadRepo, coachRepo, nil, nil)

	outcome, err := uc.ManualAssign(&leaddto.ManualAssignInput{
		LeadID:  "lead-1",
		CoachID: "coach-override",
		AdminID: "admin-7",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !manualCalled {
		t.Fatalf("manual assignment was not persisted")
	}
	if outcome.AssignmentType != domain.AssignmentManual || *outcome.CoachID != "coach-override" {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}
}
