package attribution

import (
	"testing"
	"time"

	"github.com/tutorstack/settlement-service/internal/domain"
)

type leadRepoMock struct {
	domain.LeadRepository
	StampSourceFn func(leadID string, source domain.LeadSource, at time.Time) (bool, error)
	GetLeadByIDFn func(leadID string) (*domain.Lead, error)
}

func (m *leadRepoMock) StampSource(leadID string, source domain.LeadSource, at time.Time) (bool, error) {
	return m.StampSourceFn(leadID, source, at)
}

func (m *leadRepoMock) GetLeadByID(leadID string) (*domain.Lead, error) {
	return m.GetLeadByIDFn(leadID)
}

type coachRepoMock struct {
	domain.CoachRepository
	GetCoachByReferralCodeFn func(code string) (*domain.Coach, error)
}

func (m *coachRepoMock) GetCoachByReferralCode(code string) (*domain.Coach, error) {
	return m.GetCoachByReferralCodeFn(code)
}

type visitRepoMock struct {
	domain.ReferralVisitRepository
	CreateVisitFn func(visit *domain.ReferralVisit) error
	visits        []*domain.ReferralVisit
}

func (m *visitRepoMock) CreateVisit(visit *domain.ReferralVisit) error {
	if m.CreateVisitFn != nil {
		return m.CreateVisitFn(visit)
	}
	m.visits = append(m.visits, visit)
	return nil
}

func TestTrackCoachReferral(t *testing.T) {
	var stamped *domain.LeadSource
	leadRepo := &leadRepoMock{
		StampSourceFn: func(leadID string, source domain.LeadSource, at time.Time) (bool, error) {
			stamped = &source
			return true, nil
		},
	}
	coachRepo := &coachRepoMock{
		GetCoachByReferralCodeFn: func(code string) (*domain.Coach, error) {
			if code != "ref42abc" {
				t.Fatalf("lookup code = %q, want lowercased ref42abc", code)
			}
			return &domain.Coach{ID: "coach-1", Active: true, ReferralCode: code}, nil
		},
	}
	visits := &visitRepoMock{}

	uc := NewDefaultAttributionUsecase(leadRepo, coachRepo, visits)

	source, err := uc.Track("lead-1", "REF42abc", time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source.Type != domain.SourceCoachReferral || source.CoachID != "coach-1" {
		t.Fatalf("source = %+v, want coach referral to coach-1", source)
	}
	if stamped == nil || stamped.CoachID != "coach-1" {
		t.Fatalf("stamp not written: %+v", stamped)
	}
	if len(visits.visits) != 1 || visits.visits[0].Code != "ref42abc" {
		t.Fatalf("visit telemetry missing or wrong: %+v", visits.visits)
	}
}

func TestTrackUnknownCodeFallsBackToPlatform(t *testing.T) {
	leadRepo := &leadRepoMock{
		StampSourceFn: func(leadID string, source domain.LeadSource, at time.Time) (bool, error) {
			if source.Type != domain.SourcePlatform {
				t.Fatalf("stamped %+v, want platform", source)
			}
			return true, nil
		},
	}
	coachRepo := &coachRepoMock{
		GetCoachByReferralCodeFn: func(code string) (*domain.Coach, error) {
			return nil, domain.ErrCoachNotFound
		},
	}
	visits := &visitRepoMock{}

	uc := NewDefaultAttributionUsecase(leadRepo, coachRepo, visits)

	source, err := uc.Track("lead-1", "nosuchcode", time.Now())
	if err != nil {
		t.Fatalf("unknown code must not be an error: %v", err)
	}
	if source.Type != domain.SourcePlatform {
		t.Fatalf("source = %+v, want platform", source)
	}
	// The visit is still recorded for telemetry, with no coach.
	if len(visits.visits) != 1 || visits.visits[0].CoachID != "" {
		t.Fatalf("unexpected visits: %+v", visits.visits)
	}
}

func TestTrackInactiveCoachFallsBackToPlatform(t *testing.T) {
	leadRepo := &leadRepoMock{
		StampSourceFn: func(leadID string, source domain.LeadSource, at time.Time) (bool, error) {
			return true, nil
		},
	}
	coachRepo := &coachRepoMock{
		GetCoachByReferralCodeFn: func(code string) (*domain.Coach, error) {
			return &domain.Coach{ID: "coach-1", Active: false}, nil
		},
	}

	uc := NewDefaultAttributionUsecase(leadRepo, coachRepo, &visitRepoMock{})

	source, err := uc.Track("lead-1", "oldcode", time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source.Type != domain.SourcePlatform {
		t.Fatalf("inactive coach code attributed to %+v, want platform", source)
	}
}

func TestTrackEmptyCodeStampsPlatformWithoutVisit(t *testing.T) {
	leadRepo := &leadRepoMock{
		StampSourceFn: func(leadID string, source domain.LeadSource, at time.Time) (bool, error) {
			return true, nil
		},
	}
	visits := &visitRepoMock{}

	uc := NewDefaultAttributionUsecase(leadRepo, &coachRepoMock{}, visits)

	source, err := uc.Track("lead-1", "", time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source.Type != domain.SourcePlatform {
		t.Fatalf("source = %+v, want platform", source)
	}
	if len(visits.visits) != 0 {
		t.Fatalf("empty code must not create a visit: %+v", visits.visits)
	}
}

func TestTrackFirstTouchWins(t *testing.T) {
	existing := &domain.LeadSource{Type: domain.SourceCoachReferral, CoachID: "coach-early"}
	leadRepo := &leadRepoMock{
		StampSourceFn: func(leadID string, source domain.LeadSource, at time.Time) (bool, error) {
			return false, nil
		},
		GetLeadByIDFn: func(leadID string) (*domain.Lead, error) {
			return &domain.Lead{ID: leadID, Source: existing}, nil
		},
	}
	coachRepo := &coachRepoMock{
		GetCoachByReferralCodeFn: func(code string) (*domain.Coach, error) {
			return &domain.Coach{ID: "coach-late", Active: true}, nil
		},
	}

	uc := NewDefaultAttributionUsecase(leadRepo, coachRepo, &visitRepoMock{})

	source, err := uc.Track("lead-1", "latecode", time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source.CoachID != "coach-early" {
		t.Fatalf("late touch overwrote the stamp: %+v", source)
	}
}
