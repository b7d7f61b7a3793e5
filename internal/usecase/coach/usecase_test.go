package coach

import (
	"testing"

	"github.com/tutorstack/settlement-service/internal/domain"
)

type coachRepoMock struct {
	domain.CoachRepository
	CreateCoachFn       func(coach *domain.Coach) error
	GetCoachByIDFn      func(coachID string) (*domain.Coach, error)
	UpdateTaxIdentityFn func(coachID string, identity domain.TaxIdentity) error
	UpdateExitStatusFn  func(coachID string, status domain.ExitStatus) error
}

func (m *coachRepoMock) CreateCoach(coach *domain.Coach) error {
	return m.CreateCoachFn(coach)
}

func (m *coachRepoMock) GetCoachByID(coachID string) (*domain.Coach, error) {
	if m.GetCoachByIDFn == nil {
		return &domain.Coach{ID: coachID}, nil
	}
	return m.GetCoachByIDFn(coachID)
}

func (m *coachRepoMock) UpdateTaxIdentity(coachID string, identity domain.TaxIdentity) error {
	return m.UpdateTaxIdentityFn(coachID, identity)
}

func (m *coachRepoMock) UpdateExitStatus(coachID string, status domain.ExitStatus) error {
	return m.UpdateExitStatusFn(coachID, status)
}

func TestCreateCoachMintsReferralCode(t *testing.T) {
	var created *domain.Coach
	repo := &coachRepoMock{
		CreateCoachFn: func(coach *domain.Coach) error {
			created = coach
			return nil
		},
	}

	uc := NewDefaultCoachUsecase(repo)

	got, err := uc.CreateCoach(&CreateCoachInput{FullName: "Asha Rao", Phone: "+919999999999"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil || created.ReferralCode == "" {
		t.Fatalf("referral code not minted: %+v", created)
	}
	if len(created.ReferralCode) != referralCodeLength {
		t.Fatalf("code length = %d, want %d", len(created.ReferralCode), referralCodeLength)
	}
	if !got.Active || !got.Available || got.ExitStatus != domain.ExitNone {
		t.Fatalf("new coach defaults: %+v", got)
	}
}

func TestCreateCoachRetriesOnCodeCollision(t *testing.T) {
	seen := map[string]bool{}
	attempts := 0
	repo := &coachRepoMock{
		CreateCoachFn: func(coach *domain.Coach) error {
			attempts++
			if attempts <= 2 {
				seen[coach.ReferralCode] = true
				return domain.ErrReferralCodeTaken
			}
			if seen[coach.ReferralCode] {
				t.Fatalf("retried with the same code %q", coach.ReferralCode)
			}
			return nil
		},
	}

	uc := NewDefaultCoachUsecase(repo)

	if _, err := uc.CreateCoach(&CreateCoachInput{FullName: "Asha Rao"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempts != 3 {
		t.Fatalf("attempts = %d, want 3", attempts)
	}
}

func TestCreateCoachRequiresName(t *testing.T) {
	uc := NewDefaultCoachUsecase(&coachRepoMock{})
	if _, err := uc.CreateCoach(&CreateCoachInput{}); err == nil {
		t.Fatalf("nameless coach accepted")
	}
}

func TestUpdateTaxIdentityNormalizes(t *testing.T) {
	var saved domain.TaxIdentity
	repo := &coachRepoMock{
		UpdateTaxIdentityFn: func(coachID string, identity domain.TaxIdentity) error {
			saved = identity
			return nil
		},
	}

	uc := NewDefaultCoachUsecase(repo)

	err := uc.UpdateTaxIdentity("coach-1", domain.TaxIdentity{
		Type:  domain.TaxIDPan,
		Value: " abcde1234f ",
		// A PAN never carries an Aadhaar linkage flag.
		LinkageVerified: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.Value != "ABCDE1234F" {
		t.Fatalf("value = %q, want uppercased and trimmed", saved.Value)
	}
	if saved.LinkageVerified {
		t.Fatalf("linkage flag survived on a PAN identity")
	}
}

func TestUpdateTaxIdentityEmptyValueClearsIdentity(t *testing.T) {
	var saved domain.TaxIdentity
	repo := &coachRepoMock{
		UpdateTaxIdentityFn: func(coachID string, identity domain.TaxIdentity) error {
			saved = identity
			return nil
		},
	}

	uc := NewDefaultCoachUsecase(repo)

	if err := uc.UpdateTaxIdentity("coach-1", domain.TaxIdentity{Type: domain.TaxIDAadhaar, Value: "", LinkageVerified: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.Type != domain.TaxIDNone || saved.LinkageVerified {
		t.Fatalf("empty value not normalized: %+v", saved)
	}
}

func TestSetExitStatusRejectsUnknown(t *testing.T) {
	uc := NewDefaultCoachUsecase(&coachRepoMock{
		UpdateExitStatusFn: func(coachID string, status domain.ExitStatus) error { return nil },
	})

	if err := uc.SetExitStatus("coach-1", domain.ExitPending); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.SetExitStatus("coach-1", "GONE"); err == nil {
		t.Fatalf("unknown exit status accepted")
	}
}
