package split

import (
	"errors"
	"testing"
	"time"

	"github.com/tutorstack/settlement-service/internal/domain"
)

func (m *enrollmentRepoMock) GetEnrollmentByID(enrollmentID string) (*domain.Enrollment, error) {
	return m.GetEnrollmentByIDFn(enrollmentID)
}

func (m *policyRepoMock) SplitPolicyByVersion(version int) (*domain.SplitPolicy, error) {
	return m.SplitPolicyByVersionFn(version)
}

func TestExplainReplaysFrozenPolicyVersion(t *testing.T) {
	enrollmentRepo := &enrollmentRepoMock{
		GetEnrollmentByIDFn: func(enrollmentID string) (*domain.Enrollment, error) {
			return &domain.Enrollment{
				ID:                 enrollmentID,
				LeadID:             "lead-1",
				CoachID:            "coach-servicing",
				GrossPaise:         599900,
				DeductionPaise:     18000,
				NetBasePaise:       581900,
				FrozenSource:       domain.LeadSource{Type: domain.SourceCoachReferral, CoachID: "coach-ref"},
				SplitPolicyVersion: 3,
				CreatedAt:          time.Now(),
			}, nil
		},
	}
	policyRepo := &policyRepoMock{
		// The active policy has moved on; explain must not see it.
		ActiveSplitPolicyFn: func() (*domain.SplitPolicy, error) {
			t.Fatalf("explain must read the frozen version, not the active policy")
			return nil, nil
		},
		SplitPolicyByVersionFn: func(version int) (*domain.SplitPolicy, error) {
			if version != 3 {
				t.Fatalf("version = %d, want the enrollment's frozen 3", version)
			}
			return &domain.SplitPolicy{Version: 3, PlatformPct: 30, CoachPct: 50, LeadPct: 20}, nil
		},
	}

	uc := NewDefaultSplitUsecase(&leadRepoMock{}, enrollmentRepo, policyRepo, &visitRepoMock{}, nil)

	out, err := uc.ExplainEnrollment("enr-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.CoachPaise != 290950 || out.LeadBonusPaise != 116380 || out.PlatformPaise != 174570 {
		t.Fatalf("breakdown: %+v", out)
	}
	if out.PolicyVersion != 3 || out.SourceCoachID != "coach-ref" {
		t.Fatalf("explain output: %+v", out)
	}
	if out.CoachPaise+out.LeadBonusPaise+out.PlatformPaise != out.NetBasePaise {
		t.Fatalf("shares do not sum to net base: %+v", out)
	}
}

func TestExplainUnknownEnrollment(t *testing.T) {
	enrollmentRepo := &enrollmentRepoMock{
		GetEnrollmentByIDFn: func(enrollmentID string) (*domain.Enrollment, error) {
			return nil, domain.ErrEnrollmentNotFound
		},
	}

	uc := NewDefaultSplitUsecase(&leadRepoMock{}, enrollmentRepo, &policyRepoMock{}, &visitRepoMock{}, nil)

	if _, err := uc.ExplainEnrollment("nope"); !errors.Is(err, domain.ErrEnrollmentNotFound) {
		t.Fatalf("err = %v, want ErrEnrollmentNotFound", err)
	}
}
