package split

import (
	"errors"
	"testing"

	"github.com/tutorstack/settlement-service/internal/domain"
)

func standardPolicy() *domain.SplitPolicy {
	return &domain.SplitPolicy{Version: 3, PlatformPct: 30, CoachPct: 50, LeadPct: 20}
}

func TestComputePlatformSource(t *testing.T) {
	// Gross 5999.00, gateway fee 180.00, net base 5819.00.
	breakdown, records, err := Compute(599900, 18000, domain.LeadSource{Type: domain.SourcePlatform}, "coach-1", standardPolicy())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if breakdown.NetBasePaise != 581900 {
		t.Fatalf("net base = %d, want 581900", breakdown.NetBasePaise)
	}
	if breakdown.CoachPaise != 290950 {
		t.Fatalf("coach share = %d, want 290950", breakdown.CoachPaise)
	}
	if breakdown.PlatformPaise != 174570 {
		t.Fatalf("platform share = %d, want 174570", breakdown.PlatformPaise)
	}
	if breakdown.LeadBonusPaise != 116380 {
		t.Fatalf("lead bonus = %d, want 116380", breakdown.LeadBonusPaise)
	}
	if breakdown.PolicyVersion != 3 {
		t.Fatalf("policy version = %d, want 3", breakdown.PolicyVersion)
	}

	// Platform-sourced: the lead bonus stays with the platform, so the
	// only record is the servicing coach's share.
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Kind != domain.ShareCoach || records[0].CoachID != "coach-1" || records[0].GrossPaise != 290950 {
		t.Fatalf("unexpected record: %+v", records[0])
	}
	if records[0].Status != domain.PayoutPending {
		t.Fatalf("record status = %s, want PENDING", records[0].Status)
	}
}

func TestComputeReferralSelfService(t *testing.T) {
	source := domain.LeadSource{Type: domain.SourceCoachReferral, CoachID: "coach-1"}
	breakdown, records, err := Compute(599900, 18000, source, "coach-1", standardPolicy())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("got %d records, want 1 combined", len(records))
	}
	if records[0].Kind != domain.ShareCombined {
		t.Fatalf("record kind = %s, want COACH_PLUS_LEAD", records[0].Kind)
	}
	if want := breakdown.CoachPaise + breakdown.LeadBonusPaise; records[0].GrossPaise != want {
		t.Fatalf("combined amount = %d, want %d", records[0].GrossPaise, want)
	}
	if records[0].GrossPaise != 407330 {
		t.Fatalf("combined amount = %d, want 407330", records[0].GrossPaise)
	}
}

func TestComputeReferralDifferentCoach(t *testing.T) {
	source := domain.LeadSource{Type: domain.SourceCoachReferral, CoachID: "coach-referrer"}
	breakdown, records, err := Compute(599900, 18000, source, "coach-servicing", standardPolicy())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Kind != domain.ShareCoach || records[0].CoachID != "coach-servicing" || records[0].GrossPaise != breakdown.CoachPaise {
		t.Fatalf("unexpected coach record: %+v", records[0])
	}
	if records[1].Kind != domain.ShareLeadBonus || records[1].CoachID != "coach-referrer" || records[1].GrossPaise != breakdown.LeadBonusPaise {
		t.Fatalf("unexpected lead bonus record: %+v", records[1])
	}
}

func TestComputeSharesAlwaysSumToNetBase(t *testing.T) {
	policy := &domain.SplitPolicy{Version: 1, PlatformPct: 33.34, CoachPct: 33.33, LeadPct: 33.33}

	// Amounts picked so the percentage math does not divide evenly.
	for _, gross := range []int64{1, 99, 101, 9999, 100001, 581903, 123456789} {
		breakdown, _, err := Compute(gross, 0, domain.LeadSource{Type: domain.SourcePlatform}, "coach-1", policy)
		if err != nil {
			t.Fatalf("gross %d: unexpected error: %v", gross, err)
		}
		sum := breakdown.PlatformPaise + breakdown.CoachPaise + breakdown.LeadBonusPaise
		if sum != breakdown.NetBasePaise {
			t.Fatalf("gross %d: shares sum to %d, net base %d", gross, sum, breakdown.NetBasePaise)
		}
		// Rounding never favors the coach side.
		if float64(breakdown.CoachPaise) > float64(breakdown.NetBasePaise)*policy.CoachPct/100 {
			t.Fatalf("gross %d: coach share %d exceeds exact share", gross, breakdown.CoachPaise)
		}
	}
}

func TestComputeDeductionsExceedGross(t *testing.T) {
	_, _, err := Compute(10000, 10001, domain.LeadSource{Type: domain.SourcePlatform}, "coach-1", standardPolicy())
	if !errors.Is(err, ErrDeductionsExceedGross) {
		t.Fatalf("err = %v, want ErrDeductionsExceedGross", err)
	}
}

func TestComputeZeroNetBase(t *testing.T) {
	breakdown, records, err := Compute(10000, 10000, domain.LeadSource{Type: domain.SourcePlatform}, "coach-1", standardPolicy())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if breakdown.NetBasePaise != 0 || breakdown.CoachPaise != 0 || breakdown.PlatformPaise != 0 {
		t.Fatalf("expected zero breakdown, got %+v", breakdown)
	}
	if len(records) != 1 || records[0].GrossPaise != 0 {
		t.Fatalf("expected one zero record, got %+v", records)
	}
}

func TestComputeRejectsInvalidPolicy(t *testing.T) {
	bad := []*domain.SplitPolicy{
		{PlatformPct: 30, CoachPct: 50, LeadPct: 21},
		{PlatformPct: -10, CoachPct: 90, LeadPct: 20},
		{},
	}
	for _, policy := range bad {
		_, _, err := Compute(10000, 0, domain.LeadSource{Type: domain.SourcePlatform}, "coach-1", policy)
		if !errors.Is(err, domain.ErrInvalidSplitConfig) {
			t.Fatalf("policy %+v: err = %v, want ErrInvalidSplitConfig", policy, err)
		}
	}
}

func TestSplitPolicyValidateEpsilon(t *testing.T) {
	// 33.33+33.33+33.34 is exactly 100 within the tolerance.
	ok := &domain.SplitPolicy{PlatformPct: 33.34, CoachPct: 33.33, LeadPct: 33.33}
	if err := ok.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
