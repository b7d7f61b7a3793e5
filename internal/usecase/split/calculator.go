package split

import (
	"errors"
	"math"

	"github.com/tutorstack/settlement-service/internal/domain"
)

var ErrDeductionsExceedGross = errors.New("deductions exceed gross fee")

// Breakdown is one enrollment's money split in paise. The three shares
// always sum to NetBasePaise: coach-facing shares are floored and the
// remainder lands on the platform share, so a coach total is never
// inflated by rounding.
type Breakdown struct {
	NetBasePaise   int64
	PlatformPaise  int64
	CoachPaise     int64
	LeadBonusPaise int64
	PolicyVersion  int
}

// Compute splits an enrollment's net base between platform, servicing
// coach and lead source under a versioned policy, and drafts the
// payout records the capture flow persists.
//
// The source argument must be the enrollment's frozen copy, never the
// lead's live state. For a platform-sourced enrollment the lead bonus
// stays with the platform and only the servicing coach gets a record.
// For a coach referral the bonus follows the referring coach: combined
// with the coach share into a single record when the referrer is also
// servicing, or as a separate lead-bonus record otherwise.
func Compute(grossPaise, deductionPaise int64, source domain.LeadSource, servicingCoachID string, policy *domain.SplitPolicy) (*Breakdown, []*domain.PayoutRecord, error) {
	if err := policy.Validate(); err != nil {
		return nil, nil, err
	}
	if deductionPaise < 0 || grossPaise < 0 || deductionPaise > grossPaise {
		return nil, nil, ErrDeductionsExceedGross
	}

	netBase := grossPaise - deductionPaise
	coachShare := int64(math.Floor(float64(netBase) * policy.CoachPct / 100))
	leadShare := int64(math.Floor(float64(netBase) * policy.LeadPct / 100))
	platformShare := netBase - coachShare - leadShare

	breakdown := &Breakdown{
		NetBasePaise:   netBase,
		PlatformPaise:  platformShare,
		CoachPaise:     coachShare,
		LeadBonusPaise: leadShare,
		PolicyVersion:  policy.Version,
	}

	var records []*domain.PayoutRecord
	switch source.Type {
	case domain.SourceCoachReferral:
		if source.CoachID == servicingCoachID {
			records = append(records, &domain.PayoutRecord{
				CoachID:    servicingCoachID,
				Kind:       domain.ShareCombined,
				GrossPaise: coachShare + leadShare,
				Status:     domain.PayoutPending,
			})
		} else {
			records = append(records,
				&domain.PayoutRecord{
					CoachID:    servicingCoachID,
					Kind:       domain.ShareCoach,
					GrossPaise: coachShare,
					Status:     domain.PayoutPending,
				},
				&domain.PayoutRecord{
					CoachID:    source.CoachID,
					Kind:       domain.ShareLeadBonus,
					GrossPaise: leadShare,
					Status:     domain.PayoutPending,
				})
		}
	default:
		records = append(records, &domain.PayoutRecord{
			CoachID:    servicingCoachID,
			Kind:       domain.ShareCoach,
			GrossPaise: coachShare,
			Status:     domain.PayoutPending,
		})
	}

	return breakdown, records, nil
}
