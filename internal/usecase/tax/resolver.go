package tax

import (
	"math"

	"github.com/tutorstack/settlement-service/internal/domain"
)

// Decision is the withholding outcome for one coach at one payout run.
type Decision struct {
	RatePct       float64
	ThresholdMet  bool
	PolicyVersion int
}

// Withhold applies the decision to a gross amount. The withheld amount
// is rounded up to the next paisa so the exchequer share is never
// understated.
func (d *Decision) Withhold(grossPaise int64) int64 {
	if !d.ThresholdMet {
		return 0
	}
	return int64(math.Ceil(float64(grossPaise) * d.RatePct / 100))
}

// Resolver decides the withholding rate from the coach's tax-identifier
// linkage state. It is stateless; rates and threshold arrive as a
// versioned policy so rule changes never need a code change.
type Resolver struct{}

func NewResolver() *Resolver { return &Resolver{} }

// Resolve picks the rate for a coach whose cumulative payouts for the
// year, including the run being computed, total cumulativePaise.
//
// Below or at the threshold no withholding applies and the rate is
// irrelevant. Above it, PAN or a verified-linked Aadhaar gets the
// standard rate; an unlinked Aadhaar or a missing identifier gets the
// penal rate. An unverifiable registry lookup must reach us as
// LinkageVerified=false, never true.
func (r *Resolver) Resolve(identity domain.TaxIdentity, cumulativePaise int64, policy *domain.WithholdingPolicy) (*Decision, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	if cumulativePaise <= policy.ThresholdPaise {
		return &Decision{ThresholdMet: false, PolicyVersion: policy.Version}, nil
	}

	rate := policy.PenalRatePct
	switch identity.Type {
	case domain.TaxIDPan:
		if identity.Value != "" {
			rate = policy.StandardRatePct
		}
	case domain.TaxIDAadhaar:
		if identity.Value != "" && identity.LinkageVerified {
			rate = policy.StandardRatePct
		}
	}

	return &Decision{RatePct: rate, ThresholdMet: true, PolicyVersion: policy.Version}, nil
}
