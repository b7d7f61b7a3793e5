package domain

import (
	"math"
	"time"
)

// SplitEpsilon bounds the allowed drift of the three split percentages
// from an exact 100.
const SplitEpsilon = 0.0001

// SplitPolicy is a versioned money rule. Policies are append-only:
// saving a new one bumps the version, and each enrollment records the
// version it was computed under so history stays explainable.
type SplitPolicy struct {
	Version     int
	PlatformPct float64
	CoachPct    float64
	LeadPct     float64
	CreatedBy   string
	CreatedAt   time.Time
}

// Validate rejects configurations whose percentages do not sum to 100
// within SplitEpsilon, or carry a negative component.
func (p *SplitPolicy) Validate() error {
	if p.PlatformPct < 0 || p.CoachPct < 0 || p.LeadPct < 0 {
		return ErrInvalidSplitConfig
	}
	if math.Abs(p.PlatformPct+p.CoachPct+p.LeadPct-100) > SplitEpsilon {
		return ErrInvalidSplitConfig
	}
	return nil
}

// WithholdingPolicy carries the tax rates and the annual threshold as
// configuration, never as code constants.
type WithholdingPolicy struct {
	Version         int
	StandardRatePct float64
	PenalRatePct    float64
	ThresholdPaise  int64
	CreatedBy       string
	CreatedAt       time.Time
}

// Validate reports ErrConfigurationMissing for an unusable policy.
// A zero threshold is legal (withholding from the first rupee); zero or
// negative rates are not.
func (p *WithholdingPolicy) Validate() error {
	if p == nil {
		return ErrConfigurationMissing
	}
	if p.StandardRatePct <= 0 || p.PenalRatePct <= 0 || p.ThresholdPaise < 0 {
		return ErrConfigurationMissing
	}
	return nil
}

type PolicyRepository interface {
	// SaveSplitPolicy assigns the next version and persists the policy.
	SaveSplitPolicy(policy *SplitPolicy) error
	ActiveSplitPolicy() (*SplitPolicy, error)
	SplitPolicyByVersion(version int) (*SplitPolicy, error)

	SaveWithholdingPolicy(policy *WithholdingPolicy) error
	ActiveWithholdingPolicy() (*WithholdingPolicy, error)
}
