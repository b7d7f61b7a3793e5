package domain

import "errors"

var (
	ErrConfigurationMissing = errors.New("withholding configuration missing")
	ErrInvalidSplitConfig   = errors.New("split percentages must sum to 100")
	ErrCoachNotFound        = errors.New("coach not found")
	ErrLeadNotFound         = errors.New("lead not found")
	ErrEnrollmentNotFound   = errors.New("enrollment not found")
	ErrPolicyNotFound       = errors.New("policy not found")
	ErrLeadAlreadyAssigned  = errors.New("lead already assigned")
	ErrBatchAlreadyExists   = errors.New("payout batch already exists for period")
	ErrBatchNotFound        = errors.New("payout batch not found")
	ErrReferralCodeTaken    = errors.New("referral code already taken")
	ErrEnrollmentExists     = errors.New("enrollment already captured for lead")
	ErrLeadNotAssigned      = errors.New("lead has no servicing coach")
	ErrNothingToBatch       = errors.New("no pending payout records for period")
)
