package domain

import "time"

type ExitStatus string

const (
	ExitNone    ExitStatus = "NONE"
	ExitPending ExitStatus = "PENDING"
	ExitExited  ExitStatus = "EXITED"
)

type TaxIDType string

const (
	TaxIDPan     TaxIDType = "PAN"
	TaxIDAadhaar TaxIDType = "AADHAAR"
	TaxIDNone    TaxIDType = "NONE"
)

type TaxIdentity struct {
	Type            TaxIDType
	Value           string
	LinkageVerified bool
}

type PayoutDestination struct {
	AccountNumber string
	IFSC          string
	HolderName    string
}

// Coach is never hard-deleted: exited coaches keep their referral
// attribution history, they just stop being eligible for assignment.
type Coach struct {
	ID           string
	FullName     string
	Phone        string
	Active       bool
	Available    bool
	ExitStatus   ExitStatus
	TaxIdentity  TaxIdentity
	Destination  PayoutDestination
	ReferralCode string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Eligible reports whether the coach may receive auto-assignments.
func (c *Coach) Eligible() bool {
	return c.Active && c.Available && c.ExitStatus != ExitPending && c.ExitStatus != ExitExited
}

type CoachRepository interface {
	CreateCoach(coach *Coach) error
	GetCoachByID(coachID string) (*Coach, error)
	GetCoachByReferralCode(code string) (*Coach, error)
	ListActiveCoaches() ([]*Coach, error)
	UpdateAvailability(coachID string, available bool) error
	UpdateExitStatus(coachID string, status ExitStatus) error
	UpdateTaxIdentity(coachID string, identity TaxIdentity) error
}
