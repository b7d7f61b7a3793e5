package domain

import "time"

// ReferralVisit rows are append-only telemetry. They never decide a
// lead's attribution; only the stamp on the lead itself does.
type ReferralVisit struct {
	ID        string
	Code      string
	CoachID   string
	LeadID    string
	Converted bool
	CreatedAt time.Time
}

type ReferralVisitRepository interface {
	CreateVisit(visit *ReferralVisit) error
	ListVisitsByLead(leadID string) ([]*ReferralVisit, error)

	// MarkConverted flips the converted flag for the lead's visits that
	// match the stamped code. Flipping an already-converted visit is a
	// no-op.
	MarkConverted(leadID string) error
}
