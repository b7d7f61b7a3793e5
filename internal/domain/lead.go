package domain

import "time"

type AssignmentState string

const (
	AssignmentUnassigned    AssignmentState = "UNASSIGNED"
	AssignmentAuto          AssignmentState = "AUTO_ASSIGNED"
	AssignmentManual        AssignmentState = "MANUALLY_ASSIGNED"
	AssignmentPendingManual AssignmentState = "PENDING_MANUAL"
)

type SourceType string

const (
	SourcePlatform      SourceType = "PLATFORM"
	SourceCoachReferral SourceType = "COACH_REFERRAL"
)

// LeadSource is the attribution stamp. CoachID is set only for
// COACH_REFERRAL.
type LeadSource struct {
	Type    SourceType
	CoachID string
}

// SystemActor is recorded as AssignedBy for auto-assignments.
const SystemActor = "system"

type Lead struct {
	ID          string
	StudentName string
	Phone       string

	// Source is nil until the first attribution touch stamps it.
	// Once stamped it never changes (first touch wins).
	Source    *LeadSource
	StampedAt *time.Time

	AssignmentState AssignmentState
	AssignedCoachID *string
	AssignedBy      string
	AssignedAt      *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

type LeadRepository interface {
	CreateLead(lead *Lead) error
	GetLeadByID(leadID string) (*Lead, error)

	// StampSource sets the lead's source only while it is still nil.
	// Returns false when the lead was already stamped.
	StampSource(leadID string, source LeadSource, at time.Time) (bool, error)

	// AssignAuto transitions UNASSIGNED -> AUTO_ASSIGNED. The update is
	// conditional on the lead still being UNASSIGNED; returns false when
	// a concurrent assignment won.
	AssignAuto(leadID, coachID string, at time.Time) (bool, error)

	// MarkPendingManual transitions UNASSIGNED -> PENDING_MANUAL under
	// the same condition.
	MarkPendingManual(leadID string, at time.Time) (bool, error)

	// AssignManual overwrites any current assignment state.
	AssignManual(leadID, coachID, adminID string, at time.Time) error

	ListPendingManual() ([]*Lead, error)
	CountPendingManual() (int64, error)
}
