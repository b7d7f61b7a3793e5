package leaddto

import "github.com/tutorstack/settlement-service/internal/domain"

// AssignmentOutcome is the contract handed back to the intake and admin
// collaborators: the resulting state and the coach, nil when the lead
// went to the manual queue.
type AssignmentOutcome struct {
	LeadID         string
	AssignmentType domain.AssignmentState
	CoachID        *string
	SourceType     domain.SourceType
}
