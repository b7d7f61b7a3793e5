package enrollmentdto

import (
	"time"

	"github.com/tutorstack/settlement-service/internal/domain"
)

type CaptureOutput struct {
	EnrollmentID   string
	NetBasePaise   int64
	PlatformPaise  int64
	CoachPaise     int64
	LeadBonusPaise int64
	PolicyVersion  int
	SourceType     domain.SourceType
	Records        []*domain.PayoutRecord
}

// ExplainOutput replays a captured enrollment's breakdown under the
// policy version it was frozen with.
type ExplainOutput struct {
	EnrollmentID   string
	LeadID         string
	CoachID        string
	GrossPaise     int64
	DeductionPaise int64
	NetBasePaise   int64
	PlatformPaise  int64
	CoachPaise     int64
	LeadBonusPaise int64
	PolicyVersion  int
	SourceType     domain.SourceType
	SourceCoachID  string
	Disputed       bool
	CapturedAt     time.Time
}
