package domain

import "time"

// Enrollment is written once on payment capture. FrozenSource is copied
// from the lead at that moment and is the only source input the split
// calculator may read; the lead's live assignment can change afterwards
// for servicing reasons without touching committed revenue.
type Enrollment struct {
	ID                 string
	LeadID             string
	CoachID            string
	GrossPaise         int64
	DeductionPaise     int64
	NetBasePaise       int64
	FrozenSource       LeadSource
	SplitPolicyVersion int
	Disputed           bool
	CreatedAt          time.Time
}

type EnrollmentRepository interface {
	// CreateEnrollmentWithRecords persists the enrollment and its payout
	// record drafts in one transaction. A capture never leaves an
	// enrollment behind without the records that pay it out.
	CreateEnrollmentWithRecords(enrollment *Enrollment, records []*PayoutRecord) error
	GetEnrollmentByID(enrollmentID string) (*Enrollment, error)
	GetEnrollmentByLeadID(leadID string) (*Enrollment, error)
	MarkDisputed(enrollmentID string) error
}
