package payoutdto

import "time"

type RunBatchInput struct {
	// At is any instant inside the period to settle; the run resolves it
	// to the containing monthly period.
	At time.Time

	TriggeredBy string
}

type ClawbackInput struct {
	EnrollmentID string
	CoachID      string
	AmountPaise  int64
	Reason       string
	ConfirmedBy  string
}
