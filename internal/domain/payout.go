package domain

import "time"

type PayoutStatus string

const (
	PayoutPending PayoutStatus = "PENDING"
	PayoutBatched PayoutStatus = "BATCHED"
	PayoutPaid    PayoutStatus = "PAID"
)

type ShareKind string

const (
	ShareCoach     ShareKind = "COACH_SHARE"
	ShareLeadBonus ShareKind = "LEAD_BONUS"
	ShareCombined  ShareKind = "COACH_PLUS_LEAD"
)

// PayoutRecord is one coach-facing share of one enrollment's net base.
// Records are append-only; corrections happen through clawbacks, never
// by editing or deleting a record.
type PayoutRecord struct {
	ID           string
	CoachID      string
	EnrollmentID string
	Kind         ShareKind
	GrossPaise   int64
	Status       PayoutStatus
	BatchID      *string
	CreatedAt    time.Time
}

type ClawbackReason string

const (
	ClawbackRefund      ClawbackReason = "REFUND"
	ClawbackCoachNoShow ClawbackReason = "COACH_NO_SHOW"
)

// Clawback is a confirmed-fault negative adjustment against a coach.
// RemainingPaise is drawn down by batch runs; whatever a period cannot
// absorb carries forward and is consumed by the next one. A clawback
// raised after its enrollment's records were already paid follows the
// same path: it simply waits for the next open period.
type Clawback struct {
	ID             string
	EnrollmentID   string
	CoachID        string
	AmountPaise    int64
	RemainingPaise int64
	Reason         ClawbackReason
	ConfirmedBy    string
	CreatedAt      time.Time
}

// Period identifies a monthly payout window, e.g. "2026-08".
type Period struct {
	Key   string
	Start time.Time
	End   time.Time
}

// MonthlyPeriod builds the period containing t, in t's location.
func MonthlyPeriod(t time.Time) Period {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 1, 0)
	return Period{Key: start.Format("2006-01"), Start: start, End: end}
}

type BatchLine struct {
	ID                   string
	BatchID              string
	CoachID              string
	PeriodKey            string
	GrossPaise           int64
	WithholdingRatePct   float64
	WithholdingPaise     int64
	ClawbackAppliedPaise int64
	CarriedForwardPaise  int64
	NetPaise             int64
	RecordIDs            []string
	Status               PayoutStatus
}

type PayoutBatch struct {
	ID        string
	PeriodKey string
	Lines     []*BatchLine
	CreatedAt time.Time
}

type PayoutRepository interface {
	GetRecordsByEnrollment(enrollmentID string) ([]*PayoutRecord, error)

	// ListPendingRecords returns PENDING records created before the
	// period end whose enrollment is not disputed.
	ListPendingRecords(period Period) ([]*PayoutRecord, error)

	// YTDNetPaise is the sum of net amounts already batched or paid to
	// the coach in the calendar year containing the period.
	YTDNetPaise(coachID string, year int) (int64, error)

	// CreateBatch persists the batch with its lines, flips the consumed
	// records to BATCHED and draws down the consumed clawbacks, all in
	// one transaction. The period+coach unique index on lines makes
	// concurrent runs lose cleanly with ErrBatchAlreadyExists.
	CreateBatch(batch *PayoutBatch, consumptions []ClawbackConsumption) error

	GetBatchByPeriod(periodKey string) (*PayoutBatch, error)
	GetBatchByID(batchID string) (*PayoutBatch, error)

	// MarkBatchPaid flips the batch lines and their records to PAID.
	MarkBatchPaid(batchID string, at time.Time) error
}

// ClawbackConsumption records how much of one clawback a batch absorbed.
type ClawbackConsumption struct {
	ClawbackID  string
	BatchID     string
	AmountPaise int64
}

type ClawbackRepository interface {
	CreateClawback(clawback *Clawback) error
	ListOpenByCoach(coachID string) ([]*Clawback, error)
	ListOpen() ([]*Clawback, error)
}
