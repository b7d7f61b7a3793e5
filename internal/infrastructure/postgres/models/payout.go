package models

import "time"

type PayoutRecordModel struct {
	ID           string `gorm:"primaryKey"`
	CoachID      string `gorm:"index"`
	EnrollmentID string `gorm:"index"`
	Kind         string
	GrossPaise   int64
	Status       string  `gorm:"index"`
	BatchID      *string `gorm:"index"`
	CreatedAt    time.Time
}

func (PayoutRecordModel) TableName() string { return "payout_records" }

type PayoutBatchModel struct {
	ID        string `gorm:"primaryKey"`
	PeriodKey string `gorm:"uniqueIndex"`
	CreatedAt time.Time
}

func (PayoutBatchModel) TableName() string { return "payout_batches" }

// The period+coach unique index is what serializes concurrent batch
// runs: the second inserter fails and reads the stored batch instead.
type BatchLineModel struct {
	ID                   string `gorm:"primaryKey"`
	BatchID              string `gorm:"index"`
	CoachID              string `gorm:"uniqueIndex:ux_batch_lines_period_coach"`
	PeriodKey            string `gorm:"uniqueIndex:ux_batch_lines_period_coach"`
	GrossPaise           int64
	WithholdingRatePct   float64
	WithholdingPaise     int64
	ClawbackAppliedPaise int64
	CarriedForwardPaise  int64
	NetPaise             int64
	Status               string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (BatchLineModel) TableName() string { return "batch_lines" }

type ClawbackModel struct {
	ID             string `gorm:"primaryKey"`
	EnrollmentID   string `gorm:"index"`
	CoachID        string `gorm:"index"`
	AmountPaise    int64
	RemainingPaise int64
	Reason         string
	ConfirmedBy    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (ClawbackModel) TableName() string { return "clawbacks" }

// ClawbackConsumptionModel is the audit trail of which batch absorbed
// how much of which clawback.
type ClawbackConsumptionModel struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	ClawbackID  string `gorm:"index"`
	BatchID     string `gorm:"index"`
	AmountPaise int64
	CreatedAt   time.Time
}

func (ClawbackConsumptionModel) TableName() string { return "clawback_consumptions" }
