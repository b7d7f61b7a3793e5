package models

import "time"

type LeadModel struct {
	ID          string `gorm:"primaryKey"`
	StudentName string
	Phone       string

	// Source columns stay NULL until the first-touch stamp; the
	// conditional update in the repository relies on that.
	SourceType    *string
	SourceCoachID *string
	StampedAt     *time.Time

	AssignmentState string `gorm:"index"`
	AssignedCoachID *string
	AssignedBy      string
	AssignedAt      *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LeadModel) TableName() string { return "leads" }
