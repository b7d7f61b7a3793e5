package models

import "time"

type EnrollmentModel struct {
	ID                 string `gorm:"primaryKey"`
	LeadID             string `gorm:"uniqueIndex"`
	CoachID            string `gorm:"index"`
	GrossPaise         int64
	DeductionPaise     int64
	NetBasePaise       int64
	SourceType         string
	SourceCoachID      string
	SplitPolicyVersion int
	Disputed           bool
	CreatedAt          time.Time
}

func (EnrollmentModel) TableName() string { return "enrollments" }
