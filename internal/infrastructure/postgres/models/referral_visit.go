package models

import "time"

type ReferralVisitModel struct {
	ID        string `gorm:"primaryKey"`
	Code      string `gorm:"index"`
	CoachID   string
	LeadID    string `gorm:"index"`
	Converted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ReferralVisitModel) TableName() string { return "referral_visits" }
