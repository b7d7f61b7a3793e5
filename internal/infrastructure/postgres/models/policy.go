package models

import "time"

type SplitPolicyModel struct {
	Version     int `gorm:"primaryKey;autoIncrement"`
	PlatformPct float64
	CoachPct    float64
	LeadPct     float64
	CreatedBy   string
	CreatedAt   time.Time
}

func (SplitPolicyModel) TableName() string { return "split_policies" }

type WithholdingPolicyModel struct {
	Version         int `gorm:"primaryKey;autoIncrement"`
	StandardRatePct float64
	PenalRatePct    float64
	ThresholdPaise  int64
	CreatedBy       string
	CreatedAt       time.Time
}

func (WithholdingPolicyModel) TableName() string { return "withholding_policies" }
