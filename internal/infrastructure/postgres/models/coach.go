package models

import "time"

type CoachModel struct {
	ID                 string `gorm:"primaryKey"`
	FullName           string
	Phone              string
	Active             bool `gorm:"index"`
	Available          bool
	ExitStatus         string
	TaxIDType          string
	TaxIDValue         string
	TaxLinkageVerified bool
	BankAccountNumber  string
	BankIFSC           string
	BankHolderName     string
	ReferralCode       string `gorm:"uniqueIndex"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (CoachModel) TableName() string { return "coaches" }
