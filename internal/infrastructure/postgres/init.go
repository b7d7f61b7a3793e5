package postgres

import (
	"log"

	"github.com/tutorstack/settlement-service/internal/config"
	"github.com/tutorstack/settlement-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.SettlementConfig) *gorm.DB {
	dsn := cfg.SettlementDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.CoachModel{},
		&models.LeadModel{},
		&models.EnrollmentModel{},
		&models.PayoutRecordModel{},
		&models.PayoutBatchModel{},
		&models.BatchLineModel{},
		&models.ClawbackModel{},
		&models.ClawbackConsumptionModel{},
		&models.ReferralVisitModel{},
		&models.SplitPolicyModel{},
		&models.WithholdingPolicyModel{},
	)

	return db
}
