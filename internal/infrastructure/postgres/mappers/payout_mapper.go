package mappers

import (
	"github.com/tutorstack/settlement-service/internal/domain"
	"github.com/tutorstack/settlement-service/internal/infrastructure/postgres/models"
)

func ToGORMPayoutRecord(record *domain.PayoutRecord) *models.PayoutRecordModel {
	return &models.PayoutRecordModel{
		ID:           record.ID,
		CoachID:      record.CoachID,
		EnrollmentID: record.EnrollmentID,
		Kind:         string(record.Kind),
		GrossPaise:   record.GrossPaise,
		Status:       string(record.Status),
		BatchID:      record.BatchID,
		CreatedAt:    record.CreatedAt,
	}
}

func ToDomainPayoutRecord(model *models.PayoutRecordModel) *domain.PayoutRecord {
	return &domain.PayoutRecord{
		ID:           model.ID,
		CoachID:      model.CoachID,
		EnrollmentID: model.EnrollmentID,
		Kind:         domain.ShareKind(model.Kind),
		GrossPaise:   model.GrossPaise,
		Status:       domain.PayoutStatus(model.Status),
		BatchID:      model.BatchID,
		CreatedAt:    model.CreatedAt,
	}
}

func ToGORMBatchLine(line *domain.BatchLine) *models.BatchLineModel {
	return &models.BatchLineModel{
		ID:                   line.ID,
		BatchID:              line.BatchID,
		CoachID:              line.CoachID,
		PeriodKey:            line.PeriodKey,
		GrossPaise:           line.GrossPaise,
		WithholdingRatePct:   line.WithholdingRatePct,
		WithholdingPaise:     line.WithholdingPaise,
		ClawbackAppliedPaise: line.ClawbackAppliedPaise,
		CarriedForwardPaise:  line.CarriedForwardPaise,
		NetPaise:             line.NetPaise,
		Status:               string(line.Status),
	}
}

func ToDomainBatchLine(model *models.BatchLineModel, recordIDs []string) *domain.BatchLine {
	return &domain.BatchLine{
		ID:                   model.ID,
		BatchID:              model.BatchID,
		CoachID:              model.CoachID,
		PeriodKey:            model.PeriodKey,
		GrossPaise:           model.GrossPaise,
		WithholdingRatePct:   model.WithholdingRatePct,
		WithholdingPaise:     model.WithholdingPaise,
		ClawbackAppliedPaise: model.ClawbackAppliedPaise,
		CarriedForwardPaise:  model.CarriedForwardPaise,
		NetPaise:             model.NetPaise,
		RecordIDs:            recordIDs,
		Status:               domain.PayoutStatus(model.Status),
	}
}

func ToGORMClawback(clawback *domain.Clawback) *models.ClawbackModel {
	return &models.ClawbackModel{
		ID:             clawback.ID,
		EnrollmentID:   clawback.EnrollmentID,
		CoachID:        clawback.CoachID,
		AmountPaise:    clawback.AmountPaise,
		RemainingPaise: clawback.RemainingPaise,
		Reason:         string(clawback.Reason),
		ConfirmedBy:    clawback.ConfirmedBy,
		CreatedAt:      clawback.CreatedAt,
	}
}

func ToDomainClawback(model *models.ClawbackModel) *domain.Clawback {
	return &domain.Clawback{
		ID:             model.ID,
		EnrollmentID:   model.EnrollmentID,
		CoachID:        model.CoachID,
		AmountPaise:    model.AmountPaise,
		RemainingPaise: model.RemainingPaise,
		Reason:         domain.ClawbackReason(model.Reason),
		ConfirmedBy:    model.ConfirmedBy,
		CreatedAt:      model.CreatedAt,
	}
}
