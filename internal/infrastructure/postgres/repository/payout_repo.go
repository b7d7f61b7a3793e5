package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/tutorstack/settlement-service/internal/domain"
	"github.com/tutorstack/settlement-service/internal/infrastructure/postgres/mappers"
	"github.com/tutorstack/settlement-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultPayoutRepository struct {
	DB *gorm.DB
}

func NewDefaultPayoutRepository(db *gorm.DB) *DefaultPayoutRepository {
	return &DefaultPayoutRepository{DB: db}
}

func (r *DefaultPayoutRepository) GetRecordsByEnrollment(enrollmentID string) ([]*domain.PayoutRecord, error) {
	var recordModels []models.PayoutRecordModel
	if err := r.DB.Where("enrollment_id = ?", enrollmentID).Find(&recordModels).Error; err != nil {
		return nil, err
	}
	return toDomainRecords(recordModels), nil
}

// ListPendingRecords pulls the period's settleable records: PENDING,
// created before the period closed, backing enrollment not disputed.
func (r *DefaultPayoutRepository) ListPendingRecords(period domain.Period) ([]*domain.PayoutRecord, error) {
	var recordModels []models.PayoutRecordModel
	err := r.DB.
		Joins("JOIN enrollments ON enrollments.id = payout_records.enrollment_id").
		Where("payout_records.status = ?", string(domain.PayoutPending)).
		Where("payout_records.created_at < ?", period.End).
		Where("enrollments.disputed = ?", false).
		Order("payout_records.created_at ASC").
		Find(&recordModels).Error
	if err != nil {
		return nil, err
	}
	return toDomainRecords(recordModels), nil
}

func (r *DefaultPayoutRepository) YTDNetPaise(coachID string, year int) (int64, error) {
	var total int64
	err := r.DB.Model(&models.BatchLineModel{}).
		Where("coach_id = ? AND period_key LIKE ?", coachID, fmt.Sprintf("%04d-%%", year)).
		Select("COALESCE(SUM(net_paise), 0)").
		Scan(&total).Error
	return total, err
}

// CreateBatch persists the batch atomically: batch row, lines, record
// transitions and clawback draw-downs either all land or none do. The
// ux_batch_lines_period_coach index turns a concurrent run for the same
// period into ErrBatchAlreadyExists.
func (r *DefaultPayoutRepository) CreateBatch(batch *domain.PayoutBatch, consumptions []domain.ClawbackConsumption) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		batchModel := &models.PayoutBatchModel{
			ID:        batch.ID,
			PeriodKey: batch.PeriodKey,
			CreatedAt: batch.CreatedAt,
		}
		if err := tx.Create(batchModel).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrBatchAlreadyExists
			}
			return err
		}

		for _, line := range batch.Lines {
			if err := tx.Create(mappers.ToGORMBatchLine(line)).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return domain.ErrBatchAlreadyExists
				}
				return err
			}
			if len(line.RecordIDs) == 0 {
				continue
			}
			result := tx.Model(&models.PayoutRecordModel{}).
				Where("id IN ? AND status = ?", line.RecordIDs, string(domain.PayoutPending)).
				Updates(map[string]interface{}{
					"status":   string(domain.PayoutBatched),
					"batch_id": batch.ID,
				})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected != int64(len(line.RecordIDs)) {
				return fmt.Errorf("expected to batch %d records for coach %s, batched %d",
					len(line.RecordIDs), line.CoachID, result.RowsAffected)
			}
		}

		for _, consumption := range consumptions {
			result := tx.Model(&models.ClawbackModel{}).
				Where("id = ? AND remaining_paise >= ?", consumption.ClawbackID, consumption.AmountPaise).
				Update("remaining_paise", gorm.Expr("remaining_paise - ?", consumption.AmountPaise))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected != 1 {
				return fmt.Errorf("clawback %s changed underneath batch %s", consumption.ClawbackID, batch.ID)
			}
			if err := tx.Create(&models.ClawbackConsumptionModel{
				ClawbackID:  consumption.ClawbackID,
				BatchID:     consumption.BatchID,
				AmountPaise: consumption.AmountPaise,
				CreatedAt:   batch.CreatedAt,
			}).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *DefaultPayoutRepository) GetBatchByPeriod(periodKey string) (*domain.PayoutBatch, error) {
	var batchModel models.PayoutBatchModel
	if err := r.DB.First(&batchModel, "period_key = ?", periodKey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBatchNotFound
		}
		return nil, err
	}
	return r.loadBatch(&batchModel)
}

func (r *DefaultPayoutRepository) GetBatchByID(batchID string) (*domain.PayoutBatch, error) {
	var batchModel models.PayoutBatchModel
	if err := r.DB.First(&batchModel, "id = ?", batchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBatchNotFound
		}
		return nil, err
	}
	return r.loadBatch(&batchModel)
}

func (r *DefaultPayoutRepository) MarkBatchPaid(batchID string, at time.Time) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.BatchLineModel{}).
			Where("batch_id = ?", batchID).
			Update("status", string(domain.PayoutPaid)).Error; err != nil {
			return err
		}
		return tx.Model(&models.PayoutRecordModel{}).
			Where("batch_id = ?", batchID).
			Update("status", string(domain.PayoutPaid)).Error
	})
}

func (r *DefaultPayoutRepository) loadBatch(batchModel *models.PayoutBatchModel) (*domain.PayoutBatch, error) {
	var lineModels []models.BatchLineModel
	if err := r.DB.Where("batch_id = ?", batchModel.ID).Order("coach_id ASC").Find(&lineModels).Error; err != nil {
		return nil, err
	}

	var recordModels []models.PayoutRecordModel
	if err := r.DB.Where("batch_id = ?", batchModel.ID).Find(&recordModels).Error; err != nil {
		return nil, err
	}
	recordIDsByCoach := make(map[string][]string)
	for _, record := range recordModels {
		recordIDsByCoach[record.CoachID] = append(recordIDsByCoach[record.CoachID], record.ID)
	}

	batch := &domain.PayoutBatch{
		ID:        batchModel.ID,
		PeriodKey: batchModel.PeriodKey,
		CreatedAt: batchModel.CreatedAt,
	}
	for i := range lineModels {
		batch.Lines = append(batch.Lines, mappers.ToDomainBatchLine(&lineModels[i], recordIDsByCoach[lineModels[i].CoachID]))
	}
	return batch, nil
}

func toDomainRecords(recordModels []models.PayoutRecordModel) []*domain.PayoutRecord {
	records := make([]*domain.PayoutRecord, 0, len(recordModels))
	for i := range recordModels {
		records = append(records, mappers.ToDomainPayoutRecord(&recordModels[i]))
	}
	return records
}
