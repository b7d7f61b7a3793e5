package payout

import (
	"log/slog"
	"time"

	"github.com/tutorstack/settlement-service/internal/domain"
)

// MarkBatchPaid records that the disbursement collaborator settled the
// batch. Lines and their contributing records flip to PAID; nothing is
// ever deleted or reversed here.
func (uc *DefaultPayoutUsecase) MarkBatchPaid(batchID string) (*domain.PayoutBatch, error) {
	batch, err := uc.payoutRepo.GetBatchByID(batchID)
	if err != nil {
		return nil, err
	}

	if err := uc.payoutRepo.MarkBatchPaid(batchID, time.Now().UTC()); err != nil {
		return nil, err
	}

	slog.Info("payout batch marked paid", "batch_id", batchID, "period", batch.PeriodKey, "lines", len(batch.Lines))
	return batch, nil
}

// GetBatch returns a settled batch for inspection.
func (uc *DefaultPayoutUsecase) GetBatch(batchID string) (*domain.PayoutBatch, error) {
	return uc.payoutRepo.GetBatchByID(batchID)
}
