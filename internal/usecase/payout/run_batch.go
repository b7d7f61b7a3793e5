package payout

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
	"github.com/tutorstack/settlement-service/internal/domain"
	"github.com/tutorstack/settlement-service/internal/infrastructure/kafka"
	payoutdto "github.com/tutorstack/settlement-service/internal/usecase/dto/payoutrun"
)

// RunBatch settles one monthly period. It groups undisputed pending
// records by coach, applies withholding using the coach's cumulative
// year total as of this run, nets open clawbacks (a batch never drives
// a coach below zero; any residual stays open for the next period) and
// emits one line per coach.
//
// The run is idempotent. A period that already has a batch returns the
// stored batch untouched, and the period+coach uniqueness on lines
// serializes concurrent runs. Any configuration failure aborts the
// whole run before a single record is mutated; operators re-trigger it
// after fixing the policy.
func (uc *DefaultPayoutUsecase) RunBatch(input *payoutdto.RunBatchInput) (*payoutdto.BatchOutput, error) {
	period := domain.MonthlyPeriod(input.At.UTC())

	existing, err := uc.payoutRepo.GetBatchByPeriod(period.Key)
	if err == nil && existing != nil {
		slog.Info("payout batch already settled for period", "period", period.Key, "batch_id", existing.ID)
		return &payoutdto.BatchOutput{Batch: existing, AlreadyExisted: true}, nil
	}
	if err != nil && !errors.Is(err, domain.ErrBatchNotFound) {
		return nil, err
	}

	records, err := uc.payoutRepo.ListPendingRecords(period)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, domain.ErrNothingToBatch
	}

	policy, err := uc.policyRepo.ActiveWithholdingPolicy()
	if err != nil {
		uc.failRun(period, "no active withholding policy", err)
		return nil, domain.ErrConfigurationMissing
	}
	if err := policy.Validate(); err != nil {
		uc.failRun(period, "unusable withholding policy", err)
		return nil, err
	}

	byCoach := make(map[string][]*domain.PayoutRecord)
	for _, record := range records {
		byCoach[record.CoachID] = append(byCoach[record.CoachID], record)
	}
	coachIDs := make([]string, 0, len(byCoach))
	for coachID := range byCoach {
		coachIDs = append(coachIDs, coachID)
	}
	sort.Strings(coachIDs)

	generateBatchID, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	batch := &domain.PayoutBatch{
		ID:        generateBatchID(),
		PeriodKey: period.Key,
		CreatedAt: now,
	}

	var consumptions []domain.ClawbackConsumption
	var totalGross, totalNet int64

	for _, coachID := range coachIDs {
		line, lineConsumptions, err := uc.buildLine(batch.ID, period, coachID, byCoach[coachID], policy)
		if err != nil {
			uc.failRun(period, fmt.Sprintf("building line for coach %s", coachID), err)
			return nil, err
		}
		batch.Lines = append(batch.Lines, line)
		consumptions = append(consumptions, lineConsumptions...)
		totalGross += line.GrossPaise
		totalNet += line.NetPaise
	}

	if err := uc.payoutRepo.CreateBatch(batch, consumptions); err != nil {
		if errors.Is(err, domain.ErrBatchAlreadyExists) {
			stored, getErr := uc.payoutRepo.GetBatchByPeriod(period.Key)
			if getErr != nil {
				return nil, getErr
			}
			slog.Info("concurrent payout run won, returning stored batch", "period", period.Key, "batch_id", stored.ID)
			return &payoutdto.BatchOutput{Batch: stored, AlreadyExisted: true}, nil
		}
		uc.failRun(period, "persisting batch", err)
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.PayoutBatchesTotal.Inc()
		uc.metrics.PayoutBatchAmountTotal.WithLabelValues("gross").Add(float64(totalGross))
		uc.metrics.PayoutBatchAmountTotal.WithLabelValues("net").Add(float64(totalNet))
	}
	if uc.publisher != nil {
		event := kafka.PayoutBatchEvent{
			BatchID:         batch.ID,
			PeriodKey:       period.Key,
			LineCount:       len(batch.Lines),
			TotalGrossPaise: totalGross,
			TotalNetPaise:   totalNet,
		}
		go func() {
			if err := uc.publisher.PublishBatch(event); err != nil {
				slog.Error("failed to publish PayoutBatchEvent", "batch_id", event.BatchID, "error", err.Error())
			}
		}()
	}

	slog.Info("payout batch emitted",
		"batch_id", batch.ID,
		"period", period.Key,
		"lines", len(batch.Lines),
		"total_gross_paise", totalGross,
		"total_net_paise", totalNet,
		"triggered_by", input.TriggeredBy,
	)

	return &payoutdto.BatchOutput{Batch: batch}, nil
}

func (uc *DefaultPayoutUsecase) buildLine(batchID string, period domain.Period, coachID string, records []*domain.PayoutRecord, policy *domain.WithholdingPolicy) (*domain.BatchLine, []domain.ClawbackConsumption, error) {
	coach, err := uc.coachRepo.GetCoachByID(coachID)
	if err != nil {
		return nil, nil, err
	}

	var gross int64
	recordIDs := make([]string, 0, len(records))
	for _, record := range records {
		gross += record.GrossPaise
		recordIDs = append(recordIDs, record.ID)
	}

	ytd, err := uc.payoutRepo.YTDNetPaise(coachID, period.Start.Year())
	if err != nil {
		return nil, nil, err
	}

	decision, err := uc.resolver.Resolve(coach.TaxIdentity, ytd+gross, policy)
	if err != nil {
		slog.Error("withholding resolution failed",
			"coach_id", coachID,
			"period", period.Key,
			"gross_paise", gross,
			"ytd_paise", ytd,
			"tax_id_type", coach.TaxIdentity.Type,
			"linkage_verified", coach.TaxIdentity.LinkageVerified,
			"error", err.Error(),
		)
		return nil, nil, err
	}
	withheld := decision.Withhold(gross)
	afterTax := gross - withheld

	open, err := uc.clawbackRepo.ListOpenByCoach(coachID)
	if err != nil {
		return nil, nil, err
	}
	sort.Slice(open, func(i, j int) bool { return open[i].CreatedAt.Before(open[j].CreatedAt) })

	var applied, residual int64
	var consumptions []domain.ClawbackConsumption
	available := afterTax
	for _, clawback := range open {
		if available == 0 {
			residual += clawback.RemainingPaise
			continue
		}
		take := clawback.RemainingPaise
		if take > available {
			take = available
		}
		consumptions = append(consumptions, domain.ClawbackConsumption{
			ClawbackID:  clawback.ID,
			BatchID:     batchID,
			AmountPaise: take,
		})
		applied += take
		available -= take
		residual += clawback.RemainingPaise - take
	}
	if residual > 0 {
		slog.Warn("clawback residual carried to next period",
			"coach_id", coachID,
			"period", period.Key,
			"residual_paise", residual,
		)
		if uc.metrics != nil {
			uc.metrics.ClawbackCarryForwardTotal.Inc()
		}
	}

	rate := float64(0)
	if decision.ThresholdMet {
		rate = decision.RatePct
	}

	return &domain.BatchLine{
		ID:                   uuid.New().String(),
		BatchID:              batchID,
		CoachID:              coachID,
		PeriodKey:            period.Key,
		GrossPaise:           gross,
		WithholdingRatePct:   rate,
		WithholdingPaise:     withheld,
		ClawbackAppliedPaise: applied,
		CarriedForwardPaise:  residual,
		NetPaise:             afterTax - applied,
		RecordIDs:            recordIDs,
		Status:               domain.PayoutBatched,
	}, consumptions, nil
}

func (uc *DefaultPayoutUsecase) failRun(period domain.Period, stage string, err error) {
	slog.Error("payout batch run aborted", "period", period.Key, "stage", stage, "error", err.Error())
	if uc.metrics != nil {
		uc.metrics.BatchRunFailuresTotal.Inc()
	}
}
