package payout

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/tutorstack/settlement-service/internal/domain"
	"github.com/tutorstack/settlement-service/internal/infrastructure/kafka"
	payoutdto "github.com/tutorstack/settlement-service/internal/usecase/dto/payoutrun"
)

// RecordClawback registers a confirmed-fault adjustment against a
// coach. It only ever creates an open clawback; batch runs draw it
// down. A clawback raised after the enrollment's records were already
// paid is not rejected: it stays open and lands on the coach's next
// open period, because money already disbursed is never un-paid.
func (uc *DefaultPayoutUsecase) RecordClawback(input *payoutdto.ClawbackInput) (*domain.Clawback, error) {
	if input.AmountPaise <= 0 {
		return nil, fmt.Errorf("clawback amount must be positive, got %d", input.AmountPaise)
	}
	reason := domain.ClawbackReason(input.Reason)
	if reason != domain.ClawbackRefund && reason != domain.ClawbackCoachNoShow {
		return nil, fmt.Errorf("unknown clawback reason %q", input.Reason)
	}

	enrollment, err := uc.enrollmentRepo.GetEnrollmentByID(input.EnrollmentID)
	if err != nil {
		return nil, err
	}

	coachID := input.CoachID
	if coachID == "" {
		coachID = enrollment.CoachID
	}

	records, err := uc.payoutRepo.GetRecordsByEnrollment(enrollment.ID)
	if err != nil {
		return nil, err
	}
	alreadyPaid := false
	for _, record := range records {
		if record.CoachID == coachID && record.Status == domain.PayoutPaid {
			alreadyPaid = true
		}
	}

	clawback := &domain.Clawback{
		ID:             uuid.New().String(),
		EnrollmentID:   enrollment.ID,
		CoachID:        coachID,
		AmountPaise:    input.AmountPaise,
		RemainingPaise: input.AmountPaise,
		Reason:         reason,
		ConfirmedBy:    input.ConfirmedBy,
		CreatedAt:      time.Now().UTC(),
	}
	if err := uc.clawbackRepo.CreateClawback(clawback); err != nil {
		return nil, err
	}

	slog.Info("clawback recorded",
		"clawback_id", clawback.ID,
		"enrollment_id", enrollment.ID,
		"coach_id", coachID,
		"amount_paise", input.AmountPaise,
		"reason", reason,
		"confirmed_by", input.ConfirmedBy,
		"after_payment", alreadyPaid,
	)
	if uc.metrics != nil {
		uc.metrics.ClawbacksRecordedTotal.WithLabelValues(string(reason)).Inc()
	}
	if uc.publisher != nil {
		event := kafka.ClawbackEvent{
			ClawbackID:   clawback.ID,
			EnrollmentID: enrollment.ID,
			CoachID:      coachID,
			AmountPaise:  input.AmountPaise,
			Reason:       string(reason),
		}
		go func() {
			if err := uc.publisher.PublishClawback(event); err != nil {
				slog.Error("failed to publish ClawbackEvent", "clawback_id", event.ClawbackID, "error", err.Error())
			}
		}()
	}

	return clawback, nil
}

// OpenClawbacks lists every clawback with a positive remaining amount,
// across all coaches. This is the balance the next batch runs will
// draw down.
func (uc *DefaultPayoutUsecase) OpenClawbacks() ([]*domain.Clawback, error) {
	return uc.clawbackRepo.ListOpen()
}
