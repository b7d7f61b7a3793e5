package payout

import (
	"log/slog"
)

// HoldEnrollment flags an enrollment as disputed so its pending records
// are held out of batch runs until the dispute resolves. Records that
// were already batched or paid are out of reach; those go through
// RecordClawback instead.
func (uc *DefaultPayoutUsecase) HoldEnrollment(enrollmentID string) error {
	enrollment, err := uc.enrollmentRepo.GetEnrollmentByID(enrollmentID)
	if err != nil {
		return err
	}
	if enrollment.Disputed {
		return nil
	}
	if err := uc.enrollmentRepo.MarkDisputed(enrollmentID); err != nil {
		return err
	}
	slog.Info("enrollment held from batching", "enrollment_id", enrollmentID, "coach_id", enrollment.CoachID)
	return nil
}
