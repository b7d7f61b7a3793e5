package payoutdto

import "github.com/tutorstack/settlement-service/internal/domain"

type BatchOutput struct {
	Batch *domain.PayoutBatch

	// AlreadyExisted is true when the run found the period settled and
	// returned the stored batch instead of computing a new one.
	AlreadyExisted bool
}
