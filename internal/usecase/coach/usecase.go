package coach

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
	"github.com/tutorstack/settlement-service/internal/domain"
)

const referralCodeLength = 8

type DefaultCoachUsecase struct {
	coachRepo domain.CoachRepository
}

func NewDefaultCoachUsecase(coachRepo domain.CoachRepository) *DefaultCoachUsecase {
	return &DefaultCoachUsecase{coachRepo: coachRepo}
}

type CreateCoachInput struct {
	FullName    string
	Phone       string
	TaxIdentity domain.TaxIdentity
	Destination domain.PayoutDestination
}

// CreateCoach runs at onboarding approval. The referral code is minted
// from an unambiguous alphabet and retried on the rare collision; codes
// are stored lowercase so lookups stay case-insensitive.
func (uc *DefaultCoachUsecase) CreateCoach(input *CreateCoachInput) (*domain.Coach, error) {
	if input.FullName == "" {
		return nil, fmt.Errorf("coach name is required")
	}

	generateCode, err := nanoid.CustomASCII("23456789abcdefghjkmnpqrstuvwxyz", referralCodeLength)
	if err != nil {
		return nil, err
	}

	coach := &domain.Coach{
		ID:          uuid.New().String(),
		FullName:    input.FullName,
		Phone:       input.Phone,
		Active:      true,
		Available:   true,
		ExitStatus:  domain.ExitNone,
		TaxIdentity: normalizeTaxIdentity(input.TaxIdentity),
		Destination: input.Destination,
		CreatedAt:   time.Now().UTC(),
	}

	for attempt := 0; attempt < 5; attempt++ {
		coach.ReferralCode = generateCode()
		err = uc.coachRepo.CreateCoach(coach)
		if err == nil {
			slog.Info("coach created", "coach_id", coach.ID, "referral_code", coach.ReferralCode)
			return coach, nil
		}
		if !errors.Is(err, domain.ErrReferralCodeTaken) {
			return nil, err
		}
	}
	return nil, err
}

// SetAvailability is the coach-facing toggle; it affects only future
// auto-assignment eligibility.
func (uc *DefaultCoachUsecase) SetAvailability(coachID string, available bool) error {
	if _, err := uc.coachRepo.GetCoachByID(coachID); err != nil {
		return err
	}
	return uc.coachRepo.UpdateAvailability(coachID, available)
}

// SetExitStatus moves a coach through the soft-exit flow. Exited
// coaches keep their rows and their referral history.
func (uc *DefaultCoachUsecase) SetExitStatus(coachID string, status domain.ExitStatus) error {
	switch status {
	case domain.ExitNone, domain.ExitPending, domain.ExitExited:
	default:
		return fmt.Errorf("unknown exit status %q", status)
	}
	if _, err := uc.coachRepo.GetCoachByID(coachID); err != nil {
		return err
	}
	return uc.coachRepo.UpdateExitStatus(coachID, status)
}

// UpdateTaxIdentity stores the identifier and the linkage flag supplied
// by the registry lookup. A failed lookup must be reported here as
// unverified; verified is never the default.
func (uc *DefaultCoachUsecase) UpdateTaxIdentity(coachID string, identity domain.TaxIdentity) error {
	if _, err := uc.coachRepo.GetCoachByID(coachID); err != nil {
		return err
	}
	return uc.coachRepo.UpdateTaxIdentity(coachID, normalizeTaxIdentity(identity))
}

func (uc *DefaultCoachUsecase) GetCoach(coachID string) (*domain.Coach, error) {
	return uc.coachRepo.GetCoachByID(coachID)
}

func normalizeTaxIdentity(identity domain.TaxIdentity) domain.TaxIdentity {
	identity.Value = strings.ToUpper(strings.TrimSpace(identity.Value))
	if identity.Value == "" {
		identity.Type = domain.TaxIDNone
		identity.LinkageVerified = false
	}
	// PAN does not need a linkage check; the flag only means something
	// for Aadhaar.
	if identity.Type == domain.TaxIDPan {
		identity.LinkageVerified = false
	}
	return identity
}
