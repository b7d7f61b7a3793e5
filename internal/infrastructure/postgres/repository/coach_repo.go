package repository

import (
	"errors"
	"strings"

	"github.com/tutorstack/settlement-service/internal/domain"
	"github.com/tutorstack/settlement-service/internal/infrastructure/postgres/mappers"
	"github.com/tutorstack/settlement-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultCoachRepository struct {
	DB *gorm.DB
}

func NewDefaultCoachRepository(db *gorm.DB) *DefaultCoachRepository {
	return &DefaultCoachRepository{DB: db}
}

func (r *DefaultCoachRepository) CreateCoach(coach *domain.Coach) error {
	coachModel := mappers.ToGORMCoach(coach)
	coachModel.ReferralCode = strings.ToLower(coachModel.ReferralCode)
	if err := r.DB.Create(coachModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrReferralCodeTaken
		}
		return err
	}
	return nil
}

func (r *DefaultCoachRepository) GetCoachByID(coachID string) (*domain.Coach, error) {
	var coachModel models.CoachModel
	if err := r.DB.First(&coachModel, "id = ?", coachID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCoachNotFound
		}
		return nil, err
	}
	return mappers.ToDomainCoach(&coachModel), nil
}

func (r *DefaultCoachRepository) GetCoachByReferralCode(code string) (*domain.Coach, error) {
	var coachModel models.CoachModel
	if err := r.DB.First(&coachModel, "referral_code = ?", strings.ToLower(code)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCoachNotFound
		}
		return nil, err
	}
	return mappers.ToDomainCoach(&coachModel), nil
}

func (r *DefaultCoachRepository) ListActiveCoaches() ([]*domain.Coach, error) {
	var coachModels []models.CoachModel
	if err := r.DB.Where("active = ?", true).Find(&coachModels).Error; err != nil {
		return nil, err
	}
	coaches := make([]*domain.Coach, 0, len(coachModels))
	for i := range coachModels {
		coaches = append(coaches, mappers.ToDomainCoach(&coachModels[i]))
	}
	return coaches, nil
}

func (r *DefaultCoachRepository) UpdateAvailability(coachID string, available bool) error {
	return r.DB.Model(&models.CoachModel{}).
		Where("id = ?", coachID).
		Update("available", available).Error
}

func (r *DefaultCoachRepository) UpdateExitStatus(coachID string, status domain.ExitStatus) error {
	return r.DB.Model(&models.CoachModel{}).
		Where("id = ?", coachID).
		Update("exit_status", string(status)).Error
}

func (r *DefaultCoachRepository) UpdateTaxIdentity(coachID string, identity domain.TaxIdentity) error {
	return r.DB.Model(&models.CoachModel{}).
		Where("id = ?", coachID).
		Updates(map[string]interface{}{
			"tax_id_type":          string(identity.Type),
			"tax_id_value":         identity.Value,
			"tax_linkage_verified": identity.LinkageVerified,
		}).Error
}
