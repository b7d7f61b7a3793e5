package repository

import (
	"errors"
	"time"

	"github.com/tutorstack/settlement-service/internal/domain"
	"github.com/tutorstack/settlement-service/internal/infrastructure/postgres/mappers"
	"github.com/tutorstack/settlement-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultLeadRepository struct {
	DB *gorm.DB
}

func NewDefaultLeadRepository(db *gorm.DB) *DefaultLeadRepository {
	return &DefaultLeadRepository{DB: db}
}

func (r *DefaultLeadRepository) CreateLead(lead *domain.Lead) error {
	return r.DB.Create(mappers.ToGORMLead(lead)).Error
}

func (r *DefaultLeadRepository) GetLeadByID(leadID string) (*domain.Lead, error) {
	var leadModel models.LeadModel
	if err := r.DB.First(&leadModel, "id = ?", leadID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLeadNotFound
		}
		return nil, err
	}
	return mappers.ToDomainLead(&leadModel), nil
}

// StampSource is the first-touch conditional write: only a lead whose
// source columns are still NULL takes the stamp.
func (r *DefaultLeadRepository) StampSource(leadID string, source domain.LeadSource, at time.Time) (bool, error) {
	updates := map[string]interface{}{
		"source_type": string(source.Type),
		"stamped_at":  at,
	}
	if source.CoachID != "" {
		updates["source_coach_id"] = source.CoachID
	}
	tx := r.DB.Model(&models.LeadModel{}).
		Where("id = ? AND source_type IS NULL", leadID).
		Updates(updates)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

// AssignAuto succeeds only while the lead is still UNASSIGNED; a
// concurrent winner leaves RowsAffected at zero and the caller no-ops.
func (r *DefaultLeadRepository) AssignAuto(leadID, coachID string, at time.Time) (bool, error) {
	tx := r.DB.Model(&models.LeadModel{}).
		Where("id = ? AND assignment_state = ?", leadID, string(domain.AssignmentUnassigned)).
		Updates(map[string]interface{}{
			"assignment_state":  string(domain.AssignmentAuto),
			"assigned_coach_id": coachID,
			"assigned_by":       domain.SystemActor,
			"assigned_at":       at,
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

func (r *DefaultLeadRepository) MarkPendingManual(leadID string, at time.Time) (bool, error) {
	tx := r.DB.Model(&models.LeadModel{}).
		Where("id = ? AND assignment_state = ?", leadID, string(domain.AssignmentUnassigned)).
		Updates(map[string]interface{}{
			"assignment_state": string(domain.AssignmentPendingManual),
			"assigned_by":      domain.SystemActor,
			"assigned_at":      at,
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

func (r *DefaultLeadRepository) AssignManual(leadID, coachID, adminID string, at time.Time) error {
	tx := r.DB.Model(&models.LeadModel{}).
		Where("id = ?", leadID).
		Updates(map[string]interface{}{
			"assignment_state":  string(domain.AssignmentManual),
			"assigned_coach_id": coachID,
			"assigned_by":       adminID,
			"assigned_at":       at,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrLeadNotFound
	}
	return nil
}

func (r *DefaultLeadRepository) ListPendingManual() ([]*domain.Lead, error) {
	var leadModels []models.LeadModel
	if err := r.DB.
		Where("assignment_state = ?", string(domain.AssignmentPendingManual)).
		Order("created_at ASC").
		Find(&leadModels).Error; err != nil {
		return nil, err
	}
	leads := make([]*domain.Lead, 0, len(leadModels))
	for i := range leadModels {
		leads = append(leads, mappers.ToDomainLead(&leadModels[i]))
	}
	return leads, nil
}

func (r *DefaultLeadRepository) CountPendingManual() (int64, error) {
	var count int64
	err := r.DB.Model(&models.LeadModel{}).
		Where("assignment_state = ?", string(domain.AssignmentPendingManual)).
		Count(&count).Error
	return count, err
}
