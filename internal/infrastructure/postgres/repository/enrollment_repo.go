package repository

import (
	"errors"

	"github.com/tutorstack/settlement-service/internal/domain"
	"github.com/tutorstack/settlement-service/internal/infrastructure/postgres/mappers"
	"github.com/tutorstack/settlement-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultEnrollmentRepository struct {
	DB *gorm.DB
}

func NewDefaultEnrollmentRepository(db *gorm.DB) *DefaultEnrollmentRepository {
	return &DefaultEnrollmentRepository{DB: db}
}

// CreateEnrollmentWithRecords runs both inserts in one transaction: a
// failure on the record side rolls the enrollment back, so a capture
// retry is never blocked by a half-written enrollment.
func (r *DefaultEnrollmentRepository) CreateEnrollmentWithRecords(enrollment *domain.Enrollment, records []*domain.PayoutRecord) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(mappers.ToGORMEnrollment(enrollment)).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrEnrollmentExists
			}
			return err
		}
		for _, record := range records {
			if err := tx.Create(mappers.ToGORMPayoutRecord(record)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *DefaultEnrollmentRepository) GetEnrollmentByID(enrollmentID string) (*domain.Enrollment, error) {
	var enrollmentModel models.EnrollmentModel
	if err := r.DB.First(&enrollmentModel, "id = ?", enrollmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEnrollmentNotFound
		}
		return nil, err
	}
	return mappers.ToDomainEnrollment(&enrollmentModel), nil
}

func (r *DefaultEnrollmentRepository) GetEnrollmentByLeadID(leadID string) (*domain.Enrollment, error) {
	var enrollmentModel models.EnrollmentModel
	if err := r.DB.First(&enrollmentModel, "lead_id = ?", leadID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEnrollmentNotFound
		}
		return nil, err
	}
	return mappers.ToDomainEnrollment(&enrollmentModel), nil
}

func (r *DefaultEnrollmentRepository) MarkDisputed(enrollmentID string) error {
	return r.DB.Model(&models.EnrollmentModel{}).
		Where("id = ?", enrollmentID).
		Update("disputed", true).Error
}
