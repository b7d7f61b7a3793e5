package repository

import (
	"errors"

	"github.com/tutorstack/settlement-service/internal/domain"
	"github.com/tutorstack/settlement-service/internal/infrastructure/postgres/mappers"
	"github.com/tutorstack/settlement-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultPolicyRepository struct {
	DB *gorm.DB
}

func NewDefaultPolicyRepository(db *gorm.DB) *DefaultPolicyRepository {
	return &DefaultPolicyRepository{DB: db}
}

func (r *DefaultPolicyRepository) SaveSplitPolicy(policy *domain.SplitPolicy) error {
	policyModel := mappers.ToGORMSplitPolicy(policy)
	policyModel.Version = 0
	if err := r.DB.Create(policyModel).Error; err != nil {
		return err
	}
	policy.Version = policyModel.Version
	return nil
}

func (r *DefaultPolicyRepository) ActiveSplitPolicy() (*domain.SplitPolicy, error) {
	var policyModel models.SplitPolicyModel
	if err := r.DB.Order("version DESC").First(&policyModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPolicyNotFound
		}
		return nil, err
	}
	return mappers.ToDomainSplitPolicy(&policyModel), nil
}

func (r *DefaultPolicyRepository) SplitPolicyByVersion(version int) (*domain.SplitPolicy, error) {
	var policyModel models.SplitPolicyModel
	if err := r.DB.First(&policyModel, "version = ?", version).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPolicyNotFound
		}
		return nil, err
	}
	return mappers.ToDomainSplitPolicy(&policyModel), nil
}

func (r *DefaultPolicyRepository) SaveWithholdingPolicy(policy *domain.WithholdingPolicy) error {
	policyModel := mappers.ToGORMWithholdingPolicy(policy)
	policyModel.Version = 0
	if err := r.DB.Create(policyModel).Error; err != nil {
		return err
	}
	policy.Version = policyModel.Version
	return nil
}

func (r *DefaultPolicyRepository) ActiveWithholdingPolicy() (*domain.WithholdingPolicy, error) {
	var policyModel models.WithholdingPolicyModel
	if err := r.DB.Order("version DESC").First(&policyModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPolicyNotFound
		}
		return nil, err
	}
	return mappers.ToDomainWithholdingPolicy(&policyModel), nil
}
