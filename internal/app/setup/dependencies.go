package setup

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/tutorstack/settlement-service/internal/config"
	"github.com/tutorstack/settlement-service/internal/domain"
	"github.com/tutorstack/settlement-service/internal/infrastructure/cache"
	"github.com/tutorstack/settlement-service/internal/infrastructure/kafka"
	"github.com/tutorstack/settlement-service/internal/infrastructure/metrics"
	"github.com/tutorstack/settlement-service/internal/infrastructure/postgres"
	"github.com/tutorstack/settlement-service/internal/infrastructure/postgres/repository"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config              *config.SettlementConfig
	DB                  *gorm.DB
	Redis               *redis.Client
	Metrics             *metrics.SettlementMetrics
	AssignmentPublisher *kafka.KafkaPublisher
	PayoutPublisher     *kafka.KafkaPublisher
	Repositories        *Repositories
}

type Repositories struct {
	CoachRepo      domain.CoachRepository
	LeadRepo       domain.LeadRepository
	EnrollmentRepo domain.EnrollmentRepository
	PayoutRepo     domain.PayoutRepository
	ClawbackRepo   domain.ClawbackRepository
	PolicyRepo     domain.PolicyRepository
	VisitRepo      domain.ReferralVisitRepository
}

func InitializeDependencies() (*Dependencies, error) {
	cfg := config.MustLoad()

	db := postgres.MustInitDB(cfg)

	rdb, err := cache.OpenRedis(cfg.RedisService.Addr, cfg.RedisService.Password, cfg.RedisService.DB)
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}

	repos := &Repositories{
		CoachRepo:      repository.NewDefaultCoachRepository(db),
		LeadRepo:       repository.NewDefaultLeadRepository(db),
		EnrollmentRepo: repository.NewDefaultEnrollmentRepository(db),
		PayoutRepo:     repository.NewDefaultPayoutRepository(db),
		ClawbackRepo:   repository.NewDefaultClawbackRepository(db),
		PolicyRepo:     repository.NewDefaultPolicyRepository(db),
		VisitRepo:      repository.NewDefaultReferralVisitRepository(db),
	}

	return &Dependencies{
		Config:              cfg,
		DB:                  db,
		Redis:               rdb,
		Metrics:             metrics.NewSettlementMetrics(),
		AssignmentPublisher: kafka.NewKafkaPublisher(brokers, "assignment-events"),
		PayoutPublisher:     kafka.NewKafkaPublisher(brokers, "payout-events"),
		Repositories:        repos,
	}, nil
}
