package main

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tutorstack/settlement-service/internal/app/setup"
	"github.com/tutorstack/settlement-service/internal/delivery/http/handlers"
	"github.com/tutorstack/settlement-service/internal/delivery/http/middleware"
	"github.com/tutorstack/settlement-service/internal/infrastructure/migrate"
)

const idempotencyTTL = 24 * time.Hour

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}

	deps, err := setup.InitializeDependencies()
	if err != nil {
		log.Fatalf("failed to init dependencies: %v", err)
	}
	defer deps.AssignmentPublisher.Close()
	defer deps.PayoutPublisher.Close()

	if deps.Config.Migrations.Path != "" {
		if err := migrate.RunMigrations(deps.DB, deps.Config.Migrations.Path); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	ucs := setup.InitializeUseCases(deps)

	if err := ucs.AssignmentUsecase.SeedPendingGauge(); err != nil {
		log.Fatalf("failed to seed pending-manual gauge: %v", err)
	}

	intakeHandler := handlers.NewIntakeHandler(ucs.IntakeUsecase)
	captureHandler := handlers.NewCaptureHandler(ucs.SplitUsecase)
	payoutHandler := handlers.NewPayoutHandler(ucs.PayoutUsecase)
	coachHandler := handlers.NewCoachHandler(ucs.CoachUsecase)
	adminHandler := handlers.NewAdminHandler(ucs.AssignmentUsecase, ucs.AttributionUsecase, ucs.PolicyUsecase)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())

	// Money-moving POSTs replay on a repeated Idempotency-Key instead of
	// double-writing.
	idem := middleware.Idempotency(deps.Redis, idempotencyTTL)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")

	api.POST("/intake/leads", intakeHandler.CreateLead, idem)
	api.POST("/capture/enrollments", captureHandler.Capture, idem)
	api.GET("/capture/enrollments/:enrollment_id", captureHandler.Explain)

	api.POST("/payouts/run", payoutHandler.RunBatch, idem)
	api.GET("/payouts/:batch_id", payoutHandler.GetBatch)
	api.POST("/payouts/:batch_id/paid", payoutHandler.MarkPaid, idem)

	api.POST("/coaches", coachHandler.Create)
	api.GET("/coaches/:coach_id", coachHandler.Get)
	api.PATCH("/coaches/:coach_id/availability", coachHandler.SetAvailability)
	api.POST("/coaches/:coach_id/exit", coachHandler.SetExitStatus)
	api.PUT("/coaches/:coach_id/tax-identity", coachHandler.UpdateTaxIdentity)

	admin := api.Group("/admin")
	admin.POST("/leads/:lead_id/assign", adminHandler.ManualAssign)
	admin.GET("/leads/pending", adminHandler.PendingLeads)
	admin.GET("/leads/:lead_id/visits", adminHandler.LeadVisits)
	admin.POST("/policies/split", adminHandler.SaveSplitPolicy)
	admin.GET("/policies/split/active", adminHandler.ActiveSplitPolicy)
	admin.POST("/policies/withholding", adminHandler.SaveWithholdingPolicy)
	admin.POST("/clawbacks", payoutHandler.RecordClawback, idem)
	admin.GET("/clawbacks/open", payoutHandler.OpenClawbacks)
	admin.POST("/enrollments/:enrollment_id/hold", payoutHandler.HoldEnrollment)

	addr := fmt.Sprintf("%s:%s", deps.Config.HTTPServer.Host, deps.Config.HTTPServer.Port)
	log.Printf("settlement service listening on %s\n", addr)
	if err := e.Start(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
