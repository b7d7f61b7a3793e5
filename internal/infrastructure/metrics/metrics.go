package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SettlementMetrics covers the assignment and payout pipelines. The
// pending-manual gauge is the operational signal for leads waiting on a
// human; it is not an error counter.
type SettlementMetrics struct {
	LeadsPendingManual prometheus.Gauge

	AssignmentsTotal prometheus.CounterVec

	EnrollmentsCapturedTotal prometheus.Counter
	EnrollmentsAmountTotal   prometheus.CounterVec

	PayoutBatchesTotal     prometheus.Counter
	PayoutBatchAmountTotal prometheus.CounterVec

	ClawbacksRecordedTotal    prometheus.CounterVec
	ClawbackCarryForwardTotal prometheus.Counter

	BatchRunFailuresTotal prometheus.Counter
}

func NewSettlementMetrics() *SettlementMetrics {
	return &SettlementMetrics{
		LeadsPendingManual: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "leads_pending_manual",
				Help: "Leads currently waiting for manual assignment",
			},
		),

		AssignmentsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "assignments_total",
				Help: "Lead assignment outcomes",
			},
			[]string{"type"},
		),

		EnrollmentsCapturedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "enrollments_captured_total",
				Help: "Enrollments captured and split",
			},
		),

		EnrollmentsAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "enrollments_amount_paise_total",
				Help: "Split amounts by share in paise",
			},
			[]string{"share"},
		),

		PayoutBatchesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "payout_batches_total",
				Help: "Payout batches emitted",
			},
		),

		PayoutBatchAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payout_batch_amount_paise_total",
				Help: "Batched amounts by kind in paise",
			},
			[]string{"kind"},
		),

		ClawbacksRecordedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clawbacks_recorded_total",
				Help: "Clawbacks recorded by reason",
			},
			[]string{"reason"},
		),

		ClawbackCarryForwardTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "clawback_carry_forward_total",
				Help: "Clawback residuals carried into a later period",
			},
		),

		BatchRunFailuresTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "payout_batch_run_failures_total",
				Help: "Payout batch runs aborted before emitting a batch",
			},
		),
	}
}
