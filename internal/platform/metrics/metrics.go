package metrics

import (
	"time"

	"github.com/SscSPs/tally_cloud_sync/internal/core/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "tallysync"

// SyncMetrics records sync outcomes. A nil *SyncMetrics is a no-op.
type SyncMetrics struct {
	records       *prometheus.CounterVec
	batches       *prometheus.CounterVec
	auditFailures *prometheus.CounterVec
	duration      *prometheus.HistogramVec
}

// NewSyncMetrics registers the sync collectors on reg.
func NewSyncMetrics(reg prometheus.Registerer) *SyncMetrics {
	m := &SyncMetrics{
		records: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_records_total",
			Help:      "Records processed by sync calls, by entity and outcome.",
		}, []string{"sync_type", "outcome"}),
		batches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_batches_total",
			Help:      "Completed sync calls, by entity and status.",
		}, []string{"sync_type", "status"}),
		auditFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_audit_failures_total",
			Help:      "Sync calls whose audit entry could not be written.",
		}, []string{"sync_type"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sync_batch_duration_seconds",
			Help:      "Wall time of the reconciliation loop.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		}, []string{"sync_type"}),
	}
	reg.MustRegister(m.records, m.batches, m.auditFailures, m.duration)
	return m
}

// ObserveBatch records the outcome of one reconciliation pass.
func (m *SyncMetrics) ObserveBatch(outcome *domain.BatchOutcome, elapsed time.Duration) {
	if m == nil || outcome == nil {
		return
	}
	t := string(outcome.SyncType)
	m.records.WithLabelValues(t, string(domain.OutcomeCreated)).Add(float64(outcome.Created))
	m.records.WithLabelValues(t, string(domain.OutcomeUpdated)).Add(float64(outcome.Updated))
	m.records.WithLabelValues(t, string(domain.OutcomeSkipped)).Add(float64(outcome.Skipped))
	m.records.WithLabelValues(t, string(domain.OutcomeFailed)).Add(float64(outcome.Failed()))
	m.batches.WithLabelValues(t, string(outcome.Status())).Inc()
	m.duration.WithLabelValues(t).Observe(elapsed.Seconds())
}

// AuditFailed counts an audit write that did not succeed.
func (m *SyncMetrics) AuditFailed(t domain.SyncType) {
	if m == nil {
		return
	}
	m.auditFailures.WithLabelValues(string(t)).Inc()
}
