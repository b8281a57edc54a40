package metrics_test

import (
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/tally_cloud_sync/internal/core/domain"
	"github.com/SscSPs/tally_cloud_sync/internal/platform/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncMetrics_ObserveBatch(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewSyncMetrics(reg)

	outcome := domain.NewBatchOutcome(domain.SyncTypeLedgers, 4)
	outcome.Add(domain.OutcomeCreated, "A", nil)
	outcome.Add(domain.OutcomeCreated, "B", nil)
	outcome.Add(domain.OutcomeUpdated, "C", nil)
	outcome.Add(domain.OutcomeFailed, "D", errors.New("x"))

	m.ObserveBatch(outcome, 150*time.Millisecond)
	m.AuditFailed(domain.SyncTypeLedgers)

	count, err := testutil.GatherAndCount(reg, "tallysync_sync_batches_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = testutil.GatherAndCount(reg, "tallysync_sync_records_total")
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	count, err = testutil.GatherAndCount(reg, "tallysync_sync_audit_failures_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSyncMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.SyncMetrics
	assert.NotPanics(t, func() {
		m.ObserveBatch(domain.NewBatchOutcome(domain.SyncTypeLedgers, 0), time.Second)
		m.AuditFailed(domain.SyncTypeLedgers)
	})
}
