package services

import (
	"context"
	"time"

	"github.com/SscSPs/tally_cloud_sync/internal/core/domain"
)

// ReconcilerSvc applies a batch of records for one entity type against
// existing state, record by record.
type ReconcilerSvc interface {
	// Reconcile never fails as a whole; per-record failures land in the outcome.
	Reconcile(ctx context.Context, companyID string, entity domain.EntityDescriptor, records []domain.Record) *domain.BatchOutcome
}

// SyncSvcFacade runs one full sync invocation: resolve, reconcile, audit.
type SyncSvcFacade interface {
	ReconcilerSvc

	// SyncBatch fails only when the company cannot be resolved.
	SyncBatch(ctx context.Context, entity domain.EntityDescriptor, companyName string, records []domain.Record) (*domain.SyncResult, error)
}

// AuditSvc persists and reads the append-only sync history.
type AuditSvc interface {
	// RecordSync appends one audit entry summarizing outcome.
	RecordSync(ctx context.Context, companyID string, outcome *domain.BatchOutcome, startedAt, completedAt time.Time) (*domain.SyncHistoryEntry, error)

	// ListSyncHistory returns newest entries first.
	ListSyncHistory(ctx context.Context, companyID string, limit int) ([]domain.SyncHistoryEntry, error)
}
