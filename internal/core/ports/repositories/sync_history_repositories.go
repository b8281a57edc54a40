package repositories

import (
	"context"

	"github.com/SscSPs/tally_cloud_sync/internal/core/domain"
)

// SyncHistoryReader defines read operations for the sync audit log
type SyncHistoryReader interface {
	// ListSyncHistory returns a company's newest entries first, at most limit.
	ListSyncHistory(ctx context.Context, companyID string, limit int) ([]domain.SyncHistoryEntry, error)
}

// SyncHistoryWriter appends to the sync audit log. Entries are never updated.
type SyncHistoryWriter interface {
	// SaveSyncHistory appends entry and returns it with its assigned id.
	SaveSyncHistory(ctx context.Context, entry domain.SyncHistoryEntry) (*domain.SyncHistoryEntry, error)
}

// SyncHistoryRepositoryFacade combines all audit log repository interfaces
type SyncHistoryRepositoryFacade interface {
	SyncHistoryReader
	SyncHistoryWriter
}
