package repositories

import (
	"context"

	"github.com/SscSPs/tally_cloud_sync/internal/core/domain"
)

// RecordReader defines read operations over any synced entity table.
// The descriptor selects the table and its key columns.
type RecordReader interface {
	// FindRecordByKey returns the row matching (companyID, key), or apperrors.ErrNotFound.
	FindRecordByKey(ctx context.Context, entity domain.EntityDescriptor, companyID string, key domain.BusinessKey) (*domain.StoredRecord, error)

	// ListRecords returns rows ordered by the descriptor's OrderBy column.
	ListRecords(ctx context.Context, entity domain.EntityDescriptor, filter domain.RecordFilter) ([]domain.StoredRecord, error)

	// SearchRecords matches the descriptor's SearchField case-insensitively.
	SearchRecords(ctx context.Context, entity domain.EntityDescriptor, search domain.RecordSearch) ([]domain.StoredRecord, error)

	// CountRecords counts a company's rows, optionally restricted by key values.
	CountRecords(ctx context.Context, entity domain.EntityDescriptor, companyID string, keyEquals map[string]string) (int64, error)
}

// RecordWriter defines write operations over any synced entity table.
type RecordWriter interface {
	// InsertRecord creates a new row and returns it with its assigned id.
	// A clash on the business key yields apperrors.ErrDuplicate.
	InsertRecord(ctx context.Context, entity domain.EntityDescriptor, record domain.StoredRecord) (*domain.StoredRecord, error)

	// UpdateRecord merges record.Data into the row identified by record.ID and
	// sets its updated_at. Fields absent from record.Data are preserved and
	// created_at is never changed.
	UpdateRecord(ctx context.Context, entity domain.EntityDescriptor, record domain.StoredRecord) (*domain.StoredRecord, error)
}

// RecordRepositoryFacade combines all record-related repository interfaces
type RecordRepositoryFacade interface {
	RecordReader
	RecordWriter
}
