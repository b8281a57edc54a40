package services

import (
	"context"

	"github.com/SscSPs/tally_cloud_sync/internal/core/domain"
)

// ListRecordsQuery selects a page of synced rows. An empty CompanyName lists
// every company.
type ListRecordsQuery struct {
	CompanyName string
	KeyEquals   map[string]string
	Limit       int
	Offset      int
}

// RecordSvcFacade exposes read access to synced entity rows.
type RecordSvcFacade interface {
	// ListRecords returns an empty slice for an unknown company name.
	ListRecords(ctx context.Context, entity domain.EntityDescriptor, query ListRecordsQuery) ([]domain.StoredRecord, error)

	// SearchRecords matches text against the entity's search field.
	SearchRecords(ctx context.Context, entity domain.EntityDescriptor, companyName, text string) ([]domain.StoredRecord, error)
}
