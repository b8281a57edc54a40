package dto

import "github.com/SscSPs/tally_cloud_sync/internal/core/domain"

// ListRecordsParams defines query parameters for listing synced rows.
type ListRecordsParams struct {
	CompanyName string `form:"company_name"`
	Limit       int    `form:"limit,default=100" binding:"min=1,max=1000"`
	Offset      int    `form:"offset,default=0" binding:"min=0"`
}

// ListOutstandingParams adds the bill direction filter.
type ListOutstandingParams struct {
	ListRecordsParams
	Type string `form:"type" binding:"omitempty,oneof=receivable payable"`
}

// SearchRecordsParams defines query parameters for free text search.
type SearchRecordsParams struct {
	CompanyName string `form:"company_name"`
}

// RecordListResponse is keyed by the entity's payload field, e.g.
// {"success": true, "total": 2, "ledgers": [...]}.
type RecordListResponse map[string]any

// ToRecordListResponse flattens rows into the list envelope.
func ToRecordListResponse(entity domain.EntityDescriptor, rows []domain.StoredRecord) RecordListResponse {
	return RecordListResponse{
		"success":           true,
		"total":             len(rows),
		entity.PayloadField: domain.FlattenAll(rows),
	}
}

// ToRecordSearchResponse flattens rows into the search envelope.
func ToRecordSearchResponse(entity domain.EntityDescriptor, query string, rows []domain.StoredRecord) RecordListResponse {
	return RecordListResponse{
		"success":           true,
		"query":             query,
		"results":           len(rows),
		entity.PayloadField: domain.FlattenAll(rows),
	}
}
