package mapping

import (
	"github.com/SscSPs/tally_cloud_sync/internal/core/domain"
	"github.com/SscSPs/tally_cloud_sync/internal/models"
)

// ToModelSyncHistory converts a domain SyncHistoryEntry to a model SyncHistory
func ToModelSyncHistory(d domain.SyncHistoryEntry) models.SyncHistory {
	return models.SyncHistory{
		ID:            d.ID,
		CompanyID:     d.CompanyID,
		SyncType:      string(d.SyncType),
		RecordsSynced: d.RecordsSynced,
		Status:        string(d.Status),
		ErrorMessage:  d.ErrorMessage,
		StartedAt:     d.StartedAt,
		CompletedAt:   d.CompletedAt,
	}
}

// ToDomainSyncHistory converts a model SyncHistory to a domain SyncHistoryEntry
func ToDomainSyncHistory(m models.SyncHistory) domain.SyncHistoryEntry {
	return domain.SyncHistoryEntry{
		ID:            m.ID,
		CompanyID:     m.CompanyID,
		SyncType:      domain.SyncType(m.SyncType),
		RecordsSynced: m.RecordsSynced,
		Status:        domain.SyncStatus(m.Status),
		ErrorMessage:  m.ErrorMessage,
		StartedAt:     m.StartedAt,
		CompletedAt:   m.CompletedAt,
	}
}

// ToDomainSyncHistorySlice converts a slice of model SyncHistory rows to domain entries
func ToDomainSyncHistorySlice(ms []models.SyncHistory) []domain.SyncHistoryEntry {
	ds := make([]domain.SyncHistoryEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSyncHistory(m)
	}
	return ds
}
