package domain

import (
	"strings"
	"time"
)

// SyncStatus is the summarized outcome stored in the audit log.
type SyncStatus string

const (
	SyncStatusSuccess SyncStatus = "success"
	SyncStatusPartial SyncStatus = "partial"
)

// SyncHistoryEntry is one immutable audit row, written once per sync invocation.
type SyncHistoryEntry struct {
	ID            string     `json:"id"`
	CompanyID     string     `json:"company_id"`
	SyncType      SyncType   `json:"sync_type"`
	RecordsSynced int        `json:"records_synced"`
	Status        SyncStatus `json:"status"`
	ErrorMessage  *string    `json:"error_message"`
	StartedAt     time.Time  `json:"started_at"`
	CompletedAt   time.Time  `json:"completed_at"`
}

// NewSyncHistoryEntry summarizes outcome into an audit row. The error
// message joins the bounded error list with newlines.
func NewSyncHistoryEntry(companyID string, outcome *BatchOutcome, startedAt, completedAt time.Time) SyncHistoryEntry {
	entry := SyncHistoryEntry{
		CompanyID:     companyID,
		SyncType:      outcome.SyncType,
		RecordsSynced: outcome.Synced(),
		Status:        outcome.Status(),
		StartedAt:     startedAt,
		CompletedAt:   completedAt,
	}
	if reported := outcome.ReportedErrors(); len(reported) > 0 {
		msg := strings.Join(reported, "\n")
		entry.ErrorMessage = &msg
	}
	return entry
}
