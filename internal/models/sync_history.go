package models

import "time"

// SyncHistory is the sync_history table row.
type SyncHistory struct {
	ID            string    `db:"id"`
	CompanyID     string    `db:"company_id"`
	SyncType      string    `db:"sync_type"`
	RecordsSynced int       `db:"records_synced"`
	Status        string    `db:"status"`
	ErrorMessage  *string   `db:"error_message"` // Nullable
	StartedAt     time.Time `db:"started_at"`
	CompletedAt   time.Time `db:"completed_at"`
}
