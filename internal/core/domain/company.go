package domain

import "time"

// Company is the tenant boundary. Name is the natural key used by callers.
type Company struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CompanyStats is the per-company rollup served by the stats endpoint.
type CompanyStats struct {
	CompanyName      string            `json:"company_name"`
	TotalLedgers     int64             `json:"total_ledgers"`
	TotalStockItems  int64             `json:"total_stock_items"`
	TotalReceivables int64             `json:"total_receivables"`
	TotalPayables    int64             `json:"total_payables"`
	LastSync         *SyncHistoryEntry `json:"last_sync"`
}

// SyncResult is what one sync invocation produced.
type SyncResult struct {
	Company    Company
	Outcome    *BatchOutcome
	AuditEntry *SyncHistoryEntry
	// AuditErr is set when the audit row could not be written. The batch
	// writes are kept regardless.
	AuditErr error
}
