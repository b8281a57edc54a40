package models

import "time"

// Record is one row of a synced entity table. Key columns vary per table, so
// they are scanned positionally into KeyValues in descriptor order.
type Record struct {
	ID        string
	CompanyID string
	KeyValues []string
	Data      map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
}
