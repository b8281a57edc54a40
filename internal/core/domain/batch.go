package domain

import (
	"fmt"
	"strings"
)

// MaxReportedErrors bounds the error messages returned to the caller and
// persisted in the audit row.
const MaxReportedErrors = 10

// RecordOutcome classifies what happened to one record of a batch.
type RecordOutcome string

const (
	OutcomeCreated RecordOutcome = "created"
	OutcomeUpdated RecordOutcome = "updated"
	OutcomeSkipped RecordOutcome = "skipped"
	OutcomeFailed  RecordOutcome = "failed"
)

// BatchOutcome accumulates per-record outcomes of one reconciliation pass.
type BatchOutcome struct {
	SyncType SyncType
	Total    int
	Created  int
	Updated  int
	Skipped  int
	Errors   []string
}

// NewBatchOutcome starts an empty outcome for a batch of total records.
func NewBatchOutcome(t SyncType, total int) *BatchOutcome {
	return &BatchOutcome{SyncType: t, Total: total}
}

// Add records one outcome. For OutcomeFailed, label and cause form the
// message "<label>: <cause>". NUL bytes are dropped from the message since
// text columns cannot store them.
func (b *BatchOutcome) Add(outcome RecordOutcome, label string, cause error) {
	switch outcome {
	case OutcomeCreated:
		b.Created++
	case OutcomeUpdated:
		b.Updated++
	case OutcomeSkipped:
		b.Skipped++
	case OutcomeFailed:
		msg := fmt.Sprintf("%s: %v", label, cause)
		b.Errors = append(b.Errors, strings.ReplaceAll(msg, "\x00", ""))
	}
}

// Synced is the number of records written successfully.
func (b *BatchOutcome) Synced() int {
	return b.Created + b.Updated
}

// Failed is the number of records that failed to reconcile.
func (b *BatchOutcome) Failed() int {
	return len(b.Errors)
}

// ReportedErrors returns at most MaxReportedErrors messages, in batch order.
func (b *BatchOutcome) ReportedErrors() []string {
	if len(b.Errors) <= MaxReportedErrors {
		return b.Errors
	}
	return b.Errors[:MaxReportedErrors]
}

// Status is partial whenever any record failed, regardless of successes.
func (b *BatchOutcome) Status() SyncStatus {
	if len(b.Errors) > 0 {
		return SyncStatusPartial
	}
	return SyncStatusSuccess
}
