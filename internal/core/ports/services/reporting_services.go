package services

import (
	"context"

	"github.com/SscSPs/tally_cloud_sync/internal/core/domain"
)

// ReportingService defines per-company rollups over synced data
type ReportingService interface {
	// CompanyStats returns apperrors.ErrNotFound for unknown companies.
	CompanyStats(ctx context.Context, companyName string) (*domain.CompanyStats, error)

	// SyncStatus returns the most recent audit entries, newest first.
	SyncStatus(ctx context.Context, companyName string) ([]domain.SyncHistoryEntry, error)
}
