package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/tally_cloud_sync/internal/core/domain"
	portsrepo "github.com/SscSPs/tally_cloud_sync/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tally_cloud_sync/internal/core/ports/services"
	"go.uber.org/zap"
)

type auditService struct {
	BaseService
	historyRepo portsrepo.SyncHistoryRepositoryFacade
}

// NewAuditService creates the sync history recorder.
func NewAuditService(historyRepo portsrepo.SyncHistoryRepositoryFacade) portssvc.AuditSvc {
	return &auditService{historyRepo: historyRepo}
}

var _ portssvc.AuditSvc = (*auditService)(nil)

func (s *auditService) RecordSync(ctx context.Context, companyID string, outcome *domain.BatchOutcome, startedAt, completedAt time.Time) (*domain.SyncHistoryEntry, error) {
	entry := domain.NewSyncHistoryEntry(companyID, outcome, startedAt, completedAt)

	saved, err := s.historyRepo.SaveSyncHistory(ctx, entry)
	if err != nil {
		s.LogError(ctx, err, "Failed to append sync history",
			zap.String("company_id", companyID),
			zap.String("sync_type", string(outcome.SyncType)),
		)
		return nil, fmt.Errorf("failed to record %s sync: %w", outcome.SyncType, err)
	}

	s.LogDebug(ctx, "Sync history appended",
		zap.String("sync_history_id", saved.ID),
		zap.String("status", string(saved.Status)),
		zap.Int("records_synced", saved.RecordsSynced),
	)
	return saved, nil
}

func (s *auditService) ListSyncHistory(ctx context.Context, companyID string, limit int) ([]domain.SyncHistoryEntry, error) {
	entries, err := s.historyRepo.ListSyncHistory(ctx, companyID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sync history: %w", err)
	}
	if entries == nil {
		return []domain.SyncHistoryEntry{}, nil
	}
	return entries, nil
}
