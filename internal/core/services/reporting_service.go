package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/tally_cloud_sync/internal/core/domain"
	portsrepo "github.com/SscSPs/tally_cloud_sync/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tally_cloud_sync/internal/core/ports/services"
	"go.uber.org/zap"
)

// DefaultSyncStatusLimit is how many audit entries SyncStatus returns.
const DefaultSyncStatusLimit = 10

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	recordRepo   portsrepo.RecordReader
	companies    portssvc.CompanyReaderSvc
	audit        portssvc.AuditSvc
	historyLimit int
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingHistoryLimit sets how many audit entries SyncStatus returns.
func WithReportingHistoryLimit(limit int) ReportingServiceOption {
	return func(s *reportingService) {
		if limit > 0 {
			s.historyLimit = limit
		}
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(recordRepo portsrepo.RecordReader, companies portssvc.CompanyReaderSvc, audit portssvc.AuditSvc, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		recordRepo:   recordRepo,
		companies:    companies,
		audit:        audit,
		historyLimit: DefaultSyncStatusLimit,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// CompanyStats counts a company's synced rows and attaches its latest sync.
func (s *reportingService) CompanyStats(ctx context.Context, companyName string) (*domain.CompanyStats, error) {
	company, err := s.companies.GetCompanyByName(ctx, companyName)
	if err != nil {
		return nil, err
	}

	stats := &domain.CompanyStats{CompanyName: company.Name}
	counts := []struct {
		entity    domain.EntityDescriptor
		keyEquals map[string]string
		dst       *int64
	}{
		{domain.LedgerEntity, nil, &stats.TotalLedgers},
		{domain.StockItemEntity, nil, &stats.TotalStockItems},
		{domain.OutstandingEntity, map[string]string{"type": domain.BillTypeReceivable}, &stats.TotalReceivables},
		{domain.OutstandingEntity, map[string]string{"type": domain.BillTypePayable}, &stats.TotalPayables},
	}
	for _, c := range counts {
		n, err := s.recordRepo.CountRecords(ctx, c.entity, company.ID, c.keyEquals)
		if err != nil {
			s.LogError(ctx, err, "Failed to count records",
				zap.String("company_id", company.ID),
				zap.String("table", c.entity.Table))
			return nil, fmt.Errorf("failed to count %s: %w", c.entity.Table, err)
		}
		*c.dst = n
	}

	latest, err := s.audit.ListSyncHistory(ctx, company.ID, 1)
	if err != nil {
		return nil, err
	}
	if len(latest) > 0 {
		stats.LastSync = &latest[0]
	}

	return stats, nil
}

// SyncStatus returns the company's most recent audit entries, newest first.
func (s *reportingService) SyncStatus(ctx context.Context, companyName string) ([]domain.SyncHistoryEntry, error) {
	company, err := s.companies.GetCompanyByName(ctx, companyName)
	if err != nil {
		return nil, err
	}
	return s.audit.ListSyncHistory(ctx, company.ID, s.historyLimit)
}
