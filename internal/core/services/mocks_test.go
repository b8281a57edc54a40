package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/tally_cloud_sync/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockCompanyRepository is a mock type for the CompanyRepositoryFacade interface
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindCompanyByName(ctx context.Context, name string) (*domain.Company, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) (*domain.Company, error) {
	args := m.Called(ctx, company)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

// MockAuditService is a mock type for the AuditSvc interface
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) RecordSync(ctx context.Context, companyID string, outcome *domain.BatchOutcome, startedAt, completedAt time.Time) (*domain.SyncHistoryEntry, error) {
	args := m.Called(ctx, companyID, outcome, startedAt, completedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SyncHistoryEntry), args.Error(1)
}

func (m *MockAuditService) ListSyncHistory(ctx context.Context, companyID string, limit int) ([]domain.SyncHistoryEntry, error) {
	args := m.Called(ctx, companyID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SyncHistoryEntry), args.Error(1)
}

// MockCompanyResolver is a mock type for the CompanyResolverSvc interface
type MockCompanyResolver struct {
	mock.Mock
}

func (m *MockCompanyResolver) ResolveCompany(ctx context.Context, name string) (*domain.Company, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
