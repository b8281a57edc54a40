package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/tally_cloud_sync/internal/apperrors"
	"github.com/SscSPs/tally_cloud_sync/internal/core/domain"
	portsrepo "github.com/SscSPs/tally_cloud_sync/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tally_cloud_sync/internal/core/ports/services"
	"go.uber.org/zap"
)

// companyService implements portssvc.CompanySvcFacade
type companyService struct {
	BaseService
	companyRepo portsrepo.CompanyRepositoryFacade
}

// NewCompanyService creates a new company service
func NewCompanyService(companyRepo portsrepo.CompanyRepositoryFacade) portssvc.CompanySvcFacade {
	return &companyService{companyRepo: companyRepo}
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

// ResolveCompany looks the company up by exact name and creates it on first
// sight. When a concurrent caller wins the insert, the unique constraint
// reports a duplicate and the winner's row is returned instead.
func (s *companyService) ResolveCompany(ctx context.Context, name string) (*domain.Company, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.NewValidationFailedError("company_name is required")
	}

	company, err := s.companyRepo.FindCompanyByName(ctx, name)
	if err == nil {
		return company, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up company", zap.String("company_name", name))
		return nil, fmt.Errorf("failed to look up company %q: %w", name, err)
	}

	created, err := s.companyRepo.SaveCompany(ctx, domain.Company{Name: name, CreatedAt: s.Now()})
	if err == nil {
		s.LogInfo(ctx, "Created company on first sync", zap.String("company_name", name), zap.String("company_id", created.ID))
		return created, nil
	}
	if !errors.Is(err, apperrors.ErrDuplicate) {
		s.LogError(ctx, err, "Failed to create company", zap.String("company_name", name))
		return nil, fmt.Errorf("failed to create company %q: %w", name, err)
	}

	s.LogDebug(ctx, "Company created concurrently, re-reading", zap.String("company_name", name))
	company, err = s.companyRepo.FindCompanyByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read company %q after duplicate insert: %w", name, err)
	}
	return company, nil
}

func (s *companyService) GetCompanyByName(ctx context.Context, name string) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get company %q: %w", name, err)
	}
	return company, nil
}

func (s *companyService) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	companies, err := s.companyRepo.ListCompanies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	// Return empty slice if no companies found, not nil
	if companies == nil {
		return []domain.Company{}, nil
	}
	return companies, nil
}
