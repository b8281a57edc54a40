package services

import (
	"context"

	"github.com/SscSPs/tally_cloud_sync/internal/core/domain"
)

// CompanyResolverSvc maps a company name to its stable id, creating the
// company on first sight.
type CompanyResolverSvc interface {
	// ResolveCompany returns the company named name, creating it if needed.
	ResolveCompany(ctx context.Context, name string) (*domain.Company, error)
}

// CompanyReaderSvc defines read operations for company data
type CompanyReaderSvc interface {
	// GetCompanyByName returns apperrors.ErrNotFound for unknown names.
	GetCompanyByName(ctx context.Context, name string) (*domain.Company, error)

	// ListCompanies returns all companies ordered by name.
	ListCompanies(ctx context.Context) ([]domain.Company, error)
}

// CompanySvcFacade combines all company-related service interfaces
type CompanySvcFacade interface {
	CompanyResolverSvc
	CompanyReaderSvc
}
