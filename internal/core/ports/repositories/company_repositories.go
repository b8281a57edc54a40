package repositories

import (
	"context"

	"github.com/SscSPs/tally_cloud_sync/internal/core/domain"
)

// CompanyReader defines read operations for company data
type CompanyReader interface {
	// FindCompanyByName returns the company with exactly this name, or apperrors.ErrNotFound.
	FindCompanyByName(ctx context.Context, name string) (*domain.Company, error)

	// ListCompanies returns all companies ordered by name.
	ListCompanies(ctx context.Context) ([]domain.Company, error)
}

// CompanyWriter defines write operations for company data
type CompanyWriter interface {
	// SaveCompany inserts a company and returns it with its assigned id.
	// It returns apperrors.ErrDuplicate when the name is already taken.
	SaveCompany(ctx context.Context, company domain.Company) (*domain.Company, error)
}

// CompanyRepositoryFacade combines all company-related repository interfaces
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
}
