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

// SearchResultLimit caps the rows returned by a free text search.
const SearchResultLimit = 50

type recordService struct {
	BaseService
	recordRepo portsrepo.RecordRepositoryFacade
	companies  portssvc.CompanyReaderSvc
}

// NewRecordService creates the read side over synced entity tables.
func NewRecordService(recordRepo portsrepo.RecordRepositoryFacade, companies portssvc.CompanyReaderSvc) portssvc.RecordSvcFacade {
	return &recordService{recordRepo: recordRepo, companies: companies}
}

var _ portssvc.RecordSvcFacade = (*recordService)(nil)

// companyFilter maps an optional company name to its id. found is false when
// a name was given but no such company exists.
func (s *recordService) companyFilter(ctx context.Context, companyName string) (companyID string, found bool, err error) {
	if strings.TrimSpace(companyName) == "" {
		return "", true, nil
	}
	company, err := s.companies.GetCompanyByName(ctx, companyName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return company.ID, true, nil
}

func (s *recordService) ListRecords(ctx context.Context, entity domain.EntityDescriptor, query portssvc.ListRecordsQuery) ([]domain.StoredRecord, error) {
	companyID, found, err := s.companyFilter(ctx, query.CompanyName)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", entity.Table, err)
	}
	if !found {
		s.LogDebug(ctx, "List for unknown company", zap.String("company_name", query.CompanyName))
		return []domain.StoredRecord{}, nil
	}

	for field := range query.KeyEquals {
		if !entity.IsKeyField(field) {
			return nil, apperrors.NewValidationFailedError(fmt.Sprintf("%s cannot be filtered by %s", entity.Table, field))
		}
	}

	rows, err := s.recordRepo.ListRecords(ctx, entity, domain.RecordFilter{
		CompanyID: companyID,
		KeyEquals: query.KeyEquals,
		Limit:     query.Limit,
		Offset:    query.Offset,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list records", zap.String("table", entity.Table))
		return nil, fmt.Errorf("failed to list %s: %w", entity.Table, err)
	}
	if rows == nil {
		return []domain.StoredRecord{}, nil
	}
	return rows, nil
}

func (s *recordService) SearchRecords(ctx context.Context, entity domain.EntityDescriptor, companyName, text string) ([]domain.StoredRecord, error) {
	if entity.SearchField == "" {
		return nil, apperrors.NewValidationFailedError(entity.Table + " does not support search")
	}
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.NewValidationFailedError("search query is required")
	}

	companyID, found, err := s.companyFilter(ctx, companyName)
	if err != nil {
		return nil, fmt.Errorf("failed to search %s: %w", entity.Table, err)
	}
	if !found {
		return []domain.StoredRecord{}, nil
	}

	rows, err := s.recordRepo.SearchRecords(ctx, entity, domain.RecordSearch{
		CompanyID: companyID,
		Query:     text,
		Limit:     SearchResultLimit,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to search records", zap.String("table", entity.Table), zap.String("query", text))
		return nil, fmt.Errorf("failed to search %s: %w", entity.Table, err)
	}
	if rows == nil {
		return []domain.StoredRecord{}, nil
	}
	return rows, nil
}
