package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/SscSPs/tally_cloud_sync/internal/adapters/database/memory"
	"github.com/SscSPs/tally_cloud_sync/internal/apperrors"
	"github.com/SscSPs/tally_cloud_sync/internal/core/domain"
	portssvc "github.com/SscSPs/tally_cloud_sync/internal/core/ports/services"
	"github.com/SscSPs/tally_cloud_sync/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CompanyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCompanyRepository
	service  portssvc.CompanySvcFacade
	ctx      context.Context
}

func (suite *CompanyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCompanyRepository)
	suite.service = services.NewCompanyService(suite.mockRepo)
	suite.ctx = context.Background()
}

func (suite *CompanyServiceTestSuite) TestResolveCompany_Existing() {
	existing := &domain.Company{ID: "c-1", Name: "Acme Traders"}
	suite.mockRepo.On("FindCompanyByName", suite.ctx, "Acme Traders").Return(existing, nil).Once()

	company, err := suite.service.ResolveCompany(suite.ctx, "Acme Traders")

	suite.Require().NoError(err)
	suite.Equal("c-1", company.ID)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCompany", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CompanyServiceTestSuite) TestResolveCompany_CreatesOnFirstSight() {
	suite.mockRepo.On("FindCompanyByName", suite.ctx, "New Co").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveCompany", suite.ctx, mock.MatchedBy(func(c domain.Company) bool {
		return c.Name == "New Co" && c.ID == "" && !c.CreatedAt.IsZero()
	})).Return(&domain.Company{ID: "c-new", Name: "New Co"}, nil).Once()

	company, err := suite.service.ResolveCompany(suite.ctx, "New Co")

	suite.Require().NoError(err)
	suite.Equal("c-new", company.ID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CompanyServiceTestSuite) TestResolveCompany_DuplicateInsertRereads() {
	suite.mockRepo.On("FindCompanyByName", suite.ctx, "Race Co").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveCompany", suite.ctx, mock.AnythingOfType("domain.Company")).
		Return(nil, apperrors.NewConflictError("company Race Co already exists")).Once()
	suite.mockRepo.On("FindCompanyByName", suite.ctx, "Race Co").Return(&domain.Company{ID: "c-winner", Name: "Race Co"}, nil).Once()

	company, err := suite.service.ResolveCompany(suite.ctx, "Race Co")

	suite.Require().NoError(err)
	suite.Equal("c-winner", company.ID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CompanyServiceTestSuite) TestResolveCompany_BlankName() {
	for _, name := range []string{"", "   ", "\t"} {
		_, err := suite.service.ResolveCompany(suite.ctx, name)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "FindCompanyByName", mock.Anything, mock.Anything)
}

func (suite *CompanyServiceTestSuite) TestResolveCompany_StoreFailure() {
	storeErr := errors.New("connection refused")
	suite.mockRepo.On("FindCompanyByName", suite.ctx, "Acme").Return(nil, storeErr).Once()

	_, err := suite.service.ResolveCompany(suite.ctx, "Acme")

	suite.ErrorIs(err, storeErr)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCompany", mock.Anything, mock.Anything)
}

func (suite *CompanyServiceTestSuite) TestResolveCompany_SaveFailure() {
	storeErr := errors.New("disk full")
	suite.mockRepo.On("FindCompanyByName", suite.ctx, "Acme").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveCompany", suite.ctx, mock.AnythingOfType("domain.Company")).Return(nil, storeErr).Once()

	_, err := suite.service.ResolveCompany(suite.ctx, "Acme")

	suite.ErrorIs(err, storeErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CompanyServiceTestSuite) TestListCompanies_NilBecomesEmpty() {
	suite.mockRepo.On("ListCompanies", suite.ctx).Return(nil, nil).Once()

	companies, err := suite.service.ListCompanies(suite.ctx)

	suite.Require().NoError(err)
	suite.NotNil(companies)
	suite.Empty(companies)
}

func (suite *CompanyServiceTestSuite) TestGetCompanyByName_NotFound() {
	suite.mockRepo.On("FindCompanyByName", suite.ctx, "Ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetCompanyByName(suite.ctx, "Ghost")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestCompanyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyServiceTestSuite))
}

func TestResolveCompany_ConcurrentFirstSyncCreatesOneCompany(t *testing.T) {
	store := memory.NewStore()
	svc := services.NewCompanyService(store)
	ctx := context.Background()

	const callers = 16
	ids := make([]string, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			company, err := svc.ResolveCompany(ctx, "Parallel Co")
			if assert.NoError(t, err) {
				ids[i] = company.ID
			}
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
	companies, err := store.ListCompanies(ctx)
	require.NoError(t, err)
	assert.Len(t, companies, 1)
}
