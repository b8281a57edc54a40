package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SscSPs/tally_cloud_sync/internal/adapters/database/memory"
	"github.com/SscSPs/tally_cloud_sync/internal/core/domain"
	portssvc "github.com/SscSPs/tally_cloud_sync/internal/core/ports/services"
	"github.com/SscSPs/tally_cloud_sync/internal/core/services"
	"github.com/SscSPs/tally_cloud_sync/internal/dto"
	"github.com/SscSPs/tally_cloud_sync/internal/handlers"
	"github.com/SscSPs/tally_cloud_sync/internal/middleware"
	"github.com/SscSPs/tally_cloud_sync/internal/platform/config"
	"github.com/SscSPs/tally_cloud_sync/internal/platform/metrics"
	"github.com/SscSPs/tally_cloud_sync/internal/platform/ratelimit"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const testAgentToken = "agent-secret"

// --- Mock SyncService ---
type MockSyncService struct {
	mock.Mock
}

func (m *MockSyncService) Reconcile(ctx context.Context, companyID string, entity domain.EntityDescriptor, records []domain.Record) *domain.BatchOutcome {
	args := m.Called(ctx, companyID, entity, records)
	return args.Get(0).(*domain.BatchOutcome)
}

func (m *MockSyncService) SyncBatch(ctx context.Context, entity domain.EntityDescriptor, companyName string, records []domain.Record) (*domain.SyncResult, error) {
	args := m.Called(ctx, entity, companyName, records)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SyncResult), args.Error(1)
}

var _ portssvc.SyncSvcFacade = (*MockSyncService)(nil)

type HandlersTestSuite struct {
	suite.Suite
	store     *memory.Store
	container *portssvc.ServiceContainer
	cfg       *config.Config
	registry  *prometheus.Registry
	router    *gin.Engine
}

func (suite *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.store = memory.NewStore()
	suite.registry = prometheus.NewRegistry()
	suite.container = services.NewServiceContainer(memory.NewRepositoryProvider(suite.store),
		services.WithMetrics(metrics.NewSyncMetrics(suite.registry)))
	suite.cfg = &config.Config{AgentToken: testAgentToken, CORSAllowedOrigins: []string{"*"}}
	suite.router = suite.newRouter(handlers.Dependencies{Gatherer: suite.registry})
}

func (suite *HandlersTestSuite) newRouter(deps handlers.Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(zap.NewNop()))
	handlers.RegisterRoutes(r, suite.cfg, suite.container, deps)
	return r
}

func (suite *HandlersTestSuite) do(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(middleware.AgentTokenHeader, token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlersTestSuite) decode(w *httptest.ResponseRecorder, dst any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), dst), w.Body.String())
}

func (suite *HandlersTestSuite) historyCount(companyName string) int {
	company, err := suite.store.FindCompanyByName(context.Background(), companyName)
	if err != nil {
		return 0
	}
	entries, err := suite.store.ListSyncHistory(context.Background(), company.ID, 100)
	suite.Require().NoError(err)
	return len(entries)
}

func (suite *HandlersTestSuite) TestSync_RejectsMissingOrWrongToken() {
	body := `{"company_name":"Acme","ledgers":[{"name":"Cash"}]}`

	for _, token := range []string{"", "wrong"} {
		w := suite.do(http.MethodPost, "/api/sync/ledgers", body, token)

		suite.Equal(http.StatusUnauthorized, w.Code)
		var resp dto.ErrorResponse
		suite.decode(w, &resp)
		suite.False(resp.Success)
		suite.NotEmpty(resp.Detail)
	}

	companies, err := suite.store.ListCompanies(context.Background())
	suite.Require().NoError(err)
	suite.Empty(companies, "nothing is processed before the token is checked")
}

func (suite *HandlersTestSuite) TestSync_EmptyBatchSucceeds() {
	w := suite.do(http.MethodPost, "/api/sync/ledgers", `{"company_name":"Acme","ledgers":[]}`, testAgentToken)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.SyncResponse
	suite.decode(w, &resp)
	suite.True(resp.Success)
	suite.Equal("Acme", resp.Company)
	suite.Zero(resp.Synced)
	suite.Zero(resp.Failed)
	suite.Nil(resp.Errors)
	suite.True(resp.AuditRecorded)
	suite.Equal(1, suite.historyCount("Acme"))
}

func (suite *HandlersTestSuite) TestSync_PartialFailureStill200() {
	body := `{"company_name":"Acme","outstanding":[
		{"bill_name":"INV-1","type":"receivable","amount":1200.50},
		{"bill_name":"INV-2","type":"advance"},
		{"bill_name":"  ","type":"payable"}
	]}`

	w := suite.do(http.MethodPost, "/api/sync/outstanding", body, testAgentToken)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.SyncResponse
	suite.decode(w, &resp)
	suite.Equal(domain.SyncTypeOutstanding, resp.SyncType)
	suite.Equal(3, resp.Total)
	suite.Equal(1, resp.Synced)
	suite.Equal(1, resp.Skipped)
	suite.Equal(1, resp.Failed)
	suite.Require().Len(resp.Errors, 1)
	suite.Contains(resp.Errors[0], "INV-2/advance")
}

func (suite *HandlersTestSuite) TestSync_BareArrayWithQueryCompany() {
	w := suite.do(http.MethodPost, "/api/sync/stock-items?company_name=Acme", `[{"name":"Widget"},{"name":"Gadget"}]`, testAgentToken)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.SyncResponse
	suite.decode(w, &resp)
	suite.Equal(2, resp.Synced)
	suite.Equal("Acme", resp.Company)
}

func (suite *HandlersTestSuite) TestSync_BadRequests() {
	cases := map[string]string{
		"missing company": `{"ledgers":[{"name":"Cash"}]}`,
		"blank company":   `{"company_name":"  ","ledgers":[]}`,
		"malformed json":  `{"company_name":`,
		"empty body":      ``,
	}
	for name, body := range cases {
		w := suite.do(http.MethodPost, "/api/sync/ledgers", body, testAgentToken)
		suite.Equal(http.StatusBadRequest, w.Code, name)
	}
	companies, err := suite.store.ListCompanies(context.Background())
	suite.Require().NoError(err)
	suite.Empty(companies)
}

func (suite *HandlersTestSuite) TestSync_ResolveFailureIs500WithoutAudit() {
	syncMock := new(MockSyncService)
	syncMock.On("SyncBatch", mock.Anything, domain.LedgerEntity, "Acme", mock.Anything).
		Return(nil, errors.New("failed to look up company \"Acme\": connection refused")).Once()
	suite.container.Sync = syncMock
	suite.router = suite.newRouter(handlers.Dependencies{})

	w := suite.do(http.MethodPost, "/api/sync/ledgers", `{"company_name":"Acme","ledgers":[{"name":"Cash"}]}`, testAgentToken)

	suite.Equal(http.StatusInternalServerError, w.Code)
	var resp dto.ErrorResponse
	suite.decode(w, &resp)
	suite.Contains(resp.Detail, "connection refused")
	suite.Equal(0, suite.historyCount("Acme"))
	syncMock.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestSync_AuditFailureReported() {
	syncMock := new(MockSyncService)
	outcome := domain.NewBatchOutcome(domain.SyncTypeLedgers, 1)
	outcome.Add(domain.OutcomeCreated, "", nil)
	syncMock.On("SyncBatch", mock.Anything, domain.LedgerEntity, "Acme", mock.Anything).Return(&domain.SyncResult{
		Company:  domain.Company{ID: "c-1", Name: "Acme"},
		Outcome:  outcome,
		AuditErr: errors.New("sync_history unavailable"),
	}, nil).Once()
	suite.container.Sync = syncMock
	suite.router = suite.newRouter(handlers.Dependencies{})

	w := suite.do(http.MethodPost, "/api/sync/ledgers", `{"company_name":"Acme","ledgers":[{"name":"Cash"}]}`, testAgentToken)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.SyncResponse
	suite.decode(w, &resp)
	suite.Equal(1, resp.Synced)
	suite.False(resp.AuditRecorded)
}

func (suite *HandlersTestSuite) TestSync_RateLimited() {
	lim, err := ratelimit.NewSyncLimiter("1-M", nil)
	suite.Require().NoError(err)
	suite.router = suite.newRouter(handlers.Dependencies{SyncLimiter: lim})

	first := suite.do(http.MethodPost, "/api/sync/ledgers", `{"company_name":"Acme","ledgers":[]}`, testAgentToken)
	second := suite.do(http.MethodPost, "/api/sync/ledgers", `{"company_name":"Acme","ledgers":[]}`, testAgentToken)

	suite.Equal(http.StatusOK, first.Code)
	suite.Equal(http.StatusTooManyRequests, second.Code)
}

func (suite *HandlersTestSuite) TestListAndSearch() {
	w := suite.do(http.MethodPost, "/api/sync/ledgers",
		`{"company_name":"Acme","ledgers":[{"name":"HDFC Bank","parent":"Bank Accounts"},{"name":"Cash"}]}`, testAgentToken)
	suite.Require().Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodGet, "/api/ledgers?company_name=Acme", "", "")
	suite.Require().Equal(http.StatusOK, w.Code)
	var list struct {
		Success bool             `json:"success"`
		Total   int              `json:"total"`
		Ledgers []map[string]any `json:"ledgers"`
	}
	suite.decode(w, &list)
	suite.True(list.Success)
	suite.Equal(2, list.Total)
	suite.Equal("Cash", list.Ledgers[0]["name"])
	suite.Equal("Bank Accounts", list.Ledgers[1]["parent"])
	suite.NotEmpty(list.Ledgers[1]["id"])
	suite.NotEmpty(list.Ledgers[1]["created_at"])

	w = suite.do(http.MethodGet, "/api/ledgers?company_name=Nobody", "", "")
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.decode(w, &list)
	suite.Zero(list.Total)
	suite.Empty(list.Ledgers)

	w = suite.do(http.MethodGet, "/api/ledgers/search/bank", "", "")
	suite.Require().Equal(http.StatusOK, w.Code)
	var search struct {
		Query   string           `json:"query"`
		Results int              `json:"results"`
		Ledgers []map[string]any `json:"ledgers"`
	}
	suite.decode(w, &search)
	suite.Equal("bank", search.Query)
	suite.Equal(1, search.Results)
}

func (suite *HandlersTestSuite) TestList_InvalidParams() {
	for _, path := range []string{
		"/api/ledgers?limit=0",
		"/api/stock-items?limit=5000",
		"/api/outstanding?offset=-1",
		"/api/outstanding?type=advance",
	} {
		w := suite.do(http.MethodGet, path, "", "")
		suite.Equal(http.StatusBadRequest, w.Code, path)
	}
}

func (suite *HandlersTestSuite) TestOutstandingTypeFilter() {
	body := `{"company_name":"Acme","outstanding":[{"bill_name":"INV-1","type":"receivable"},{"bill_name":"PO-1","type":"payable"}]}`
	suite.Require().Equal(http.StatusOK, suite.do(http.MethodPost, "/api/sync/outstanding", body, testAgentToken).Code)

	w := suite.do(http.MethodGet, "/api/outstanding?type=payable", "", "")
	suite.Require().Equal(http.StatusOK, w.Code)
	var list struct {
		Total       int              `json:"total"`
		Outstanding []map[string]any `json:"outstanding"`
	}
	suite.decode(w, &list)
	suite.Equal(1, list.Total)
	suite.Equal("PO-1", list.Outstanding[0]["bill_name"])
}

func (suite *HandlersTestSuite) TestStatsAndStatus() {
	suite.Require().Equal(http.StatusOK, suite.do(http.MethodPost, "/api/sync/ledgers",
		`{"company_name":"Acme","ledgers":[{"name":"Cash"}]}`, testAgentToken).Code)
	suite.Require().Equal(http.StatusOK, suite.do(http.MethodPost, "/api/sync/outstanding",
		`{"company_name":"Acme","outstanding":[{"bill_name":"INV-1","type":"receivable"}]}`, testAgentToken).Code)

	w := suite.do(http.MethodGet, "/api/stats/Acme", "", "")
	suite.Require().Equal(http.StatusOK, w.Code)
	var stats dto.CompanyStatsResponse
	suite.decode(w, &stats)
	suite.True(stats.Success)
	suite.EqualValues(1, stats.TotalLedgers)
	suite.EqualValues(1, stats.TotalReceivables)
	suite.Require().NotNil(stats.LastSync)
	suite.Equal(domain.SyncTypeOutstanding, stats.LastSync.SyncType)

	w = suite.do(http.MethodGet, "/api/sync/status/Acme", "", "")
	suite.Require().Equal(http.StatusOK, w.Code)
	var status dto.SyncStatusResponse
	suite.decode(w, &status)
	suite.Len(status.SyncHistory, 2)
	suite.Equal(domain.SyncTypeOutstanding, status.SyncHistory[0].SyncType)

	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, "/api/stats/Nobody", "", "").Code)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, "/api/sync/status/Nobody", "", "").Code)
}

func (suite *HandlersTestSuite) TestCompanies() {
	for _, name := range []string{"Zeta", "Acme"} {
		suite.Require().Equal(http.StatusOK, suite.do(http.MethodPost, "/api/sync/ledgers",
			`{"company_name":"`+name+`","ledgers":[]}`, testAgentToken).Code)
	}

	w := suite.do(http.MethodGet, "/api/companies", "", "")
	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.CompaniesResponse
	suite.decode(w, &resp)
	suite.Equal(2, resp.Total)
	suite.Equal("Acme", resp.Companies[0].Name)
}

func (suite *HandlersTestSuite) TestServiceEndpoints() {
	w := suite.do(http.MethodGet, "/", "", "")
	suite.Require().Equal(http.StatusOK, w.Code)
	var info dto.ServiceInfoResponse
	suite.decode(w, &info)
	suite.Equal(handlers.AppName, info.App)
	suite.Equal("/api/sync/ledgers", info.Endpoints["sync_ledgers"])

	w = suite.do(http.MethodGet, "/health", "", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())

	suite.Require().Equal(http.StatusOK, suite.do(http.MethodPost, "/api/sync/ledgers",
		`{"company_name":"Acme","ledgers":[{"name":"Cash"}]}`, testAgentToken).Code)
	w = suite.do(http.MethodGet, "/metrics", "", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "tallysync_sync_records_total")
}

func (suite *HandlersTestSuite) TestSync_LogsAgentAdmission() {
	core, logs := observer.New(zap.InfoLevel)
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(zap.New(core)))
	handlers.RegisterRoutes(r, suite.cfg, suite.container, handlers.Dependencies{})

	req := httptest.NewRequest(http.MethodPost, "/api/sync/ledgers", strings.NewReader(`{"company_name":"Acme","ledgers":[]}`))
	req.Header.Set(middleware.AgentTokenHeader, testAgentToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	suite.Require().Equal(http.StatusOK, w.Code)
	received := logs.FilterMessage("Received sync batch").All()
	suite.Require().Len(received, 1)
	suite.Equal(true, received[0].ContextMap()["agent_authenticated"])
	suite.Equal("Acme", received[0].ContextMap()["company_name"])
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

// unhealthyStore fails every ping.
type unhealthyStore struct{}

func (unhealthyStore) Ping(context.Context) error { return errors.New("connection refused") }

func TestHealth_Unavailable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repos := memory.NewRepositoryProvider(memory.NewStore())
	repos.Health = unhealthyStore{}
	r := gin.New()
	handlers.RegisterRoutes(r, &config.Config{AgentToken: testAgentToken}, services.NewServiceContainer(repos), handlers.Dependencies{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "Unavailable", w.Body.String())
}
