package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/tally_cloud_sync/internal/core/ports/services"
	"github.com/SscSPs/tally_cloud_sync/internal/dto"
	"github.com/SscSPs/tally_cloud_sync/internal/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// reportingHandler handles company listings and per-company rollups
type reportingHandler struct {
	companyService   portssvc.CompanyReaderSvc
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(cs portssvc.CompanyReaderSvc, rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		companyService:   cs,
		reportingService: rs,
	}
}

// registerReportingRoutes registers company, stats and sync status routes
func registerReportingRoutes(rg *gin.RouterGroup, companyService portssvc.CompanyReaderSvc, reportingService portssvc.ReportingService) {
	h := newReportingHandler(companyService, reportingService)

	rg.GET("/companies", h.listCompanies)
	rg.GET("/stats/:company_name", h.getCompanyStats)
	rg.GET("/sync/status/:company_name", h.getSyncStatus)
}

// listCompanies godoc
// @Summary List companies
// @Description Lists every company that has synced, ordered by name
// @Tags reports
// @Produce json
// @Success 200 {object} dto.CompaniesResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/companies [get]
func (h *reportingHandler) listCompanies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companies, err := h.companyService.ListCompanies(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompaniesResponse(companies))
}

// getCompanyStats godoc
// @Summary Company statistics
// @Description Counts synced ledgers, stock items, receivables and payables and returns the latest sync
// @Tags reports
// @Produce json
// @Param company_name path string true "Company name"
// @Success 200 {object} dto.CompanyStatsResponse
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/stats/{company_name} [get]
func (h *reportingHandler) getCompanyStats(c *gin.Context) {
	companyName := c.Param("company_name")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(zap.String("company_name", companyName))

	stats, err := h.reportingService.CompanyStats(c.Request.Context(), companyName)
	if err != nil {
		respondError(c, logger, err, "Company not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyStatsResponse(stats))
}

// getSyncStatus godoc
// @Summary Sync history
// @Description Returns the company's ten most recent sync invocations, newest first
// @Tags reports
// @Produce json
// @Param company_name path string true "Company name"
// @Success 200 {object} dto.SyncStatusResponse
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/sync/status/{company_name} [get]
func (h *reportingHandler) getSyncStatus(c *gin.Context) {
	companyName := c.Param("company_name")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(zap.String("company_name", companyName))

	entries, err := h.reportingService.SyncStatus(c.Request.Context(), companyName)
	if err != nil {
		respondError(c, logger, err, "Company not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToSyncStatusResponse(companyName, entries))
}
