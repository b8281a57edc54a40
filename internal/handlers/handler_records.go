package handlers

import (
	"net/http"

	"github.com/SscSPs/tally_cloud_sync/internal/core/domain"
	portssvc "github.com/SscSPs/tally_cloud_sync/internal/core/ports/services"
	"github.com/SscSPs/tally_cloud_sync/internal/dto"
	"github.com/SscSPs/tally_cloud_sync/internal/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// recordHandler serves read access to synced ledgers, stock items and bills.
type recordHandler struct {
	recordService portssvc.RecordSvcFacade
}

func newRecordHandler(rs portssvc.RecordSvcFacade) *recordHandler {
	return &recordHandler{recordService: rs}
}

func registerRecordRoutes(rg *gin.RouterGroup, recordService portssvc.RecordSvcFacade) {
	h := newRecordHandler(recordService)

	rg.GET("/ledgers", h.listLedgers)
	rg.GET("/ledgers/search/:query", h.searchLedgers)
	rg.GET("/stock-items", h.listStockItems)
	rg.GET("/stock-items/search/:query", h.searchStockItems)
	rg.GET("/outstanding", h.listOutstanding)
}

// listLedgers godoc
// @Summary List ledgers
// @Description Lists synced ledgers ordered by name. An unknown company yields an empty list.
// @Tags records
// @Produce json
// @Param company_name query string false "Filter by company name"
// @Param limit query int false "Max rows (1-1000)" default(100)
// @Param offset query int false "Rows to skip" default(0)
// @Success 200 {object} dto.RecordListResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/ledgers [get]
func (h *recordHandler) listLedgers(c *gin.Context) {
	var params dto.ListRecordsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid query parameters: "+err.Error()))
		return
	}
	h.list(c, domain.LedgerEntity, params, nil)
}

// listStockItems godoc
// @Summary List stock items
// @Description Lists synced stock items ordered by name.
// @Tags records
// @Produce json
// @Param company_name query string false "Filter by company name"
// @Param limit query int false "Max rows (1-1000)" default(100)
// @Param offset query int false "Rows to skip" default(0)
// @Success 200 {object} dto.RecordListResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/stock-items [get]
func (h *recordHandler) listStockItems(c *gin.Context) {
	var params dto.ListRecordsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid query parameters: "+err.Error()))
		return
	}
	h.list(c, domain.StockItemEntity, params, nil)
}

// listOutstanding godoc
// @Summary List outstanding bills
// @Description Lists synced outstanding bills ordered by bill name, optionally only receivables or payables.
// @Tags records
// @Produce json
// @Param company_name query string false "Filter by company name"
// @Param type query string false "receivable or payable"
// @Param limit query int false "Max rows (1-1000)" default(100)
// @Param offset query int false "Rows to skip" default(0)
// @Success 200 {object} dto.RecordListResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/outstanding [get]
func (h *recordHandler) listOutstanding(c *gin.Context) {
	var params dto.ListOutstandingParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid query parameters: "+err.Error()))
		return
	}
	var keyEquals map[string]string
	if params.Type != "" {
		keyEquals = map[string]string{"type": params.Type}
	}
	h.list(c, domain.OutstandingEntity, params.ListRecordsParams, keyEquals)
}

func (h *recordHandler) list(c *gin.Context, entity domain.EntityDescriptor, params dto.ListRecordsParams, keyEquals map[string]string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rows, err := h.recordService.ListRecords(c.Request.Context(), entity, portssvc.ListRecordsQuery{
		CompanyName: params.CompanyName,
		KeyEquals:   keyEquals,
		Limit:       params.Limit,
		Offset:      params.Offset,
	})
	if err != nil {
		respondError(c, logger, err, "Not found")
		return
	}

	logger.Debug("Listed records", zap.String("table", entity.Table), zap.Int("count", len(rows)))
	c.JSON(http.StatusOK, dto.ToRecordListResponse(entity, rows))
}

// searchLedgers godoc
// @Summary Search ledgers
// @Description Case-insensitive substring search on ledger names, at most 50 results.
// @Tags records
// @Produce json
// @Param query path string true "Text to search for"
// @Param company_name query string false "Filter by company name"
// @Success 200 {object} dto.RecordListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/ledgers/search/{query} [get]
func (h *recordHandler) searchLedgers(c *gin.Context) {
	h.search(c, domain.LedgerEntity)
}

// searchStockItems godoc
// @Summary Search stock items
// @Description Case-insensitive substring search on stock item names, at most 50 results.
// @Tags records
// @Produce json
// @Param query path string true "Text to search for"
// @Param company_name query string false "Filter by company name"
// @Success 200 {object} dto.RecordListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/stock-items/search/{query} [get]
func (h *recordHandler) searchStockItems(c *gin.Context) {
	h.search(c, domain.StockItemEntity)
}

func (h *recordHandler) search(c *gin.Context, entity domain.EntityDescriptor) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	query := c.Param("query")

	var params dto.SearchRecordsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid query parameters: "+err.Error()))
		return
	}

	rows, err := h.recordService.SearchRecords(c.Request.Context(), entity, params.CompanyName, query)
	if err != nil {
		respondError(c, logger, err, "Not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToRecordSearchResponse(entity, query, rows))
}
