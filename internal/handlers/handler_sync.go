package handlers

import (
	"errors"
	"net/http"

	"github.com/SscSPs/tally_cloud_sync/internal/core/domain"
	portssvc "github.com/SscSPs/tally_cloud_sync/internal/core/ports/services"
	"github.com/SscSPs/tally_cloud_sync/internal/dto"
	"github.com/SscSPs/tally_cloud_sync/internal/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// syncHandler receives batches from the desktop agent.
type syncHandler struct {
	syncService portssvc.SyncSvcFacade
}

func newSyncHandler(ss portssvc.SyncSvcFacade) *syncHandler {
	return &syncHandler{syncService: ss}
}

// registerSyncRoutes registers the agent-facing sync endpoints. The caller
// attaches the agent token and rate limit middleware to rg.
func registerSyncRoutes(rg *gin.RouterGroup, syncService portssvc.SyncSvcFacade) {
	h := newSyncHandler(syncService)

	rg.POST("/ledgers", h.syncLedgers)
	rg.POST("/stock-items", h.syncStockItems)
	rg.POST("/outstanding", h.syncOutstanding)
}

// syncLedgers godoc
// @Summary Sync ledgers
// @Description Reconciles a batch of ledgers for a company by ledger name. Partial failures still return 200; inspect failed and errors.
// @Tags sync
// @Accept json
// @Produce json
// @Param company_name query string false "Company name when the body is a bare array"
// @Param body body object true "{company_name, ledgers: [...]} or a bare array of ledgers"
// @Success 200 {object} dto.SyncResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid body or missing company_name"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid agent token"
// @Failure 429 {object} dto.ErrorResponse "Rate limited"
// @Failure 500 {object} dto.ErrorResponse "Company could not be resolved"
// @Security AgentToken
// @Router /api/sync/ledgers [post]
func (h *syncHandler) syncLedgers(c *gin.Context) {
	h.handleSync(c, domain.LedgerEntity)
}

// syncStockItems godoc
// @Summary Sync stock items
// @Description Reconciles a batch of stock items for a company by item name.
// @Tags sync
// @Accept json
// @Produce json
// @Param company_name query string false "Company name when the body is a bare array"
// @Param body body object true "{company_name, stock_items: [...]} or a bare array of stock items"
// @Success 200 {object} dto.SyncResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid body or missing company_name"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid agent token"
// @Failure 500 {object} dto.ErrorResponse "Company could not be resolved"
// @Security AgentToken
// @Router /api/sync/stock-items [post]
func (h *syncHandler) syncStockItems(c *gin.Context) {
	h.handleSync(c, domain.StockItemEntity)
}

// syncOutstanding godoc
// @Summary Sync outstanding bills
// @Description Reconciles receivable and payable bills for a company by (bill_name, type).
// @Tags sync
// @Accept json
// @Produce json
// @Param company_name query string false "Company name when the body is a bare array"
// @Param body body object true "{company_name, outstanding: [...]} or a bare array of bills"
// @Success 200 {object} dto.SyncResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid body or missing company_name"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid agent token"
// @Failure 500 {object} dto.ErrorResponse "Company could not be resolved"
// @Security AgentToken
// @Router /api/sync/outstanding [post]
func (h *syncHandler) syncOutstanding(c *gin.Context) {
	h.handleSync(c, domain.OutstandingEntity)
}

func (h *syncHandler) handleSync(c *gin.Context, entity domain.EntityDescriptor) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(zap.String("sync_type", string(entity.Type)))

	req, err := dto.ParseSyncBody(c.Request.Body, entity.PayloadField, c.Query("company_name"))
	if err != nil {
		detail := err.Error()
		if errors.Is(err, dto.ErrEmptyBody) {
			detail = "Request body is required"
		}
		logger.Warn("Failed to parse sync body", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	logger = logger.With(zap.String("company_name", req.CompanyName), zap.Int("records", len(req.Records)))
	logger.Info("Received sync batch", zap.Bool("agent_authenticated", middleware.IsAgentAuthenticated(c)))

	result, err := h.syncService.SyncBatch(c.Request.Context(), entity, req.CompanyName, req.Records)
	if err != nil {
		respondError(c, logger, err, "Company not found")
		return
	}

	if result.AuditErr != nil {
		logger.Error("Sync history not recorded for batch", zap.Error(result.AuditErr))
	}
	c.JSON(http.StatusOK, dto.ToSyncResponse(result))
}
