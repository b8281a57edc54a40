package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/tally_cloud_sync/internal/core/ports/services"
	"github.com/SscSPs/tally_cloud_sync/internal/dto"
	"github.com/SscSPs/tally_cloud_sync/internal/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppName and Version are reported by the service descriptor.
const (
	AppName = "Tally Cloud Sync"
	Version = "1.0.0"
)

// getHome godoc
// @Summary Show the status of server.
// @Description Describes the service and its endpoints.
// @Tags root
// @Accept */*
// @Produce json
// @Success 200 {object} dto.ServiceInfoResponse
// @Router / [get]
func getHome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ServiceInfoResponse{
		App:     AppName,
		Version: Version,
		Status:  "running",
		Endpoints: map[string]string{
			"health":            "/health",
			"metrics":           "/metrics",
			"sync_ledgers":      "/api/sync/ledgers",
			"sync_stock_items":  "/api/sync/stock-items",
			"sync_outstanding":  "/api/sync/outstanding",
			"sync_status":       "/api/sync/status/{company_name}",
			"ledgers":           "/api/ledgers",
			"search_ledgers":    "/api/ledgers/search/{query}",
			"stock_items":       "/api/stock-items",
			"search_stock_item": "/api/stock-items/search/{query}",
			"outstanding":       "/api/outstanding",
			"companies":         "/api/companies",
			"stats":             "/api/stats/{company_name}",
		},
	})
}

// healthCheck godoc
// @Summary Health check
// @Description Returns OK when the record store is reachable.
// @Tags root
// @Produce plain
// @Success 200 {string} string "OK"
// @Failure 503 {string} string "Unavailable"
// @Router /health [get]
func healthCheck(health portssvc.HealthSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := health.Check(c.Request.Context()); err != nil {
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Health check failed", zap.Error(err))
			c.String(http.StatusServiceUnavailable, "Unavailable")
			return
		}
		c.String(http.StatusOK, "OK")
	}
}
