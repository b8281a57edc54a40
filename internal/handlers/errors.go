package handlers

import (
	"errors"
	"net/http"

	"github.com/SscSPs/tally_cloud_sync/internal/apperrors"
	"github.com/SscSPs/tally_cloud_sync/internal/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps application errors onto HTTP statuses. Validation and
// lookup failures carry their own message; anything else is a 500 with the
// failure detail.
func respondError(c *gin.Context, logger *zap.Logger, err error, notFoundDetail string) {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Request rejected", zap.Error(err))
		detail := err.Error()
		if errors.As(err, &appErr) {
			detail = appErr.Message
		}
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", zap.Error(err))
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(notFoundDetail))
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Conflict", zap.Error(err))
		c.JSON(http.StatusConflict, dto.NewErrorResponse(err.Error()))
	default:
		logger.Error("Request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(err.Error()))
	}
}
