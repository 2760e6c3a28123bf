package api

import (
	"fmt"
	"net/http"

	"github.com/peakperf/peakperf-backend/models"
	"github.com/peakperf/peakperf-backend/utils"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

// presentError renders an error as the matching HTTP status and reports
// whether an error was rendered.
func presentError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, models.BadParameterError):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.UnAuthorizedError):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, models.ForbiddenError):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, models.NotFoundError):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ConflictError):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		ctx := c.Request.Context()
		logger := utils.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, fmt.Sprintf("Unexpected Error: %+v", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
	return true
}
