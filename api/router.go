package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/peakperf/peakperf-backend/usecases"
	"github.com/peakperf/peakperf-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// InitRouter builds the gin engine with middlewares and all routes.
func InitRouter(uc usecases.Usecases, logger *slog.Logger, corsAllowLocalhost bool) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(loggerMiddleware(logger))

	if corsAllowLocalhost {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.GET("/liveness", handleLivenessProbe)

	r.GET("/agents", handleListAgents(uc))
	r.POST("/agents", handleCreateAgent(uc))
	r.GET("/agents/:agent_id", handleGetAgent(uc))

	r.POST("/scorecards/import", handleImportScorecards(uc))
	r.POST("/scorecards/compute", handleComputePreview(uc))
	r.GET("/scorecards/:agent_id", handleGetScoreRecord(uc))
	r.GET("/scorecards/:agent_id/year", handleListScoreRecords(uc))

	return r
}

// loggerMiddleware stores the application logger in the request context so
// that downstream code can retrieve it with utils.LoggerFromContext.
func loggerMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := utils.StoreLoggerInContext(c.Request.Context(), logger)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func handleLivenessProbe(c *gin.Context) {
	c.Status(http.StatusOK)
}
