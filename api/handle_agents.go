package api

import (
	"net/http"

	"github.com/peakperf/peakperf-backend/dto"
	"github.com/peakperf/peakperf-backend/models"
	"github.com/peakperf/peakperf-backend/pure_utils"
	"github.com/peakperf/peakperf-backend/usecases"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func handleListAgents(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		usecase := uc.NewAgentUsecase()
		agents, err := usecase.ListAgents(c.Request.Context())
		if presentError(c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"agents": pure_utils.Map(agents, dto.AdaptAgentDto),
		})
	}
}

func handleGetAgent(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		agentId, err := uuid.Parse(c.Param("agent_id"))
		if err != nil {
			presentError(c, errors.Wrap(models.BadParameterError, "invalid agent id"))
			return
		}

		usecase := uc.NewAgentUsecase()
		agent, err := usecase.GetAgent(c.Request.Context(), agentId)
		if presentError(c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"agent": dto.AdaptAgentDto(agent),
		})
	}
}

func handleCreateAgent(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		var body dto.CreateAgentBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		usecase := uc.NewAgentUsecase()
		agent, err := usecase.CreateAgent(c.Request.Context(), models.CreateAgentRequest{
			ExternalCode: body.ExternalCode,
			Name:         body.Name,
		})
		if presentError(c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"agent": dto.AdaptAgentDto(agent),
		})
	}
}
