package dto

import (
	"time"

	"github.com/peakperf/peakperf-backend/models"

	"github.com/google/uuid"
)

type AgentDto struct {
	Id           uuid.UUID `json:"id"`
	ExternalCode string    `json:"external_code"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
}

func AdaptAgentDto(agent models.Agent) AgentDto {
	return AgentDto{
		Id:           agent.Id,
		ExternalCode: agent.ExternalCode,
		Name:         agent.Name,
		CreatedAt:    agent.CreatedAt,
	}
}

type CreateAgentBody struct {
	ExternalCode string `json:"external_code" binding:"required"`
	Name         string `json:"name" binding:"required"`
}
