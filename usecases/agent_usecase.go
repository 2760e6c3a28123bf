package usecases

import (
	"context"

	"github.com/peakperf/peakperf-backend/models"
	"github.com/peakperf/peakperf-backend/repositories"
	"github.com/peakperf/peakperf-backend/usecases/executor_factory"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

type agentRepository interface {
	GetAgent(ctx context.Context, exec repositories.Executor, agentId uuid.UUID) (models.Agent, error)
	ListAgents(ctx context.Context, exec repositories.Executor) ([]models.Agent, error)
	CreateAgent(ctx context.Context, exec repositories.Executor,
		req models.CreateAgentRequest) (models.Agent, error)
}

type AgentUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      agentRepository
}

func (uc AgentUsecase) GetAgent(ctx context.Context, agentId uuid.UUID) (models.Agent, error) {
	return uc.repository.GetAgent(ctx, uc.executorFactory.NewExecutor(), agentId)
}

func (uc AgentUsecase) ListAgents(ctx context.Context) ([]models.Agent, error) {
	return uc.repository.ListAgents(ctx, uc.executorFactory.NewExecutor())
}

func (uc AgentUsecase) CreateAgent(ctx context.Context, req models.CreateAgentRequest) (models.Agent, error) {
	if req.ExternalCode == "" || req.Name == "" {
		return models.Agent{}, errors.Wrap(models.BadParameterError,
			"agent requires an external code and a name")
	}
	return uc.repository.CreateAgent(ctx, uc.executorFactory.NewExecutor(), req)
}
