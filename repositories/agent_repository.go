package repositories

import (
	"context"

	"github.com/peakperf/peakperf-backend/models"
	"github.com/peakperf/peakperf-backend/repositories/dbmodels"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

func (repo *PerfDbRepository) GetAgent(ctx context.Context, exec Executor, agentId uuid.UUID) (models.Agent, error) {
	sql := NewQueryBuilder().
		Select(dbmodels.SelectAgentColumn...).
		From(dbmodels.TABLE_AGENTS).
		Where(squirrel.Eq{"id": agentId})

	return SqlToModel(ctx, exec, sql, dbmodels.AdaptAgent)
}

func (repo *PerfDbRepository) GetAgentByExternalCode(ctx context.Context, exec Executor, code string) (models.Agent, error) {
	sql := NewQueryBuilder().
		Select(dbmodels.SelectAgentColumn...).
		From(dbmodels.TABLE_AGENTS).
		Where(squirrel.Eq{"external_code": code})

	agent, err := SqlToOptionalModel(ctx, exec, sql, dbmodels.AdaptAgent)
	if err != nil {
		return models.Agent{}, err
	}
	if agent == nil {
		return models.Agent{}, errors.Wrapf(models.ErrUnknownAgent, "external code '%s'", code)
	}
	return *agent, nil
}

func (repo *PerfDbRepository) ListAgents(ctx context.Context, exec Executor) ([]models.Agent, error) {
	sql := NewQueryBuilder().
		Select(dbmodels.SelectAgentColumn...).
		From(dbmodels.TABLE_AGENTS).
		OrderBy("name")

	return SqlToListOfModels(ctx, exec, sql, dbmodels.AdaptAgent)
}

func (repo *PerfDbRepository) CreateAgent(ctx context.Context, exec Executor,
	req models.CreateAgentRequest,
) (models.Agent, error) {
	sql := NewQueryBuilder().
		Insert(dbmodels.TABLE_AGENTS).
		Columns("external_code", "name").
		Values(req.ExternalCode, req.Name).
		Suffix("RETURNING *")

	agent, err := SqlToModel(ctx, exec, sql, dbmodels.AdaptAgent)
	if IsUniqueViolationError(err) {
		return models.Agent{}, errors.Wrapf(models.ConflictError,
			"an agent with external code '%s' already exists", req.ExternalCode)
	}
	return agent, err
}
