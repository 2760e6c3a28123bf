package scorecard

import (
	"context"

	"github.com/peakperf/peakperf-backend/models"
	"github.com/peakperf/peakperf-backend/repositories"

	"github.com/google/uuid"
)

type scorecardRepository interface {
	GetScoreRecord(ctx context.Context, exec repositories.Executor,
		agentId uuid.UUID, month, year int) (*models.ScoreRecord, error)
	ListScoreRecordsForAgent(ctx context.Context, exec repositories.Executor,
		agentId uuid.UUID, year int) ([]models.ScoreRecord, error)
	UpsertScoreRecord(ctx context.Context, tx repositories.Transaction,
		req models.UpsertScoreRecordRequest) (models.ScoreRecord, error)
}

type agentRepository interface {
	GetAgentByExternalCode(ctx context.Context, exec repositories.Executor,
		code string) (models.Agent, error)
}
