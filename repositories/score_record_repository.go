package repositories

import (
	"context"
	"encoding/json"

	"github.com/peakperf/peakperf-backend/models"
	"github.com/peakperf/peakperf-backend/repositories/dbmodels"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/guregu/null/v5"
)

// GetScoreRecord returns the stored aggregate for the (agent, month, year)
// key, or nil when no row was imported for that period yet.
func (repo *PerfDbRepository) GetScoreRecord(ctx context.Context, exec Executor,
	agentId uuid.UUID, month, year int,
) (*models.ScoreRecord, error) {
	sql := NewQueryBuilder().
		Select(dbmodels.SelectScoreRecordColumn...).
		From(dbmodels.TABLE_SCORE_RECORDS).
		Where(squirrel.Eq{
			"agent_id": agentId,
			"month":    month,
			"year":     year,
		})

	return SqlToOptionalModel(ctx, exec, sql, dbmodels.AdaptScoreRecord)
}

func (repo *PerfDbRepository) ListScoreRecordsForAgent(ctx context.Context, exec Executor,
	agentId uuid.UUID, year int,
) ([]models.ScoreRecord, error) {
	sql := NewQueryBuilder().
		Select(dbmodels.SelectScoreRecordColumn...).
		From(dbmodels.TABLE_SCORE_RECORDS).
		Where(squirrel.Eq{"agent_id": agentId, "year": year}).
		OrderBy("month")

	return SqlToListOfModels(ctx, exec, sql, dbmodels.AdaptScoreRecord)
}

// UpsertScoreRecord writes the full next state of the aggregate,
// create-or-replace on the unique (agent_id, month, year) key.
func (repo *PerfDbRepository) UpsertScoreRecord(ctx context.Context, tx Transaction,
	req models.UpsertScoreRecordRequest,
) (models.ScoreRecord, error) {
	rawCounters, err := json.Marshal(req.Raw)
	if err != nil {
		return models.ScoreRecord{}, errors.Wrap(err, "can't encode raw counters")
	}
	metrics, err := json.Marshal(req.Metrics)
	if err != nil {
		return models.ScoreRecord{}, errors.Wrap(err, "can't encode derived metrics")
	}
	weights, err := json.Marshal(req.Weights)
	if err != nil {
		return models.ScoreRecord{}, errors.Wrap(err, "can't encode metric weights")
	}

	sql := NewQueryBuilder().
		Insert(dbmodels.TABLE_SCORE_RECORDS).
		Columns(
			"agent_id",
			"month",
			"year",
			"scale",
			"raw_counters",
			"metrics",
			"weights",
			"total_score",
			"percentage",
			"note",
		).
		Values(
			req.AgentId,
			req.Month,
			req.Year,
			string(req.Scale),
			rawCounters,
			metrics,
			weights,
			req.TotalScore,
			req.Percentage,
			null.StringFromPtr(req.Note),
		).
		Suffix(`ON CONFLICT (agent_id, month, year) DO UPDATE SET
			scale = EXCLUDED.scale,
			raw_counters = EXCLUDED.raw_counters,
			metrics = EXCLUDED.metrics,
			weights = EXCLUDED.weights,
			total_score = EXCLUDED.total_score,
			percentage = EXCLUDED.percentage,
			note = COALESCE(EXCLUDED.note, score_records.note),
			updated_at = now()`).
		Suffix("RETURNING *")

	return SqlToModel(ctx, tx, sql, dbmodels.AdaptScoreRecord)
}
