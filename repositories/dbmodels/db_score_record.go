package dbmodels

import (
	"encoding/json"
	"time"

	"github.com/peakperf/peakperf-backend/models"
	"github.com/peakperf/peakperf-backend/utils"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/guregu/null/v5"
)

const TABLE_SCORE_RECORDS = "score_records"

var SelectScoreRecordColumn = utils.ColumnList[DBScoreRecord]()

// Raw counters, derived metrics, weights and legacy ratings are stored as
// jsonb documents: they always move as one snapshot and are never queried
// field by field.
type DBScoreRecord struct {
	Id            uuid.UUID       `db:"id"`
	AgentId       uuid.UUID       `db:"agent_id"`
	Month         int             `db:"month"`
	Year          int             `db:"year"`
	Scale         string          `db:"scale"`
	RawCounters   json.RawMessage `db:"raw_counters"`
	Metrics       json.RawMessage `db:"metrics"`
	Weights       json.RawMessage `db:"weights"`
	LegacyRatings json.RawMessage `db:"legacy_ratings"`
	TotalScore    float64         `db:"total_score"`
	Percentage    float64         `db:"percentage"`
	Note          null.String     `db:"note"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

func AdaptScoreRecord(db DBScoreRecord) (models.ScoreRecord, error) {
	record := models.ScoreRecord{
		Id:         db.Id,
		AgentId:    db.AgentId,
		Month:      db.Month,
		Year:       db.Year,
		Scale:      models.ScoreScaleFrom(db.Scale),
		TotalScore: db.TotalScore,
		Percentage: db.Percentage,
		Note:       db.Note.Ptr(),
		CreatedAt:  db.CreatedAt,
		UpdatedAt:  db.UpdatedAt,
	}

	if err := json.Unmarshal(db.RawCounters, &record.Raw); err != nil {
		return models.ScoreRecord{}, errors.Wrap(err, "can't decode raw counters")
	}
	if err := json.Unmarshal(db.Metrics, &record.Metrics); err != nil {
		return models.ScoreRecord{}, errors.Wrap(err, "can't decode derived metrics")
	}
	if err := json.Unmarshal(db.Weights, &record.Weights); err != nil {
		return models.ScoreRecord{}, errors.Wrap(err, "can't decode metric weights")
	}
	if len(db.LegacyRatings) > 0 && string(db.LegacyRatings) != "null" {
		record.LegacyRatings = &models.LegacyRatings{}
		if err := json.Unmarshal(db.LegacyRatings, record.LegacyRatings); err != nil {
			return models.ScoreRecord{}, errors.Wrap(err, "can't decode legacy ratings")
		}
	}

	return record, nil
}
