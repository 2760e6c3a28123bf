package dbmodels

import (
	"time"

	"github.com/peakperf/peakperf-backend/models"
	"github.com/peakperf/peakperf-backend/utils"

	"github.com/google/uuid"
)

const TABLE_AGENTS = "agents"

var SelectAgentColumn = utils.ColumnList[DBAgent]()

type DBAgent struct {
	Id           uuid.UUID `db:"id"`
	ExternalCode string    `db:"external_code"`
	Name         string    `db:"name"`
	CreatedAt    time.Time `db:"created_at"`
}

func AdaptAgent(db DBAgent) (models.Agent, error) {
	return models.Agent{
		Id:           db.Id,
		ExternalCode: db.ExternalCode,
		Name:         db.Name,
		CreatedAt:    db.CreatedAt,
	}, nil
}
