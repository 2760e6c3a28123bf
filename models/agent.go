package models

import (
	"time"

	"github.com/google/uuid"
)

// Agent is a coached employee. ExternalCode is the identifier carried by
// imported timesheet rows (badge number, HR system id...).
type Agent struct {
	Id           uuid.UUID
	ExternalCode string
	Name         string
	CreatedAt    time.Time
}

type CreateAgentRequest struct {
	ExternalCode string
	Name         string
}
