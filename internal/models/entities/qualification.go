package entities

import (
	"time"

	"skyward/qualmatrix/internal/constants"
)

type Qualification struct {
	ID          string               `db:"id"`
	PilotID     string               `db:"pilot_id"`
	SkillID     string               `db:"skill_id"`
	Status      constants.QualStatus `db:"status"`
	LastUpdated time.Time            `db:"last_updated"`
	UpdatedBy   string               `db:"updated_by"`
}

// PilotQualCount is the per-pilot aggregate row behind the readiness
// statistics: total qualification rows vs rows at FMQ/IP.
type PilotQualCount struct {
	PilotID   string `db:"pilot_id"`
	Callsign  string `db:"callsign"`
	Total     int    `db:"total_quals"`
	Qualified int    `db:"qualified_quals"`
}
