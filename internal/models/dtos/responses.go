package dtos

import "time"

type APIResponse[T any] struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Error     string    `json:"error,omitempty"`
	Data      *T        `json:"data,omitempty"`
}

// ImportReport is the partial-success outcome of a qualification import.
// Imported + Skipped always equals the number of submitted records; Errors
// carries at most the first 20 skip messages.
type ImportReport struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
}

type BackfillReport struct {
	RowsInserted int64 `json:"rows_inserted"`
}

// PilotReadiness is one pilot's line in a wing readiness report.
type PilotReadiness struct {
	PilotID              string  `json:"pilot_id"`
	Callsign             string  `json:"callsign"`
	QualifiedSkills      int     `json:"qualified_skills"`
	TotalTracked         int     `json:"total_tracked"`
	CompletionPercentage float64 `json:"completion_percentage"`
	CombatReady          bool    `json:"combat_ready"`
}

type WingReadiness struct {
	WingID                      string           `json:"wing_id"`
	TotalPilots                 int              `json:"total_pilots"`
	CombatReadyPilots           int              `json:"combat_ready_pilots"`
	OverallReadinessPercentage  float64          `json:"overall_readiness_percentage"`
	AverageCompletionPercentage float64          `json:"average_completion_percentage"`
	Pilots                      []PilotReadiness `json:"pilots"`
}

type GlobalReadiness struct {
	TotalPilots                int             `json:"total_pilots"`
	CombatReadyPilots          int             `json:"combat_ready_pilots"`
	OverallReadinessPercentage float64         `json:"overall_readiness_percentage"`
	Wings                      []WingReadiness `json:"wings"`
}

// MatrixCell is one pilot-skill intersection. Status is nil when no
// qualification row exists, which readers interpret as implicit NMQ.
type MatrixCell struct {
	SkillID     string     `json:"skill_id"`
	Status      *string    `json:"status"`
	LastUpdated *time.Time `json:"last_updated,omitempty"`
	UpdatedBy   string     `json:"updated_by,omitempty"`
}

type MatrixPilot struct {
	PilotID  string       `json:"pilot_id"`
	Callsign string       `json:"callsign"`
	Cells    []MatrixCell `json:"cells"`
}

type MatrixSkill struct {
	SkillID   string `json:"skill_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	SortOrder int    `json:"sort_order"`
}

type WingMatrix struct {
	WingID string        `json:"wing_id"`
	Skills []MatrixSkill `json:"skills"`
	Pilots []MatrixPilot `json:"pilots"`
}
