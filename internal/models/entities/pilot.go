package entities

import (
	"time"

	"skyward/qualmatrix/internal/constants"
)

type Pilot struct {
	ID        string         `db:"id"`
	Callsign  string         `db:"callsign"`
	WingID    string         `db:"wing_id"`
	UserID    *string        `db:"user_id"`
	Role      constants.Role `db:"role"`
	IsActive  bool           `db:"is_active"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}
