package entities

import "time"

type Skill struct {
	ID        string    `db:"id"`
	WingID    string    `db:"wing_id"`
	Name      string    `db:"name"`
	Category  string    `db:"category"`
	SortOrder int       `db:"sort_order"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
