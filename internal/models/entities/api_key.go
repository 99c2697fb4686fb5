package entities

import "time"

type APIKey struct {
	ID        string    `db:"id"`
	Key       string    `db:"key"`
	Status    bool      `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}
