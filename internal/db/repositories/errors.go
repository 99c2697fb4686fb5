package repositories

import (
	"errors"

	"github.com/lib/pq"
)

// ErrDuplicate surfaces a uniqueness-constraint violation outside the upsert
// paths (e.g. creating a wing whose name is taken). Handlers map it to 409.
var ErrDuplicate = errors.New("duplicate record")

// ErrNotFound is returned by single-entity lookups with no match.
var ErrNotFound = errors.New("record not found")

const pqUniqueViolation = "23505"

func translateUnique(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
		return ErrDuplicate
	}
	return err
}
