package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"skyward/qualmatrix/internal/models/entities"
)

type KeysRepo struct {
	db *sqlx.DB
}

func NewApiKeysRepo(db *sqlx.DB) *KeysRepo {
	return &KeysRepo{db}
}

func (r *KeysRepo) GetStatus(ctx context.Context, key string) (*entities.APIKey, error) {
	var keyRes entities.APIKey

	err := r.db.QueryRowxContext(ctx, `
		SELECT * FROM api_keys WHERE key = $1
	`, key).StructScan(&keyRes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &keyRes, nil
}
