package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"skyward/qualmatrix/internal/models/entities"
)

type WingRepository struct {
	db *sqlx.DB
}

func NewWingRepository(db *sqlx.DB) *WingRepository {
	return &WingRepository{db}
}

func (r *WingRepository) ListWings(ctx context.Context) ([]entities.Wing, error) {
	var wings []entities.Wing
	err := r.db.SelectContext(ctx, &wings, `SELECT * FROM wings ORDER BY name`)
	return wings, err
}

func (r *WingRepository) FindWingByID(ctx context.Context, id string) (*entities.Wing, error) {
	var wing entities.Wing
	err := r.db.QueryRowxContext(ctx, `SELECT * FROM wings WHERE id = $1`, id).StructScan(&wing)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &wing, nil
}

func (r *WingRepository) InsertWing(ctx context.Context, name string) (*entities.Wing, error) {
	var wing entities.Wing
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO wings (id, name)
		VALUES ($1, $2)
		RETURNING *
	`, uuid.NewString(), name).StructScan(&wing)
	if err != nil {
		return nil, translateUnique(err)
	}
	return &wing, nil
}

func (r *WingRepository) RenameWing(ctx context.Context, id, name string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE wings SET name = $2, updated_at = NOW() WHERE id = $1
	`, id, name)
	if err != nil {
		return translateUnique(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteWingCascade removes a wing and everything it owns in one
// transaction: qualifications, skills, category colors, pilots and their
// linked user records.
func (r *WingRepository) DeleteWingCascade(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() // safe even after Commit

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM qualifications
		WHERE pilot_id IN (SELECT id FROM pilots WHERE wing_id = $1)
	`, id); err != nil {
		return fmt.Errorf("delete qualifications: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM skills WHERE wing_id = $1`, id); err != nil {
		return fmt.Errorf("delete skills: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM category_colors WHERE wing_id = $1`, id); err != nil {
		return fmt.Errorf("delete category colors: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM users
		WHERE id IN (SELECT user_id FROM pilots WHERE wing_id = $1 AND user_id IS NOT NULL)
	`, id); err != nil {
		return fmt.Errorf("delete linked users: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM pilots WHERE wing_id = $1`, id); err != nil {
		return fmt.Errorf("delete pilots: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM wings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete wing: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}
