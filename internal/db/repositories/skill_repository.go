package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"skyward/qualmatrix/internal/models/entities"
)

type SkillRepository struct {
	db *sqlx.DB
}

func NewSkillRepository(db *sqlx.DB) *SkillRepository {
	return &SkillRepository{db}
}

func (r *SkillRepository) FindSkillByID(ctx context.Context, id string) (*entities.Skill, error) {
	var skill entities.Skill
	err := r.db.QueryRowxContext(ctx, `SELECT * FROM skills WHERE id = $1`, id).StructScan(&skill)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

// ListSkillsByWing orders by category, then sort_order, with name breaking
// sort_order ties (uniqueness of sort_order is convention, not schema).
func (r *SkillRepository) ListSkillsByWing(ctx context.Context, wingID string) ([]entities.Skill, error) {
	var skills []entities.Skill
	err := r.db.SelectContext(ctx, &skills, `
		SELECT * FROM skills
		WHERE wing_id = $1
		ORDER BY category, sort_order, name
	`, wingID)
	return skills, err
}

func (r *SkillRepository) InsertSkill(ctx context.Context, wingID, name, category string, sortOrder int) (*entities.Skill, error) {
	var skill entities.Skill
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO skills (id, wing_id, name, category, sort_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING *
	`, uuid.NewString(), wingID, name, category, sortOrder).StructScan(&skill)
	if err != nil {
		return nil, translateUnique(err)
	}
	return &skill, nil
}

func (r *SkillRepository) UpdateSkill(ctx context.Context, id, name, category string, sortOrder int) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE skills
		SET name = $2, category = $3, sort_order = $4, updated_at = NOW()
		WHERE id = $1
	`, id, name, category, sortOrder)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteSkill removes the skill and its qualification rows together.
func (r *SkillRepository) DeleteSkill(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM qualifications WHERE skill_id = $1`, id); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}
