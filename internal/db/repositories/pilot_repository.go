package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"skyward/qualmatrix/internal/constants"
	"skyward/qualmatrix/internal/models/entities"
)

type PilotRepository struct {
	db *sqlx.DB
}

func NewPilotRepository(db *sqlx.DB) *PilotRepository {
	return &PilotRepository{db}
}

func (r *PilotRepository) FindPilotByID(ctx context.Context, id string) (*entities.Pilot, error) {
	var pilot entities.Pilot
	err := r.db.QueryRowxContext(ctx, `SELECT * FROM pilots WHERE id = $1`, id).StructScan(&pilot)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &pilot, nil
}

func (r *PilotRepository) ListPilotsByWing(ctx context.Context, wingID string) ([]entities.Pilot, error) {
	var pilots []entities.Pilot
	err := r.db.SelectContext(ctx, &pilots, `
		SELECT * FROM pilots WHERE wing_id = $1 ORDER BY callsign
	`, wingID)
	return pilots, err
}

// InsertPilotWithUser creates the pilot row and, when username is non-empty,
// a linked login record in the same transaction.
func (r *PilotRepository) InsertPilotWithUser(
	ctx context.Context,
	wingID, callsign string,
	role constants.Role,
	username string,
) (*entities.Pilot, error) {

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback() // safe even after Commit

	var userID *string
	if username != "" {
		id := uuid.NewString()
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO users (id, username, role, wing_id, is_active)
			VALUES ($1, $2, $3, $4, true)
		`, id, username, role, wingID); err != nil {
			return nil, fmt.Errorf("insert user: %w", translateUnique(err))
		}
		userID = &id
	}

	var pilot entities.Pilot
	if err := tx.QueryRowxContext(ctx, `
		INSERT INTO pilots (id, callsign, wing_id, user_id, role, is_active)
		VALUES ($1, $2, $3, $4, $5, true)
		RETURNING *
	`, uuid.NewString(), callsign, wingID, userID, role).StructScan(&pilot); err != nil {
		return nil, fmt.Errorf("insert pilot: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &pilot, nil
}

// RenamePilot updates the callsign and keeps a linked user's username in
// step, in one transaction.
func (r *PilotRepository) RenamePilot(ctx context.Context, id, callsign string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var userID *string
	err = tx.QueryRowxContext(ctx, `
		UPDATE pilots SET callsign = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING user_id
	`, id, callsign).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("rename pilot: %w", err)
	}

	if userID != nil {
		if _, err := tx.ExecContext(ctx, `
			UPDATE users SET username = $2, updated_at = NOW() WHERE id = $1
		`, *userID, callsign); err != nil {
			return fmt.Errorf("rename linked user: %w", translateUnique(err))
		}
	}

	return tx.Commit()
}

// DeletePilotCascade removes the pilot, their qualifications and any linked
// user record in one transaction.
func (r *PilotRepository) DeletePilotCascade(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM qualifications WHERE pilot_id = $1`, id); err != nil {
		return fmt.Errorf("delete qualifications: %w", err)
	}

	var userID *string
	err = tx.QueryRowxContext(ctx, `
		DELETE FROM pilots WHERE id = $1 RETURNING user_id
	`, id).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete pilot: %w", err)
	}

	if userID != nil {
		if _, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, *userID); err != nil {
			return fmt.Errorf("delete linked user: %w", err)
		}
	}

	return tx.Commit()
}
