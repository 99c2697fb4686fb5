package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"skyward/qualmatrix/internal/constants"
	"skyward/qualmatrix/internal/models/entities"
)

// QualificationTx is the slice of the store the import reconciler sees while
// its batch transaction is open. Lookups run inside the same transaction as
// the upserts so a rolled-back batch leaves no trace.
type QualificationTx interface {
	FindPilotsByCallsign(ctx context.Context, callsign string, limit int) ([]entities.Pilot, error)
	FindSkillsByName(ctx context.Context, name string, limit int) ([]entities.Skill, error)
	UpsertQualification(ctx context.Context, pilotID, skillID string, status constants.QualStatus, updatedBy string) error
}

type QualificationRepository struct {
	db *sqlx.DB
}

func NewQualificationRepository(db *sqlx.DB) *QualificationRepository {
	return &QualificationRepository{db}
}

// RunInTx opens one transaction, hands the reconciler a tx-bound view and
// commits only if fn returns nil. Any error rolls the whole batch back.
func (r *QualificationRepository) RunInTx(ctx context.Context, fn func(QualificationTx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() // safe even after Commit

	if err := fn(&qualificationTx{tx}); err != nil {
		return err
	}

	return tx.Commit()
}

type qualificationTx struct {
	tx *sqlx.Tx
}

func (q *qualificationTx) FindPilotsByCallsign(ctx context.Context, callsign string, limit int) ([]entities.Pilot, error) {
	var pilots []entities.Pilot
	err := q.tx.SelectContext(ctx, &pilots, `
		SELECT * FROM pilots
		WHERE LOWER(callsign) = LOWER($1) AND is_active
		LIMIT $2
	`, callsign, limit)
	return pilots, err
}

func (q *qualificationTx) FindSkillsByName(ctx context.Context, name string, limit int) ([]entities.Skill, error) {
	var skills []entities.Skill
	err := q.tx.SelectContext(ctx, &skills, `
		SELECT * FROM skills
		WHERE LOWER(name) = LOWER($1)
		LIMIT $2
	`, name, limit)
	return skills, err
}

func (q *qualificationTx) UpsertQualification(ctx context.Context, pilotID, skillID string, status constants.QualStatus, updatedBy string) error {
	_, err := q.tx.ExecContext(ctx, constants.UpsertQualification,
		uuid.NewString(), pilotID, skillID, status, updatedBy)
	return err
}

// SetStatus is the single-cell write used outside the import path. Same
// merge rule: last writer wins on (pilot_id, skill_id).
func (r *QualificationRepository) SetStatus(ctx context.Context, pilotID, skillID string, status constants.QualStatus, updatedBy string) error {
	_, err := r.db.ExecContext(ctx, constants.UpsertQualification,
		uuid.NewString(), pilotID, skillID, status, updatedBy)
	return err
}

func (r *QualificationRepository) DeleteQualification(ctx context.Context, pilotID, skillID string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM qualifications WHERE pilot_id = $1 AND skill_id = $2
	`, pilotID, skillID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *QualificationRepository) FindQualification(ctx context.Context, pilotID, skillID string) (*entities.Qualification, error) {
	var q entities.Qualification
	err := r.db.QueryRowxContext(ctx, `
		SELECT * FROM qualifications WHERE pilot_id = $1 AND skill_id = $2
	`, pilotID, skillID).StructScan(&q)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// ListWingQualifications returns every qualification row for pilots of the
// wing. Missing (pilot, skill) pairs are implicit NMQ and simply absent.
func (r *QualificationRepository) ListWingQualifications(ctx context.Context, wingID string) ([]entities.Qualification, error) {
	var quals []entities.Qualification
	err := r.db.SelectContext(ctx, &quals, `
		SELECT q.* FROM qualifications q
		JOIN pilots p ON p.id = q.pilot_id
		WHERE p.wing_id = $1
	`, wingID)
	return quals, err
}

// BackfillMissing inserts NMQ rows for every same-wing (pilot, skill) pair
// without one. Idempotent through ON CONFLICT DO NOTHING.
func (r *QualificationRepository) BackfillMissing(ctx context.Context, updatedBy string) (int64, error) {
	res, err := r.db.ExecContext(ctx, constants.BackfillQualifications, updatedBy)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// PilotQualificationCounts aggregates, per pilot of the wing, total
// qualification rows and rows at FMQ/IP.
func (r *QualificationRepository) PilotQualificationCounts(ctx context.Context, wingID string) ([]entities.PilotQualCount, error) {
	var counts []entities.PilotQualCount
	err := r.db.SelectContext(ctx, &counts, `
		SELECT p.id AS pilot_id,
		       p.callsign,
		       COUNT(q.id) AS total_quals,
		       COUNT(q.id) FILTER (WHERE q.status IN ('FMQ', 'IP')) AS qualified_quals
		FROM pilots p
		LEFT JOIN qualifications q ON q.pilot_id = p.id
		WHERE p.wing_id = $1
		GROUP BY p.id, p.callsign
		ORDER BY p.callsign
	`, wingID)
	return counts, err
}

func (r *QualificationRepository) CountSkills(ctx context.Context, wingID string) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM skills WHERE wing_id = $1`, wingID)
	return n, err
}
