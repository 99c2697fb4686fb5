package constants

// Queries shared by more than one write path. Single-use queries live inline
// in their repository.
const (
	// UpsertQualification is the merge rule for both the CSV import
	// reconciler and the single-cell PUT: last writer wins on the
	// (pilot_id, skill_id) uniqueness constraint.
	UpsertQualification = `
	INSERT INTO qualifications (id, pilot_id, skill_id, status, last_updated, updated_by)
	VALUES ($1, $2, $3, $4, NOW(), $5)
	ON CONFLICT (pilot_id, skill_id)
	DO UPDATE SET status = EXCLUDED.status,
	              last_updated = NOW(),
	              updated_by = EXCLUDED.updated_by
	`

	// BackfillQualifications inserts an NMQ row for every (pilot, skill)
	// pair sharing a wing that has no qualification yet. Do-nothing on
	// conflict keeps the operation idempotent.
	BackfillQualifications = `
	INSERT INTO qualifications (id, pilot_id, skill_id, status, last_updated, updated_by)
	SELECT gen_random_uuid(), p.id, s.id, 'NMQ', NOW(), $1
	FROM pilots p
	JOIN skills s ON s.wing_id = p.wing_id
	ON CONFLICT (pilot_id, skill_id) DO NOTHING
	`
)
