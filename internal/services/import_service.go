package services

import (
	"context"
	"fmt"
	"strings"

	"skyward/qualmatrix/internal/auth"
	"skyward/qualmatrix/internal/common"
	"skyward/qualmatrix/internal/constants"
	"skyward/qualmatrix/internal/db/repositories"
	"skyward/qualmatrix/internal/logging"
	"skyward/qualmatrix/internal/models/dtos"
	"skyward/qualmatrix/internal/models/entities"
)

// ImportStore is the transactional slice of the qualification store the
// reconciler needs. *repositories.QualificationRepository implements it.
type ImportStore interface {
	RunInTx(ctx context.Context, fn func(repositories.QualificationTx) error) error
	BackfillMissing(ctx context.Context, updatedBy string) (int64, error)
}

// WingLister resolves the wings whose cached readiness a write invalidates.
type WingLister interface {
	ListWings(ctx context.Context) ([]entities.Wing, error)
}

// ImportService merges externally supplied qualification batches into the
// store: one transaction per batch, per-row validation skips, last writer
// wins on the (pilot, skill) uniqueness constraint.
type ImportService struct {
	store ImportStore
	wings WingLister
	cache common.CacheInterface
}

func NewImportService(store ImportStore, wings WingLister, cache common.CacheInterface) *ImportService {
	return &ImportService{
		store: store,
		wings: wings,
		cache: cache,
	}
}

// ImportBatch validates and applies up to MaxImportBatch records for the
// caller. Validation failures are skips, never batch aborts; any store
// failure rolls the whole batch back with nothing committed.
func (s *ImportService) ImportBatch(
	ctx context.Context,
	claims auth.UserClaims,
	records []dtos.ImportRecord,
) (*dtos.ImportReport, error) {

	if claims == nil {
		return nil, &ServiceError{
			Code:    constants.ErrCodeUnauthorized,
			Message: constants.GetErrorMessage(constants.ErrCodeUnauthorized),
		}
	}
	if !constants.Role(claims.Role()).CanWrite() {
		return nil, &ServiceError{
			Code:    constants.ErrCodeForbidden,
			Message: constants.GetErrorMessage(constants.ErrCodeForbidden),
		}
	}

	// Resource guard, not a business rule: oversized batches fail whole
	// before any row is touched.
	if len(records) > constants.MaxImportBatch {
		return nil, &ServiceError{
			Code:    constants.ErrCodeBatchTooLarge,
			Message: fmt.Sprintf("batch of %d records exceeds the limit of %d", len(records), constants.MaxImportBatch),
		}
	}

	report := &dtos.ImportReport{Errors: []string{}}
	touchedWings := map[string]bool{}

	err := s.store.RunInTx(ctx, func(tx repositories.QualificationTx) error {
		for i, rec := range records {
			wingID, skipMsg, err := s.reconcileRecord(ctx, tx, claims, rec)
			if err != nil {
				// Infrastructure failure: abort, roll back everything
				// already applied in this pass.
				return err
			}
			if skipMsg != "" {
				report.Skipped++
				if len(report.Errors) < constants.MaxImportErrors {
					report.Errors = append(report.Errors, fmt.Sprintf("row %d: %s", i+1, skipMsg))
				}
				continue
			}
			report.Imported++
			touchedWings[wingID] = true
		}
		return nil
	})
	if err != nil {
		logging.Error("Import batch rolled back",
			"records", len(records),
			"error", err.Error(),
		)
		return nil, &ServiceError{
			Code:    constants.ErrCodeStoreFailure,
			Message: constants.GetErrorMessage(constants.ErrCodeStoreFailure),
			Err:     err,
		}
	}

	for wingID := range touchedWings {
		s.cache.Delete(constants.WingReadinessKey(wingID))
	}

	logging.Info("Import batch committed",
		"imported", report.Imported,
		"skipped", report.Skipped,
		"caller", claims.UserID(),
	)
	return report, nil
}

// reconcileRecord runs the per-record validation pipeline, short-circuiting
// on the first failing check, and upserts on success. It returns the pilot's
// wing ID on success, a skip message on validation failure, or a non-nil
// error only for store-level faults.
func (s *ImportService) reconcileRecord(
	ctx context.Context,
	tx repositories.QualificationTx,
	claims auth.UserClaims,
	rec dtos.ImportRecord,
) (string, string, error) {

	callsign := strings.TrimSpace(rec.Callsign)
	skillName := strings.TrimSpace(rec.SkillName)
	rawStatus := strings.TrimSpace(rec.Status)

	if callsign == "" || skillName == "" || rawStatus == "" {
		return "", "missing callsign, skill_name, or status", nil
	}

	status, ok := constants.ParseQualStatus(rawStatus)
	if !ok {
		return "", "invalid status", nil
	}

	// Lookup limit 2: one extra row is enough to detect ambiguity.
	pilots, err := tx.FindPilotsByCallsign(ctx, callsign, 2)
	if err != nil {
		return "", "", fmt.Errorf("pilot lookup: %w", err)
	}
	if len(pilots) == 0 {
		return "", "pilot not found", nil
	}
	if len(pilots) > 1 {
		return "", "ambiguous callsign", nil
	}
	pilot := pilots[0]

	skills, err := tx.FindSkillsByName(ctx, skillName, 2)
	if err != nil {
		return "", "", fmt.Errorf("skill lookup: %w", err)
	}
	if len(skills) == 0 {
		return "", "skill not found", nil
	}
	if len(skills) > 1 {
		return "", "ambiguous skill", nil
	}
	skill := skills[0]

	if !auth.CanActOnWing(claims, pilot.WingID) {
		return "", "pilot is not in your wing", nil
	}
	if skill.WingID != pilot.WingID {
		return "", "skill does not belong to pilot's wing", nil
	}
	if !auth.CanActOnWing(claims, skill.WingID) {
		return "", "skill is not in your wing", nil
	}

	if err := tx.UpsertQualification(ctx, pilot.ID, skill.ID, status, claims.UserID()); err != nil {
		return "", "", fmt.Errorf("upsert qualification: %w", err)
	}

	return pilot.WingID, "", nil
}

// Backfill inserts an NMQ qualification for every same-wing (pilot, skill)
// pair that lacks one. Admin only; idempotent.
func (s *ImportService) Backfill(ctx context.Context, claims auth.UserClaims) (int64, error) {
	if claims == nil || constants.Role(claims.Role()) != constants.RoleAdmin {
		return 0, &ServiceError{
			Code:    constants.ErrCodeForbidden,
			Message: constants.GetErrorMessage(constants.ErrCodeForbidden),
		}
	}

	inserted, err := s.store.BackfillMissing(ctx, constants.BackfillIdentity)
	if err != nil {
		return 0, &ServiceError{
			Code:    constants.ErrCodeStoreFailure,
			Message: constants.GetErrorMessage(constants.ErrCodeStoreFailure),
			Err:     err,
		}
	}

	if inserted > 0 {
		if wings, err := s.wings.ListWings(ctx); err == nil {
			for _, w := range wings {
				s.cache.Delete(constants.WingReadinessKey(w.ID))
			}
		}
	}

	logging.Info("Backfill completed",
		"rows_inserted", inserted,
		"caller", claims.UserID(),
	)
	return inserted, nil
}
