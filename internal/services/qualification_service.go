package services

import (
	"context"
	"errors"
	"time"

	"skyward/qualmatrix/internal/auth"
	"skyward/qualmatrix/internal/common"
	"skyward/qualmatrix/internal/constants"
	"skyward/qualmatrix/internal/db/repositories"
	"skyward/qualmatrix/internal/models/dtos"
	"skyward/qualmatrix/internal/models/entities"
)

// QualificationService covers the single-cell write path and the matrix
// read the grid UI renders from.
type QualificationService struct {
	quals  *repositories.QualificationRepository
	pilots *repositories.PilotRepository
	skills *repositories.SkillRepository
	cache  common.CacheInterface
}

func NewQualificationService(
	quals *repositories.QualificationRepository,
	pilots *repositories.PilotRepository,
	skills *repositories.SkillRepository,
	cache common.CacheInterface,
) *QualificationService {
	return &QualificationService{
		quals:  quals,
		pilots: pilots,
		skills: skills,
		cache:  cache,
	}
}

// SetQualification upserts one (pilot, skill) cell after the same wing-scope
// checks the import reconciler applies.
func (s *QualificationService) SetQualification(
	ctx context.Context,
	claims auth.UserClaims,
	pilotID, skillID, rawStatus string,
) error {

	status, ok := constants.ParseQualStatus(rawStatus)
	if !ok {
		return &ServiceError{
			Code:    constants.ErrCodeInvalidStatus,
			Message: constants.GetErrorMessage(constants.ErrCodeInvalidStatus),
		}
	}

	pilot, skill, err := s.resolvePair(ctx, pilotID, skillID)
	if err != nil {
		return err
	}

	if !auth.CanActOnWing(claims, pilot.WingID) || skill.WingID != pilot.WingID {
		return &ServiceError{
			Code:    constants.ErrCodeWrongWing,
			Message: constants.GetErrorMessage(constants.ErrCodeWrongWing),
		}
	}

	if err := s.quals.SetStatus(ctx, pilot.ID, skill.ID, status, claims.UserID()); err != nil {
		return &ServiceError{
			Code:    constants.ErrCodeStoreFailure,
			Message: constants.GetErrorMessage(constants.ErrCodeStoreFailure),
			Err:     err,
		}
	}

	s.cache.Delete(constants.WingReadinessKey(pilot.WingID))
	return nil
}

// RemoveQualification deletes a cell outright; the pair reverts to implicit
// NMQ. Explicit instructor/admin action only.
func (s *QualificationService) RemoveQualification(
	ctx context.Context,
	claims auth.UserClaims,
	pilotID, skillID string,
) error {

	pilot, skill, err := s.resolvePair(ctx, pilotID, skillID)
	if err != nil {
		return err
	}

	if !auth.CanActOnWing(claims, pilot.WingID) || skill.WingID != pilot.WingID {
		return &ServiceError{
			Code:    constants.ErrCodeWrongWing,
			Message: constants.GetErrorMessage(constants.ErrCodeWrongWing),
		}
	}

	err = s.quals.DeleteQualification(ctx, pilot.ID, skill.ID)
	if errors.Is(err, repositories.ErrNotFound) {
		return &ServiceError{
			Code:    constants.ErrCodeQualificationNotFound,
			Message: constants.GetErrorMessage(constants.ErrCodeQualificationNotFound),
		}
	}
	if err != nil {
		return &ServiceError{
			Code:    constants.ErrCodeStoreFailure,
			Message: constants.GetErrorMessage(constants.ErrCodeStoreFailure),
			Err:     err,
		}
	}

	s.cache.Delete(constants.WingReadinessKey(pilot.WingID))
	return nil
}

// WingMatrix assembles the editable grid: ordered skills across, pilots
// down, and a nullable status per cell (nil = implicit NMQ, no row).
func (s *QualificationService) WingMatrix(ctx context.Context, wingID string) (*dtos.WingMatrix, error) {
	skills, err := s.skills.ListSkillsByWing(ctx, wingID)
	if err != nil {
		return nil, s.storeErr(err)
	}
	pilots, err := s.pilots.ListPilotsByWing(ctx, wingID)
	if err != nil {
		return nil, s.storeErr(err)
	}
	quals, err := s.quals.ListWingQualifications(ctx, wingID)
	if err != nil {
		return nil, s.storeErr(err)
	}

	type cellKey struct{ pilotID, skillID string }
	cells := make(map[cellKey]struct {
		status    string
		updated   time.Time
		updatedBy string
	}, len(quals))
	for _, q := range quals {
		cells[cellKey{q.PilotID, q.SkillID}] = struct {
			status    string
			updated   time.Time
			updatedBy string
		}{string(q.Status), q.LastUpdated, q.UpdatedBy}
	}

	matrix := &dtos.WingMatrix{
		WingID: wingID,
		Skills: make([]dtos.MatrixSkill, 0, len(skills)),
		Pilots: make([]dtos.MatrixPilot, 0, len(pilots)),
	}
	for _, sk := range skills {
		matrix.Skills = append(matrix.Skills, dtos.MatrixSkill{
			SkillID:   sk.ID,
			Name:      sk.Name,
			Category:  sk.Category,
			SortOrder: sk.SortOrder,
		})
	}
	for _, p := range pilots {
		row := dtos.MatrixPilot{
			PilotID:  p.ID,
			Callsign: p.Callsign,
			Cells:    make([]dtos.MatrixCell, 0, len(skills)),
		}
		for _, sk := range skills {
			cell := dtos.MatrixCell{SkillID: sk.ID}
			if c, found := cells[cellKey{p.ID, sk.ID}]; found {
				status := c.status
				updated := c.updated
				cell.Status = &status
				cell.LastUpdated = &updated
				cell.UpdatedBy = c.updatedBy
			}
			row.Cells = append(row.Cells, cell)
		}
		matrix.Pilots = append(matrix.Pilots, row)
	}

	return matrix, nil
}

func (s *QualificationService) resolvePair(ctx context.Context, pilotID, skillID string) (*entities.Pilot, *entities.Skill, error) {
	pilot, err := s.pilots.FindPilotByID(ctx, pilotID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, nil, &ServiceError{
			Code:    constants.ErrCodePilotNotFound,
			Message: constants.GetErrorMessage(constants.ErrCodePilotNotFound),
		}
	}
	if err != nil {
		return nil, nil, s.storeErr(err)
	}

	skill, err := s.skills.FindSkillByID(ctx, skillID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, nil, &ServiceError{
			Code:    constants.ErrCodeSkillNotFound,
			Message: constants.GetErrorMessage(constants.ErrCodeSkillNotFound),
		}
	}
	if err != nil {
		return nil, nil, s.storeErr(err)
	}

	return pilot, skill, nil
}

func (s *QualificationService) storeErr(err error) *ServiceError {
	return &ServiceError{
		Code:    constants.ErrCodeStoreFailure,
		Message: constants.GetErrorMessage(constants.ErrCodeStoreFailure),
		Err:     err,
	}
}
