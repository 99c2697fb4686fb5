package services

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"skyward/qualmatrix/internal/common"
	"skyward/qualmatrix/internal/constants"
	"skyward/qualmatrix/internal/models/dtos"
	"skyward/qualmatrix/internal/models/entities"
)

const readinessCacheTTL = 60 * time.Second

// ReadinessStore is the read-only aggregate view the readiness computations
// run over. *repositories.QualificationRepository implements it.
type ReadinessStore interface {
	PilotQualificationCounts(ctx context.Context, wingID string) ([]entities.PilotQualCount, error)
	CountSkills(ctx context.Context, wingID string) (int, error)
}

// ReadinessService computes summary statistics over qualifications. Pure
// reads; results are cached per wing and invalidated by the write paths.
type ReadinessService struct {
	store ReadinessStore
	wings WingLister
	cache common.CacheInterface
}

func NewReadinessService(store ReadinessStore, wings WingLister, cache common.CacheInterface) *ReadinessService {
	return &ReadinessService{
		store: store,
		wings: wings,
		cache: cache,
	}
}

// WingReadiness returns the wing's readiness report, serving from cache when
// a fresh copy exists.
func (s *ReadinessService) WingReadiness(ctx context.Context, wingID string) (*dtos.WingReadiness, error) {
	cacheKey := constants.WingReadinessKey(wingID)
	if cached, found := s.cache.Get(cacheKey); found {
		if report, ok := cached.(*dtos.WingReadiness); ok {
			return report, nil
		}
	}

	counts, err := s.store.PilotQualificationCounts(ctx, wingID)
	if err != nil {
		return nil, &ServiceError{
			Code:    constants.ErrCodeStoreFailure,
			Message: constants.GetErrorMessage(constants.ErrCodeStoreFailure),
			Err:     err,
		}
	}

	report := &dtos.WingReadiness{
		WingID: wingID,
		Pilots: []dtos.PilotReadiness{},
	}

	// Skill count is only needed as the completion denominator for pilots
	// with no qualification rows; fetched lazily once.
	skillCount := -1
	completionSum := 0.0

	for _, c := range counts {
		denom := c.Total
		if denom == 0 {
			if skillCount < 0 {
				skillCount, err = s.store.CountSkills(ctx, wingID)
				if err != nil {
					return nil, &ServiceError{
						Code:    constants.ErrCodeStoreFailure,
						Message: constants.GetErrorMessage(constants.ErrCodeStoreFailure),
						Err:     err,
					}
				}
			}
			denom = skillCount
		}

		completion := 0.0
		if denom > 0 {
			completion = float64(c.Qualified) / float64(denom) * 100
		}
		combatReady := c.Qualified >= constants.CombatReadyThreshold

		report.Pilots = append(report.Pilots, dtos.PilotReadiness{
			PilotID:              c.PilotID,
			Callsign:             c.Callsign,
			QualifiedSkills:      c.Qualified,
			TotalTracked:         denom,
			CompletionPercentage: completion,
			CombatReady:          combatReady,
		})

		completionSum += completion
		if combatReady {
			report.CombatReadyPilots++
		}
	}

	report.TotalPilots = len(counts)
	if report.TotalPilots > 0 {
		report.OverallReadinessPercentage = float64(report.CombatReadyPilots) / float64(report.TotalPilots) * 100
		report.AverageCompletionPercentage = completionSum / float64(report.TotalPilots)
	}

	s.cache.Set(cacheKey, report, readinessCacheTTL)
	return report, nil
}

// GlobalReadiness fans the per-wing computation out concurrently and rolls
// the results up.
func (s *ReadinessService) GlobalReadiness(ctx context.Context) (*dtos.GlobalReadiness, error) {
	wings, err := s.wings.ListWings(ctx)
	if err != nil {
		return nil, &ServiceError{
			Code:    constants.ErrCodeStoreFailure,
			Message: constants.GetErrorMessage(constants.ErrCodeStoreFailure),
			Err:     err,
		}
	}

	reports := make([]*dtos.WingReadiness, len(wings))
	g, gctx := errgroup.WithContext(ctx)
	for i, w := range wings {
		i, w := i, w
		g.Go(func() error {
			report, err := s.WingReadiness(gctx, w.ID)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	global := &dtos.GlobalReadiness{Wings: []dtos.WingReadiness{}}
	for _, report := range reports {
		global.TotalPilots += report.TotalPilots
		global.CombatReadyPilots += report.CombatReadyPilots
		global.Wings = append(global.Wings, *report)
	}
	if global.TotalPilots > 0 {
		global.OverallReadinessPercentage = float64(global.CombatReadyPilots) / float64(global.TotalPilots) * 100
	}
	sort.Slice(global.Wings, func(i, j int) bool { return global.Wings[i].WingID < global.Wings[j].WingID })

	return global, nil
}
