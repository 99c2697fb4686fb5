package api

import (
	"os"

	"skyward/qualmatrix/internal/common"
	"skyward/qualmatrix/internal/db"
	"skyward/qualmatrix/internal/db/repositories"
	"skyward/qualmatrix/internal/logging"
	"skyward/qualmatrix/internal/metrics"
	"skyward/qualmatrix/internal/services"
)

type Repositories struct {
	Wings          *repositories.WingRepository
	Pilots         *repositories.PilotRepository
	Skills         *repositories.SkillRepository
	Qualifications *repositories.QualificationRepository
	Keys           *repositories.KeysRepo
	UserGorm       *repositories.UserRepositoryGORM
	CategoryColors *repositories.CategoryColorRepository
}

type Services struct {
	Cache          common.CacheInterface
	Import         *services.ImportService
	Readiness      *services.ReadinessService
	Qualifications *services.QualificationService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
}

func InitDependencies(metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {

	repos := &Repositories{
		Wings:          repositories.NewWingRepository(db.DB),
		Pilots:         repositories.NewPilotRepository(db.DB),
		Skills:         repositories.NewSkillRepository(db.DB),
		Qualifications: repositories.NewQualificationRepository(db.DB),
		Keys:           repositories.NewApiKeysRepo(db.DB),
		UserGorm:       repositories.NewUserRepositoryGORM(db.PgDB),
		CategoryColors: repositories.NewCategoryColorRepository(db.PgDB),
	}

	var cacheSvc common.CacheInterface
	if os.Getenv("CACHE_BACKEND") == "redis" {
		redisCache, err := common.NewRedisCacheService()
		if err != nil {
			return nil, err
		}
		cacheSvc = redisCache
		logging.Info("Cache backend: redis")
	} else {
		cacheSvc = common.NewCacheService(60, 600)
		logging.Info("Cache backend: in-memory")
	}

	svcs := &Services{
		Cache:          cacheSvc,
		Import:         services.NewImportService(repos.Qualifications, repos.Wings, cacheSvc),
		Readiness:      services.NewReadinessService(repos.Qualifications, repos.Wings, cacheSvc),
		Qualifications: services.NewQualificationService(repos.Qualifications, repos.Pilots, repos.Skills, cacheSvc),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Metrics:  metricsReg,
	}, nil

}
