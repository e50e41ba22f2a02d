package app

import (
	"fmt"
	"log"
	"os"

	"career-guide/internal/config"
	"career-guide/internal/domain/job"
	"career-guide/internal/domain/matching"
	"career-guide/internal/infrastructure/cache"
	"career-guide/internal/infrastructure/jobfeed"
	"career-guide/internal/usecase"
)

// Container owns the long-lived dependencies shared by the HTTP layer.
type Container struct {
	Config  config.Config
	Logger  *log.Logger
	Cache   *cache.Redis
	Feeds   []jobfeed.Feed
	Catalog *job.Catalog
	Rnd     matching.RandomSource

	Matching usecase.MatchingUsecase
	Jobs     usecase.JobSearchUsecase
	Resume   usecase.ResumeUsecase
	SkillGap usecase.SkillGapUsecase
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	catalog := job.DefaultCatalog()
	if cfg.Catalog.Path != "" {
		loaded, err := job.LoadCatalog(cfg.Catalog.Path)
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		catalog = loaded
		logger.Printf("[Catalog] loaded path=%s templates=%d", cfg.Catalog.Path, catalog.Size())
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)
	feeds := jobfeed.NewFeeds(cfg.JobFeed, logger)
	if len(feeds) == 0 {
		logger.Printf("[Jobs] no job feeds configured, searches use the fallback catalog")
	}

	c := &Container{
		Config:  cfg,
		Logger:  logger,
		Cache:   redisCache,
		Feeds:   feeds,
		Catalog: catalog,
		Rnd:     matching.DefaultSource(),
	}
	c.wireUsecases()
	return c, nil
}

func (c *Container) wireUsecases() {
	var searchCache usecase.SearchCache
	if c.Cache != nil {
		searchCache = c.Cache
	}

	c.Matching = usecase.NewMatchingUsecase(c.Rnd)
	c.Jobs = usecase.NewJobSearchUsecase(c.Feeds, c.Catalog, searchCache, c.Rnd, c.Config.JobFeed.MinResults, c.Logger)
	c.Resume = usecase.NewResumeUsecase()
	c.SkillGap = usecase.NewSkillGapUsecase(c.Rnd)
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache == nil {
		return nil
	}
	return c.Cache.Close()
}
