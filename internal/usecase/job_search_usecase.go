package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"career-guide/internal/domain/job"
	"career-guide/internal/domain/matching"
	"career-guide/internal/infrastructure/jobfeed"
	"career-guide/internal/search"

	"golang.org/x/sync/errgroup"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 50
	maxFallbackCount   = 50
	maxParallelFeeds   = 4
	lockTTL            = 30 * time.Second
	lockWaitBase       = 300 * time.Millisecond
	lockWaitJitter     = 200 * time.Millisecond
)

type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
}

type JobSearchParams struct {
	Query          string
	Location       string
	EmploymentType string
	Skills         []string
	Limit          int
}

type FallbackParams struct {
	Count          int
	Location       string
	EmploymentType string
	Skills         []string
}

type JobSearchResult struct {
	Jobs         []job.Posting `json:"jobs"`
	LiveCount    int           `json:"live_count"`
	FallbackUsed bool          `json:"fallback_used"`
	Cached       bool          `json:"-"`
}

type JobSearchUsecase interface {
	Search(ctx context.Context, params JobSearchParams) (JobSearchResult, error)
	Fallback(params FallbackParams) ([]job.Posting, error)
}

type JobSearch struct {
	feeds      []jobfeed.Feed
	catalog    *job.Catalog
	cache      SearchCache
	rnd        matching.RandomSource
	minResults int
	logger     *log.Logger
}

func NewJobSearchUsecase(feeds []jobfeed.Feed, catalog *job.Catalog, cache SearchCache, rnd matching.RandomSource, minResults int, logger *log.Logger) *JobSearch {
	if catalog == nil {
		catalog = job.DefaultCatalog()
	}
	if rnd == nil {
		rnd = matching.DefaultSource()
	}
	return &JobSearch{
		feeds:      feeds,
		catalog:    catalog,
		cache:      cache,
		rnd:        rnd,
		minResults: minResults,
		logger:     logger,
	}
}

func (u *JobSearch) Fallback(params FallbackParams) ([]job.Posting, error) {
	count := params.Count
	if count == 0 {
		count = u.catalog.Size()
	}
	if count < 0 || count > maxFallbackCount {
		return nil, ErrInvalidInput
	}
	user := matching.NewSkillSet(params.Skills...)
	return u.catalog.Generate(count, user, params.Location, params.EmploymentType, u.rnd), nil
}

func (u *JobSearch) Search(ctx context.Context, params JobSearchParams) (JobSearchResult, error) {
	if params.Limit == 0 {
		params.Limit = defaultSearchLimit
	}
	if params.Limit < 0 || params.Limit > maxSearchLimit {
		return JobSearchResult{}, ErrInvalidInput
	}
	params.Query = strings.TrimSpace(params.Query)
	params.Location = strings.TrimSpace(params.Location)
	params.EmploymentType = strings.TrimSpace(params.EmploymentType)
	params.Skills = matching.NewSkillSet(params.Skills...).Labels()

	cacheKey := JobSearchCacheKey(params)
	lockKey := JobSearchLockKey(cacheKey)

	if cached, ok := u.readCache(ctx, cacheKey); ok {
		return cached, nil
	}

	lockAcquired := false
	if u.cache != nil {
		ok, err := u.cache.SetIfNotExists(ctx, lockKey, "1", lockTTL)
		if err == nil && ok {
			lockAcquired = true
			u.logf("[Jobs] Lock acquired: %s", lockKey)
		} else if err == nil && !ok {
			wait := lockWaitBase + time.Duration(u.rnd.Float64()*float64(lockWaitJitter))
			select {
			case <-ctx.Done():
				return JobSearchResult{}, ctx.Err()
			case <-time.After(wait):
			}
			if cached, ok := u.readCache(ctx, cacheKey); ok {
				return cached, nil
			}
			u.logf("[Jobs] Lock wait fallback: %s", lockKey)
		}
	}

	user := matching.NewSkillSet(params.Skills...)
	live := u.fetchLive(ctx, params)
	for i := range live {
		if len(live[i].RequiredSkills) == 0 {
			live[i].RequiredSkills = matching.ExtractKeywords(live[i].Description, user).Labels()
		}
		live[i].MatchScore = matching.Score(matching.NewSkillSet(live[i].RequiredSkills...), user, u.rnd)
	}
	live = search.RankPostings(live)

	res := JobSearchResult{Jobs: live, LiveCount: len(live)}
	if len(live) < u.minResults {
		fb := u.catalog.Generate(u.minResults-len(live), user, params.Location, params.EmploymentType, u.rnd)
		if len(fb) > 0 {
			res.Jobs = append(res.Jobs, fb...)
			res.FallbackUsed = true
			u.logf("[Jobs] Fallback used: live=%d fallback=%d", len(live), len(fb))
		}
	}
	if len(res.Jobs) > params.Limit {
		res.Jobs = res.Jobs[:params.Limit]
	}
	if res.LiveCount > len(res.Jobs) {
		res.LiveCount = len(res.Jobs)
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, res, 0); err == nil {
			u.logf("[Jobs] Cache SET: %s", cacheKey)
		}
		if lockAcquired {
			_ = u.cache.Delete(ctx, lockKey)
		}
	}
	return res, nil
}

func (u *JobSearch) readCache(ctx context.Context, key string) (JobSearchResult, bool) {
	if u.cache == nil {
		return JobSearchResult{}, false
	}
	var cached JobSearchResult
	hit, err := u.cache.GetJSON(ctx, key, &cached)
	if err != nil || !hit {
		u.logf("[Jobs] Cache MISS: %s", key)
		return JobSearchResult{}, false
	}
	u.logf("[Jobs] Cache HIT: %s", key)
	cached.Cached = true
	return cached, true
}

// fetchLive queries every feed in parallel. A failing feed is logged and
// skipped. Duplicates across feeds keep the first occurrence in feed order.
func (u *JobSearch) fetchLive(ctx context.Context, params JobSearchParams) []job.Posting {
	if len(u.feeds) == 0 {
		return []job.Posting{}
	}

	// each goroutine writes only its own slot
	results := make([][]job.Posting, len(u.feeds))

	var g errgroup.Group
	g.SetLimit(maxParallelFeeds)
	for i, f := range u.feeds {
		if f == nil {
			continue
		}
		g.Go(func() error {
			postings, err := f.Search(ctx, jobfeed.Query{
				Keywords:       params.Query,
				Location:       params.Location,
				EmploymentType: params.EmploymentType,
				Limit:          params.Limit,
			})
			if err != nil {
				u.logf("[Jobs] Feed failed feed=%s err=%v", f.Name(), err)
				return nil
			}
			results[i] = postings
			return nil
		})
	}
	_ = g.Wait()

	out := make([]job.Posting, 0)
	seen := make(map[string]struct{})
	for _, postings := range results {
		for _, p := range postings {
			k := dedupKey(p)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}

func dedupKey(p job.Posting) string {
	return search.NormalizeQuery(p.Title) + "|" + search.NormalizeQuery(p.Company) + "|" + search.NormalizeQuery(p.Location)
}

func (u *JobSearch) logf(format string, args ...any) {
	if u == nil || u.logger == nil {
		return
	}
	u.logger.Printf(format, args...)
}

var _ JobSearchUsecase = (*JobSearch)(nil)
