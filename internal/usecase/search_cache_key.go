package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"

	"career-guide/internal/search"
)

const (
	jobSearchKeyPrefix  = "jobs:search:"
	jobSearchLockPrefix = "jobs:lock:"
)

type jobSearchCacheKeyInput struct {
	Query          string   `json:"query"`
	Location       string   `json:"location"`
	EmploymentType string   `json:"employment_type"`
	Skills         []string `json:"skills"`
	Limit          int      `json:"limit"`
}

// JobSearchCacheKey is stable under case, spacing and skill order changes.
func JobSearchCacheKey(params JobSearchParams) string {
	skills := make([]string, 0, len(params.Skills))
	for _, s := range params.Skills {
		s = search.NormalizeQuery(s)
		if s == "" {
			continue
		}
		skills = append(skills, s)
	}
	sort.Strings(skills)

	in := jobSearchCacheKeyInput{
		Query:          search.NormalizeQuery(params.Query),
		Location:       search.NormalizeQuery(params.Location),
		EmploymentType: search.NormalizeQuery(params.EmploymentType),
		Skills:         skills,
		Limit:          params.Limit,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return jobSearchKeyPrefix + hex.EncodeToString(sum[:])
}

func JobSearchLockKey(searchKey string) string {
	searchKey = strings.TrimSpace(searchKey)
	return jobSearchLockPrefix + strings.TrimPrefix(searchKey, jobSearchKeyPrefix)
}
