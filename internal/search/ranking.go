package search

import (
	"sort"
	"strings"

	"career-guide/internal/domain/job"
)

// ComputeDataQuality awards a point per populated display field, up to 5.
func ComputeDataQuality(p job.Posting) float64 {
	score := 0.0
	if strings.TrimSpace(p.Title) != "" {
		score += 1
	}
	if strings.TrimSpace(p.Company) != "" {
		score += 1
	}
	if strings.TrimSpace(p.Location) != "" {
		score += 1
	}
	if len(strings.TrimSpace(p.Description)) > 100 {
		score += 1
	}
	if strings.TrimSpace(p.URL) != "" {
		score += 1
	}
	return score
}

// RankPostings orders postings by match score, then data quality. Ties keep
// input order. The input slice is not modified.
func RankPostings(postings []job.Posting) []job.Posting {
	type scored struct {
		p       job.Posting
		quality float64
	}
	items := make([]scored, 0, len(postings))
	for _, p := range postings {
		items = append(items, scored{p: p, quality: ComputeDataQuality(p)})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].p.MatchScore != items[j].p.MatchScore {
			return items[i].p.MatchScore > items[j].p.MatchScore
		}
		return items[i].quality > items[j].quality
	})

	out := make([]job.Posting, 0, len(items))
	for _, it := range items {
		out = append(out, it.p)
	}
	return out
}
