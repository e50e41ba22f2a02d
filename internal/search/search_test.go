package search

import (
	"strings"
	"testing"

	"career-guide/internal/domain/job"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeQuery(t *testing.T) {
	cases := map[string]string{
		"":                           "",
		"   Senior  GO   Developer ": "senior go developer",
		"C++, C#; Node.js!":          "c++ c# node.js",
		"CI/CD engineer (remote)":    "ci/cd engineer remote",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeQuery(in), "input=%q", in)
	}
}

func TestComputeDataQuality(t *testing.T) {
	assert.Zero(t, ComputeDataQuality(job.Posting{}))

	full := job.Posting{
		Title:       "Dev",
		Company:     "Acme",
		Location:    "Remote",
		Description: strings.Repeat("x", 101),
		URL:         "https://example.com",
	}
	assert.Equal(t, 5.0, ComputeDataQuality(full))
}

func TestRankPostings(t *testing.T) {
	in := []job.Posting{
		{ID: "a", MatchScore: 50},
		{ID: "b", MatchScore: 90},
		{ID: "c", MatchScore: 50, Title: "t", Company: "c", URL: "u"},
		{ID: "d", MatchScore: 50},
	}

	out := RankPostings(in)

	ids := make([]string, 0, len(out))
	for _, p := range out {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"b", "c", "a", "d"}, ids)
	assert.Equal(t, "a", in[0].ID)
	assert.Empty(t, RankPostings(nil))
}
