package usecase

import (
	"career-guide/internal/domain/matching"
)

type MatchResult struct {
	MatchScore int
	BaseScore  int
	Matched    []string
	Missing    []string
	Sparse     bool
}

type MatchingUsecase interface {
	ScoreMatch(required, user []string) MatchResult
	ExtractKeywords(description string, user []string) []string
}

type Matching struct {
	rnd matching.RandomSource
}

// NewMatchingUsecase scores with rnd; nil means matching.DefaultSource.
// rnd must be safe for concurrent use.
func NewMatchingUsecase(rnd matching.RandomSource) *Matching {
	if rnd == nil {
		rnd = matching.DefaultSource()
	}
	return &Matching{rnd: rnd}
}

func (u *Matching) ScoreMatch(required, user []string) MatchResult {
	req := matching.NewSkillSet(required...)
	usr := matching.NewSkillSet(user...)

	b := matching.Match(req, usr)
	return MatchResult{
		MatchScore: matching.Score(req, usr, u.rnd),
		BaseScore:  b.BaseScore,
		Matched:    b.Matched,
		Missing:    b.Missing,
		Sparse:     b.Sparse,
	}
}

func (u *Matching) ExtractKeywords(description string, user []string) []string {
	return matching.ExtractKeywords(description, matching.NewSkillSet(user...)).Labels()
}

var _ MatchingUsecase = (*Matching)(nil)
