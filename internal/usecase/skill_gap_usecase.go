package usecase

import (
	"career-guide/internal/domain/job"
	"career-guide/internal/domain/matching"
	"career-guide/internal/domain/skillgap"
	"career-guide/internal/payload"
	"career-guide/internal/search"
)

const maxGapInputs = 200

type GapInput struct {
	Skill         string
	CurrentLevel  int
	RequiredLevel int
}

type GapReport struct {
	Gaps    []skillgap.Gap
	Summary map[skillgap.Priority]int
}

type SkillGapAnalysis struct {
	GapReport
	JobMatches []job.Posting
}

type SkillGapUsecase interface {
	Prioritise(inputs []GapInput) (GapReport, error)
	AnalyzeRaw(raw []byte, userSkills []string) (SkillGapAnalysis, error)
}

type SkillGap struct {
	rnd matching.RandomSource
}

func NewSkillGapUsecase(rnd matching.RandomSource) *SkillGap {
	if rnd == nil {
		rnd = matching.DefaultSource()
	}
	return &SkillGap{rnd: rnd}
}

func (u *SkillGap) Prioritise(inputs []GapInput) (GapReport, error) {
	if len(inputs) > maxGapInputs {
		return GapReport{}, ErrInvalidInput
	}
	gaps := make([]skillgap.Gap, 0, len(inputs))
	for _, in := range inputs {
		g := skillgap.NewGap(in.Skill, in.CurrentLevel, in.RequiredLevel)
		if g.Skill == "" {
			return GapReport{}, ErrInvalidInput
		}
		gaps = append(gaps, g)
	}
	return newGapReport(gaps), nil
}

// AnalyzeRaw decodes a skill-gap payload. With user skills, job matches that
// declare required skills are re-scored locally instead of trusting the
// model's score.
func (u *SkillGap) AnalyzeRaw(raw []byte, userSkills []string) (SkillGapAnalysis, error) {
	a, err := payload.DecodeSkillGapAnalysis(raw)
	if err != nil {
		return SkillGapAnalysis{}, wrapPayloadError(err)
	}

	user := matching.NewSkillSet(userSkills...)
	matches := a.JobMatches
	if user.Len() > 0 {
		for i := range matches {
			if len(matches[i].RequiredSkills) == 0 {
				continue
			}
			matches[i].MatchScore = matching.Score(matching.NewSkillSet(matches[i].RequiredSkills...), user, u.rnd)
		}
		matches = search.RankPostings(matches)
	}

	return SkillGapAnalysis{GapReport: newGapReport(a.Gaps), JobMatches: matches}, nil
}

func newGapReport(gaps []skillgap.Gap) GapReport {
	return GapReport{Gaps: skillgap.Prioritise(gaps), Summary: skillgap.Summary(gaps)}
}

var _ SkillGapUsecase = (*SkillGap)(nil)
