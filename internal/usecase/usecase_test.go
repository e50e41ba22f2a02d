package usecase

import (
	"errors"
	"testing"

	"career-guide/internal/domain/matching"
	"career-guide/internal/domain/resume"
	"career-guide/internal/domain/skillgap"
	"career-guide/internal/payload"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatching_ScoreMatch(t *testing.T) {
	uc := NewMatchingUsecase(matching.NewSeededSource(1))

	res := uc.ScoreMatch([]string{"React", "Node"}, []string{"react"})
	assert.Equal(t, 50, res.BaseScore)
	assert.Equal(t, []string{"React"}, res.Matched)
	assert.Equal(t, []string{"Node"}, res.Missing)
	assert.GreaterOrEqual(t, res.MatchScore, 40)
	assert.LessOrEqual(t, res.MatchScore, 60)

	sparse := uc.ScoreMatch(nil, []string{"react"})
	assert.True(t, sparse.Sparse)
	assert.Less(t, sparse.MatchScore, 80)
}

func TestMatching_ExtractKeywords(t *testing.T) {
	uc := NewMatchingUsecase(nil)
	got := uc.ExtractKeywords("Docker and Airflow pipelines", []string{"airflow", "Spark"})
	assert.Equal(t, []string{"Docker", "airflow"}, got)
	assert.Empty(t, uc.ExtractKeywords("", []string{"airflow"}))
}

func TestResume_ScoreRaw(t *testing.T) {
	uc := NewResumeUsecase()

	p, report, err := uc.ScoreRaw([]byte(`{"name":"Jane Doe","email":"jane@x.com","skills":["Go"]}`))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", p.Name)
	assert.Equal(t, 35, report.Score)

	_, _, err = uc.ScoreRaw([]byte(`{"skills": 3}`))
	assert.ErrorIs(t, err, ErrInvalidPayload)
	var ve *payload.ValidationError
	assert.True(t, errors.As(err, &ve))

	_, _, err = uc.ScoreRaw([]byte(`not json`))
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestResume_ScoreProfile(t *testing.T) {
	report := NewResumeUsecase().ScoreProfile(resume.Profile{Phone: "1"})
	assert.Equal(t, 10, report.Score)
}

func TestSkillGap_Prioritise(t *testing.T) {
	uc := NewSkillGapUsecase(nil)

	rep, err := uc.Prioritise([]GapInput{
		{Skill: "SQL", CurrentLevel: 70, RequiredLevel: 80},
		{Skill: "Kubernetes", CurrentLevel: 10, RequiredLevel: 90},
	})
	require.NoError(t, err)
	require.Len(t, rep.Gaps, 2)
	assert.Equal(t, "Kubernetes", rep.Gaps[0].Skill)
	assert.Equal(t, skillgap.PriorityHigh, rep.Gaps[0].Priority)
	assert.Equal(t, 1, rep.Summary[skillgap.PriorityLow])

	_, err = uc.Prioritise([]GapInput{{Skill: "  "}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Prioritise(make([]GapInput, maxGapInputs+1))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSkillGap_AnalyzeRawRescoresMatches(t *testing.T) {
	uc := NewSkillGapUsecase(matching.NewSeededSource(2))
	raw := []byte(`{
	  "skillGaps": [{"skill": "Go", "currentLevel": 40, "requiredLevel": 60, "priority": "high"}],
	  "jobMatches": [
	    {"title": "Unrelated", "requiredSkills": ["Cobol"], "matchScore": 99},
	    {"title": "Go Dev", "requiredSkills": ["Go"], "matchScore": 10}
	  ]
	}`)

	a, err := uc.AnalyzeRaw(raw, []string{"go"})
	require.NoError(t, err)

	assert.Equal(t, skillgap.PriorityLow, a.Gaps[0].Priority)
	require.Len(t, a.JobMatches, 2)
	assert.Equal(t, "Go Dev", a.JobMatches[0].Title)
	assert.GreaterOrEqual(t, a.JobMatches[0].MatchScore, 90)
	assert.Equal(t, 40, a.JobMatches[1].MatchScore)

	untouched, err := uc.AnalyzeRaw(raw, nil)
	require.NoError(t, err)
	assert.Equal(t, 99, untouched.JobMatches[0].MatchScore)

	_, err = uc.AnalyzeRaw([]byte(`{"skillGaps": {}}`), nil)
	assert.ErrorIs(t, err, ErrInvalidPayload)
}
