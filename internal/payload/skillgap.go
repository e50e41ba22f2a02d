package payload

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"career-guide/internal/domain/job"
	"career-guide/internal/domain/skillgap"

	"github.com/google/uuid"
)

// SourceAnalysis labels postings suggested by the skill-gap service.
const SourceAnalysis = "Skill Gap Analysis"

type SkillGapAnalysis struct {
	Gaps       []skillgap.Gap
	JobMatches []job.Posting
}

type gapWire struct {
	Skill         string   `json:"skill"`
	CurrentLevel  *float64 `json:"currentLevel"`
	RequiredLevel *float64 `json:"requiredLevel"`
	Gap           *float64 `json:"gap"`
}

type jobMatchWire struct {
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Location       string   `json:"location"`
	Salary         string   `json:"salary"`
	Type           string   `json:"type"`
	RequiredSkills []string `json:"requiredSkills"`
	Description    string   `json:"description"`
	PostedDate     string   `json:"postedDate"`
	URL            string   `json:"url"`
	MatchScore     *float64 `json:"matchScore"`
}

type skillGapWire struct {
	SkillGaps  []gapWire      `json:"skillGaps"`
	JobMatches []jobMatchWire `json:"jobMatches"`
}

// DecodeSkillGapAnalysis validates a skill-gap payload. Gap and priority are
// always recomputed from the levels so tiers stay consistent with
// skillgap.PriorityFor; the model's own values only serve when both levels
// are absent.
func DecodeSkillGapAnalysis(raw []byte) (SkillGapAnalysis, error) {
	doc, err := validate(skillGapAnalysisSchema, raw)
	if err != nil {
		return SkillGapAnalysis{}, err
	}

	var w skillGapWire
	if err := json.Unmarshal(doc, &w); err != nil {
		return SkillGapAnalysis{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	out := SkillGapAnalysis{
		Gaps:       make([]skillgap.Gap, 0, len(w.SkillGaps)),
		JobMatches: make([]job.Posting, 0, len(w.JobMatches)),
	}
	for _, g := range w.SkillGaps {
		out.Gaps = append(out.Gaps, toGap(g))
	}
	for _, m := range w.JobMatches {
		out.JobMatches = append(out.JobMatches, job.Posting{
			ID:             "analysis-" + uuid.NewString(),
			Title:          strings.TrimSpace(m.Title),
			Company:        strings.TrimSpace(m.Company),
			Location:       strings.TrimSpace(m.Location),
			Compensation:   strings.TrimSpace(m.Salary),
			EmploymentType: strings.TrimSpace(m.Type),
			RequiredSkills: nonBlank(m.RequiredSkills),
			Description:    strings.TrimSpace(m.Description),
			Posted:         strings.TrimSpace(m.PostedDate),
			URL:            strings.TrimSpace(m.URL),
			Source:         SourceAnalysis,
			MatchScore:     percent(m.MatchScore),
		})
	}
	return out, nil
}

func toGap(g gapWire) skillgap.Gap {
	if g.CurrentLevel == nil && g.RequiredLevel == nil && g.Gap != nil {
		return skillgap.NewGap(g.Skill, 0, percent(g.Gap))
	}
	return skillgap.NewGap(g.Skill, percent(g.CurrentLevel), percent(g.RequiredLevel))
}

// percent rounds v into [0,100]; nil and NaN become 0.
func percent(v *float64) int {
	if v == nil || math.IsNaN(*v) {
		return 0
	}
	r := math.Round(*v)
	if r < 0 {
		return 0
	}
	if r > 100 {
		return 100
	}
	return int(r)
}
