package dto

import "career-guide/internal/domain/skillgap"

type GapInputRequest struct {
	Skill         string `json:"skill" validate:"required,max=100"`
	CurrentLevel  int    `json:"current_level"`
	RequiredLevel int    `json:"required_level"`
}

type PrioritiseGapsRequest struct {
	Gaps []GapInputRequest `json:"gaps" validate:"required,max=200,dive"`
}

type GapResponse struct {
	Skill         string `json:"skill"`
	CurrentLevel  int    `json:"current_level"`
	RequiredLevel int    `json:"required_level"`
	Gap           int    `json:"gap"`
	Priority      string `json:"priority"`
}

type GapReportResponse struct {
	Gaps    []GapResponse  `json:"gaps"`
	Summary map[string]int `json:"summary"`
}

type SkillGapAnalysisResponse struct {
	GapReportResponse
	JobMatches []JobPostingResponse `json:"job_matches"`
}

func NewGapReportResponse(gaps []skillgap.Gap, summary map[skillgap.Priority]int) GapReportResponse {
	out := GapReportResponse{
		Gaps:    make([]GapResponse, 0, len(gaps)),
		Summary: make(map[string]int, len(summary)),
	}
	for _, g := range gaps {
		out.Gaps = append(out.Gaps, GapResponse{
			Skill:         g.Skill,
			CurrentLevel:  g.CurrentLevel,
			RequiredLevel: g.RequiredLevel,
			Gap:           g.Gap,
			Priority:      string(g.Priority),
		})
	}
	for p, n := range summary {
		out.Summary[string(p)] = n
	}
	return out
}
