package dto

type MatchScoreRequest struct {
	RequiredSkills []string `json:"required_skills" validate:"max=100,dive,max=100"`
	UserSkills     []string `json:"user_skills" validate:"max=200,dive,max=100"`
}

type MatchScoreResponse struct {
	MatchScore int      `json:"match_score"`
	BaseScore  int      `json:"base_score"`
	Matched    []string `json:"matched"`
	Missing    []string `json:"missing"`
	Sparse     bool     `json:"sparse"`
}

type KeywordExtractRequest struct {
	Description string   `json:"description" validate:"max=50000"`
	UserSkills  []string `json:"user_skills" validate:"max=200,dive,max=100"`
}

type KeywordExtractResponse struct {
	Keywords []string `json:"keywords"`
}
