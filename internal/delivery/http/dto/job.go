package dto

import "career-guide/internal/domain/job"

type JobPostingResponse struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Location       string   `json:"location"`
	Compensation   string   `json:"compensation"`
	EmploymentType string   `json:"employment_type"`
	RequiredSkills []string `json:"required_skills"`
	Description    string   `json:"description"`
	Posted         string   `json:"posted"`
	URL            string   `json:"url"`
	Source         string   `json:"source"`
	MatchScore     int      `json:"match_score"`
}

type JobSearchResponse struct {
	Jobs         []JobPostingResponse `json:"jobs"`
	LiveCount    int                  `json:"live_count"`
	FallbackUsed bool                 `json:"fallback_used"`
	Cached       bool                 `json:"cached"`
}

func NewJobPostingResponses(postings []job.Posting) []JobPostingResponse {
	out := make([]JobPostingResponse, 0, len(postings))
	for _, p := range postings {
		skills := p.RequiredSkills
		if skills == nil {
			skills = []string{}
		}
		out = append(out, JobPostingResponse{
			ID:             p.ID,
			Title:          p.Title,
			Company:        p.Company,
			Location:       p.Location,
			Compensation:   p.Compensation,
			EmploymentType: p.EmploymentType,
			RequiredSkills: skills,
			Description:    p.Description,
			Posted:         p.Posted,
			URL:            p.URL,
			Source:         p.Source,
			MatchScore:     p.MatchScore,
		})
	}
	return out
}
