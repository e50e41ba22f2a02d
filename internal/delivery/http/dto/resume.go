package dto

import "career-guide/internal/domain/resume"

type EducationRequest struct {
	Degree      string `json:"degree" validate:"max=200"`
	Institution string `json:"institution" validate:"max=200"`
	Year        string `json:"year" validate:"max=50"`
}

type ExperienceRequest struct {
	Title       string `json:"title" validate:"max=200"`
	Company     string `json:"company" validate:"max=200"`
	Duration    string `json:"duration" validate:"max=100"`
	Description string `json:"description" validate:"max=10000"`
}

type ProjectRequest struct {
	Name         string   `json:"name" validate:"max=200"`
	Description  string   `json:"description" validate:"max=10000"`
	Technologies []string `json:"technologies" validate:"max=50,dive,max=100"`
}

type ResumeProfileRequest struct {
	Name       string              `json:"name" validate:"max=200"`
	Email      string              `json:"email" validate:"max=320"`
	Phone      string              `json:"phone" validate:"max=50"`
	Skills     []string            `json:"skills" validate:"max=200,dive,max=100"`
	Education  []EducationRequest  `json:"education" validate:"max=50,dive"`
	Experience []ExperienceRequest `json:"experience" validate:"max=100,dive"`
	Projects   []ProjectRequest    `json:"projects" validate:"max=100,dive"`
}

func (r ResumeProfileRequest) ToProfile() resume.Profile {
	p := resume.Profile{
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Skills:     r.Skills,
		Education:  make([]resume.Education, 0, len(r.Education)),
		Experience: make([]resume.Experience, 0, len(r.Experience)),
		Projects:   make([]resume.Project, 0, len(r.Projects)),
	}
	for _, e := range r.Education {
		p.Education = append(p.Education, resume.Education{Degree: e.Degree, Institution: e.Institution, Year: e.Year})
	}
	for _, e := range r.Experience {
		p.Experience = append(p.Experience, resume.Experience{Title: e.Title, Company: e.Company, Duration: e.Duration, Description: e.Description})
	}
	for _, pr := range r.Projects {
		p.Projects = append(p.Projects, resume.Project{Name: pr.Name, Description: pr.Description, Technologies: pr.Technologies})
	}
	return p
}

type ATSCheckResponse struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
	Passed bool   `json:"passed"`
}

type ATSScoreResponse struct {
	ATSScore int                `json:"ats_score"`
	Checks   []ATSCheckResponse `json:"checks"`
	Profile  *resume.Profile    `json:"profile,omitempty"`
}

func NewATSScoreResponse(r resume.ATSReport) ATSScoreResponse {
	out := ATSScoreResponse{ATSScore: r.Score, Checks: make([]ATSCheckResponse, 0, len(r.Checks))}
	for _, c := range r.Checks {
		out.Checks = append(out.Checks, ATSCheckResponse{Name: c.Name, Points: c.Points, Passed: c.Passed})
	}
	return out
}
