package payload

import (
	"encoding/json"
	"fmt"
	"strings"

	"career-guide/internal/domain/resume"
)

// flexString accepts a JSON string, number or null. Models emit years both
// ways.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	switch {
	case s == "null":
		*f = ""
	case strings.HasPrefix(s, `"`):
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*f = flexString(v)
	default:
		*f = flexString(s)
	}
	return nil
}

type resumeWire struct {
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	Skills    []string `json:"skills"`
	Education []struct {
		Degree      string     `json:"degree"`
		Institution string     `json:"institution"`
		Year        flexString `json:"year"`
	} `json:"education"`
	Experience []resume.Experience `json:"experience"`
	Projects   []resume.Project    `json:"projects"`
}

// DecodeResumeProfile validates a resume-parser payload and maps it onto
// resume.Profile. Missing lists become empty and blank skills are dropped.
func DecodeResumeProfile(raw []byte) (resume.Profile, error) {
	doc, err := validate(resumeProfileSchema, raw)
	if err != nil {
		return resume.Profile{}, err
	}

	var w resumeWire
	if err := json.Unmarshal(doc, &w); err != nil {
		return resume.Profile{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	p := resume.Profile{
		Name:       strings.TrimSpace(w.Name),
		Email:      strings.TrimSpace(w.Email),
		Phone:      strings.TrimSpace(w.Phone),
		Skills:     nonBlank(w.Skills),
		Education:  make([]resume.Education, 0, len(w.Education)),
		Experience: make([]resume.Experience, 0, len(w.Experience)),
		Projects:   make([]resume.Project, 0, len(w.Projects)),
	}
	for _, e := range w.Education {
		p.Education = append(p.Education, resume.Education{
			Degree:      strings.TrimSpace(e.Degree),
			Institution: strings.TrimSpace(e.Institution),
			Year:        strings.TrimSpace(string(e.Year)),
		})
	}
	for _, e := range w.Experience {
		p.Experience = append(p.Experience, resume.Experience{
			Title:       strings.TrimSpace(e.Title),
			Company:     strings.TrimSpace(e.Company),
			Duration:    strings.TrimSpace(e.Duration),
			Description: strings.TrimSpace(e.Description),
		})
	}
	for _, pr := range w.Projects {
		p.Projects = append(p.Projects, resume.Project{
			Name:         strings.TrimSpace(pr.Name),
			Description:  strings.TrimSpace(pr.Description),
			Technologies: nonBlank(pr.Technologies),
		})
	}
	return p, nil
}

func nonBlank(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
