package job

// SourceFallback labels postings produced from the template catalog.
const SourceFallback = "Job Boards"

// Posting is a job listing in the shape every source is normalised to.
type Posting struct {
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

func (p Posting) IsFallback() bool {
	return p.Source == SourceFallback
}
