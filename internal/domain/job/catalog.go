package job

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"career-guide/internal/domain/matching"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const searchBaseURL = "https://www.indeed.com/jobs"

// Template is one archetypal posting of the fallback catalog.
type Template struct {
	Title          string   `yaml:"title"`
	Company        string   `yaml:"company"`
	Location       string   `yaml:"location"`
	Compensation   string   `yaml:"compensation"`
	EmploymentType string   `yaml:"employment_type"`
	RequiredSkills []string `yaml:"required_skills"`
	Description    string   `yaml:"description"`
	Posted         string   `yaml:"posted"`
}

var defaultTemplates = []Template{
	{
		Title:          "Frontend Developer",
		Company:        "TechCorp Solutions",
		Location:       "Remote",
		Compensation:   "$85,000 - $110,000",
		EmploymentType: "Full-time",
		RequiredSkills: []string{"React", "TypeScript", "CSS", "JavaScript"},
		Description:    "Build responsive user interfaces with React and TypeScript and work closely with design on a component library.",
		Posted:         "2 days ago",
	},
	{
		Title:          "Backend Engineer",
		Company:        "DataStream Inc",
		Location:       "San Francisco, CA",
		Compensation:   "$120,000 - $150,000",
		EmploymentType: "Full-time",
		RequiredSkills: []string{"Node.js", "PostgreSQL", "REST API", "Docker"},
		Description:    "Design and operate REST services on Node.js backed by PostgreSQL, shipped as Docker containers.",
		Posted:         "1 day ago",
	},
	{
		Title:          "Full Stack Developer",
		Company:        "InnovateLabs",
		Location:       "New York, NY",
		Compensation:   "$100,000 - $130,000",
		EmploymentType: "Full-time",
		RequiredSkills: []string{"React", "Node.js", "MongoDB", "AWS"},
		Description:    "Own features end to end across a React frontend and a Node.js API running on AWS.",
		Posted:         "3 days ago",
	},
	{
		Title:          "Data Scientist",
		Company:        "Insight Analytics",
		Location:       "Boston, MA",
		Compensation:   "$115,000 - $145,000",
		EmploymentType: "Full-time",
		RequiredSkills: []string{"Python", "Machine Learning", "SQL", "TensorFlow"},
		Description:    "Train and evaluate machine learning models in Python and present findings to product teams.",
		Posted:         "5 days ago",
	},
	{
		Title:          "DevOps Engineer",
		Company:        "CloudScale Systems",
		Location:       "Austin, TX",
		Compensation:   "$110,000 - $140,000",
		EmploymentType: "Full-time",
		RequiredSkills: []string{"Kubernetes", "Terraform", "AWS", "CI/CD"},
		Description:    "Run Kubernetes clusters provisioned with Terraform and keep CI/CD pipelines fast and reliable.",
		Posted:         "1 week ago",
	},
	{
		Title:          "Mobile Developer",
		Company:        "AppWorks Studio",
		Location:       "Seattle, WA",
		Compensation:   "$95,000 - $125,000",
		EmploymentType: "Contract",
		RequiredSkills: []string{"Swift", "Kotlin", "React Native", "Firebase"},
		Description:    "Ship native and cross-platform mobile apps for iOS and Android.",
		Posted:         "4 days ago",
	},
	{
		Title:          "UX/UI Designer",
		Company:        "Creative Pixel",
		Location:       "Los Angeles, CA",
		Compensation:   "$80,000 - $105,000",
		EmploymentType: "Part-time",
		RequiredSkills: []string{"Figma", "User Research", "Prototyping", "Design Systems"},
		Description:    "Lead user research and turn insights into Figma prototypes and a shared design system.",
		Posted:         "6 days ago",
	},
	{
		Title:          "Junior Software Engineer",
		Company:        "StartHub",
		Location:       "Chicago, IL",
		Compensation:   "$70,000 - $90,000",
		EmploymentType: "Internship",
		RequiredSkills: []string{"Java", "Git", "SQL", "Problem Solving"},
		Description:    "Join a mentoring-focused team writing Java services and learning production practices.",
		Posted:         "Just posted",
	},
}

var errEmptyCatalog = errors.New("fallback catalog has no templates")

// Catalog produces synthetic postings when live results run short.
type Catalog struct {
	templates []Template
}

func DefaultCatalog() *Catalog {
	return &Catalog{templates: cloneTemplates(defaultTemplates)}
}

// NewCatalog rejects an empty list and templates without title or company.
func NewCatalog(templates []Template) (*Catalog, error) {
	if len(templates) == 0 {
		return nil, errEmptyCatalog
	}
	for i, t := range templates {
		if strings.TrimSpace(t.Title) == "" || strings.TrimSpace(t.Company) == "" {
			return nil, fmt.Errorf("template %d: title and company are required", i)
		}
	}
	return &Catalog{templates: cloneTemplates(templates)}, nil
}

// LoadCatalog reads templates from a YAML file holding a "templates" list.
func LoadCatalog(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc struct {
		Templates []Template `yaml:"templates"`
	}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return NewCatalog(doc.Templates)
}

func (c *Catalog) Size() int {
	if c == nil {
		return 0
	}
	return len(c.templates)
}

func (c *Catalog) Templates() []Template {
	if c == nil {
		return nil
	}
	return cloneTemplates(c.templates)
}

// Generate returns the first n templates in declaration order, each scored
// against user with rnd. Non-blank location and employment type replace the
// template values.
func (c *Catalog) Generate(n int, user matching.SkillSet, location, employmentType string, rnd matching.RandomSource) []Posting {
	if c == nil || n <= 0 {
		return []Posting{}
	}
	if n > len(c.templates) {
		n = len(c.templates)
	}
	location = strings.TrimSpace(location)
	employmentType = strings.TrimSpace(employmentType)

	out := make([]Posting, 0, n)
	for _, t := range c.templates[:n] {
		loc := t.Location
		if location != "" {
			loc = location
		}
		typ := t.EmploymentType
		if employmentType != "" {
			typ = employmentType
		}
		skills := append([]string(nil), t.RequiredSkills...)

		out = append(out, Posting{
			ID:             "fallback-" + uuid.NewString(),
			Title:          t.Title,
			Company:        t.Company,
			Location:       loc,
			Compensation:   t.Compensation,
			EmploymentType: typ,
			RequiredSkills: skills,
			Description:    t.Description,
			Posted:         t.Posted,
			URL:            searchURL(t.Title, loc),
			Source:         SourceFallback,
			MatchScore:     matching.Score(matching.NewSkillSet(skills...), user, rnd),
		})
	}
	return out
}

// Fallback generates from the built-in catalog.
func Fallback(n int, user matching.SkillSet, location, employmentType string, rnd matching.RandomSource) []Posting {
	return DefaultCatalog().Generate(n, user, location, employmentType, rnd)
}

func searchURL(title, location string) string {
	q := url.Values{}
	q.Set("q", title)
	if strings.TrimSpace(location) != "" {
		q.Set("l", location)
	}
	return searchBaseURL + "?" + q.Encode()
}

func cloneTemplates(in []Template) []Template {
	out := make([]Template, len(in))
	for i, t := range in {
		t.RequiredSkills = append([]string(nil), t.RequiredSkills...)
		out[i] = t
	}
	return out
}
