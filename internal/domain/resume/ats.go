package resume

import "strings"

const (
	MinATSScore = 0
	MaxATSScore = 100
)

// Names a resume parser emits when it could not find a real one.
var placeholderNames = []string{"unknown", "unable to extract name"}

type ATSCheck struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
	Passed bool   `json:"passed"`
}

type ATSReport struct {
	Score  int        `json:"score"`
	Checks []ATSCheck `json:"checks"`
}

type atsRule struct {
	name   string
	points int
	ok     func(p Profile) bool
}

var atsRules = []atsRule{
	{name: "name", points: 10, ok: hasRealName},
	{name: "email", points: 10, ok: func(p Profile) bool {
		e := strings.TrimSpace(p.Email)
		return e != "" && strings.Contains(e, "@")
	}},
	{name: "phone", points: 10, ok: func(p Profile) bool { return strings.TrimSpace(p.Phone) != "" }},
	{name: "skills", points: 15, ok: func(p Profile) bool { return len(p.Skills) >= 1 }},
	{name: "skills_breadth", points: 10, ok: func(p Profile) bool { return len(p.Skills) > 5 }},
	{name: "experience", points: 15, ok: func(p Profile) bool { return len(p.Experience) >= 1 }},
	{name: "experience_depth", points: 10, ok: func(p Profile) bool { return len(p.Experience) > 2 }},
	{name: "education", points: 15, ok: func(p Profile) bool { return len(p.Education) >= 1 }},
	{name: "projects", points: 5, ok: func(p Profile) bool { return len(p.Projects) >= 1 }},
}

// ATSScore measures structural completeness of p, not content quality.
func ATSScore(p Profile) int {
	return EvaluateATS(p).Score
}

func EvaluateATS(p Profile) ATSReport {
	report := ATSReport{Checks: make([]ATSCheck, 0, len(atsRules))}
	total := 0
	for _, r := range atsRules {
		passed := r.ok(p)
		if passed {
			total += r.points
		}
		report.Checks = append(report.Checks, ATSCheck{Name: r.name, Points: r.points, Passed: passed})
	}
	report.Score = clampInt(total, MinATSScore, MaxATSScore)
	return report
}

func hasRealName(p Profile) bool {
	n := strings.ToLower(strings.TrimSpace(p.Name))
	if n == "" {
		return false
	}
	for _, ph := range placeholderNames {
		if n == ph {
			return false
		}
	}
	return true
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
