package matching

import "strings"

// MaxExtractedKeywords caps ExtractKeywords for display.
const MaxExtractedKeywords = 6

// Labels are picked to keep plain substring search from firing on common
// English words ("Golang" rather than "Go", "Express.js" rather than "Express").
var techKeywords = [...]string{
	"JavaScript", "TypeScript", "Python", "Java", "Golang",
	"Scala", "C++", "C#", "Ruby", "PHP",
	"Swift", "Kotlin", "React", "Angular", "Vue",
	"Next.js", "Node.js", "Express.js", "Django", "Flask",
	"Spring Boot", "GraphQL", "REST API", "PostgreSQL", "MySQL",
	"MongoDB", "Redis", "SQL", "AWS", "Azure",
	"GCP", "Docker", "Kubernetes", "Terraform", "Jenkins",
	"CI/CD", "Linux", "Machine Learning", "TensorFlow", "Figma",
}

var foldedTechKeywords = func() []string {
	out := make([]string, len(techKeywords))
	for i, k := range techKeywords {
		out[i] = fold(k)
	}
	return out
}()

// TechKeywords returns a copy of the reference keyword list.
func TechKeywords() []string {
	out := make([]string, len(techKeywords))
	copy(out, techKeywords[:])
	return out
}

// ExtractKeywords returns the reference keywords mentioned in description,
// then the user's skills mentioned in it, de-duplicated and capped at
// MaxExtractedKeywords.
func ExtractKeywords(description string, user SkillSet) SkillSet {
	text := fold(description)
	if text == "" {
		return SkillSet{}
	}

	out := make(SkillSet, 0, MaxExtractedKeywords)
	seen := make(map[string]struct{}, MaxExtractedKeywords)
	add := func(label, key string) bool {
		if _, ok := seen[key]; ok {
			return false
		}
		seen[key] = struct{}{}
		out = append(out, label)
		return len(out) >= MaxExtractedKeywords
	}

	for i, key := range foldedTechKeywords {
		if !strings.Contains(text, key) {
			continue
		}
		if add(techKeywords[i], key) {
			return out
		}
	}

	labels, keys := user.folded()
	for i, key := range keys {
		if !strings.Contains(text, key) {
			continue
		}
		if add(labels[i], key) {
			return out
		}
	}
	return out
}
