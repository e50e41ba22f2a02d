package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTechKeywords_ReturnsCopy(t *testing.T) {
	kw := TechKeywords()
	assert.Len(t, kw, 40)

	kw[0] = "mutated"
	assert.Equal(t, "JavaScript", TechKeywords()[0])
}

func TestExtractKeywords_EmptyDescription(t *testing.T) {
	assert.Empty(t, ExtractKeywords("", NewSkillSet("React")))
	assert.Empty(t, ExtractKeywords("   \n\t", NewSkillSet("React")))
}

func TestExtractKeywords_CapsAtSix(t *testing.T) {
	desc := "We use Python, Django, React, TypeScript, PostgreSQL, Redis, Docker, Kubernetes, AWS and Terraform."

	got := ExtractKeywords(desc, nil)
	assert.Len(t, got, MaxExtractedKeywords)
	// reference-list order, not text order
	assert.Equal(t, SkillSet{"TypeScript", "Python", "React", "Django", "PostgreSQL", "Redis"}, got)
}

func TestExtractKeywords_AddsUserSkillsAfterReferenceKeywords(t *testing.T) {
	desc := "Looking for a Docker expert comfortable with Ansible and observability tooling."

	got := ExtractKeywords(desc, NewSkillSet("ansible", "docker", "Salesforce"))
	assert.Equal(t, SkillSet{"Docker", "ansible"}, got)
}

func TestExtractKeywords_CaseInsensitive(t *testing.T) {
	got := ExtractKeywords("KUBERNETES and graphql", nil)
	assert.Equal(t, SkillSet{"GraphQL", "Kubernetes"}, got)
}

func TestExtractKeywords_NoMatches(t *testing.T) {
	got := ExtractKeywords("Barista wanted for a busy cafe.", NewSkillSet("latte art"))
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
