package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeProfile() Profile {
	return Profile{
		Name:   "Jane Doe",
		Email:  "jane@x.com",
		Phone:  "555-1234",
		Skills: []string{"Go", "SQL", "Docker", "AWS", "React", "Linux"},
		Experience: []Experience{
			{Title: "Engineer", Company: "A"},
			{Title: "Engineer", Company: "B"},
			{Title: "Intern", Company: "C"},
		},
		Education: []Education{{Degree: "BSc", Institution: "State", Year: "2019"}},
	}
}

func TestATSScore_ReferenceProfile(t *testing.T) {
	assert.Equal(t, 95, ATSScore(completeProfile()))
}

func TestATSScore_AllFieldsIsHundred(t *testing.T) {
	p := completeProfile()
	p.Projects = []Project{{Name: "cli", Technologies: []string{"Go"}}}
	assert.Equal(t, 100, ATSScore(p))
}

func TestATSScore_EmptyProfileIsZero(t *testing.T) {
	assert.Equal(t, 0, ATSScore(Profile{}))
}

func TestATSScore_FieldConditions(t *testing.T) {
	cases := []struct {
		name string
		p    Profile
		want int
	}{
		{name: "placeholder name", p: Profile{Name: "Unknown"}, want: 0},
		{name: "placeholder name any case", p: Profile{Name: "  unable to extract NAME "}, want: 0},
		{name: "real name", p: Profile{Name: "Ana"}, want: 10},
		{name: "email without at", p: Profile{Email: "jane.x.com"}, want: 0},
		{name: "email", p: Profile{Email: "a@b"}, want: 10},
		{name: "blank phone", p: Profile{Phone: "   "}, want: 0},
		{name: "one skill", p: Profile{Skills: []string{"Go"}}, want: 15},
		{name: "five skills", p: Profile{Skills: make([]string, 5)}, want: 15},
		{name: "six skills", p: Profile{Skills: make([]string, 6)}, want: 25},
		{name: "two experience", p: Profile{Experience: make([]Experience, 2)}, want: 15},
		{name: "three experience", p: Profile{Experience: make([]Experience, 3)}, want: 25},
		{name: "education", p: Profile{Education: make([]Education, 4)}, want: 15},
		{name: "projects", p: Profile{Projects: make([]Project, 1)}, want: 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ATSScore(tc.p))
		})
	}
}

func TestEvaluateATS_ReportsEveryCheck(t *testing.T) {
	r := EvaluateATS(completeProfile())

	require.Len(t, r.Checks, 9)
	total := 0
	for _, c := range r.Checks {
		total += c.Points
		if c.Name == "projects" {
			assert.False(t, c.Passed)
			continue
		}
		assert.True(t, c.Passed, c.Name)
	}
	assert.Equal(t, 100, total)
	assert.Equal(t, 95, r.Score)
}
