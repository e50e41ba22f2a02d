package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestMatchCommand(t *testing.T) {
	out, err := run(t, "", "match", "--seed", "3", "-r", "React,Docker", "-s", "react")
	require.NoError(t, err)

	var res struct {
		MatchScore int      `json:"match_score"`
		BaseScore  int      `json:"base_score"`
		Missing    []string `json:"missing"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 50, res.BaseScore)
	assert.Equal(t, []string{"Docker"}, res.Missing)
	assert.GreaterOrEqual(t, res.MatchScore, 40)
	assert.LessOrEqual(t, res.MatchScore, 60)

	again, err := run(t, "", "match", "--seed", "3", "-r", "React,Docker", "-s", "react")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestKeywordsCommand(t *testing.T) {
	out, err := run(t, "", "keywords", "-d", "Kubernetes and Terraform on AWS")
	require.NoError(t, err)

	var res struct {
		Keywords []string `json:"keywords"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, []string{"AWS", "Kubernetes", "Terraform"}, res.Keywords)

	_, err = run(t, "", "keywords")
	assert.Error(t, err)
}

func TestKeywordsCommand_Stdin(t *testing.T) {
	out, err := run(t, "Strong Python and Django skills", "keywords", "--in", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "Python")
	assert.Contains(t, out, "Django")
}

func TestFallbackCommand(t *testing.T) {
	out, err := run(t, "", "fallback", "-n", "2", "-l", "Remote", "-s", "React")
	require.NoError(t, err)

	var postings []struct {
		Title    string `json:"title"`
		Location string `json:"location"`
		Source   string `json:"source"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &postings))
	require.Len(t, postings, 2)
	assert.Equal(t, "Frontend Developer", postings[0].Title)
	assert.Equal(t, "Remote", postings[1].Location)
	assert.Equal(t, "Job Boards", postings[0].Source)

	_, err = run(t, "", "fallback", "-n", "-1")
	assert.Error(t, err)
}

func TestFallbackCommand_CustomCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	yaml := "templates:\n  - title: Data Engineer\n    company: Acme\n    required_skills: [Python, SQL]\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	out, err := run(t, "", "fallback", "--catalog", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Data Engineer")
	assert.NotContains(t, out, "Frontend Developer")
}

func TestATSCommand(t *testing.T) {
	payload := "```json\n{\"name\":\"Grace Hopper\",\"email\":\"grace@navy.mil\",\"phone\":\"1\",\"skills\":[\"COBOL\"],\"education\":[{\"degree\":\"PhD\"}]}\n```"
	out, err := run(t, payload, "ats")
	require.NoError(t, err)

	var res struct {
		ATSScore int `json:"ats_score"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 60, res.ATSScore)

	_, err = run(t, `{"skills": 3}`, "ats")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "payload rejected")
}

func TestGapsCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.json")
	body := `{"skillGaps":[{"skill":"Docker","currentLevel":50,"requiredLevel":80},{"skill":"Go","currentLevel":0,"requiredLevel":90}]}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	out, err := run(t, "", "gaps", "-i", path)
	require.NoError(t, err)

	var res struct {
		Gaps []struct {
			Skill    string `json:"skill"`
			Priority string `json:"priority"`
		} `json:"gaps"`
		Summary map[string]int `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Gaps, 2)
	assert.Equal(t, "Go", res.Gaps[0].Skill)
	assert.Equal(t, "high", res.Gaps[0].Priority)
	assert.Equal(t, "medium", res.Gaps[1].Priority)
	assert.Equal(t, 1, res.Summary["medium"])
}

func TestGapsCommand_MissingFile(t *testing.T) {
	_, err := run(t, "", "gaps", "-i", filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}
