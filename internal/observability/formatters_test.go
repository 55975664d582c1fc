package observability

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/hiresight/talentd/internal/types"
)

func TestPrintRequirement(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRequirement(&types.RequirementProfile{
		Title:           "Senior Backend Engineer",
		Seniority:       "senior",
		Location:        "Berlin",
		MandatorySkills: []string{"python", "fastapi", "postgresql", "redis", "docker", "kafka"},
		OptionalSkills:  []string{"terraform"},
	})
	output := buf.String()

	assert.Contains(t, output, "JOB REQUIREMENT")
	assert.Contains(t, output, "Senior Backend Engineer")
	assert.Contains(t, output, "• python")
	assert.Contains(t, output, "... and 1 more")
	assert.Contains(t, output, "• terraform")
}

func TestPrintRequirement_NilIsSilent(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRequirement(nil)

	assert.Empty(t, buf.String())
}

func TestPrintMatchResults(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	id := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	p.PrintMatchResults([]types.MatchResult{
		{
			CandidateID:  id,
			OverallScore: 87.3,
			Confidence:   75,
			Strengths:    []string{"Excellent skill match: 2/2 mandatory skills"},
			Signals: []types.RediscoverySignal{
				{Type: types.SignalLongInactiveStrongMatch, ScoreBoost: 10},
			},
		},
		{
			CandidateID:  uuid.New(),
			OverallScore: 41.0,
			Confidence:   50,
			Weaknesses:   []string{"Low skill overlap"},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "RANKED MATCHES")
	assert.Contains(t, output, "#1  550e8400")
	assert.Contains(t, output, "Score: 87.3")
	assert.Contains(t, output, "long_inactive_strong_match (+10)")
	assert.Contains(t, output, "- Low skill overlap")
}

func TestPrintMatchResults_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMatchResults(nil)

	assert.Contains(t, buf.String(), "No candidates matched.")
}

func TestPrintExplanation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintExplanation(&types.MatchResult{
		Explanation: map[string]types.DimensionExplanation{
			"skill":      {Score: 82.5, Detail: "Good skill match"},
			"experience": {Score: 100, Detail: "Experience fits the band"},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "DIMENSION BREAKDOWN")
	assert.Contains(t, output, "skill")
	assert.Contains(t, output, "82.5")
	assert.Contains(t, output, "experience")
}
