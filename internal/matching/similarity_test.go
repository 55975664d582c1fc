package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hiresight/talentd/internal/types"
)

func TestSimilarities_EmptyJobText(t *testing.T) {
	scores := similarities("   ", []string{"python developer", "java engineer"})

	assert.Equal(t, []float64{0, 0}, scores)
}

func TestSimilarities_EmptyPool(t *testing.T) {
	scores := similarities("python developer", nil)

	assert.Empty(t, scores)
}

func TestSimilarities_StopWordsOnlyJobText(t *testing.T) {
	// Every token is filtered, leaving a degenerate job vector; similarity
	// degrades to zero instead of failing.
	scores := similarities("the and for with", []string{"python developer"})

	assert.Equal(t, []float64{0}, scores)
}

func TestSimilarities_RanksCloserTextHigher(t *testing.T) {
	job := "senior python backend engineer building rest apis with postgresql"
	scores := similarities(job, []string{
		"python backend engineer experienced with rest apis and postgresql",
		"graphic designer specializing in branding and illustration",
	})

	assert.Greater(t, scores[0], scores[1])
	assert.Greater(t, scores[0], 50.0)
	assert.GreaterOrEqual(t, scores[1], 0.0)
	for _, s := range scores {
		assert.LessOrEqual(t, s, 100.0)
		assert.Equal(t, round1(s), s, "scores are rounded to one decimal")
	}
}

func TestSimilarities_Deterministic(t *testing.T) {
	job := "golang engineer with kubernetes and terraform experience"
	pool := []string{
		"kubernetes platform engineer, golang and terraform",
		"frontend developer react typescript",
		"golang developer",
	}

	first := similarities(job, pool)
	second := similarities(job, pool)

	assert.Equal(t, first, second)
}

func TestTokenize_PreservesTechSuffixes(t *testing.T) {
	terms := tokenize("Expert in C++, node.js and C# development")

	assert.Contains(t, terms, "c++")
	assert.Contains(t, terms, "node.js")
	assert.NotContains(t, terms, "in") // too short
	assert.NotContains(t, terms, "and")
}

func TestBuildCandidateText_SkipsAbsentFields(t *testing.T) {
	cand := &types.CandidateProfile{
		Name:   "Ada Lovelace",
		Skills: []string{"python", "fastapi"},
	}

	text := buildCandidateText(cand)

	assert.Equal(t, "Ada Lovelace python fastapi", text)
}

func TestBuildCandidateText_AllFields(t *testing.T) {
	cand := &types.CandidateProfile{
		Name:       "Ada Lovelace",
		Skills:     []string{"python"},
		ResumeText: "Ten years of backend work.",
		Industry:   "fintech",
		Notes:      "Strong referral.",
	}

	text := buildCandidateText(cand)

	assert.Equal(t, "Ada Lovelace python Ten years of backend work. fintech Strong referral.", text)
}
