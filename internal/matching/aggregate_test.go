package matching

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/hiresight/talentd/internal/types"
)

func uniformDims(score float64, reason string) dimensionSet {
	r := DimensionResult{Score: score, Reason: reason}
	return dimensionSet{
		skill: r, experience: r, seniority: r, location: r,
		compensation: r, recency: r, domain: r, availability: r,
	}
}

func TestWeights_SumToOne(t *testing.T) {
	total := 0.0
	for _, w := range weightsFor(DefaultTables().Weights) {
		total += w
	}

	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestAggregate_UniformScoresPassThrough(t *testing.T) {
	tables := DefaultTables()
	cand := &types.CandidateProfile{ID: uuid.New()}

	result := tables.aggregate(cand, uniformDims(100, "perfect"))

	assert.Equal(t, 100.0, result.OverallScore)
	assert.Len(t, result.Strengths, 8)
	assert.Empty(t, result.Weaknesses)
}

func TestAggregate_WeightedCombination(t *testing.T) {
	tables := DefaultTables()
	cand := &types.CandidateProfile{ID: uuid.New()}
	dims := uniformDims(50, "middling")
	dims.skill = DimensionResult{Score: 90, Reason: "great skills"}

	// 90*0.30 + 50*0.70 = 62
	result := tables.aggregate(cand, dims)

	assert.InDelta(t, 62.0, result.OverallScore, 0.01)
	assert.Equal(t, 90.0, result.Scores.Skill)
	assert.Equal(t, 50.0, result.Scores.Recency)
}

func TestAggregate_StrengthsAndWeaknesses(t *testing.T) {
	tables := DefaultTables()
	cand := &types.CandidateProfile{ID: uuid.New()}
	dims := uniformDims(55, "fine")
	dims.skill = DimensionResult{Score: 70, Reason: "strong skill alignment"}
	dims.recency = DimensionResult{Score: 39.9, Reason: "long silence"}

	result := tables.aggregate(cand, dims)

	assert.Equal(t, []string{"strong skill alignment"}, result.Strengths)
	assert.Equal(t, []string{"long silence"}, result.Weaknesses)
}

func TestAggregate_GenericReasonFallback(t *testing.T) {
	tables := DefaultTables()
	cand := &types.CandidateProfile{ID: uuid.New()}
	dims := uniformDims(55, "fine")
	dims.skill = DimensionResult{Score: 95}
	dims.location = DimensionResult{Score: 10}

	result := tables.aggregate(cand, dims)

	assert.Equal(t, []string{"Strong skill match"}, result.Strengths)
	assert.Equal(t, []string{"Weak location match"}, result.Weaknesses)
}

func TestAggregate_ExplanationAlwaysHasEightDimensions(t *testing.T) {
	tables := DefaultTables()
	cand := &types.CandidateProfile{ID: uuid.New()}

	result := tables.aggregate(cand, dimensionSet{})

	assert.Len(t, result.Explanation, 8)
	for _, name := range dimensionNames {
		assert.Contains(t, result.Explanation, name)
	}
}

func TestAggregate_SkillDetailCarriesLists(t *testing.T) {
	tables := DefaultTables()
	cand := &types.CandidateProfile{ID: uuid.New()}
	dims := uniformDims(50, "fine")
	dims.skill = DimensionResult{
		Score:        60,
		Reason:       "partial",
		Matching:     []string{"python"},
		Missing:      []string{"kubernetes"},
		Transferable: []string{"docker -> kubernetes"},
	}

	result := tables.aggregate(cand, dims)

	skill := result.Explanation["skill"]
	assert.Equal(t, []string{"python"}, skill.MatchingSkills)
	assert.Equal(t, []string{"kubernetes"}, skill.MissingSkills)
	assert.Equal(t, []string{"docker -> kubernetes"}, skill.Transferable)
}

func TestConfidence_CountsPresentFields(t *testing.T) {
	assert.Equal(t, 0.0, confidence(&types.CandidateProfile{}))

	half := &types.CandidateProfile{
		Skills:          []string{"go"},
		ExperienceYears: 4,
		Seniority:       "mid",
		Location:        "Oslo",
	}
	assert.Equal(t, 50.0, confidence(half))

	full := &types.CandidateProfile{
		Skills:            []string{"go"},
		ExperienceYears:   4,
		Seniority:         "mid",
		Location:          "Oslo",
		SalaryExpectation: 80000,
		CurrentStatus:     "available",
		Industry:          "saas",
		LastInteraction:   daysAgo(10),
	}
	assert.Equal(t, 100.0, confidence(full))
}
