package matching

import (
	"fmt"
	"strings"

	"github.com/hiresight/talentd/internal/types"
)

// strengthThreshold and weaknessThreshold classify dimensions in the
// explanation: at or above the first a dimension is a strength, below the
// second a weakness.
const (
	strengthThreshold = 70.0
	weaknessThreshold = 40.0
)

// dimensionNames in their canonical order; also the explanation map keys.
var dimensionNames = []string{
	"skill", "experience", "seniority", "location",
	"compensation", "recency", "domain", "availability",
}

// dimensionSet holds the eight scorer results for one candidate, in canonical
// order.
type dimensionSet struct {
	skill        DimensionResult
	experience   DimensionResult
	seniority    DimensionResult
	location     DimensionResult
	compensation DimensionResult
	recency      DimensionResult
	domain       DimensionResult
	availability DimensionResult
}

func (d *dimensionSet) ordered() []DimensionResult {
	return []DimensionResult{
		d.skill, d.experience, d.seniority, d.location,
		d.compensation, d.recency, d.domain, d.availability,
	}
}

// weightsFor returns the per-dimension weights in canonical order.
func weightsFor(w Weights) []float64 {
	return []float64{
		w.Skill, w.Experience, w.Seniority, w.Location,
		w.Compensation, w.Recency, w.Domain, w.Availability,
	}
}

// aggregate combines the eight dimension results into a MatchResult: the
// weighted overall score, a confidence value from profile completeness,
// strength/weakness classification, and the full explanation map. Signals are
// attached later by the orchestrator.
func (t Tables) aggregate(cand *types.CandidateProfile, dims dimensionSet) types.MatchResult {
	ordered := dims.ordered()
	weights := weightsFor(t.Weights)

	overall := 0.0
	for i, dim := range ordered {
		overall += dim.Score * weights[i]
	}
	overall = round1(overall)

	var strengths, weaknesses []string
	explanation := make(map[string]types.DimensionExplanation, len(ordered))
	for i, dim := range ordered {
		name := dimensionNames[i]
		switch {
		case dim.Score >= strengthThreshold:
			strengths = append(strengths, reasonOrDefault(dim.Reason, "Strong", name))
		case dim.Score < weaknessThreshold:
			weaknesses = append(weaknesses, reasonOrDefault(dim.Reason, "Weak", name))
		}
		explanation[name] = types.DimensionExplanation{
			Score:          dim.Score,
			Detail:         dim.Reason,
			MatchingSkills: dim.Matching,
			MissingSkills:  dim.Missing,
			Transferable:   dim.Transferable,
		}
	}

	return types.MatchResult{
		CandidateID:  cand.ID,
		OverallScore: overall,
		Confidence:   confidence(cand),
		Scores: types.DimensionScores{
			Skill:        dims.skill.Score,
			Experience:   dims.experience.Score,
			Seniority:    dims.seniority.Score,
			Location:     dims.location.Score,
			Compensation: dims.compensation.Score,
			Recency:      dims.recency.Score,
			Domain:       dims.domain.Score,
			Availability: dims.availability.Score,
		},
		Strengths:   strengths,
		Weaknesses:  weaknesses,
		Explanation: explanation,
	}
}

func reasonOrDefault(reason, quality, dimension string) string {
	if reason != "" {
		return reason
	}
	return fmt.Sprintf("%s %s match", quality, strings.ToLower(dimension))
}

// confidence measures how much real candidate data backed the score: the
// fraction of the eight profile fields that are present and non-default,
// scaled to [0,100]. It says nothing about score quality.
func confidence(c *types.CandidateProfile) float64 {
	present := 0
	if len(c.Skills) > 0 {
		present++
	}
	if c.ExperienceYears > 0 {
		present++
	}
	if c.Seniority != "" {
		present++
	}
	if c.Location != "" {
		present++
	}
	if c.SalaryExpectation > 0 {
		present++
	}
	if c.CurrentStatus != "" {
		present++
	}
	if c.Industry != "" {
		present++
	}
	if c.LastInteraction != nil {
		present++
	}
	return round1(float64(present) / 8 * 100)
}
