package matching

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/hiresight/talentd/internal/types"
)

// DimensionResult is the outcome of one dimension scorer: a 0-100 score, a
// human-readable reason tied to the score band, and (for skills) the matched,
// missing, and transferable skill lists.
type DimensionResult struct {
	Score        float64
	Reason       string
	Matching     []string
	Missing      []string
	Transferable []string
}

// scoreSkills blends mandatory-skill coverage with text similarity and an
// optional-skill bonus. With no skill requirements at all, the similarity
// score stands alone.
func (t Tables) scoreSkills(req *types.RequirementProfile, candSkills map[string]bool, similarity float64) DimensionResult {
	mandatory := lowerSet(req.MandatorySkills)
	optional := lowerSet(req.OptionalSkills)

	if len(mandatory) == 0 && len(optional) == 0 {
		return DimensionResult{
			Score:  similarity,
			Reason: "No specific skills required; scored by semantic similarity.",
		}
	}

	var matchedMandatory, matchedOptional, missing []string
	for skill := range mandatory {
		if candSkills[skill] {
			matchedMandatory = append(matchedMandatory, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	for skill := range optional {
		if candSkills[skill] {
			matchedOptional = append(matchedOptional, skill)
		}
	}
	sort.Strings(matchedMandatory)
	sort.Strings(matchedOptional)
	sort.Strings(missing)

	coverage := 50.0
	if len(mandatory) > 0 {
		coverage = float64(len(matchedMandatory)) / float64(len(mandatory)) * 100
	}
	optionalBonus := math.Min(float64(len(matchedOptional)*5), 10)

	score := math.Min(100, round1(coverage*0.6+similarity*0.3+optionalBonus*0.1))

	matching := append(append([]string{}, matchedMandatory...), matchedOptional...)
	sort.Strings(matching)

	var reason string
	switch {
	case score >= 70:
		reason = fmt.Sprintf("Strong skill alignment: %d/%d required skills matched.",
			len(matchedMandatory), len(mandatory))
	case score >= 40:
		reason = fmt.Sprintf("Partial match: %d/%d required skills. Missing: %s.",
			len(matchedMandatory), len(mandatory), strings.Join(firstN(missing, 3), ", "))
	default:
		reason = fmt.Sprintf("Low skill overlap: only %d/%d required skills found.",
			len(matchedMandatory), len(mandatory))
	}

	return DimensionResult{
		Score:        score,
		Reason:       reason,
		Matching:     matching,
		Missing:      missing,
		Transferable: t.transferableSkills(missing, candSkills),
	}
}

// transferableSkills finds candidate skills adjacent to missing requirements
// via the skill-relation table, rendered as "<have> -> <missing>" (5 max).
func (t Tables) transferableSkills(missing []string, candSkills map[string]bool) []string {
	var transferable []string
	for _, skill := range missing {
		for _, related := range t.SkillRelations[skill] {
			if candSkills[related] {
				transferable = append(transferable, related+" -> "+skill)
			}
		}
	}
	return firstN(transferable, 5)
}

// scoreExperience scores 100 inside the required band and decays with a
// Gaussian on the distance to the nearer bound outside it.
func scoreExperience(band *types.ExperienceRange, years float64) DimensionResult {
	minYears, maxYears := 0.0, 20.0
	if band != nil {
		minYears, maxYears = band.Min, band.Max
	}

	if years >= minYears && years <= maxYears {
		return DimensionResult{
			Score: 100,
			Reason: fmt.Sprintf("Experience (%g yrs) is within the required range (%g-%g yrs).",
				years, minYears, maxYears),
		}
	}

	distance := math.Min(math.Abs(years-minYears), math.Abs(years-maxYears))
	spread := math.Max((maxYears-minYears)/2, 1)
	score := round1(100 * math.Exp(-(distance*distance)/(2*spread*spread)))

	reason := fmt.Sprintf("Under-experienced (%g yrs vs %g-%g required).", years, minYears, maxYears)
	if years > maxYears {
		reason = fmt.Sprintf("Over-experienced (%g yrs vs %g-%g required), but may bring seniority.",
			years, minYears, maxYears)
	}
	return DimensionResult{Score: score, Reason: reason}
}

// scoreSeniority compares ordinal positions on the seniority ladder. Unknown
// candidate data gets a neutral 50 rather than a penalty; an unrecognized
// requirement level defaults to mid.
func (t Tables) scoreSeniority(required, candidate string) DimensionResult {
	candidate = strings.ToLower(strings.TrimSpace(candidate))
	if candidate == "" {
		return DimensionResult{Score: 50, Reason: "Candidate seniority not specified."}
	}
	candIdx := t.seniorityIndex(candidate)
	if candIdx < 0 {
		return DimensionResult{Score: 50, Reason: fmt.Sprintf("Candidate seniority (%s) not recognized.", candidate)}
	}

	required = strings.ToLower(strings.TrimSpace(required))
	reqIdx := t.seniorityIndex(required)
	if reqIdx < 0 {
		reqIdx = t.seniorityIndex(types.SeniorityMid)
	}

	diff := candIdx - reqIdx
	if diff < 0 {
		diff = -diff
	}
	switch diff {
	case 0:
		return DimensionResult{Score: 100, Reason: fmt.Sprintf("Exact seniority match (%s).", candidate)}
	case 1:
		return DimensionResult{Score: 75, Reason: fmt.Sprintf("Adjacent seniority (%s vs required %s).", candidate, required)}
	default:
		return DimensionResult{
			Score:  math.Max(0, float64(100-diff*25)),
			Reason: fmt.Sprintf("Seniority gap: candidate is %s, role requires %s.", candidate, required),
		}
	}
}

func (t Tables) seniorityIndex(level string) int {
	for i, l := range t.SeniorityLadder {
		if l == level {
			return i
		}
	}
	return -1
}

// scoreLocation handles remote, hybrid, substring, and missing-data cases.
func scoreLocation(required, candidate string, openToRemote bool) DimensionResult {
	if required == "" {
		return DimensionResult{Score: 80, Reason: "No location requirement specified."}
	}
	if candidate == "" {
		return DimensionResult{Score: 50, Reason: "Candidate location not specified."}
	}

	reqLower := strings.ToLower(required)
	candLower := strings.ToLower(candidate)

	switch {
	case reqLower == "remote" || openToRemote:
		return DimensionResult{Score: 100, Reason: "Remote-compatible position/candidate."}
	case strings.Contains(reqLower, candLower) || strings.Contains(candLower, reqLower):
		return DimensionResult{Score: 100, Reason: fmt.Sprintf("Location match: %s.", candidate)}
	case strings.Contains(reqLower, "hybrid"):
		return DimensionResult{Score: 60, Reason: fmt.Sprintf("Hybrid role; candidate is in %s.", candidate)}
	default:
		return DimensionResult{
			Score:  30,
			Reason: fmt.Sprintf("Location mismatch: role in %s, candidate in %s.", required, candidate),
		}
	}
}

// scoreCompensation compares the candidate's expectation against the salary
// band. An expectation over budget decays linearly with the overshoot
// percentage; missing data on either side is neutral.
func scoreCompensation(band *types.SalaryBand, expectation float64) DimensionResult {
	if band == nil || expectation <= 0 {
		return DimensionResult{Score: 60, Reason: "Salary information incomplete for comparison."}
	}

	budgetMax := band.Max
	if budgetMax <= 0 {
		budgetMax = math.Inf(1)
	}

	switch {
	case expectation >= band.Min && expectation <= budgetMax:
		return DimensionResult{
			Score:  100,
			Reason: fmt.Sprintf("Salary expectation (%g) within budget (%s).", expectation, formatBand(band.Min, budgetMax)),
		}
	case expectation < band.Min:
		return DimensionResult{
			Score:  85,
			Reason: fmt.Sprintf("Under budget: candidate expects %g (budget %s).", expectation, formatBand(band.Min, budgetMax)),
		}
	default:
		overPct := 50.0
		if budgetMax > 0 && !math.IsInf(budgetMax, 1) {
			overPct = (expectation - budgetMax) / budgetMax * 100
		}
		return DimensionResult{
			Score:  round1(math.Max(0, 80-overPct)),
			Reason: fmt.Sprintf("Over budget: expects %g (max %g).", expectation, budgetMax),
		}
	}
}

func formatBand(minBudget, maxBudget float64) string {
	if math.IsInf(maxBudget, 1) {
		return fmt.Sprintf("%g and up", minBudget)
	}
	return fmt.Sprintf("%g-%g", minBudget, maxBudget)
}

// scoreRecency decays with time since the last interaction. Beyond a year it
// stays at a flat 20 so that long-dormant strong candidates are surfaced by
// the rediscovery layer instead.
func scoreRecency(lastInteraction *time.Time, now time.Time) DimensionResult {
	if lastInteraction == nil {
		return DimensionResult{Score: 40, Reason: "No previous interaction on record."}
	}

	days := int(now.Sub(*lastInteraction).Hours() / 24)
	switch {
	case days <= 30:
		return DimensionResult{Score: 100, Reason: fmt.Sprintf("Recently engaged (%d days ago).", days)}
	case days <= 90:
		return DimensionResult{
			Score:  round1(90 - float64(days-30)*0.5),
			Reason: fmt.Sprintf("Engaged %d days ago.", days),
		}
	case days <= 365:
		return DimensionResult{
			Score:  round1(math.Max(30, 60-float64(days-90)*0.1)),
			Reason: fmt.Sprintf("Last contacted %d days ago; may need re-engagement.", days),
		}
	default:
		return DimensionResult{
			Score:  20,
			Reason: fmt.Sprintf("Last interaction over %d year(s) ago; rediscovery opportunity.", days/365),
		}
	}
}

// scoreDomain starts from a neutral baseline and adds credit for industry
// alignment and domain-relevant skills.
func (t Tables) scoreDomain(domain, reqIndustry, candIndustry string, candSkills map[string]bool) DimensionResult {
	score := 50.0
	var reasons []string

	if reqIndustry != "" && candIndustry != "" {
		reqLower := strings.ToLower(reqIndustry)
		candLower := strings.ToLower(candIndustry)
		if reqLower == candLower {
			score += 40
			reasons = append(reasons, fmt.Sprintf("Industry match: %s", candIndustry))
		} else if t.industriesRelated(reqLower, candLower) {
			score += 20
			reasons = append(reasons, fmt.Sprintf("Related industry: %s vs %s", candIndustry, reqIndustry))
		}
	}

	if domain != "" {
		overlap := 0
		for _, skill := range t.DomainSkills[strings.ToLower(domain)] {
			if candSkills[skill] {
				overlap++
			}
		}
		if overlap > 0 {
			score += math.Min(float64(overlap*5), 20)
			reasons = append(reasons, fmt.Sprintf("Has %d domain-relevant skills for %s", overlap, domain))
		}
	}

	reason := "Limited domain/industry data for comparison."
	if len(reasons) > 0 {
		reason = strings.Join(reasons, "; ")
	}
	return DimensionResult{Score: math.Min(100, score), Reason: reason}
}

// scoreAvailability maps status and notice-period buckets to fixed scores.
func scoreAvailability(status, availability string) DimensionResult {
	status = strings.ToLower(strings.TrimSpace(status))
	avail := strings.ToLower(strings.TrimSpace(availability))

	switch {
	case status == types.StatusAvailable || status == types.StatusOpenToOffers || avail == "immediate":
		return DimensionResult{Score: 100, Reason: "Candidate is immediately available."}
	case avail == "2 weeks" || avail == "2_weeks" || avail == "two weeks":
		return DimensionResult{Score: 90, Reason: "Available within 2 weeks notice."}
	case avail == "1 month" || avail == "30 days" || avail == "1_month":
		return DimensionResult{Score: 75, Reason: "Available within 1 month notice period."}
	case status == types.StatusEmployed:
		return DimensionResult{Score: 50, Reason: "Currently employed; availability uncertain."}
	case status == types.StatusUnavailable:
		return DimensionResult{Score: 10, Reason: "Candidate marked as unavailable."}
	default:
		if availability == "" {
			availability = "not specified"
		}
		return DimensionResult{Score: 60, Reason: fmt.Sprintf("Availability: %s.", availability)}
	}
}

// lowerSet lowercases, trims, and deduplicates a skill list.
func lowerSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			set[s] = true
		}
	}
	return set
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
