package rediscovery

import (
	"fmt"
	"strings"
	"time"

	"github.com/hiresight/talentd/internal/types"
)

// Per-signal score boosts.
const (
	boostPreviouslyRejected  = 5.0
	boostTrendingDirect      = 7.0
	boostTrendingGeneral     = 3.0
	boostNowAvailable        = 8.0
	boostNeverContacted      = 10.0
	boostLongInactive        = 8.0
	boostNearMiss            = 6.0
	boostUpskillingTrending  = 5.0
	boostUpskillingRefreshed = 3.0
	boostSimilarRoleHistory  = 4.0
)

// Thresholds used by the checks.
const (
	rejectedOverlapMin   = 0.5
	nearMissOverlapMin   = 0.4
	strongMatchScoreMin  = 65.0
	inactiveDaysMin      = 180
	availableSilenceDays = 60
	recentUpdateDaysMax  = 90
)

// checkPreviouslyRejected fires when a past submission ended in rejection,
// decline, or withdrawal for a role whose skill snapshot overlaps at least
// half of this requirement's skills: the candidate may be a better fit now.
func checkPreviouslyRejected(cand *types.CandidateProfile, reqSkills map[string]bool) *types.RediscoverySignal {
	for _, sub := range cand.PreviousSubmissions {
		switch strings.ToLower(sub.Outcome) {
		case types.OutcomeRejected, types.OutcomeDeclined, types.OutcomeWithdrawn:
		default:
			continue
		}
		subSkills := skillSet(sub.Skills)
		if len(subSkills) == 0 || len(reqSkills) == 0 {
			continue
		}
		overlap := overlapFraction(subSkills, reqSkills)
		if overlap < rejectedOverlapMin {
			continue
		}
		return &types.RediscoverySignal{
			Type: types.SignalPreviouslyRejectedSimilar,
			Reason: fmt.Sprintf("Previously rejected/declined for a similar role (%s). " +
				"Skills have %d%% overlap with this requirement; worth re-evaluating.",
				sub.JobTitle, int(overlap*100)),
			ScoreBoost: boostPreviouslyRejected,
			Metadata: map[string]any{
				"previous_role": sub.JobTitle,
				"overlap_pct":   roundPct(overlap),
			},
		}
	}
	return nil
}

// checkSkillsTrending fires when the candidate holds trending skills. The
// direct variant requires relevance to this requirement; the general variant
// requires at least two trending skills. At most one variant fires.
func (d *Detector) checkSkillsTrending(candSkills, reqSkills map[string]bool) *types.RediscoverySignal {
	trendingHeld := sortedIntersection(candSkills, d.trending)
	var relevant []string
	for _, s := range trendingHeld {
		if reqSkills[s] {
			relevant = append(relevant, s)
		}
	}

	if len(relevant) > 0 {
		listed := capList(relevant, 5)
		return &types.RediscoverySignal{
			Type: types.SignalSkillsNowTrending,
			Reason: fmt.Sprintf("Candidate has trending skills relevant to this role: %s. " +
				"These skills are in high market demand right now.",
				strings.Join(listed, ", ")),
			ScoreBoost: boostTrendingDirect,
			Metadata:   map[string]any{"trending_skills": listed, "relevance": "direct"},
		}
	}
	if len(trendingHeld) >= 2 {
		listed := capList(trendingHeld, 5)
		return &types.RediscoverySignal{
			Type: types.SignalSkillsNowTrending,
			Reason: fmt.Sprintf("Candidate has trending skills (%s); indicates continuous learning.",
				strings.Join(listed, ", ")),
			ScoreBoost: boostTrendingGeneral,
			Metadata:   map[string]any{"trending_skills": listed, "relevance": "general"},
		}
	}
	return nil
}

// checkNowAvailable fires when a candidate is open and quickly available after
// more than two months of silence: an ideal time to re-engage.
func checkNowAvailable(cand *types.CandidateProfile, now time.Time) *types.RediscoverySignal {
	status := strings.ToLower(cand.CurrentStatus)
	avail := strings.ToLower(cand.Availability)
	if status != types.StatusAvailable && status != types.StatusOpenToOffers {
		return nil
	}
	if avail != "immediate" && avail != "2 weeks" && avail != "2_weeks" {
		return nil
	}
	if cand.LastInteraction == nil {
		return nil
	}
	days := daysBetween(*cand.LastInteraction, now)
	if days <= availableSilenceDays {
		return nil
	}
	return &types.RediscoverySignal{
		Type: types.SignalNowAvailable,
		Reason: "Candidate is now available/open to offers after a period of inactivity. " +
			"Previously may not have been reachable; ideal time to re-engage.",
		ScoreBoost: boostNowAvailable,
		Metadata:   map[string]any{"days_since_last_interaction": days},
	}
}

// checkLongInactiveStrong fires for candidates who score strongly on this
// match yet were never contacted, or not contacted for over six months.
func checkLongInactiveStrong(cand *types.CandidateProfile, overallScore float64, now time.Time) *types.RediscoverySignal {
	if cand.LastInteraction == nil {
		if overallScore < strongMatchScoreMin {
			return nil
		}
		return &types.RediscoverySignal{
			Type: types.SignalLongInactiveStrongMatch,
			Reason: fmt.Sprintf("This candidate has never been contacted but scores %.0f%% for this role. " +
				"A strong hidden talent in your database.", overallScore),
			ScoreBoost: boostNeverContacted,
			Metadata:   map[string]any{"match_score": overallScore, "never_contacted": true},
		}
	}

	days := daysBetween(*cand.LastInteraction, now)
	if days <= inactiveDaysMin || overallScore < strongMatchScoreMin {
		return nil
	}
	return &types.RediscoverySignal{
		Type: types.SignalLongInactiveStrongMatch,
		Reason: fmt.Sprintf("Last contacted %d days ago, but scores %.0f%% for this role. " +
			"This candidate was overlooked; strong rediscovery opportunity.", days, overallScore),
		ScoreBoost: boostLongInactive,
		Metadata:   map[string]any{"days_inactive": days, "match_score": overallScore},
	}
}

// checkNearMiss fires when a past submission progressed partway (shortlisted,
// interviewed, waitlisted, on hold) for a role overlapping at least 40% of
// this requirement's skills.
func checkNearMiss(cand *types.CandidateProfile, reqSkills map[string]bool) *types.RediscoverySignal {
	for _, sub := range cand.PreviousSubmissions {
		switch strings.ToLower(sub.Outcome) {
		case types.OutcomeShortlisted, types.OutcomeInterviewed, types.OutcomeWaitlisted, types.OutcomeOnHold:
		default:
			continue
		}
		subSkills := skillSet(sub.Skills)
		if len(subSkills) == 0 || len(reqSkills) == 0 {
			continue
		}
		overlap := overlapFraction(subSkills, reqSkills)
		if overlap < nearMissOverlapMin {
			continue
		}
		return &types.RediscoverySignal{
			Type: types.SignalNearMiss,
			Reason: fmt.Sprintf("Previously shortlisted/interviewed for '%s' with %d%% skill overlap. " +
				"Was a near-miss; may be the right fit now.", sub.JobTitle, int(overlap*100)),
			ScoreBoost: boostNearMiss,
			Metadata: map[string]any{
				"previous_role":    sub.JobTitle,
				"previous_outcome": sub.Outcome,
			},
		}
	}
	return nil
}

// checkRecentUpskilling fires when the profile was refreshed within the last
// 90 days and either picked up trending skills relevant here, or carries at
// least three requirement-matching skills.
func (d *Detector) checkRecentUpskilling(cand *types.CandidateProfile, candSkills, reqSkills map[string]bool, now time.Time) *types.RediscoverySignal {
	if cand.UpdatedAt.IsZero() {
		return nil
	}
	days := daysBetween(cand.UpdatedAt, now)
	if days > recentUpdateDaysMax {
		return nil
	}

	matching := sortedIntersection(candSkills, reqSkills)
	var newTrending []string
	for _, s := range matching {
		if d.trending[s] {
			newTrending = append(newTrending, s)
		}
	}

	if len(newTrending) > 0 {
		return &types.RediscoverySignal{
			Type: types.SignalRecentUpskilling,
			Reason: fmt.Sprintf("Profile recently updated (%d days ago) with trending skills: %s. " +
				"Indicates active professional growth.",
				days, strings.Join(capList(newTrending, 3), ", ")),
			ScoreBoost: boostUpskillingTrending,
			Metadata:   map[string]any{"days_since_update": days, "new_skills": newTrending},
		}
	}
	if len(matching) >= 3 {
		return &types.RediscoverySignal{
			Type: types.SignalRecentUpskilling,
			Reason: fmt.Sprintf("Profile updated %d days ago. Currently has %d matching skills; " +
				"recently refreshed candidate data.", days, len(matching)),
			ScoreBoost: boostUpskillingRefreshed,
			Metadata:   map[string]any{"days_since_update": days},
		}
	}
	return nil
}

// checkSimilarRoleHistory fires when at least two prior submissions share a
// title word with this job, showing consistent interest in this kind of role.
func checkSimilarRoleHistory(cand *types.CandidateProfile, jobTitle string) *types.RediscoverySignal {
	if len(cand.PreviousSubmissions) < 2 {
		return nil
	}
	titleWords := wordSet(jobTitle)
	if len(titleWords) == 0 {
		return nil
	}

	var similarRoles []string
	for _, sub := range cand.PreviousSubmissions {
		for word := range wordSet(sub.JobTitle) {
			if titleWords[word] {
				similarRoles = append(similarRoles, sub.JobTitle)
				break
			}
		}
	}
	if len(similarRoles) < 2 {
		return nil
	}
	return &types.RediscoverySignal{
		Type: types.SignalSimilarRoleHistory,
		Reason: fmt.Sprintf("Has been submitted to %d similar roles: %s. " +
			"Demonstrates consistent interest in this type of position.",
			len(similarRoles), strings.Join(capList(similarRoles, 3), ", ")),
		ScoreBoost: boostSimilarRoleHistory,
		Metadata: map[string]any{
			"similar_count": len(similarRoles),
			"similar_roles": capList(similarRoles, 5),
		},
	}
}

func skillSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			set[s] = true
		}
	}
	return set
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(s)) {
		set[w] = true
	}
	return set
}

func roundPct(fraction float64) float64 {
	return float64(int(fraction*1000+0.5)) / 10
}
