package types

import "github.com/google/uuid"

// SignalType identifies one of the seven fixed rediscovery signal kinds.
type SignalType string

// The seven rediscovery signal kinds.
const (
	SignalPreviouslyRejectedSimilar SignalType = "previously_rejected_similar"
	SignalSkillsNowTrending         SignalType = "skills_now_trending"
	SignalNowAvailable              SignalType = "now_available"
	SignalLongInactiveStrongMatch   SignalType = "long_inactive_strong_match"
	SignalNearMiss                  SignalType = "near_miss"
	SignalRecentUpskilling          SignalType = "recent_upskilling"
	SignalSimilarRoleHistory        SignalType = "similar_role_history"
)

// RediscoverySignal is a rule-derived reason a candidate deserves renewed
// attention, attached to a specific (candidate, job) match.
type RediscoverySignal struct {
	Type       SignalType     `json:"signal_type"`
	Reason     string         `json:"reason"`
	ScoreBoost float64        `json:"score_boost"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// DimensionScores holds the eight independent 0-100 sub-scores.
type DimensionScores struct {
	Skill        float64 `json:"skill"`
	Experience   float64 `json:"experience"`
	Seniority    float64 `json:"seniority"`
	Location     float64 `json:"location"`
	Compensation float64 `json:"compensation"`
	Recency      float64 `json:"recency"`
	Domain       float64 `json:"domain"`
	Availability float64 `json:"availability"`
}

// DimensionExplanation is the per-dimension entry in a match explanation.
// The skill dimension additionally carries matched/missing/transferable lists.
type DimensionExplanation struct {
	Score          float64  `json:"score"`
	Detail         string   `json:"detail"`
	MatchingSkills []string `json:"matching_skills,omitempty"`
	MissingSkills  []string `json:"missing_skills,omitempty"`
	Transferable   []string `json:"transferable,omitempty"`
}

// MatchResult is the outcome of scoring one candidate against one job. The
// overall score includes any rediscovery boosts and is clamped to [0,100];
// the explanation map always contains all eight dimensions.
type MatchResult struct {
	CandidateID  uuid.UUID                       `json:"candidate_id"`
	OverallScore float64                         `json:"overall_score"`
	Confidence   float64                         `json:"confidence"`
	Scores       DimensionScores                 `json:"scores"`
	Strengths    []string                        `json:"strengths"`
	Weaknesses   []string                        `json:"weaknesses"`
	Explanation  map[string]DimensionExplanation `json:"explanation"`
	Signals      []RediscoverySignal             `json:"signals,omitempty"`
}
