// Package rediscovery detects rule-based signals that a candidate deserves
// renewed attention beyond their raw match score. Seven independent checks run
// per (candidate, job) pair; each emits at most one signal with a reason, a
// score boost, and signal-specific metadata. Detection is pure and re-runnable:
// it consumes the already-computed overall score as an explicit parameter.
package rediscovery

import (
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hiresight/talentd/internal/types"
)

// DefaultTrendingSkills returns the fixed set of technologies currently
// considered high-demand. In production this list is refreshed periodically
// through configuration.
func DefaultTrendingSkills() []string {
	return []string{
		"generative ai", "llm", "langchain", "rag", "vector databases", "prompt engineering",
		"rust", "go", "kubernetes", "terraform", "dbt", "snowflake",
		"next.js", "svelte", "tailwind", "react server components",
		"mlops", "feature stores", "data mesh", "platform engineering",
		"cybersecurity", "zero trust", "devsecops",
		"web3", "blockchain", "solidity",
	}
}

// Detector runs the seven rediscovery checks against an immutable trending
// skill set and an injectable clock.
type Detector struct {
	trending map[string]bool
	now      func() time.Time
	log      *zap.Logger
}

// Option configures a Detector.
type Option func(*Detector)

// WithTrendingSkills replaces the default trending skill set.
func WithTrendingSkills(skills []string) Option {
	return func(d *Detector) {
		d.trending = make(map[string]bool, len(skills))
		for _, s := range skills {
			if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
				d.trending[s] = true
			}
		}
	}
}

// WithClock replaces the wall clock, for deterministic tests and sweeps.
func WithClock(now func() time.Time) Option {
	return func(d *Detector) { d.now = now }
}

// WithLogger attaches a logger for per-signal debug output.
func WithLogger(log *zap.Logger) Option {
	return func(d *Detector) { d.log = log }
}

// New creates a Detector with the default trending set and wall clock.
func New(opts ...Option) *Detector {
	d := &Detector{
		now: time.Now,
		log: zap.NewNop(),
	}
	WithTrendingSkills(DefaultTrendingSkills())(d)
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect runs all seven checks for one candidate against one job and returns
// the fired signals in check order. overallScore is the candidate's
// already-computed match score for this job; passing it explicitly keeps the
// detector pure and lets a sweep re-run detection with stored scores.
func (d *Detector) Detect(cand *types.CandidateProfile, req *types.RequirementProfile, overallScore float64) []types.RediscoverySignal {
	now := d.now()
	reqSkills := req.SkillSet()
	candSkills := cand.SkillSet()

	checks := []func() *types.RediscoverySignal{
		func() *types.RediscoverySignal { return checkPreviouslyRejected(cand, reqSkills) },
		func() *types.RediscoverySignal { return d.checkSkillsTrending(candSkills, reqSkills) },
		func() *types.RediscoverySignal { return checkNowAvailable(cand, now) },
		func() *types.RediscoverySignal { return checkLongInactiveStrong(cand, overallScore, now) },
		func() *types.RediscoverySignal { return checkNearMiss(cand, reqSkills) },
		func() *types.RediscoverySignal { return d.checkRecentUpskilling(cand, candSkills, reqSkills, now) },
		func() *types.RediscoverySignal { return checkSimilarRoleHistory(cand, req.Title) },
	}

	var signals []types.RediscoverySignal
	for _, check := range checks {
		if signal := check(); signal != nil {
			signals = append(signals, *signal)
			d.log.Debug("rediscovery signal fired",
				zap.String("candidate_id", cand.ID.String()),
				zap.String("signal_type", string(signal.Type)),
				zap.Float64("score_boost", signal.ScoreBoost))
		}
	}
	return signals
}

// sortedIntersection returns the members of a present in b, lowercase-sorted
// so reasons and metadata are deterministic across runs.
func sortedIntersection(a, b map[string]bool) []string {
	var out []string
	for s := range a {
		if b[s] {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

// overlapFraction is |a ∩ b| / |b|, the fraction of b's members found in a.
func overlapFraction(a, b map[string]bool) float64 {
	if len(b) == 0 {
		return 0
	}
	count := 0
	for s := range b {
		if a[s] {
			count++
		}
	}
	return float64(count) / float64(len(b))
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

func capList(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
