package matching

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hiresight/talentd/internal/rediscovery"
	"github.com/hiresight/talentd/internal/types"
)

// ErrNoCandidates is returned when a matching run is requested with an empty
// candidate pool. An explicitly failed precondition keeps "nothing to match"
// distinguishable from a legitimately empty result set.
var ErrNoCandidates = errors.New("candidate pool is empty")

// Engine drives a full matching run: pool-wide similarity, per-candidate
// dimension scoring and aggregation, rediscovery signal detection with
// additive boosts, and the final ranking. It is stateless per invocation and
// safe for concurrent use.
type Engine struct {
	tables   Tables
	detector *rediscovery.Detector
	log      *zap.Logger
	workers  int
	now      func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithTables replaces the default rule tables.
func WithTables(t Tables) Option {
	return func(e *Engine) { e.tables = t }
}

// WithDetector replaces the default rediscovery detector.
func WithDetector(d *rediscovery.Detector) Option {
	return func(e *Engine) { e.detector = d }
}

// WithLogger attaches a logger. The default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithWorkers bounds the per-candidate scoring fan-out.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithClock replaces the wall clock, read once per run so every candidate in a
// batch is scored against the same instant.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New creates an Engine with default tables, detector, and concurrency.
func New(opts ...Option) *Engine {
	e := &Engine{
		tables:  DefaultTables(),
		log:     zap.NewNop(),
		workers: runtime.GOMAXPROCS(0),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.detector == nil {
		e.detector = rediscovery.New(
			rediscovery.WithClock(e.now),
			rediscovery.WithLogger(e.log),
		)
	}
	return e
}

// ComputeMatches scores every candidate in the pool against the requirement
// and returns the complete result set ranked by boosted overall score,
// descending, with input order preserved on ties. The returned slice is a full
// replacement for any previously stored results for this job; persistence is
// the caller's concern.
func (e *Engine) ComputeMatches(ctx context.Context, req *types.RequirementProfile, candidates []types.CandidateProfile) ([]types.MatchResult, error) {
	if req == nil {
		return nil, fmt.Errorf("requirement profile is nil")
	}
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	start := time.Now()
	now := e.now()

	// The similarity step is batch-coupled: one vector space for the whole
	// pool, built before any per-candidate scoring.
	texts := make([]string, len(candidates))
	for i := range candidates {
		texts[i] = buildCandidateText(&candidates[i])
	}
	sims := similarities(req.RawText, texts)

	results := make([]types.MatchResult, len(candidates))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i := range candidates {
		g.Go(func() error {
			results[i] = e.scoreCandidate(req, &candidates[i], sims[i], now)
			return nil
		})
	}
	// Workers only write their own slot and never return an error; Wait is
	// for completion, not failure.
	_ = g.Wait()

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].OverallScore > results[j].OverallScore
	})

	e.log.Debug("matching run complete",
		zap.String("job_title", req.Title),
		zap.Int("pool_size", len(candidates)),
		zap.Duration("elapsed", time.Since(start)))
	return results, nil
}

// DetectSignals re-runs rediscovery signal detection for one candidate against
// one requirement and an already-computed overall score, without recomputing
// the match. Used by the nightly rediscovery sweep.
func (e *Engine) DetectSignals(cand *types.CandidateProfile, req *types.RequirementProfile, overallScore float64) []types.RediscoverySignal {
	return e.detector.Detect(cand, req, overallScore)
}

// scoreCandidate runs the eight dimension scorers, aggregates, detects
// rediscovery signals against the aggregated score, and applies their boosts.
// A malformed candidate must not abort the batch, so any panic degrades to a
// neutral fallback result.
func (e *Engine) scoreCandidate(req *types.RequirementProfile, cand *types.CandidateProfile, similarity float64, now time.Time) (result types.MatchResult) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Warn("candidate scoring failed, using neutral fallback",
				zap.String("candidate_id", cand.ID.String()),
				zap.Any("panic", r))
			result = fallbackResult(cand)
		}
	}()

	candSkills := cand.SkillSet()
	dims := dimensionSet{
		skill:        e.tables.scoreSkills(req, candSkills, similarity),
		experience:   scoreExperience(req.Experience, cand.ExperienceYears),
		seniority:    e.tables.scoreSeniority(req.Seniority, cand.Seniority),
		location:     scoreLocation(req.Location, cand.Location, cand.OpenToRemote),
		compensation: scoreCompensation(req.Salary, cand.SalaryExpectation),
		recency:      scoreRecency(cand.LastInteraction, now),
		domain:       e.tables.scoreDomain(req.Domain, req.Industry, cand.Industry, candSkills),
		availability: scoreAvailability(cand.CurrentStatus, cand.Availability),
	}

	result = e.tables.aggregate(cand, dims)

	// Signal detection depends on the already-computed overall score; boosts
	// apply additively in signal order and the final score is clamped. All
	// fired signals are retained even when the clamp absorbs their boost.
	result.Signals = e.detector.Detect(cand, req, result.OverallScore)
	for _, signal := range result.Signals {
		result.OverallScore += signal.ScoreBoost
	}
	result.OverallScore = clamp(round1(result.OverallScore), 0, 100)
	return result
}

// fallbackResult is the neutral result for a candidate whose data broke the
// scorers: zero scores, zero confidence, and a complete explanation map so the
// eight-dimension invariant still holds.
func fallbackResult(cand *types.CandidateProfile) types.MatchResult {
	explanation := make(map[string]types.DimensionExplanation, len(dimensionNames))
	for _, name := range dimensionNames {
		explanation[name] = types.DimensionExplanation{
			Detail: "Scoring unavailable for this candidate.",
		}
	}
	return types.MatchResult{
		CandidateID: cand.ID,
		Explanation: explanation,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
