package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hiresight/talentd/internal/db"
	"github.com/hiresight/talentd/internal/matching"
	"github.com/hiresight/talentd/internal/server/middleware"
	"github.com/hiresight/talentd/internal/types"
)

// computeSummary is the response for a persisted matching run.
type computeSummary struct {
	JobID               uuid.UUID `json:"job_id"`
	CandidatesEvaluated int       `json:"candidates_evaluated"`
	MatchesStored       int       `json:"matches_stored"`
	TopScore            float64   `json:"top_score,omitempty"`
}

// handleComputeMatches runs the engine for a stored job against the tenant's
// candidate pool and transactionally replaces the stored results.
func (s *Server) handleComputeMatches(w http.ResponseWriter, r *http.Request) {
	job, ok := s.loadTenantJob(w, r)
	if !ok {
		return
	}
	if !job.HasRequirement() {
		s.typedErrorResponse(w, &ErrJobNotParsed{JobID: job.ID})
		return
	}

	candidates, err := s.store.ListCandidatesByCompany(r.Context(), job.CompanyID)
	if err != nil {
		s.log.Error("failed to load candidates", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to load candidates")
		return
	}
	if len(candidates) == 0 {
		s.typedErrorResponse(w, &ErrEmptyCandidatePool{CompanyID: job.CompanyID})
		return
	}

	results, err := s.engine.ComputeMatches(r.Context(), job.Requirement, candidates)
	if err != nil {
		if errors.Is(err, matching.ErrNoCandidates) {
			s.typedErrorResponse(w, &ErrEmptyCandidatePool{CompanyID: job.CompanyID})
			return
		}
		s.log.Error("matching run failed", zap.String("job_id", job.ID.String()), zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "matching run failed")
		return
	}

	if err := s.store.ReplaceMatches(r.Context(), job.ID, results); err != nil {
		s.log.Error("failed to store matches", zap.String("job_id", job.ID.String()), zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to store matches")
		return
	}

	summary := computeSummary{
		JobID:               job.ID,
		CandidatesEvaluated: len(candidates),
		MatchesStored:       len(results),
	}
	if len(results) > 0 {
		summary.TopScore = results[0].OverallScore
	}
	s.jsonResponse(w, http.StatusOK, summary)
}

// handleMatchResults returns the stored ranked matches for a job.
func (s *Server) handleMatchResults(w http.ResponseWriter, r *http.Request) {
	job, ok := s.loadTenantJob(w, r)
	if !ok {
		return
	}

	results, err := s.store.ListMatches(r.Context(), job.ID)
	if err != nil {
		s.log.Error("failed to load matches", zap.String("job_id", job.ID.String()), zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to load matches")
		return
	}
	if results == nil {
		results = []types.MatchResult{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"job_id":  job.ID,
		"results": results,
	})
}

// handleAdHocMatch runs a stateless matching pass over a caller-supplied
// requirement and candidate pool, persisting nothing.
func (s *Server) handleAdHocMatch(w http.ResponseWriter, r *http.Request) {
	var req types.MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.typedErrorResponse(w, &ErrValidation{Message: err.Error()})
		return
	}

	results, err := s.engine.ComputeMatches(r.Context(), req.Requirement, req.Candidates)
	if err != nil {
		s.log.Error("ad-hoc matching run failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "matching run failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"results": results})
}

// loadTenantJob parses the job_id path value and loads the job, writing the
// appropriate error response on failure. A job owned by another tenant looks
// identical to a missing one.
func (s *Server) loadTenantJob(w http.ResponseWriter, r *http.Request) (*db.Job, bool) {
	jobID, err := uuid.Parse(r.PathValue("job_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid job id")
		return nil, false
	}

	companyID, err := middleware.GetCompanyID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}

	job, err := s.store.GetJob(r.Context(), jobID)
	if err != nil {
		s.log.Error("failed to load job", zap.String("job_id", jobID.String()), zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to load job")
		return nil, false
	}
	if job == nil || job.CompanyID != companyID {
		s.typedErrorResponse(w, &ErrJobNotFound{JobID: jobID})
		return nil, false
	}
	return job, true
}
