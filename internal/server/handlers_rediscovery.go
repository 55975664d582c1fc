package server

import (
	"encoding/json"
	"net/http"

	"github.com/hiresight/talentd/internal/types"
)

// handleDetectSignals re-runs rediscovery detection for one candidate against
// one requirement using an already-computed overall score. The nightly sweep
// calls this per stored match instead of redoing the full scoring pass.
func (s *Server) handleDetectSignals(w http.ResponseWriter, r *http.Request) {
	var req types.DetectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.typedErrorResponse(w, &ErrValidation{Message: err.Error()})
		return
	}

	signals := s.engine.DetectSignals(req.Candidate, req.Requirement, req.OverallScore)
	if signals == nil {
		signals = []types.RediscoverySignal{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"signals": signals})
}
