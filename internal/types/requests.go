package types

import "github.com/go-playground/validator/v10"

// MatchRequest is the payload for an ad-hoc, stateless matching run: the
// caller supplies both the requirement and the candidate pool and receives
// the ranked results without anything being persisted.
type MatchRequest struct {
	Requirement *RequirementProfile `json:"requirement" validate:"required"`
	Candidates  []CandidateProfile  `json:"candidates" validate:"required,min=1,dive"`
}

// DetectRequest is the payload for standalone rediscovery signal detection,
// used by the nightly sweep to re-run detection against an already-computed
// overall score without redoing the full match.
type DetectRequest struct {
	Candidate    *CandidateProfile   `json:"candidate" validate:"required"`
	Requirement  *RequirementProfile `json:"requirement" validate:"required"`
	OverallScore float64             `json:"overall_score" validate:"min=0,max=100"`
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the DetectRequest using the validator.
func (r *DetectRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
