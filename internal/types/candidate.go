package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Candidate status values. Unrecognized strings are treated as unknown and
// scored with a neutral default, never rejected.
const (
	StatusAvailable    = "available"
	StatusUnavailable  = "unavailable"
	StatusEmployed     = "employed"
	StatusOpenToOffers = "open_to_offers"
)

// Submission outcomes checked (case-insensitively) by the rediscovery detector.
const (
	OutcomeShortlisted = "shortlisted"
	OutcomeInterviewed = "interviewed"
	OutcomeWaitlisted  = "waitlisted"
	OutcomeOnHold      = "on_hold"
	OutcomeRejected    = "rejected"
	OutcomeDeclined    = "declined"
	OutcomeWithdrawn   = "withdrawn"
)

// Submission is one historical entry of the candidate being put forward for a role.
type Submission struct {
	JobTitle string    `json:"job_title"`
	Date     time.Time `json:"date,omitzero"`
	Outcome  string    `json:"outcome"`
	Skills   []string  `json:"skills,omitempty"` // skill snapshot at submission time
}

// CandidateProfile represents one person in the talent pool. It is a read-only
// input to a matching run.
type CandidateProfile struct {
	ID                  uuid.UUID    `json:"id"`
	Name                string       `json:"name"`
	ResumeText          string       `json:"resume_text,omitempty"`
	Notes               string       `json:"notes,omitempty"`
	Skills              []string     `json:"skills,omitempty"`
	ExperienceYears     float64      `json:"experience_years"`
	Seniority           string       `json:"seniority,omitempty"`
	Location            string       `json:"location,omitempty"`
	OpenToRemote        bool         `json:"open_to_remote,omitempty"`
	SalaryExpectation   float64      `json:"salary_expectation,omitempty"`
	SalaryCurrency      string       `json:"salary_currency,omitempty"`
	CurrentStatus       string       `json:"current_status,omitempty"`
	Availability        string       `json:"availability,omitempty"`
	Industry            string       `json:"industry,omitempty"`
	LastInteraction     *time.Time   `json:"last_interaction,omitempty"`
	UpdatedAt           time.Time    `json:"updated_at,omitzero"`
	PreviousSubmissions []Submission `json:"previous_submissions,omitempty"`
}

// SkillSet returns the candidate's skills lowercased and deduplicated.
func (c *CandidateProfile) SkillSet() map[string]bool {
	set := make(map[string]bool, len(c.Skills))
	for _, s := range c.Skills {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			set[s] = true
		}
	}
	return set
}
