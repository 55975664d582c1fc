// Package types provides type definitions for structured data used throughout the talentd system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Seniority levels ordered from most junior to most senior. Position in this
// ladder is what the seniority scorer compares.
const (
	SeniorityIntern    = "intern"
	SeniorityJunior    = "junior"
	SeniorityMid       = "mid"
	SenioritySenior    = "senior"
	SeniorityLead      = "lead"
	SeniorityPrincipal = "principal"
	SeniorityManager   = "manager"
)

// ExperienceRange is the required experience band in years, inclusive on both ends.
type ExperienceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// SalaryBand is the budgeted compensation range for a role.
type SalaryBand struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency,omitempty"`
}

// RequirementProfile represents the structured needs of one job, as produced by
// an external job-description parser. Any field may be absent; scorers apply a
// documented fallback instead of failing.
type RequirementProfile struct {
	Title           string           `json:"title"`
	RawText         string           `json:"raw_text,omitempty"`
	MandatorySkills []string         `json:"mandatory_skills,omitempty"`
	OptionalSkills  []string         `json:"optional_skills,omitempty"`
	Seniority       string           `json:"seniority,omitempty"`
	Experience      *ExperienceRange `json:"experience_range,omitempty"`
	Location        string           `json:"location,omitempty"`
	Salary          *SalaryBand      `json:"salary_band,omitempty"`
	Domain          string           `json:"domain,omitempty"`
	Industry        string           `json:"industry,omitempty"`
}

// SkillSet returns the union of mandatory and optional skills, lowercased and
// deduplicated. This is the skill universe signal checks compare overlap against.
func (r *RequirementProfile) SkillSet() map[string]bool {
	set := make(map[string]bool, len(r.MandatorySkills)+len(r.OptionalSkills))
	for _, s := range r.MandatorySkills {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			set[s] = true
		}
	}
	for _, s := range r.OptionalSkills {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			set[s] = true
		}
	}
	return set
}
