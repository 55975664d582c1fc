package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hiresight/talentd/internal/types"
)

// Job is a stored job description together with its parsed requirement
// profile. Requirement is nil until the external parser has produced one.
type Job struct {
	ID          uuid.UUID                 `json:"id"`
	CompanyID   uuid.UUID                 `json:"company_id"`
	Title       string                    `json:"title"`
	RawText     string                    `json:"raw_text,omitempty"`
	Requirement *types.RequirementProfile `json:"requirement,omitempty"`
	CreatedAt   time.Time                 `json:"created_at"`
}

// HasRequirement reports whether the job has been parsed into a requirement
// profile and can be matched against.
func (j *Job) HasRequirement() bool {
	return j != nil && j.Requirement != nil
}

// GetJob retrieves a job description by ID. Returns nil without error when the
// job does not exist.
func (db *DB) GetJob(ctx context.Context, jobID uuid.UUID) (*Job, error) {
	var job Job
	var requirement []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, company_id, title, COALESCE(raw_text, ''), parsed_requirements, created_at
		 FROM job_descriptions WHERE id = $1`,
		jobID,
	).Scan(&job.ID, &job.CompanyID, &job.Title, &job.RawText, &requirement, &job.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	if len(requirement) > 0 {
		var profile types.RequirementProfile
		if err := json.Unmarshal(requirement, &profile); err != nil {
			return nil, fmt.Errorf("failed to parse requirements for job %s: %w", job.ID, err)
		}
		job.Requirement = &profile
	}
	return &job, nil
}
