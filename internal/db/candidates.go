package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/hiresight/talentd/internal/types"
)

// ListCandidatesByCompany retrieves the full candidate pool for a company,
// ordered by creation time so matching runs see a stable input order.
func (db *DB) ListCandidatesByCompany(ctx context.Context, companyID uuid.UUID) ([]types.CandidateProfile, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, COALESCE(resume_text, ''), COALESCE(notes, ''), skills,
		        COALESCE(experience_years, 0), COALESCE(seniority, ''), COALESCE(location, ''),
		        COALESCE(open_to_remote, FALSE), COALESCE(salary_expectation, 0),
		        COALESCE(salary_currency, ''), COALESCE(current_status, ''),
		        COALESCE(availability, ''), COALESCE(industry, ''),
		        last_interaction, updated_at, previous_submissions
		 FROM candidates WHERE company_id = $1 ORDER BY created_at ASC`,
		companyID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []types.CandidateProfile
	for rows.Next() {
		var c types.CandidateProfile
		var skills, submissions []byte
		if err := rows.Scan(&c.ID, &c.Name, &c.ResumeText, &c.Notes, &skills,
			&c.ExperienceYears, &c.Seniority, &c.Location,
			&c.OpenToRemote, &c.SalaryExpectation,
			&c.SalaryCurrency, &c.CurrentStatus,
			&c.Availability, &c.Industry,
			&c.LastInteraction, &c.UpdatedAt, &submissions); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		if len(skills) > 0 {
			if err := json.Unmarshal(skills, &c.Skills); err != nil {
				return nil, fmt.Errorf("failed to parse skills for candidate %s: %w", c.ID, err)
			}
		}
		if len(submissions) > 0 {
			if err := json.Unmarshal(submissions, &c.PreviousSubmissions); err != nil {
				return nil, fmt.Errorf("failed to parse submissions for candidate %s: %w", c.ID, err)
			}
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}
