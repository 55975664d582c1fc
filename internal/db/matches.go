package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/hiresight/talentd/internal/types"
)

// ReplaceMatches atomically replaces all stored matches for a job with a fresh
// ranked set. Prior matches and their signals are removed (signals cascade with
// their match) and the new results inserted, all in one transaction, so readers
// never observe a mix of two runs.
func (db *DB) ReplaceMatches(ctx context.Context, jobID uuid.UUID, results []types.MatchResult) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM matches WHERE job_id = $1`, jobID); err != nil {
		return fmt.Errorf("failed to delete prior matches: %w", err)
	}

	for rank, result := range results {
		scores, err := json.Marshal(result.Scores)
		if err != nil {
			return fmt.Errorf("failed to marshal scores: %w", err)
		}
		explanation, err := json.Marshal(result.Explanation)
		if err != nil {
			return fmt.Errorf("failed to marshal explanation: %w", err)
		}
		strengths, err := json.Marshal(result.Strengths)
		if err != nil {
			return fmt.Errorf("failed to marshal strengths: %w", err)
		}
		weaknesses, err := json.Marshal(result.Weaknesses)
		if err != nil {
			return fmt.Errorf("failed to marshal weaknesses: %w", err)
		}

		var matchID uuid.UUID
		err = tx.QueryRow(ctx,
			`INSERT INTO matches (job_id, candidate_id, rank, overall_score, confidence,
			                      scores, strengths, weaknesses, explanation)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			 RETURNING id`,
			jobID, result.CandidateID, rank+1, result.OverallScore, result.Confidence,
			scores, strengths, weaknesses, explanation,
		).Scan(&matchID)
		if err != nil {
			return fmt.Errorf("failed to insert match for candidate %s: %w", result.CandidateID, err)
		}

		for _, signal := range result.Signals {
			metadata, err := json.Marshal(signal.Metadata)
			if err != nil {
				return fmt.Errorf("failed to marshal signal metadata: %w", err)
			}
			_, err = tx.Exec(ctx,
				`INSERT INTO rediscovery_signals (match_id, signal_type, reason, score_boost, metadata)
				 VALUES ($1, $2, $3, $4, $5)`,
				matchID, string(signal.Type), signal.Reason, signal.ScoreBoost, metadata,
			)
			if err != nil {
				return fmt.Errorf("failed to insert signal %s: %w", signal.Type, err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit matches: %w", err)
	}
	return nil
}

// ListMatches retrieves the stored ranked matches for a job, signals included,
// in rank order.
func (db *DB) ListMatches(ctx context.Context, jobID uuid.UUID) ([]types.MatchResult, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, candidate_id, overall_score, confidence, scores, strengths, weaknesses, explanation
		 FROM matches WHERE job_id = $1 ORDER BY rank ASC`,
		jobID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	var results []types.MatchResult
	var matchIDs []uuid.UUID
	for rows.Next() {
		var result types.MatchResult
		var matchID uuid.UUID
		var scores, strengths, weaknesses, explanation []byte
		if err := rows.Scan(&matchID, &result.CandidateID, &result.OverallScore, &result.Confidence,
			&scores, &strengths, &weaknesses, &explanation); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		if err := json.Unmarshal(scores, &result.Scores); err != nil {
			return nil, fmt.Errorf("failed to parse scores: %w", err)
		}
		if err := json.Unmarshal(strengths, &result.Strengths); err != nil {
			return nil, fmt.Errorf("failed to parse strengths: %w", err)
		}
		if err := json.Unmarshal(weaknesses, &result.Weaknesses); err != nil {
			return nil, fmt.Errorf("failed to parse weaknesses: %w", err)
		}
		if err := json.Unmarshal(explanation, &result.Explanation); err != nil {
			return nil, fmt.Errorf("failed to parse explanation: %w", err)
		}
		results = append(results, result)
		matchIDs = append(matchIDs, matchID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read matches: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	signalsByMatch, err := db.listSignals(ctx, matchIDs)
	if err != nil {
		return nil, err
	}
	for i, matchID := range matchIDs {
		results[i].Signals = signalsByMatch[matchID]
	}
	return results, nil
}

// listSignals loads the signals for a set of matches in one query.
func (db *DB) listSignals(ctx context.Context, matchIDs []uuid.UUID) (map[uuid.UUID][]types.RediscoverySignal, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT match_id, signal_type, reason, score_boost, metadata
		 FROM rediscovery_signals WHERE match_id = ANY($1) ORDER BY id ASC`,
		matchIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list signals: %w", err)
	}
	defer rows.Close()

	signals := make(map[uuid.UUID][]types.RediscoverySignal)
	for rows.Next() {
		var matchID uuid.UUID
		var signal types.RediscoverySignal
		var signalType string
		var metadata []byte
		if err := rows.Scan(&matchID, &signalType, &signal.Reason, &signal.ScoreBoost, &metadata); err != nil {
			return nil, fmt.Errorf("failed to scan signal: %w", err)
		}
		signal.Type = types.SignalType(signalType)
		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &signal.Metadata); err != nil {
				return nil, fmt.Errorf("failed to parse signal metadata: %w", err)
			}
		}
		signals[matchID] = append(signals[matchID], signal)
	}
	return signals, rows.Err()
}
