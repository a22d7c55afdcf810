package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hirelens/hirelens/internal/types"
)

// Sort orders accepted by ListRankings.
const (
	SortScoreDesc   = "score_desc"
	SortScoreAsc    = "score_asc"
	SortCreatedDesc = "created_desc"
)

// UpsertRanking stores a ranking, overwriting any previous record for the
// same (candidate_id, job_id) pair. The single-statement upsert keeps
// concurrent recomputations for the same pair from losing updates; the last
// write wins and no history is retained.
//
// Missing skills are stored as a JSONB array, so skill names containing
// delimiters round-trip intact.
func (db *DB) UpsertRanking(ctx context.Context, result *types.RankingResult) error {
	missingJSON, err := json.Marshal(result.MissingSkills)
	if err != nil {
		return fmt.Errorf("failed to marshal missing skills: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO rankings (candidate_id, job_id, total_score, suitability_label,
			skill_score, experience_score, role_confidence_score, ats_score,
			missing_skills, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (candidate_id, job_id) DO UPDATE SET
			total_score = EXCLUDED.total_score,
			suitability_label = EXCLUDED.suitability_label,
			skill_score = EXCLUDED.skill_score,
			experience_score = EXCLUDED.experience_score,
			role_confidence_score = EXCLUDED.role_confidence_score,
			ats_score = EXCLUDED.ats_score,
			missing_skills = EXCLUDED.missing_skills,
			created_at = EXCLUDED.created_at`,
		result.CandidateID, result.JobID, result.TotalScore, string(result.Label),
		result.Components.SkillScore, result.Components.ExperienceScore,
		result.Components.RoleConfidenceScore, result.Components.ATSScore,
		missingJSON, result.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert ranking: %w", err)
	}
	return nil
}

// GetRanking retrieves the stored ranking for a candidate/job pair, or nil
// when none exists.
func (db *DB) GetRanking(ctx context.Context, candidateID, jobID string) (*types.RankingResult, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT candidate_id, job_id, total_score, suitability_label,
			skill_score, experience_score, role_confidence_score, ats_score,
			missing_skills, created_at
		 FROM rankings WHERE candidate_id = $1 AND job_id = $2`,
		candidateID, jobID,
	)

	result, err := scanRanking(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ranking: %w", err)
	}
	return result, nil
}

// ListRankings returns rankings, optionally filtered by job, in the given
// sort order. An empty jobID lists every ranking; an unknown sortBy falls
// back to score_desc.
func (db *DB) ListRankings(ctx context.Context, jobID, sortBy string) ([]types.RankingResult, error) {
	orderBy := "total_score DESC"
	switch sortBy {
	case SortScoreAsc:
		orderBy = "total_score ASC"
	case SortCreatedDesc:
		orderBy = "created_at DESC"
	}

	query := `SELECT candidate_id, job_id, total_score, suitability_label,
			skill_score, experience_score, role_confidence_score, ats_score,
			missing_skills, created_at
		 FROM rankings`
	args := []any{}
	if jobID != "" {
		query += ` WHERE job_id = $1`
		args = append(args, jobID)
	}
	query += ` ORDER BY ` + orderBy

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list rankings: %w", err)
	}
	defer rows.Close()

	var results []types.RankingResult
	for rows.Next() {
		result, err := scanRanking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ranking: %w", err)
		}
		results = append(results, *result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rankings: %w", err)
	}
	return results, nil
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRanking(row rowScanner) (*types.RankingResult, error) {
	var result types.RankingResult
	var label string
	var missingJSON []byte

	err := row.Scan(
		&result.CandidateID, &result.JobID, &result.TotalScore, &label,
		&result.Components.SkillScore, &result.Components.ExperienceScore,
		&result.Components.RoleConfidenceScore, &result.Components.ATSScore,
		&missingJSON, &result.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	result.Label = types.SuitabilityLabel(label)
	if len(missingJSON) > 0 {
		if err := json.Unmarshal(missingJSON, &result.MissingSkills); err != nil {
			return nil, fmt.Errorf("failed to unmarshal missing skills: %w", err)
		}
	}
	return &result, nil
}
