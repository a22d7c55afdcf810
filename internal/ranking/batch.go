package ranking

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hirelens/hirelens/internal/types"
)

// maxConcurrentRankings bounds the worker fan-out when ranking a candidate
// pool against one job.
const maxConcurrentRankings = 8

// CandidateInput holds the pre-computed component metrics for one candidate.
type CandidateInput struct {
	CandidateID     string
	SkillMatchPct   float64
	ExperienceYears float64
	RoleConfidence  float64
	ATSScore        float64
	MissingSkills   []string
}

// ComputeAll ranks a pool of candidates against one job concurrently.
// Results keep the input order; each element is an independent pure
// computation, so concurrent evaluation cannot interfere.
func ComputeAll(ctx context.Context, jobID string, requiredExperience float64, candidates []CandidateInput) ([]types.RankingResult, error) {
	results := make([]types.RankingResult, len(candidates))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentRankings)

	for i, candidate := range candidates {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			outcome := Compute(
				candidate.SkillMatchPct,
				candidate.ExperienceYears,
				requiredExperience,
				candidate.RoleConfidence,
				candidate.ATSScore,
			)
			results[i] = types.RankingResult{
				CandidateID:   candidate.CandidateID,
				JobID:         jobID,
				TotalScore:    outcome.TotalScore,
				Label:         outcome.Label,
				Components:    outcome.Components,
				MissingSkills: candidate.MissingSkills,
				CreatedAt:     time.Now().UTC(),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
