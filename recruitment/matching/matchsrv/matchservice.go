package matchsrv

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/devhire/matchbox/pkg/errx"
	"github.com/devhire/matchbox/pkg/kernel"
	"github.com/devhire/matchbox/pkg/logx"
	"github.com/devhire/matchbox/recruitment/job"
	"github.com/devhire/matchbox/recruitment/matching"
	"github.com/devhire/matchbox/recruitment/profile"
)

// MatchService wires the scoring engine to the profile and job stores.
type MatchService struct {
	engine      *Engine
	profileRepo profile.Repository
	jobRepo     job.Repository
	workers     int
}

// NewMatchService creates a new instance of the match service.
func NewMatchService(engine *Engine, profileRepo profile.Repository, jobRepo job.Repository, workers int) *MatchService {
	if workers < 1 {
		workers = defaultBatchWorkers
	}
	return &MatchService{
		engine:      engine,
		profileRepo: profileRepo,
		jobRepo:     jobRepo,
		workers:     workers,
	}
}

// FindJobsForProfile scores every published posting against the profile and
// returns the ranked, bucketed recommendation feed.
func (s *MatchService) FindJobsForProfile(ctx context.Context, profileID kernel.ProfileID) (*matching.RecommendationsResponse, error) {
	p, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if !p.IsMatchable() {
		return nil, matching.ErrProfileNotMatchable().WithDetail("profile_id", profileID.String())
	}

	jobs, err := s.jobRepo.AllPublished(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to load published jobs", errx.TypeInternal)
	}

	ranked := s.engine.RankJobs(ctx, p, jobs, s.workers)
	if err := ctx.Err(); err != nil {
		return nil, errx.Wrap(err, "matching run cancelled", errx.TypeInternal)
	}

	logx.Infof("ranked %d jobs for profile %s", len(ranked), profileID.String())

	resp := s.engine.BuildRecommendations(p, ranked)
	return &resp, nil
}

// AnalyzeJob scores one posting against the profile and attaches skill-gap
// recommendations for the requirements the candidate does not cover.
func (s *MatchService) AnalyzeJob(ctx context.Context, profileID kernel.ProfileID, jobID kernel.JobID) (*matching.JobAnalysisResponse, error) {
	p, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	j, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	result := s.engine.ScoreMatch(p, j)

	var recommendations []matching.Recommendation
	if len(result.MissingSkills) > 0 {
		recommendations = append(recommendations, matching.Recommendation{
			Type:    "Skill Gap",
			Message: fmt.Sprintf("Consider learning: %s", strings.Join(result.MissingSkills, ", ")),
		})
	}

	return &matching.JobAnalysisResponse{
		Job:             job.ToJobResponse(j),
		Match:           result,
		Recommendations: recommendations,
	}, nil
}

// RankCandidates scores every profile against one posting, best first. The
// profile store is paged through to bound memory on large candidate pools.
func (s *MatchService) RankCandidates(ctx context.Context, jobID kernel.JobID) ([]matching.CandidateMatch, error) {
	j, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	var ranked []matching.CandidateMatch
	pagination := kernel.PaginationOptions{Page: 1, PageSize: 100}

	for {
		page, err := s.profileRepo.List(ctx, pagination)
		if err != nil {
			return nil, errx.Wrap(err, "failed to page profiles", errx.TypeInternal)
		}

		for i := range page.Items {
			p := &page.Items[i]
			ranked = append(ranked, matching.CandidateMatch{
				Profile: profile.ToProfileResponse(p),
				Match:   s.engine.ScoreMatch(p, j),
			})
		}

		if pagination.Page >= page.TotalPages {
			break
		}
		pagination.Page++
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Match.OverallScore > ranked[b].Match.OverallScore
	})
	return ranked, nil
}
