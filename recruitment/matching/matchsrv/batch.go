package matchsrv

import (
	"context"
	"sort"
	"sync"

	"github.com/devhire/matchbox/recruitment/job"
	"github.com/devhire/matchbox/recruitment/matching"
	"github.com/devhire/matchbox/recruitment/profile"
)

const defaultBatchWorkers = 8

// RankJobs scores every posting against one profile and returns the pairs
// sorted by overall score, best first. Pairs are independent, so scoring
// fans out over a bounded worker pool; the sort is stable so equal scores
// keep their input order and the output stays deterministic.
func (e *Engine) RankJobs(ctx context.Context, p *profile.Profile, jobs []job.Job, workers int) []matching.JobMatch {
	if len(jobs) == 0 {
		return nil
	}
	if workers < 1 {
		workers = defaultBatchWorkers
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	results := make([]matching.JobMatch, len(jobs))
	indexes := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				results[i] = matching.JobMatch{
					Job:   job.ToJobResponse(&jobs[i]),
					Match: e.ScoreMatch(p, &jobs[i]),
				}
			}
		}()
	}

	for i := range jobs {
		select {
		case <-ctx.Done():
			// Stop feeding; already-dispatched pairs still finish.
			close(indexes)
			wg.Wait()
			return nil
		case indexes <- i:
		}
	}
	close(indexes)
	wg.Wait()

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Match.OverallScore > results[b].Match.OverallScore
	})
	return results
}

// Recommendation feed limits. The flat ranked list is capped, and each
// category bucket is capped separately so no band overwhelms the page.
const (
	topRecommendationLimit = 20
	bucketLimit            = 10
	potentialBucketLimit   = 5
)

// BuildRecommendations turns a ranked match list into the bucketed feed.
func (e *Engine) BuildRecommendations(p *profile.Profile, ranked []matching.JobMatch) matching.RecommendationsResponse {
	resp := matching.RecommendationsResponse{
		TopRecommendations: capMatches(ranked, topRecommendationLimit),
		CandidateStats:     e.CandidateStats(p),
		TotalJobsAnalyzed:  len(ranked),
	}

	for _, jm := range ranked {
		switch {
		case jm.Match.OverallScore >= 85:
			resp.ExcellentMatches = append(resp.ExcellentMatches, jm)
		case jm.Match.OverallScore >= 70:
			resp.GoodMatches = append(resp.GoodMatches, jm)
		case jm.Match.OverallScore >= 55:
			resp.FairMatches = append(resp.FairMatches, jm)
		case jm.Match.OverallScore >= 40:
			resp.PotentialMatches = append(resp.PotentialMatches, jm)
		}
	}

	resp.ExcellentMatches = capMatches(resp.ExcellentMatches, bucketLimit)
	resp.GoodMatches = capMatches(resp.GoodMatches, bucketLimit)
	resp.FairMatches = capMatches(resp.FairMatches, bucketLimit)
	resp.PotentialMatches = capMatches(resp.PotentialMatches, potentialBucketLimit)

	return resp
}

func capMatches(matches []matching.JobMatch, limit int) []matching.JobMatch {
	if len(matches) > limit {
		return matches[:limit]
	}
	return matches
}
