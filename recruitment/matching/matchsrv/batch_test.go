package matchsrv

import (
	"context"
	"fmt"
	"testing"

	"github.com/devhire/matchbox/pkg/kernel"
	"github.com/devhire/matchbox/recruitment/job"
)

func rankableJobs() []job.Job {
	strong := job.Job{
		ID:           kernel.NewJobID("j-strong"),
		Title:        "Senior Backend Engineer",
		Description:  "5+ years required",
		Type:         kernel.JobTypeRemote,
		Location:     "Remote",
		SalaryMin:    fptr(80000),
		SalaryMax:    fptr(120000),
		Requirements: kernel.RequirementList{"python", "django"},
	}
	weak := job.Job{
		ID:           kernel.NewJobID("j-weak"),
		Title:        "Mobile Developer",
		Description:  "expert level, 10+ years",
		Type:         kernel.JobTypeFullTime,
		Location:     "Tokyo, Japan",
		SalaryMin:    fptr(300000),
		SalaryMax:    fptr(400000),
		Requirements: kernel.RequirementList{"swift", "kotlin"},
	}
	return []job.Job{weak, strong}
}

func TestRankJobsSortsDescending(t *testing.T) {
	e := newTestEngine()

	ranked := e.RankJobs(context.Background(), testProfile(), rankableJobs(), 2)

	if len(ranked) != 2 {
		t.Fatalf("got %d results, want 2", len(ranked))
	}
	if ranked[0].Job.ID != "j-strong" {
		t.Errorf("best match = %q, want j-strong", ranked[0].Job.ID)
	}
	if ranked[0].Match.OverallScore < ranked[1].Match.OverallScore {
		t.Errorf("results not sorted: %v then %v",
			ranked[0].Match.OverallScore, ranked[1].Match.OverallScore)
	}
}

func TestRankJobsTiesKeepInputOrder(t *testing.T) {
	e := newTestEngine()

	// Identical postings score identically, so order must follow input.
	jobs := make([]job.Job, 4)
	for i := range jobs {
		jobs[i] = rankableJobs()[1]
		jobs[i].ID = kernel.NewJobID(fmt.Sprintf("j-%d", i))
	}

	ranked := e.RankJobs(context.Background(), testProfile(), jobs, 3)

	for i, jm := range ranked {
		want := fmt.Sprintf("j-%d", i)
		if string(jm.Job.ID) != want {
			t.Errorf("position %d = %q, want %q", i, jm.Job.ID, want)
		}
	}
}

func TestRankJobsEmptyInput(t *testing.T) {
	e := newTestEngine()

	if got := e.RankJobs(context.Background(), testProfile(), nil, 4); got != nil {
		t.Errorf("got %v, want nil for no jobs", got)
	}
}

func TestRankJobsCancelledContext(t *testing.T) {
	e := newTestEngine()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if got := e.RankJobs(ctx, testProfile(), rankableJobs(), 1); got != nil {
		t.Errorf("got %v, want nil after cancellation", got)
	}
}

func TestBuildRecommendationsBuckets(t *testing.T) {
	e := newTestEngine()
	p := testProfile()

	// 15 strong postings and 3 weak ones; every strong one lands in a
	// single band, which must then be capped.
	jobs := make([]job.Job, 0, 18)
	for i := 0; i < 15; i++ {
		j := rankableJobs()[1]
		j.ID = kernel.NewJobID(fmt.Sprintf("strong-%d", i))
		jobs = append(jobs, j)
	}
	for i := 0; i < 3; i++ {
		j := rankableJobs()[0]
		j.ID = kernel.NewJobID(fmt.Sprintf("weak-%d", i))
		jobs = append(jobs, j)
	}

	ranked := e.RankJobs(context.Background(), p, jobs, 4)
	resp := e.BuildRecommendations(p, ranked)

	if resp.TotalJobsAnalyzed != 18 {
		t.Errorf("analyzed = %d, want 18", resp.TotalJobsAnalyzed)
	}
	if len(resp.TopRecommendations) != 18 {
		t.Errorf("top = %d, want all 18 under the 20 cap", len(resp.TopRecommendations))
	}

	total := len(resp.ExcellentMatches) + len(resp.GoodMatches) +
		len(resp.FairMatches) + len(resp.PotentialMatches)
	if total > 18 {
		t.Errorf("bucketed %d matches from 18 inputs", total)
	}
	if n := len(resp.ExcellentMatches); n > 10 {
		t.Errorf("excellent bucket = %d, want at most 10", n)
	}
	if n := len(resp.GoodMatches); n > 10 {
		t.Errorf("good bucket = %d, want at most 10", n)
	}
	if n := len(resp.PotentialMatches); n > 5 {
		t.Errorf("potential bucket = %d, want at most 5", n)
	}

	if resp.CandidateStats.TotalSkills != 3 {
		t.Errorf("stats skills = %d, want 3", resp.CandidateStats.TotalSkills)
	}
}

func TestBuildRecommendationsTopCap(t *testing.T) {
	e := newTestEngine()
	p := testProfile()

	jobs := make([]job.Job, 25)
	for i := range jobs {
		jobs[i] = rankableJobs()[0]
		jobs[i].ID = kernel.NewJobID(fmt.Sprintf("j-%d", i))
	}

	ranked := e.RankJobs(context.Background(), p, jobs, 8)
	resp := e.BuildRecommendations(p, ranked)

	if len(resp.TopRecommendations) != 20 {
		t.Errorf("top = %d, want capped at 20", len(resp.TopRecommendations))
	}
	if resp.TotalJobsAnalyzed != 25 {
		t.Errorf("analyzed = %d, want 25", resp.TotalJobsAnalyzed)
	}
}
