package matchsrv

import (
	"math"
	"testing"

	"github.com/devhire/matchbox/pkg/kernel"
	"github.com/devhire/matchbox/recruitment/job"
	"github.com/devhire/matchbox/recruitment/matching"
	"github.com/devhire/matchbox/recruitment/profile"
)

func testProfile() *profile.Profile {
	return &profile.Profile{
		ID:             kernel.NewProfileID("p1"),
		Username:       "dev",
		Location:       "Bangalore, India",
		Experience:     "6 years",
		ExpectedSalary: fptr(90000),
		Skills:         kernel.StringList{"python", "django", "postgresql"},
	}
}

func testJob() *job.Job {
	return &job.Job{
		ID:           kernel.NewJobID("j1"),
		Title:        "Senior Backend Engineer",
		Description:  "We need 5+ years building APIs",
		Type:         kernel.JobTypeFullTime,
		Location:     "Remote",
		SalaryMin:    fptr(80000),
		SalaryMax:    fptr(120000),
		Requirements: kernel.RequirementList{"python", "django", "aws"},
		Status:       job.JobStatusPublished,
	}
}

func TestWeightsSumToOne(t *testing.T) {
	sum := matching.WeightSkills + matching.WeightExperience + matching.WeightLocation + matching.WeightSalary
	if math.Abs(sum-1.0) > 1e-12 {
		t.Errorf("weights sum to %v, want 1.0", sum)
	}
}

func TestScoreMatchCombinesSubScores(t *testing.T) {
	e := newTestEngine()

	result := e.ScoreMatch(testProfile(), testJob())

	want := round2(result.SkillScore*matching.WeightSkills +
		result.ExperienceScore*matching.WeightExperience +
		result.LocationScore*matching.WeightLocation +
		result.SalaryScore*matching.WeightSalary)
	if math.Abs(result.OverallScore-want) > 0.01 {
		t.Errorf("overall = %v, want weighted combination %v", result.OverallScore, want)
	}

	// Remote posting, in-range years, in-range salary.
	if result.LocationScore != 100 {
		t.Errorf("location = %v, want 100 for remote posting", result.LocationScore)
	}
	if result.ExperienceScore != 100 {
		t.Errorf("experience = %v, want 100 for 6 years against senior", result.ExperienceScore)
	}
	if result.SalaryScore != 100 {
		t.Errorf("salary = %v, want 100 for in-band expectation", result.SalaryScore)
	}
}

func TestScoreMatchSkillLists(t *testing.T) {
	e := newTestEngine()

	result := e.ScoreMatch(testProfile(), testJob())

	if len(result.MatchedSkills) != 2 {
		t.Errorf("matched = %v, want python and django", result.MatchedSkills)
	}
	if len(result.MissingSkills) != 1 || result.MissingSkills[0] != "aws" {
		t.Errorf("missing = %v, want [aws]", result.MissingSkills)
	}
}

func TestScoreMatchEmptyProfileNeverFails(t *testing.T) {
	e := newTestEngine()

	result := e.ScoreMatch(&profile.Profile{}, testJob())

	if result.SkillScore != 0 {
		t.Errorf("skill score = %v, want 0 with no skills", result.SkillScore)
	}
	if result.LocationScore != 50 {
		t.Errorf("location score = %v, want neutral 50", result.LocationScore)
	}
	if result.SalaryScore != 50 {
		t.Errorf("salary score = %v, want neutral 50", result.SalaryScore)
	}
	if result.MatchCategory == "" {
		t.Error("category must always be set")
	}
}

func TestCategorizeScoreBands(t *testing.T) {
	tests := []struct {
		score float64
		want  matching.MatchCategory
	}{
		{92, matching.CategoryExcellent},
		{85, matching.CategoryExcellent},
		{84.99, matching.CategoryGood},
		{70, matching.CategoryGood},
		{60, matching.CategoryFair},
		{47, matching.CategoryPotential},
		{12, matching.CategoryPoor},
	}

	for _, tt := range tests {
		if got := matching.CategorizeScore(tt.score); got != tt.want {
			t.Errorf("CategorizeScore(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
