package matchsrv

import (
	"math"

	"github.com/devhire/matchbox/recruitment/job"
	"github.com/devhire/matchbox/recruitment/matching"
	"github.com/devhire/matchbox/recruitment/profile"
)

// Engine scores profile/job pairs. It is stateless beyond its injected
// configuration tables and safe for concurrent use.
type Engine struct {
	tables Tables
}

// NewEngine creates a scoring engine over the given tables.
func NewEngine(tables Tables) *Engine {
	return &Engine{tables: tables}
}

// ScoreMatch computes the full compatibility result for one profile against
// one posting. It is a pure function of its inputs and never fails: missing
// data degrades to neutral or zero sub-scores.
func (e *Engine) ScoreMatch(p *profile.Profile, j *job.Job) matching.MatchResult {
	skills := p.Skills
	requirements := j.Requirements.Strings()

	skillScore := e.SkillScore(skills, requirements, string(j.Title))
	experienceScore := e.ExperienceScore(p.Experience, string(j.Title), string(j.Description))
	locationScore := e.LocationScore(p.Location, j.Location, j.Type)
	salaryScore := e.SalaryScore(p.ExpectedSalary, j.SalaryMin, j.SalaryMax)

	overall := skillScore*matching.WeightSkills +
		experienceScore*matching.WeightExperience +
		locationScore*matching.WeightLocation +
		salaryScore*matching.WeightSalary

	return matching.MatchResult{
		OverallScore:    round2(overall),
		SkillScore:      round2(skillScore),
		ExperienceScore: round2(experienceScore),
		LocationScore:   round2(locationScore),
		SalaryScore:     round2(salaryScore),
		MatchedSkills:   e.MatchedSkills(skills, requirements),
		MissingSkills:   e.MissingSkills(skills, requirements),
		MatchCategory:   matching.CategorizeScore(overall),
	}
}

// CandidateStats summarizes the candidate inputs the engine would score.
func (e *Engine) CandidateStats(p *profile.Profile) matching.CandidateStats {
	return matching.CandidateStats{
		TotalSkills:     len(p.Skills),
		ExperienceLevel: e.ExtractExperienceLevel(p.Experience),
		Location:        p.Location,
		PreferredSalary: p.ExpectedSalary,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
