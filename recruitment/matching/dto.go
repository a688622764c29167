package matching

import (
	"github.com/devhire/matchbox/recruitment/job"
	"github.com/devhire/matchbox/recruitment/profile"
)

// JobMatch pairs a posting with its computed compatibility.
type JobMatch struct {
	Job   job.JobResponse `json:"job"`
	Match MatchResult     `json:"match"`
}

// CandidateMatch pairs a profile with its compatibility to one posting.
type CandidateMatch struct {
	Profile profile.ProfileResponse `json:"profile"`
	Match   MatchResult             `json:"match"`
}

// CandidateStats summarizes the candidate side of a recommendation run.
type CandidateStats struct {
	TotalSkills     int      `json:"total_skills"`
	ExperienceLevel string   `json:"experience_level"`
	Location        string   `json:"location,omitempty"`
	PreferredSalary *float64 `json:"preferred_salary,omitempty"`
}

// RecommendationsResponse - DTO for the job recommendation feed. Matches are
// bucketed by category band on top of the flat ranked list.
type RecommendationsResponse struct {
	TopRecommendations []JobMatch     `json:"top_recommendations"`
	ExcellentMatches   []JobMatch     `json:"excellent_matches"`
	GoodMatches        []JobMatch     `json:"good_matches"`
	FairMatches        []JobMatch     `json:"fair_matches"`
	PotentialMatches   []JobMatch     `json:"potential_matches"`
	CandidateStats     CandidateStats `json:"candidate_stats"`
	TotalJobsAnalyzed  int            `json:"total_jobs_analyzed"`
}

// Recommendation is an actionable hint surfaced next to a job analysis.
type Recommendation struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// JobAnalysisResponse - DTO for a single job scored against one candidate.
type JobAnalysisResponse struct {
	Job             job.JobResponse  `json:"job"`
	Match           MatchResult      `json:"match"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
}
