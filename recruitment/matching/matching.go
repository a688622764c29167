package matching

// MatchCategory labels the quality band of an overall score.
type MatchCategory string

const (
	CategoryExcellent MatchCategory = "Excellent Match"
	CategoryGood      MatchCategory = "Good Match"
	CategoryFair      MatchCategory = "Fair Match"
	CategoryPotential MatchCategory = "Potential Match"
	CategoryPoor      MatchCategory = "Poor Match"
)

// CategorizeScore maps an overall score onto its quality band.
func CategorizeScore(score float64) MatchCategory {
	switch {
	case score >= 85:
		return CategoryExcellent
	case score >= 70:
		return CategoryGood
	case score >= 55:
		return CategoryFair
	case score >= 40:
		return CategoryPotential
	default:
		return CategoryPoor
	}
}

// MatchResult is the scored compatibility between one profile and one job.
// All scores are percentages in [0,100].
type MatchResult struct {
	OverallScore    float64       `json:"overall_score"`
	SkillScore      float64       `json:"skill_score"`
	ExperienceScore float64       `json:"experience_score"`
	LocationScore   float64       `json:"location_score"`
	SalaryScore     float64       `json:"salary_score"`
	MatchedSkills   []string      `json:"matched_skills"`
	MissingSkills   []string      `json:"missing_skills"`
	MatchCategory   MatchCategory `json:"match_category"`
}

// IsExcellent reports whether the match falls in the top band.
func (m *MatchResult) IsExcellent() bool {
	return m.MatchCategory == CategoryExcellent
}

// Weights for combining sub-scores into the overall score. They sum to 1.
const (
	WeightSkills     = 0.40
	WeightExperience = 0.25
	WeightLocation   = 0.20
	WeightSalary     = 0.15
)
