package matchsrv

import (
	"regexp"
	"strconv"
	"strings"
)

var candidateYearsRes = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*years?`),
	regexp.MustCompile(`(\d+)-\d+\s*years?`),
	regexp.MustCompile(`(\d+)\s*yrs?`),
}

// ExtractExperienceLevel classifies the seniority a text asks for. Levels
// are tried lowest first so that "senior" in a title is not shadowed by a
// later vocabulary entry.
func (e *Engine) ExtractExperienceLevel(text string) string {
	lower := strings.ToLower(text)

	for _, lk := range e.tables.ExperienceLevels {
		for _, kw := range lk.Keywords {
			if strings.Contains(lower, kw) {
				return lk.Level
			}
		}
	}
	return defaultLevel
}

// ExperienceScore compares the candidate's years against the range the
// posting's level implies. In range scores 100; overqualification decays
// gently, underqualification steeply.
func (e *Engine) ExperienceScore(candidateExperience, jobTitle, jobDescription string) float64 {
	level := e.ExtractExperienceLevel(jobTitle + " " + jobDescription)
	years := e.yearsFromExperience(candidateExperience)

	rng, ok := e.tables.YearRanges[level]
	if !ok {
		rng = YearRange{0, 5}
	}

	switch {
	case years >= rng.Min && years <= rng.Max:
		return 100
	case years > rng.Max:
		return maxF(70, 100-float64(years-rng.Max)*5)
	default:
		return maxF(30, 100-float64(rng.Min-years)*20)
	}
}

// yearsFromExperience pulls a year count from a free-text experience field.
// Numeric patterns win; level phrases map through a lookup; everything else
// assumes two years.
func (e *Engine) yearsFromExperience(experience string) int {
	if experience == "" {
		return 0
	}

	lower := strings.ToLower(experience)
	for _, re := range candidateYearsRes {
		if m := re.FindStringSubmatch(lower); m != nil {
			years, _ := strconv.Atoi(m[1])
			return years
		}
	}

	for _, ly := range e.tables.LevelYears {
		if strings.Contains(lower, ly.Phrase) {
			return ly.Years
		}
	}

	return 2
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
