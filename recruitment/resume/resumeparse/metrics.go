package resumeparse

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/devhire/matchbox/recruitment/resume"
)

var (
	explicitMonthsRe = regexp.MustCompile(`(\d+)\s*months?`)
	explicitWeeksRe  = regexp.MustCompile(`(\d+)\s*weeks?`)
)

// ExperienceMetrics aggregates duration strings into total years of work
// experience and total months of internships.
func (p *Parser) ExperienceMetrics(work, internships []resume.ExperienceEntry) (years, internshipMonths int) {
	now := time.Now()
	currentYear := now.Year()

	for _, exp := range work {
		if exp.Duration != "" {
			years += durationYears(exp.Duration, currentYear)
		}
	}
	for _, exp := range internships {
		if exp.Duration != "" {
			internshipMonths += durationMonths(exp.Duration, currentYear)
		}
	}
	return years, internshipMonths
}

// durationYears derives a year count from a duration string: two years give
// their difference, one year plus a present marker counts up to now, and a
// lone year is assumed to be one year of work.
func durationYears(duration string, currentYear int) int {
	years := yearRe.FindAllString(duration, -1)
	switch {
	case len(years) >= 2:
		start, _ := strconv.Atoi(years[0])
		end, _ := strconv.Atoi(years[1])
		if end < start {
			return 0
		}
		return end - start
	case len(years) == 1:
		year, _ := strconv.Atoi(years[0])
		if presentRe.MatchString(strings.ToLower(duration)) {
			if currentYear < year {
				return 0
			}
			return currentYear - year
		}
		return 1
	}
	return 0
}

// durationMonths derives a month count for an internship duration. Explicit
// month/week counts win; seasonal internships get fixed lengths; otherwise
// the year calculation is reused, with internship-flavored defaults last.
func durationMonths(duration string, currentYear int) int {
	lower := strings.ToLower(duration)

	if m := explicitMonthsRe.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	if m := explicitWeeksRe.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		return int(math.Round(float64(n) * 0.23))
	}
	if strings.Contains(lower, "summer") {
		return 3
	}
	if strings.Contains(lower, "winter") {
		return 2
	}

	if years := durationYears(duration, currentYear); years > 0 {
		return years * 12
	}

	for _, kw := range []string{"intern", "summer", "training"} {
		if strings.Contains(lower, kw) {
			return 3
		}
	}
	return 6
}
