package matchsrv

import (
	"strings"

	"github.com/devhire/matchbox/pkg/kernel"
)

// LocationScore rates geographic compatibility. Remote postings always score
// 100; with either side unknown the scorer stays neutral at 50 rather than
// claiming a mismatch.
func (e *Engine) LocationScore(candidateLocation, jobLocation string, jobType kernel.JobType) float64 {
	if candidateLocation == "" || jobLocation == "" {
		return 50
	}

	candidate := strings.ToLower(candidateLocation)
	loc := strings.ToLower(jobLocation)

	if strings.Contains(loc, "remote") || jobType.IsRemote() {
		return 100
	}

	if strings.Contains(loc, candidate) || strings.Contains(candidate, loc) {
		return 100
	}

	for _, country := range e.tables.Countries {
		if strings.Contains(candidate, country) && strings.Contains(loc, country) {
			return 70
		}
	}

	return 30
}
