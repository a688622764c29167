package matchsrv

// SalaryScore rates compensation fit. Without an expectation or a posted
// minimum the scorer stays neutral at 50. A missing maximum is assumed to be
// 1.5x the minimum. Asking below the band is forgiven faster than asking
// above it.
func (e *Engine) SalaryScore(expected, jobMin, jobMax *float64) float64 {
	if expected == nil || *expected <= 0 || jobMin == nil || *jobMin <= 0 {
		return 50
	}

	want := *expected
	min := *jobMin
	max := min * 1.5
	if jobMax != nil && *jobMax > 0 {
		max = *jobMax
	}

	switch {
	case want >= min && want <= max:
		return 100
	case want < min:
		gapPercent := (min - want) / want * 100
		return maxF(60, 100-gapPercent/2)
	default:
		gapPercent := (want - max) / max * 100
		return maxF(20, 100-gapPercent)
	}
}
