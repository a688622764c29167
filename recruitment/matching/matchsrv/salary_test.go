package matchsrv

import "testing"

func fptr(v float64) *float64 { return &v }

func TestSalaryScoreInRange(t *testing.T) {
	e := newTestEngine()

	if got := e.SalaryScore(fptr(90000), fptr(80000), fptr(120000)); got != 100 {
		t.Errorf("in-range score = %v, want 100", got)
	}

	// Boundary values are inside the band.
	if got := e.SalaryScore(fptr(80000), fptr(80000), fptr(120000)); got != 100 {
		t.Errorf("at-minimum score = %v, want 100", got)
	}
	if got := e.SalaryScore(fptr(120000), fptr(80000), fptr(120000)); got != 100 {
		t.Errorf("at-maximum score = %v, want 100", got)
	}
}

func TestSalaryScoreMissingMaxAssumesHalfAgain(t *testing.T) {
	e := newTestEngine()

	// Assumed max is 80000 * 1.5 = 120000.
	if got := e.SalaryScore(fptr(115000), fptr(80000), nil); got != 100 {
		t.Errorf("score with defaulted max = %v, want 100", got)
	}
	if got := e.SalaryScore(fptr(125000), fptr(80000), nil); got == 100 {
		t.Error("expectation above the defaulted max must not score 100")
	}
}

func TestSalaryScoreMissingDataIsNeutral(t *testing.T) {
	e := newTestEngine()

	if got := e.SalaryScore(nil, fptr(80000), fptr(120000)); got != 50 {
		t.Errorf("score without expectation = %v, want 50", got)
	}
	if got := e.SalaryScore(fptr(90000), nil, nil); got != 50 {
		t.Errorf("score without posted minimum = %v, want 50", got)
	}
	if got := e.SalaryScore(fptr(0), fptr(80000), nil); got != 50 {
		t.Errorf("zero expectation = %v, want neutral 50", got)
	}
}

func TestSalaryScoreBelowBand(t *testing.T) {
	e := newTestEngine()

	// Asking 50000 under a 60000 minimum: gap is 20%, score 100 - 10 = 90.
	if got := e.SalaryScore(fptr(50000), fptr(60000), fptr(90000)); got != 90 {
		t.Errorf("below-band score = %v, want 90", got)
	}

	// Extreme lowball bottoms out at 60.
	if got := e.SalaryScore(fptr(10000), fptr(100000), fptr(150000)); got != 60 {
		t.Errorf("deep below-band score = %v, want floor of 60", got)
	}
}

func TestSalaryScoreAboveBand(t *testing.T) {
	e := newTestEngine()

	// Asking 110000 over a 100000 max: gap is 10%, score 90.
	if got := e.SalaryScore(fptr(110000), fptr(70000), fptr(100000)); got != 90 {
		t.Errorf("above-band score = %v, want 90", got)
	}

	// Asking double bottoms out at 20.
	if got := e.SalaryScore(fptr(200000), fptr(70000), fptr(100000)); got != 20 {
		t.Errorf("far above-band score = %v, want floor of 20", got)
	}
}
