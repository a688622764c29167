package matchsrv

import "testing"

func TestExtractExperienceLevel(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		text string
		want string
	}{
		{"Junior Developer", "entry"},
		{"Graduate Trainee Program", "entry"},
		{"Intermediate Engineer", "mid"},
		{"Senior Backend Engineer", "senior"},
		{"Principal Engineer", "senior"},
		{"Staff Engineer", "expert"},
		{"Solutions Architect", "expert"},
		{"Software Engineer", "mid"}, // no keyword, default
	}

	for _, tt := range tests {
		if got := e.ExtractExperienceLevel(tt.text); got != tt.want {
			t.Errorf("ExtractExperienceLevel(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestExperienceLevelOrderIsDeterministic(t *testing.T) {
	e := newTestEngine()

	// "Senior Graduate Program Lead" carries both entry and senior
	// keywords; the entry vocabulary is checked first and must win every
	// time.
	for i := 0; i < 10; i++ {
		if got := e.ExtractExperienceLevel("Senior Graduate Program Lead"); got != "entry" {
			t.Fatalf("level = %q, want entry on every run", got)
		}
	}
}

func TestExperienceScoreInRange(t *testing.T) {
	e := newTestEngine()

	// senior range is 5-8; six years lands inside it.
	got := e.ExperienceScore("6 years", "Senior Backend Engineer", "We need 5+ years of experience")
	if got != 100 {
		t.Errorf("score = %v, want 100 for in-range years", got)
	}
}

func TestExperienceScoreOverqualified(t *testing.T) {
	e := newTestEngine()

	// entry range is 0-2; ten years overshoots by 8, decaying past the floor.
	got := e.ExperienceScore("10 years", "Junior Developer", "")
	if got != 70 {
		t.Errorf("score = %v, want floor of 70 for heavy overqualification", got)
	}

	got = e.ExperienceScore("4 years", "Junior Developer", "")
	if got != 90 {
		t.Errorf("score = %v, want 100 - 2*5 for two years over", got)
	}
}

func TestExperienceScoreUnderqualified(t *testing.T) {
	e := newTestEngine()

	// expert range starts at 8; two years leaves a gap of 6: floor at 30.
	got := e.ExperienceScore("2 years", "Staff Engineer", "")
	if got != 30 {
		t.Errorf("score = %v, want floor of 30", got)
	}

	// senior range starts at 5; four years is a gap of 1: 100 - 20 = 80.
	got = e.ExperienceScore("4 years", "Senior Engineer", "")
	if got != 80 {
		t.Errorf("score = %v, want 80 for a one-year gap", got)
	}
}

func TestYearsFromExperience(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		text string
		want int
	}{
		{"3 years", 3},
		{"5+ years", 5},
		{"2-5 years", 5}, // the N-years pattern hits "5 years" first
		{"7 yrs", 7},
		{"senior developer", 6},
		{"junior", 1},
		{"some unrelated text", 2}, // default assumption
		{"", 0},
	}

	for _, tt := range tests {
		if got := e.yearsFromExperience(tt.text); got != tt.want {
			t.Errorf("yearsFromExperience(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
