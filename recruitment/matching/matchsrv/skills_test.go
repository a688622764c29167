package matchsrv

import (
	"math"
	"testing"
)

func newTestEngine() *Engine {
	return NewEngine(DefaultTables())
}

func TestSkillScoreWeightedBackend(t *testing.T) {
	e := newTestEngine()

	// python matches exactly at backend weight 1.6; flask (1.3) has no
	// exact, substring, or synonym candidate.
	got := e.SkillScore([]string{"python", "django"}, []string{"python", "flask"}, "Backend Engineer")

	want := 1.6 / (1.6 + 1.3) * 100
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("skill score = %.4f, want %.4f", got, want)
	}
}

func TestSkillScoreEmptyLists(t *testing.T) {
	e := newTestEngine()

	if got := e.SkillScore(nil, []string{"python"}, "Backend Engineer"); got != 0 {
		t.Errorf("score with no candidate skills = %v, want 0", got)
	}
	if got := e.SkillScore([]string{"python"}, nil, "Backend Engineer"); got != 0 {
		t.Errorf("score with no requirements = %v, want 0", got)
	}
}

func TestSkillScoreSynonymMatch(t *testing.T) {
	e := newTestEngine()

	// "js" is a listed variant of "javascript" and not a substring of it:
	// similarity 0.9 clears the 0.7 floor and contributes weight x 0.9.
	got := e.SkillScore([]string{"js"}, []string{"javascript"}, "Some Role")

	if math.Abs(got-90) > 1e-9 {
		t.Errorf("synonym score = %.4f, want 90", got)
	}

	// Substring similarity outranks the synonym table when both apply.
	got = e.SkillScore([]string{"postgres"}, []string{"postgresql"}, "Some Role")
	if math.Abs(got-80) > 1e-9 {
		t.Errorf("substring score = %.4f, want 80", got)
	}
}

func TestSkillScoreClampedTo100(t *testing.T) {
	e := newTestEngine()

	got := e.SkillScore([]string{"python", "django", "flask"}, []string{"python", "django"}, "Backend Engineer")
	if got > 100 {
		t.Errorf("score = %v, must not exceed 100", got)
	}
}

func TestDetermineJobCategory(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		title string
		want  string
	}{
		{"Backend Engineer", "backend"},
		{"Frontend Developer", "frontend"},
		{"Full Stack Developer", "fullstack"},
		{"Data Scientist", "data"},
		{"iOS Developer", "mobile"},
		{"DevOps Engineer", "devops"},
		{"Office Manager", "general"},
	}

	for _, tt := range tests {
		if got := e.DetermineJobCategory(tt.title); got != tt.want {
			t.Errorf("DetermineJobCategory(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestMatchedSkillsAnnotatesNearMatches(t *testing.T) {
	e := newTestEngine()

	matched := e.MatchedSkills([]string{"Python", "reactjs"}, []string{"python", "react", "flask"})

	if len(matched) != 2 {
		t.Fatalf("matched = %v, want exact python plus annotated react", matched)
	}
	if matched[0] != "python" {
		t.Errorf("matched[0] = %q", matched[0])
	}
	if matched[1] != "react (similar to reactjs)" {
		t.Errorf("matched[1] = %q, want annotation naming the candidate skill", matched[1])
	}
}

func TestMissingSkills(t *testing.T) {
	e := newTestEngine()

	missing := e.MissingSkills([]string{"python"}, []string{"python", "flask", "aws"})
	if len(missing) != 2 || missing[0] != "flask" || missing[1] != "aws" {
		t.Errorf("missing = %v, want [flask aws]", missing)
	}

	// No candidate skills at all: everything is missing.
	missing = e.MissingSkills(nil, []string{"python", "go"})
	if len(missing) != 2 {
		t.Errorf("missing = %v, want every requirement", missing)
	}

	if missing := e.MissingSkills([]string{"python"}, nil); missing != nil {
		t.Errorf("missing = %v, want nil for no requirements", missing)
	}
}
