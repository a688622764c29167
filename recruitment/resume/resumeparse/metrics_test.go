package resumeparse

import (
	"testing"
	"time"

	"github.com/devhire/matchbox/recruitment/resume"
)

func TestDurationYears(t *testing.T) {
	tests := []struct {
		duration string
		want     int
	}{
		{"2018 - 2021", 3},
		{"Jan 2015 - Dec 2017", 2},
		{"2021 - 2018", 0}, // reversed ranges never go negative
		{"2019 - Present", time.Now().Year() - 2019},
		{"2020", 1},
		{"six years", 0},
	}

	for _, tt := range tests {
		if got := durationYears(tt.duration, time.Now().Year()); got != tt.want {
			t.Errorf("durationYears(%q) = %d, want %d", tt.duration, got, tt.want)
		}
	}
}

func TestDurationMonths(t *testing.T) {
	tests := []struct {
		duration string
		want     int
	}{
		{"3 months", 3},
		{"1 month", 1},
		{"10 weeks", 2}, // 10 * 0.23 rounded
		{"2 weeks", 0},
		{"Summer 2022", 3},
		{"Winter 2021", 2},
		{"2019 - 2020", 12},
		{"internship during final year", 3},
		{"some stretch of time", 6},
	}

	for _, tt := range tests {
		if got := durationMonths(tt.duration, time.Now().Year()); got != tt.want {
			t.Errorf("durationMonths(%q) = %d, want %d", tt.duration, got, tt.want)
		}
	}
}

func TestExperienceMetricsAggregates(t *testing.T) {
	work := []resume.ExperienceEntry{
		{Duration: "2016 - 2020"},
		{Duration: "2020 - 2022"},
		{Duration: ""}, // no duration, no contribution
	}
	internships := []resume.ExperienceEntry{
		{Duration: "Summer 2019"},
		{Duration: "6 months"},
	}

	years, months := newTestParser().ExperienceMetrics(work, internships)

	if years != 6 {
		t.Errorf("years = %d, want 6", years)
	}
	if months != 9 {
		t.Errorf("internship months = %d, want 9", months)
	}
}
