package application

import (
	"testing"
	"time"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from ApplicationStatus
		to   ApplicationStatus
		want bool
	}{
		{StatusApplied, StatusUnderReview, true},
		{StatusApplied, StatusRejected, true},
		{StatusApplied, StatusInterview, false},
		{StatusApplied, StatusHired, false},
		{StatusUnderReview, StatusInterview, true},
		{StatusUnderReview, StatusRejected, true},
		{StatusUnderReview, StatusApplied, false},
		{StatusInterview, StatusHired, true},
		{StatusInterview, StatusRejected, true},
		{StatusInterview, StatusUnderReview, false},
		{StatusHired, StatusRejected, false},
		{StatusRejected, StatusUnderReview, false},
		{StatusApplied, StatusApplied, false},
	}

	for _, tt := range tests {
		app := &Application{Status: tt.from}
		if got := app.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestCanWithdraw(t *testing.T) {
	open := []ApplicationStatus{StatusApplied, StatusUnderReview, StatusInterview}
	for _, s := range open {
		app := &Application{Status: s}
		if !app.CanWithdraw() {
			t.Errorf("CanWithdraw() = false for open status %s", s)
		}
	}

	decided := []ApplicationStatus{StatusHired, StatusRejected}
	for _, s := range decided {
		app := &Application{Status: s}
		if app.CanWithdraw() {
			t.Errorf("CanWithdraw() = true for terminal status %s", s)
		}
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []ApplicationStatus{StatusApplied, StatusUnderReview, StatusInterview, StatusHired, StatusRejected} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%s) = false", s)
		}
	}
	if ValidStatus("withdrawn") {
		t.Error("ValidStatus accepted an unknown status")
	}
}

func TestDaysSinceApplied(t *testing.T) {
	app := &Application{AppliedAt: time.Now().Add(-73 * time.Hour)}
	if got := app.DaysSinceApplied(); got != 3 {
		t.Errorf("DaysSinceApplied() = %d, want 3", got)
	}

	fresh := &Application{AppliedAt: time.Now()}
	if got := fresh.DaysSinceApplied(); got != 0 {
		t.Errorf("DaysSinceApplied() = %d, want 0", got)
	}
}
