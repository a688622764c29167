package matchsrv

import (
	"testing"

	"github.com/devhire/matchbox/pkg/kernel"
)

func TestLocationScoreRemoteAlwaysWins(t *testing.T) {
	e := newTestEngine()

	if got := e.LocationScore("Bangalore, India", "Remote", kernel.JobTypeFullTime); got != 100 {
		t.Errorf("remote location score = %v, want 100", got)
	}
	if got := e.LocationScore("Lima, Peru", "New York", kernel.JobTypeRemote); got != 100 {
		t.Errorf("remote job type score = %v, want 100", got)
	}
}

func TestLocationScoreMissingDataIsNeutral(t *testing.T) {
	e := newTestEngine()

	if got := e.LocationScore("", "Berlin", kernel.JobTypeFullTime); got != 50 {
		t.Errorf("score without candidate location = %v, want 50", got)
	}
	if got := e.LocationScore("Berlin", "", kernel.JobTypeRemote); got != 50 {
		t.Errorf("score without job location = %v, want 50 even for remote type", got)
	}
}

func TestLocationScoreContainment(t *testing.T) {
	e := newTestEngine()

	if got := e.LocationScore("Bangalore", "Bangalore, India", kernel.JobTypeFullTime); got != 100 {
		t.Errorf("containment score = %v, want 100", got)
	}
}

func TestLocationScoreSharedCountry(t *testing.T) {
	e := newTestEngine()

	if got := e.LocationScore("Mumbai, India", "Delhi, India", kernel.JobTypeFullTime); got != 70 {
		t.Errorf("shared country score = %v, want 70", got)
	}
	if got := e.LocationScore("Mumbai, India", "Austin, USA", kernel.JobTypeFullTime); got != 30 {
		t.Errorf("different country score = %v, want 30", got)
	}
}
