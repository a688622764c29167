package application

import (
	"time"

	"github.com/devhire/matchbox/pkg/kernel"
)

// ApplicationStatus tracks a candidacy through the hiring funnel.
type ApplicationStatus string

const (
	StatusApplied     ApplicationStatus = "applied"
	StatusUnderReview ApplicationStatus = "under_review"
	StatusInterview   ApplicationStatus = "interview"
	StatusHired       ApplicationStatus = "hired"
	StatusRejected    ApplicationStatus = "rejected"
)

// Application is one candidate's application to one posting. A profile can
// apply to a given job at most once.
type Application struct {
	ID        kernel.ApplicationID `db:"id" json:"id"`
	JobID     kernel.JobID         `db:"job_id" json:"job_id"`
	ProfileID kernel.ProfileID     `db:"profile_id" json:"profile_id"`

	Status      ApplicationStatus `db:"status" json:"status"`
	CoverLetter string            `db:"cover_letter" json:"cover_letter,omitempty"`

	// Notes are internal recruiter notes, never shown to the candidate.
	Notes string `db:"notes" json:"notes,omitempty"`

	// MatchScore is the fit computed when the application was submitted.
	MatchScore    *float64 `db:"match_score" json:"match_score,omitempty"`
	MatchCategory string   `db:"match_category" json:"match_category,omitempty"`

	AppliedAt time.Time `db:"applied_at" json:"applied_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// IsTerminal reports whether the application reached a final decision.
func (a *Application) IsTerminal() bool {
	return a.Status == StatusHired || a.Status == StatusRejected
}

// CanWithdraw reports whether the candidate may still withdraw.
func (a *Application) CanWithdraw() bool {
	return !a.IsTerminal()
}

// CanTransitionTo validates a status move along the hiring funnel. Rejection
// is allowed from any open state; the forward path is strictly ordered.
func (a *Application) CanTransitionTo(next ApplicationStatus) bool {
	if a.IsTerminal() {
		return false
	}
	if next == StatusRejected {
		return true
	}
	switch a.Status {
	case StatusApplied:
		return next == StatusUnderReview
	case StatusUnderReview:
		return next == StatusInterview
	case StatusInterview:
		return next == StatusHired
	}
	return false
}

// ValidStatus reports whether s is one of the known funnel states.
func ValidStatus(s ApplicationStatus) bool {
	switch s {
	case StatusApplied, StatusUnderReview, StatusInterview, StatusHired, StatusRejected:
		return true
	}
	return false
}

// DaysSinceApplied returns whole days since submission.
func (a *Application) DaysSinceApplied() int {
	return int(time.Since(a.AppliedAt).Hours() / 24)
}
