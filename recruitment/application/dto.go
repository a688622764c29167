package application

import (
	"time"

	"github.com/devhire/matchbox/pkg/kernel"
)

// ApplyRequest - DTO for submitting an application
type ApplyRequest struct {
	JobID       kernel.JobID     `json:"job_id" validate:"required"`
	ProfileID   kernel.ProfileID `json:"profile_id" validate:"required"`
	CoverLetter string           `json:"cover_letter"`
}

// UpdateStatusRequest - DTO for moving an application through the funnel
type UpdateStatusRequest struct {
	Status ApplicationStatus `json:"status" validate:"required"`
	Notes  *string           `json:"notes"`
}

// ApplicationResponse - DTO for returning application data
type ApplicationResponse struct {
	ID               kernel.ApplicationID `json:"id"`
	JobID            kernel.JobID         `json:"job_id"`
	ProfileID        kernel.ProfileID     `json:"profile_id"`
	Status           ApplicationStatus    `json:"status"`
	CoverLetter      string               `json:"cover_letter,omitempty"`
	Notes            string               `json:"notes,omitempty"`
	MatchScore       *float64             `json:"match_score,omitempty"`
	MatchCategory    string               `json:"match_category,omitempty"`
	DaysSinceApplied int                  `json:"days_since_applied"`
	AppliedAt        time.Time            `json:"applied_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

// Response type alias for paginated applications
type PaginatedApplicationsResponse = kernel.Paginated[ApplicationResponse]

// ToApplicationResponse maps the entity to its response DTO.
func ToApplicationResponse(a *Application) ApplicationResponse {
	return ApplicationResponse{
		ID:               a.ID,
		JobID:            a.JobID,
		ProfileID:        a.ProfileID,
		Status:           a.Status,
		CoverLetter:      a.CoverLetter,
		Notes:            a.Notes,
		MatchScore:       a.MatchScore,
		MatchCategory:    a.MatchCategory,
		DaysSinceApplied: a.DaysSinceApplied(),
		AppliedAt:        a.AppliedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}
