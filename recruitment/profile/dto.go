package profile

import (
	"time"

	"github.com/devhire/matchbox/pkg/kernel"
)

// CreateProfileRequest - DTO for creating a new profile
type CreateProfileRequest struct {
	Username       string            `json:"username" validate:"required"`
	FullName       string            `json:"full_name,omitempty"`
	Phone          string            `json:"phone,omitempty"`
	Location       string            `json:"location,omitempty"`
	Title          string            `json:"title,omitempty"`
	Experience     string            `json:"experience,omitempty"`
	ExpectedSalary *float64          `json:"expected_salary,omitempty"`
	Summary        string            `json:"summary,omitempty"`
	GitHubURL      string            `json:"github_url,omitempty"`
	LinkedInURL    string            `json:"linkedin_url,omitempty"`
	Skills         kernel.StringList `json:"skills,omitempty"`
}

// UpdateProfileRequest - DTO for a partial profile update
type UpdateProfileRequest struct {
	FullName       *string            `json:"full_name,omitempty"`
	Phone          *string            `json:"phone,omitempty"`
	Location       *string            `json:"location,omitempty"`
	Title          *string            `json:"title,omitempty"`
	Experience     *string            `json:"experience,omitempty"`
	ExpectedSalary *float64           `json:"expected_salary,omitempty"`
	Summary        *string            `json:"summary,omitempty"`
	GitHubURL      *string            `json:"github_url,omitempty"`
	LinkedInURL    *string            `json:"linkedin_url,omitempty"`
	Skills         *kernel.StringList `json:"skills,omitempty"`
}

// Response type alias for paginated profiles
type PaginatedProfilesResponse = kernel.Paginated[ProfileResponse]

// ProfileResponse - DTO for returning profile data
type ProfileResponse struct {
	ID             kernel.ProfileID  `json:"id"`
	Username       string            `json:"username"`
	FullName       string            `json:"full_name,omitempty"`
	Phone          string            `json:"phone,omitempty"`
	Location       string            `json:"location,omitempty"`
	Title          string            `json:"title,omitempty"`
	Experience     string            `json:"experience,omitempty"`
	ExpectedSalary *float64          `json:"expected_salary,omitempty"`
	Summary        string            `json:"summary,omitempty"`
	GitHubURL      string            `json:"github_url,omitempty"`
	LinkedInURL    string            `json:"linkedin_url,omitempty"`
	Skills         kernel.StringList `json:"skills"`
	ResumeID       kernel.ResumeID   `json:"resume_id,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// ToProfileResponse converts a domain entity to its response DTO
func ToProfileResponse(p *Profile) ProfileResponse {
	return ProfileResponse{
		ID:             p.ID,
		Username:       p.Username,
		FullName:       p.FullName,
		Phone:          p.Phone,
		Location:       p.Location,
		Title:          p.Title,
		Experience:     p.Experience,
		ExpectedSalary: p.ExpectedSalary,
		Summary:        p.Summary,
		GitHubURL:      p.GitHubURL,
		LinkedInURL:    p.LinkedInURL,
		Skills:         p.Skills,
		ResumeID:       p.ResumeID,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
