package job

import (
	"time"

	"github.com/devhire/matchbox/pkg/kernel"
)

// CreateJobRequest - DTO for creating a new job
type CreateJobRequest struct {
	Title        kernel.JobTitle        `json:"title" validate:"required"`
	Department   string                 `json:"department,omitempty"`
	Description  kernel.JobDescription  `json:"description,omitempty"`
	Type         kernel.JobType         `json:"job_type,omitempty"`
	Location     string                 `json:"location,omitempty"`
	SalaryMin    *float64               `json:"salary_min,omitempty"`
	SalaryMax    *float64               `json:"salary_max,omitempty"`
	Requirements kernel.RequirementList `json:"requirements,omitempty"`
	Benefits     []kernel.JobBenefit    `json:"benefits,omitempty"`
	RecruiterID  kernel.RecruiterID     `json:"recruiter_id" validate:"required"`
}

// UpdateJobRequest - DTO for updating an existing job
type UpdateJobRequest struct {
	Title        *kernel.JobTitle        `json:"title,omitempty"`
	Department   *string                 `json:"department,omitempty"`
	Description  *kernel.JobDescription  `json:"description,omitempty"`
	Type         *kernel.JobType         `json:"job_type,omitempty"`
	Location     *string                 `json:"location,omitempty"`
	SalaryMin    *float64                `json:"salary_min,omitempty"`
	SalaryMax    *float64                `json:"salary_max,omitempty"`
	Requirements *kernel.RequirementList `json:"requirements,omitempty"`
	Benefits     *[]kernel.JobBenefit    `json:"benefits,omitempty"`
}

// ListJobsRequest - DTO for listing all jobs
type ListJobsRequest struct {
	Pagination kernel.PaginationOptions `json:"pagination"`
}

// SearchJobsRequest - DTO for searching jobs
type SearchJobsRequest struct {
	Query      string                   `json:"query,omitempty"`
	Title      string                   `json:"title,omitempty"`
	Location   string                   `json:"location,omitempty"`
	Type       kernel.JobType           `json:"job_type,omitempty"`
	Pagination kernel.PaginationOptions `json:"pagination"`
}

// Response type alias for paginated jobs
type PaginatedJobsResponse = kernel.Paginated[JobResponse]

// JobResponse - DTO for returning job data
type JobResponse struct {
	ID           kernel.JobID           `json:"id"`
	RecruiterID  kernel.RecruiterID     `json:"recruiter_id"`
	Title        kernel.JobTitle        `json:"title"`
	Department   string                 `json:"department,omitempty"`
	Description  kernel.JobDescription  `json:"description,omitempty"`
	Type         kernel.JobType         `json:"job_type"`
	Location     string                 `json:"location,omitempty"`
	SalaryMin    *float64               `json:"salary_min,omitempty"`
	SalaryMax    *float64               `json:"salary_max,omitempty"`
	Requirements kernel.RequirementList `json:"requirements"`
	Benefits     []kernel.JobBenefit    `json:"benefits,omitempty"`
	Status       JobStatus              `json:"status"`
	PublishedAt  *time.Time             `json:"published_at,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

// ToJobResponse converts a domain entity to its response DTO
func ToJobResponse(j *Job) JobResponse {
	return JobResponse{
		ID:           j.ID,
		RecruiterID:  j.RecruiterID,
		Title:        j.Title,
		Department:   j.Department,
		Description:  j.Description,
		Type:         j.Type,
		Location:     j.Location,
		SalaryMin:    j.SalaryMin,
		SalaryMax:    j.SalaryMax,
		Requirements: j.Requirements,
		Benefits:     j.Benefits,
		Status:       j.Status,
		PublishedAt:  j.PublishedAt,
		CreatedAt:    j.CreatedAt,
		UpdatedAt:    j.UpdatedAt,
	}
}
