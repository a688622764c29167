package job

import (
	"strings"
	"time"

	"github.com/devhire/matchbox/pkg/kernel"
)

// JobStatus represents the lifecycle state of a posting
type JobStatus string

const (
	JobStatusDraft     JobStatus = "draft"     // Created but not visible to candidates
	JobStatusPublished JobStatus = "published" // Active and eligible for matching
	JobStatusClosed    JobStatus = "closed"    // No longer accepting candidates
	JobStatusArchived  JobStatus = "archived"  // Kept for history only
)

type Job struct {
	ID           kernel.JobID           `db:"id" json:"id"`
	RecruiterID  kernel.RecruiterID     `db:"recruiter_id" json:"recruiter_id"`
	Title        kernel.JobTitle        `db:"title" json:"title"`
	Department   string                 `db:"department" json:"department,omitempty"`
	Description  kernel.JobDescription  `db:"description" json:"description,omitempty"`
	Type         kernel.JobType         `db:"job_type" json:"job_type"`
	Location     string                 `db:"location" json:"location,omitempty"`
	SalaryMin    *float64               `db:"salary_min" json:"salary_min,omitempty"`
	SalaryMax    *float64               `db:"salary_max" json:"salary_max,omitempty"`
	Requirements kernel.RequirementList `db:"requirements" json:"requirements"`
	Benefits     []kernel.JobBenefit    `db:"benefits" json:"benefits,omitempty"`
	Status       JobStatus              `db:"status" json:"status"`
	PublishedAt  *time.Time             `db:"published_at" json:"published_at,omitempty"`
	ArchivedAt   *time.Time             `db:"archived_at" json:"archived_at,omitempty"`
	CreatedAt    time.Time              `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time              `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsPublished checks if the job is currently published
func (j *Job) IsPublished() bool {
	return j.Status == JobStatusPublished
}

// IsArchived checks if the job is archived
func (j *Job) IsArchived() bool {
	return j.Status == JobStatusArchived
}

// IsDraft checks if the job is in draft status
func (j *Job) IsDraft() bool {
	return j.Status == JobStatusDraft
}

// IsClosed checks if the job is closed
func (j *Job) IsClosed() bool {
	return j.Status == JobStatusClosed
}

// IsRemote reports whether the posting is advertised as remote, either by
// its working arrangement or by its location text.
func (j *Job) IsRemote() bool {
	return j.Type.IsRemote() || containsFold(j.Location, "remote")
}

// CanBePublished checks if a job can be published
func (j *Job) CanBePublished() bool {
	return j.Status == JobStatusDraft
}

// CanBeEdited checks if a job can be edited
func (j *Job) CanBeEdited() bool {
	return !j.IsArchived()
}

// Publish marks the job as published
func (j *Job) Publish() error {
	if !j.CanBePublished() {
		return ErrCannotPublish().WithDetail("current_status", string(j.Status))
	}

	now := time.Now()
	j.Status = JobStatusPublished
	j.PublishedAt = &now
	j.UpdatedAt = now
	return nil
}

// Unpublish returns the job to draft
func (j *Job) Unpublish() {
	j.Status = JobStatusDraft
	j.UpdatedAt = time.Now()
}

// Close marks the job as closed
func (j *Job) Close() {
	j.Status = JobStatusClosed
	j.UpdatedAt = time.Now()
}

// Archive marks the job as archived
func (j *Job) Archive() error {
	if j.IsArchived() {
		return ErrJobAlreadyArchived()
	}

	now := time.Now()
	j.Status = JobStatusArchived
	j.ArchivedAt = &now
	j.UpdatedAt = now
	return nil
}

// Unarchive removes archived status
func (j *Job) Unarchive() error {
	if !j.IsArchived() {
		return ErrJobNotArchived()
	}

	j.Status = JobStatusDraft
	j.ArchivedAt = nil
	j.UpdatedAt = time.Now()
	return nil
}

// UpdateDetails updates the editable posting fields, leaving blank inputs
// untouched.
func (j *Job) UpdateDetails(title kernel.JobTitle, description kernel.JobDescription, location string) {
	if title != "" {
		j.Title = title
	}
	if description != "" {
		j.Description = description
	}
	if location != "" {
		j.Location = location
	}
	j.UpdatedAt = time.Now()
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}
