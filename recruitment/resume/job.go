package resume

import (
	"time"

	"github.com/devhire/matchbox/pkg/kernel"
)

// ParseJobStatus is the lifecycle state of an async parse job.
type ParseJobStatus string

const (
	ParseJobStatusPending    ParseJobStatus = "PENDING"
	ParseJobStatusProcessing ParseJobStatus = "PROCESSING"
	ParseJobStatusCompleted  ParseJobStatus = "COMPLETED"
	ParseJobStatusFailed     ParseJobStatus = "FAILED"
)

const DefaultMaxAttempts = 3

// ParseJob tracks one queued resume-parsing request from upload to
// completion.
type ParseJob struct {
	ID        kernel.ParseJobID `db:"id" json:"id"`
	ProfileID kernel.ProfileID  `db:"profile_id" json:"profile_id"`

	FilePath string `db:"file_path" json:"file_path"`
	FileName string `db:"file_name" json:"file_name"`
	FileType string `db:"file_type" json:"file_type"`

	Status      ParseJobStatus   `db:"status" json:"status"`
	ResumeID    *kernel.ResumeID `db:"resume_id" json:"resume_id,omitempty"`
	Attempts    int              `db:"attempts" json:"attempts"`
	MaxAttempts int              `db:"max_attempts" json:"max_attempts"`
	LastError   string           `db:"last_error" json:"last_error,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// MarkProcessing transitions the job into processing and counts the attempt.
func (j *ParseJob) MarkProcessing() {
	j.Status = ParseJobStatusProcessing
	j.Attempts++
	j.UpdatedAt = time.Now()
}

// MarkCompleted records the produced resume and closes the job.
func (j *ParseJob) MarkCompleted(resumeID kernel.ResumeID) {
	j.Status = ParseJobStatusCompleted
	j.ResumeID = &resumeID
	j.UpdatedAt = time.Now()
}

// MarkFailed records the failure reason.
func (j *ParseJob) MarkFailed(reason string) {
	j.Status = ParseJobStatusFailed
	j.LastError = reason
	j.UpdatedAt = time.Now()
}

// CanRetry reports whether another attempt is allowed.
func (j *ParseJob) CanRetry() bool {
	return j.Status == ParseJobStatusFailed && j.Attempts < j.MaxAttempts
}

// IsTerminal reports whether the job reached a final state.
func (j *ParseJob) IsTerminal() bool {
	return j.Status == ParseJobStatusCompleted ||
		(j.Status == ParseJobStatusFailed && j.Attempts >= j.MaxAttempts)
}
