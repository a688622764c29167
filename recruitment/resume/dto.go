package resume

import (
	"time"

	"github.com/devhire/matchbox/pkg/kernel"
)

// ParseResumeRequest - DTO for parsing an already-uploaded document
type ParseResumeRequest struct {
	ProfileID kernel.ProfileID `json:"profile_id" validate:"required"`
	FilePath  string           `json:"file_path" validate:"required"`
	FileName  string           `json:"file_name"`
	FileType  string           `json:"file_type" validate:"required"`
}

// GetResumeRequest - DTO for getting a resume by ID
type GetResumeRequest struct {
	ID kernel.ResumeID `json:"id" validate:"required"`
}

// ResumeResponse - DTO for returning resume data
type ResumeResponse struct {
	ID        kernel.ResumeID  `json:"id"`
	ProfileID kernel.ProfileID `json:"profile_id"`
	Parsed    ParsedResume     `json:"parsed"`
	FilePath  string           `json:"file_path"`
	FileName  string           `json:"file_name"`
	FileType  string           `json:"file_type"`
	ParsedAt  time.Time        `json:"parsed_at"`
	CreatedAt time.Time        `json:"created_at"`
}

// ParseJobResponse - DTO for returning async job status
type ParseJobResponse struct {
	ID        kernel.ParseJobID `json:"id"`
	ProfileID kernel.ProfileID  `json:"profile_id"`
	Status    ParseJobStatus    `json:"status"`
	ResumeID  *kernel.ResumeID  `json:"resume_id,omitempty"`
	Attempts  int               `json:"attempts"`
	LastError string            `json:"last_error,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Response type alias for paginated resumes
type PaginatedResumesResponse = kernel.Paginated[ResumeResponse]

// ToResumeResponse maps the aggregate to its response DTO.
func ToResumeResponse(r *Resume) *ResumeResponse {
	return &ResumeResponse{
		ID:        r.ID,
		ProfileID: r.ProfileID,
		Parsed:    r.Parsed,
		FilePath:  r.FilePath,
		FileName:  r.FileName,
		FileType:  r.FileType,
		ParsedAt:  r.ParsedAt,
		CreatedAt: r.CreatedAt,
	}
}

// ToParseJobResponse maps a parse job to its response DTO.
func ToParseJobResponse(j *ParseJob) *ParseJobResponse {
	return &ParseJobResponse{
		ID:        j.ID,
		ProfileID: j.ProfileID,
		Status:    j.Status,
		ResumeID:  j.ResumeID,
		Attempts:  j.Attempts,
		LastError: j.LastError,
		CreatedAt: j.CreatedAt,
		UpdatedAt: j.UpdatedAt,
	}
}
