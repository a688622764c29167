package jobsrv

import (
	"context"
	"time"

	"github.com/devhire/matchbox/pkg/errx"
	"github.com/devhire/matchbox/pkg/kernel"
	"github.com/devhire/matchbox/recruitment/job"
	"github.com/google/uuid"
)

// JobService provides business operations for job postings
type JobService struct {
	jobRepo job.Repository
}

// NewJobService creates a new instance of the job service
func NewJobService(jobRepo job.Repository) *JobService {
	return &JobService{
		jobRepo: jobRepo,
	}
}

// CreateJob creates a new job posting in draft status
func (s *JobService) CreateJob(ctx context.Context, req job.CreateJobRequest) (*job.Job, error) {
	if req.Title == "" {
		return nil, job.ErrInvalidJobData().WithDetail("field", "title")
	}
	if req.RecruiterID.IsEmpty() {
		return nil, job.ErrInvalidJobData().WithDetail("field", "recruiter_id")
	}
	if req.SalaryMin != nil && req.SalaryMax != nil && *req.SalaryMax < *req.SalaryMin {
		return nil, job.ErrInvalidJobData().
			WithDetail("salary_min", *req.SalaryMin).
			WithDetail("salary_max", *req.SalaryMax)
	}

	jobType := req.Type
	if jobType == "" {
		jobType = kernel.JobTypeFullTime
	}

	newJob := &job.Job{
		ID:           kernel.NewJobID(uuid.NewString()),
		RecruiterID:  req.RecruiterID,
		Title:        req.Title,
		Department:   req.Department,
		Description:  req.Description,
		Type:         jobType,
		Location:     req.Location,
		SalaryMin:    req.SalaryMin,
		SalaryMax:    req.SalaryMax,
		Requirements: req.Requirements,
		Benefits:     req.Benefits,
		Status:       job.JobStatusDraft,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.jobRepo.Create(ctx, newJob); err != nil {
		return nil, errx.Wrap(err, "failed to create job", errx.TypeInternal)
	}

	return newJob, nil
}

// GetJobByID retrieves a job by ID
func (s *JobService) GetJobByID(ctx context.Context, jobID kernel.JobID) (*job.JobResponse, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	resp := job.ToJobResponse(jobEntity)
	return &resp, nil
}

// UpdateJob applies a partial update to an existing job
func (s *JobService) UpdateJob(ctx context.Context, jobID kernel.JobID, req job.UpdateJobRequest) (*job.Job, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if !jobEntity.CanBeEdited() {
		return nil, job.ErrJobAlreadyArchived().WithDetail("job_id", jobID.String())
	}

	if req.Title != nil {
		jobEntity.Title = *req.Title
	}
	if req.Department != nil {
		jobEntity.Department = *req.Department
	}
	if req.Description != nil {
		jobEntity.Description = *req.Description
	}
	if req.Type != nil {
		jobEntity.Type = *req.Type
	}
	if req.Location != nil {
		jobEntity.Location = *req.Location
	}
	if req.SalaryMin != nil {
		jobEntity.SalaryMin = req.SalaryMin
	}
	if req.SalaryMax != nil {
		jobEntity.SalaryMax = req.SalaryMax
	}
	if req.Requirements != nil {
		jobEntity.Requirements = *req.Requirements
	}
	if req.Benefits != nil {
		jobEntity.Benefits = *req.Benefits
	}
	jobEntity.UpdatedAt = time.Now()

	if err := s.jobRepo.Update(ctx, jobID, jobEntity); err != nil {
		return nil, errx.Wrap(err, "failed to update job", errx.TypeInternal)
	}

	return jobEntity, nil
}

// PublishJob transitions a draft job to published
func (s *JobService) PublishJob(ctx context.Context, jobID kernel.JobID) (*job.Job, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if err := jobEntity.Publish(); err != nil {
		return nil, err
	}

	if err := s.jobRepo.Update(ctx, jobID, jobEntity); err != nil {
		return nil, errx.Wrap(err, "failed to publish job", errx.TypeInternal)
	}

	return jobEntity, nil
}

// CloseJob marks a published job as closed
func (s *JobService) CloseJob(ctx context.Context, jobID kernel.JobID) (*job.Job, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if !jobEntity.IsPublished() {
		return nil, job.ErrJobNotPublished().WithDetail("job_id", jobID.String())
	}

	jobEntity.Close()

	if err := s.jobRepo.Update(ctx, jobID, jobEntity); err != nil {
		return nil, errx.Wrap(err, "failed to close job", errx.TypeInternal)
	}

	return jobEntity, nil
}

// ArchiveJob archives a job, removing it from all listings
func (s *JobService) ArchiveJob(ctx context.Context, jobID kernel.JobID) error {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return err
	}

	if err := jobEntity.Archive(); err != nil {
		return err
	}

	if err := s.jobRepo.Update(ctx, jobID, jobEntity); err != nil {
		return errx.Wrap(err, "failed to archive job", errx.TypeInternal)
	}

	return nil
}

// DeleteJob deletes a job by ID
func (s *JobService) DeleteJob(ctx context.Context, jobID kernel.JobID) error {
	exists, err := s.jobRepo.Exists(ctx, jobID)
	if err != nil {
		return errx.Wrap(err, "failed to check job existence", errx.TypeInternal)
	}
	if !exists {
		return job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	if err := s.jobRepo.Delete(ctx, jobID); err != nil {
		return errx.Wrap(err, "failed to delete job", errx.TypeInternal)
	}

	return nil
}

// ListJobs retrieves all jobs with pagination
func (s *JobService) ListJobs(ctx context.Context, pagination kernel.PaginationOptions) (*job.PaginatedJobsResponse, error) {
	jobs, err := s.jobRepo.List(ctx, pagination.Normalize())
	if err != nil {
		return nil, errx.Wrap(err, "failed to list jobs", errx.TypeInternal)
	}
	return toPaginatedResponse(jobs), nil
}

// ListPublishedJobs retrieves only published jobs with pagination
func (s *JobService) ListPublishedJobs(ctx context.Context, pagination kernel.PaginationOptions) (*job.PaginatedJobsResponse, error) {
	jobs, err := s.jobRepo.ListPublished(ctx, pagination.Normalize())
	if err != nil {
		return nil, errx.Wrap(err, "failed to list published jobs", errx.TypeInternal)
	}
	return toPaginatedResponse(jobs), nil
}

// ListJobsByRecruiter retrieves jobs posted by a recruiter
func (s *JobService) ListJobsByRecruiter(ctx context.Context, recruiterID kernel.RecruiterID, pagination kernel.PaginationOptions) (*job.PaginatedJobsResponse, error) {
	jobs, err := s.jobRepo.ListByRecruiter(ctx, recruiterID, pagination.Normalize())
	if err != nil {
		return nil, errx.Wrap(err, "failed to list recruiter jobs", errx.TypeInternal)
	}
	return toPaginatedResponse(jobs), nil
}

// SearchJobs searches jobs by title, location, and type
func (s *JobService) SearchJobs(ctx context.Context, req job.SearchJobsRequest) (*job.PaginatedJobsResponse, error) {
	req.Pagination = req.Pagination.Normalize()
	jobs, err := s.jobRepo.Search(ctx, req)
	if err != nil {
		return nil, errx.Wrap(err, "failed to search jobs", errx.TypeInternal)
	}
	return toPaginatedResponse(jobs), nil
}

func toPaginatedResponse(jobs *kernel.Paginated[job.Job]) *job.PaginatedJobsResponse {
	responses := make([]job.JobResponse, 0, len(jobs.Items))
	for i := range jobs.Items {
		responses = append(responses, job.ToJobResponse(&jobs.Items[i]))
	}
	return &job.PaginatedJobsResponse{
		Items:      responses,
		Total:      jobs.Total,
		Page:       jobs.Page,
		PageSize:   jobs.PageSize,
		TotalPages: jobs.TotalPages,
	}
}
