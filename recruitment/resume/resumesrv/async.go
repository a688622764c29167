package resumesrv

import (
	"context"
	"fmt"
	"time"

	"github.com/devhire/matchbox/pkg/kernel"
	"github.com/devhire/matchbox/pkg/logx"
	"github.com/devhire/matchbox/recruitment/resume"
	"github.com/google/uuid"
)

// ParseResumeAsync queues the document for background parsing and returns
// the tracking job immediately.
func (s *Service) ParseResumeAsync(ctx context.Context, req resume.ParseResumeRequest) (*resume.ParseJobResponse, error) {
	logx.Infof("Queueing resume for async parsing: ProfileID=%s, File=%s", req.ProfileID, req.FileName)

	job := &resume.ParseJob{
		ID:          kernel.NewParseJobID(uuid.NewString()),
		ProfileID:   req.ProfileID,
		FilePath:    req.FilePath,
		FileName:    req.FileName,
		FileType:    req.FileType,
		Status:      resume.ParseJobStatusPending,
		MaxAttempts: resume.DefaultMaxAttempts,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, resume.ErrJobCreationFailed().
			WithDetail("profile_id", req.ProfileID).
			WithDetail("file_name", req.FileName).
			WithDetails(map[string]any{
				"error": err.Error(),
			})
	}

	if err := s.queue.Enqueue(ctx, job.ID, job); err != nil {
		job.MarkFailed("failed to enqueue")
		_ = s.jobRepo.Update(ctx, job)

		return nil, resume.ErrQueueEnqueueFailed().
			WithDetail("job_id", job.ID).
			WithDetail("profile_id", req.ProfileID).
			WithDetails(map[string]any{
				"error": err.Error(),
			})
	}

	logx.Infof("Parse job queued: JobID=%s", job.ID)
	return resume.ToParseJobResponse(job), nil
}

// ProcessParseJob runs one queued job end to end. Called by workers.
func (s *Service) ProcessParseJob(ctx context.Context, job *resume.ParseJob) error {
	logx.Infof("Processing parse job: JobID=%s, Attempt=%d/%d", job.ID, job.Attempts+1, job.MaxAttempts)

	job.MarkProcessing()
	if err := s.jobRepo.Update(ctx, job); err != nil {
		return resume.ErrJobUpdateFailed().
			WithDetail("job_id", job.ID).
			WithDetails(map[string]any{
				"error": err.Error(),
			})
	}

	fileData, err := s.fileReader.ReadFile(ctx, job.FilePath)
	if err != nil {
		return s.handleJobError(ctx, job, "file_read_failed", err)
	}

	text, err := s.extractText(job.FileType, fileData)
	if err != nil {
		// Unsupported format never becomes readable, so don't retry it.
		job.Attempts = job.MaxAttempts
		return s.handleJobError(ctx, job, "invalid_file_type", err)
	}

	parsed := s.parser.Parse(ctx, text)
	resumeModel := s.buildResume(parsed, resume.ParseResumeRequest{
		ProfileID: job.ProfileID,
		FilePath:  job.FilePath,
		FileName:  job.FileName,
		FileType:  job.FileType,
	})

	if err := s.repo.Create(ctx, resumeModel); err != nil {
		return s.handleJobError(ctx, job, "save_failed", err)
	}

	s.enrichProfile(ctx, job.ProfileID, resumeModel)

	job.MarkCompleted(resumeModel.ID)
	if err := s.jobRepo.Update(ctx, job); err != nil {
		// The resume exists; losing the status update is not worth failing for.
		logx.Errorf("Failed to mark job as completed: %v", err)
	}

	logx.Infof("Parse job completed: JobID=%s, ResumeID=%s", job.ID, resumeModel.ID)
	return nil
}

// handleJobError records a failure and schedules a retry with exponential
// backoff until the attempt budget runs out.
func (s *Service) handleJobError(ctx context.Context, job *resume.ParseJob, errorType string, err error) error {
	reason := fmt.Sprintf("%s: %v", errorType, err)

	if job.Attempts < job.MaxAttempts {
		retryDelay := time.Duration(1<<uint(job.Attempts)) * time.Minute

		logx.Warnf("Parse job failed, will retry: JobID=%s, Attempt=%d/%d, Delay=%v, Error=%s",
			job.ID, job.Attempts, job.MaxAttempts, retryDelay, errorType)

		if queueErr := s.queue.EnqueueDelayed(ctx, job.ID, job, retryDelay); queueErr != nil {
			logx.Errorf("Failed to enqueue retry: %v", queueErr)
			job.MarkFailed(reason + " (retry enqueue failed)")
			_ = s.jobRepo.Update(ctx, job)
			return resume.ErrQueueEnqueueFailed().
				WithDetail("job_id", job.ID).
				WithDetail("error_type", errorType)
		}

		job.Status = resume.ParseJobStatusPending
		job.LastError = reason
		job.UpdatedAt = time.Now()
		if updateErr := s.jobRepo.Update(ctx, job); updateErr != nil {
			logx.Errorf("Failed to update job for retry: %v", updateErr)
		}
		return nil
	}

	logx.Errorf("Parse job permanently failed: JobID=%s, Error=%s, Attempts=%d/%d",
		job.ID, errorType, job.Attempts, job.MaxAttempts)

	job.MarkFailed(reason)
	_ = s.jobRepo.Update(ctx, job)

	return resume.ErrParseJobExhausted().
		WithDetail("job_id", job.ID).
		WithDetail("error_type", errorType).
		WithDetail("final_attempt", job.Attempts)
}

// GetParseJob retrieves the current status of a parse job.
func (s *Service) GetParseJob(ctx context.Context, jobID kernel.ParseJobID) (*resume.ParseJobResponse, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, resume.ErrParseJobNotFound().
			WithDetail("job_id", jobID)
	}

	return resume.ToParseJobResponse(job), nil
}

// ListParseJobsByProfile lists parse jobs for a profile, newest first.
func (s *Service) ListParseJobsByProfile(ctx context.Context, profileID kernel.ProfileID, pagination kernel.PaginationOptions) (*kernel.Paginated[resume.ParseJobResponse], error) {
	paginated, err := s.jobRepo.ListByProfileID(ctx, profileID, pagination.Normalize())
	if err != nil {
		return nil, resume.ErrRegistry.NewWithCause(resume.CodeParseJobNotFound, err).
			WithDetail("profile_id", profileID)
	}

	responses := make([]resume.ParseJobResponse, 0, len(paginated.Items))
	for i := range paginated.Items {
		responses = append(responses, *resume.ToParseJobResponse(&paginated.Items[i]))
	}

	return &kernel.Paginated[resume.ParseJobResponse]{
		Items:      responses,
		Total:      paginated.Total,
		Page:       paginated.Page,
		PageSize:   paginated.PageSize,
		TotalPages: paginated.TotalPages,
	}, nil
}

// RequeueFailedJobs re-enqueues failed jobs with remaining attempts. Run
// periodically by the worker as a safety net for lost delayed entries.
func (s *Service) RequeueFailedJobs(ctx context.Context, limit int) (int, error) {
	jobs, err := s.jobRepo.GetFailedJobsForRetry(ctx, limit)
	if err != nil {
		return 0, resume.ErrRegistry.NewWithCause(resume.CodeParseJobNotFound, err)
	}

	requeued := 0
	for _, job := range jobs {
		if !job.CanRetry() {
			continue
		}

		job.Status = resume.ParseJobStatusPending
		job.UpdatedAt = time.Now()
		if err := s.jobRepo.Update(ctx, job); err != nil {
			logx.Errorf("Failed to reset job %s for retry: %v", job.ID, err)
			continue
		}
		if err := s.queue.Enqueue(ctx, job.ID, job); err != nil {
			logx.Errorf("Failed to requeue job %s: %v", job.ID, err)
			continue
		}
		requeued++
	}

	if requeued > 0 {
		logx.Infof("Requeued %d failed parse jobs", requeued)
	}
	return requeued, nil
}
