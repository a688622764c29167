package applicationsrv

import (
	"context"
	"errors"
	"time"

	"github.com/devhire/matchbox/pkg/errx"
	"github.com/devhire/matchbox/pkg/kernel"
	"github.com/devhire/matchbox/pkg/logx"
	"github.com/devhire/matchbox/recruitment/application"
	"github.com/devhire/matchbox/recruitment/job"
	"github.com/devhire/matchbox/recruitment/matching/matchsrv"
	"github.com/devhire/matchbox/recruitment/profile"
	"github.com/google/uuid"
)

// ApplicationService provides business operations for job applications
type ApplicationService struct {
	appRepo     application.Repository
	jobRepo     job.Repository
	profileRepo profile.Repository
	engine      *matchsrv.Engine
}

// NewApplicationService creates a new instance of the application service
func NewApplicationService(
	appRepo application.Repository,
	jobRepo job.Repository,
	profileRepo profile.Repository,
	engine *matchsrv.Engine,
) *ApplicationService {
	return &ApplicationService{
		appRepo:     appRepo,
		jobRepo:     jobRepo,
		profileRepo: profileRepo,
		engine:      engine,
	}
}

// Apply submits a new application. The job must be published, duplicates are
// rejected, and the fit score is computed and frozen at submission time.
func (s *ApplicationService) Apply(ctx context.Context, req application.ApplyRequest) (*application.ApplicationResponse, error) {
	if req.JobID.IsEmpty() || req.ProfileID.IsEmpty() {
		return nil, application.ErrInvalidApplicationData().
			WithDetail("job_id", req.JobID.String()).
			WithDetail("profile_id", req.ProfileID.String())
	}

	jobEntity, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, err
	}
	if !jobEntity.IsPublished() {
		return nil, application.ErrJobNotOpen().
			WithDetail("job_id", req.JobID.String()).
			WithDetail("job_status", string(jobEntity.Status))
	}

	profileEntity, err := s.profileRepo.GetByID(ctx, req.ProfileID)
	if err != nil {
		return nil, err
	}

	if existing, err := s.appRepo.GetByJobAndProfile(ctx, req.JobID, req.ProfileID); err == nil && existing != nil {
		return nil, application.ErrAlreadyApplied().
			WithDetail("job_id", req.JobID.String()).
			WithDetail("existing_application_id", existing.ID.String())
	}

	now := time.Now()
	app := &application.Application{
		ID:          kernel.NewApplicationID(uuid.NewString()),
		JobID:       req.JobID,
		ProfileID:   req.ProfileID,
		Status:      application.StatusApplied,
		CoverLetter: req.CoverLetter,
		AppliedAt:   now,
		UpdatedAt:   now,
	}

	match := s.engine.ScoreMatch(profileEntity, jobEntity)
	app.MatchScore = &match.OverallScore
	app.MatchCategory = string(match.MatchCategory)

	// The unique constraint on (job_id, profile_id) is the real duplicate
	// guard; the lookup above only gives a friendlier fast path.
	if err := s.appRepo.Create(ctx, app); err != nil {
		var e *errx.Error
		if errors.As(err, &e) {
			return nil, e
		}
		return nil, errx.Wrap(err, "failed to create application", errx.TypeInternal)
	}

	logx.Infof("application %s submitted: profile=%s job=%s score=%.2f",
		app.ID, req.ProfileID, req.JobID, match.OverallScore)

	resp := application.ToApplicationResponse(app)
	return &resp, nil
}

// GetApplication retrieves an application by ID
func (s *ApplicationService) GetApplication(ctx context.Context, id kernel.ApplicationID) (*application.ApplicationResponse, error) {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := application.ToApplicationResponse(app)
	return &resp, nil
}

// UpdateStatus moves an application through the funnel, validating the
// transition, and optionally records recruiter notes.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id kernel.ApplicationID, req application.UpdateStatusRequest) (*application.ApplicationResponse, error) {
	if !application.ValidStatus(req.Status) {
		return nil, application.ErrInvalidStatus().
			WithDetail("status", string(req.Status))
	}

	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !app.CanTransitionTo(req.Status) {
		return nil, application.ErrInvalidTransition().
			WithDetail("application_id", id.String()).
			WithDetail("from", string(app.Status)).
			WithDetail("to", string(req.Status))
	}

	app.Status = req.Status
	if req.Notes != nil {
		app.Notes = *req.Notes
	}
	app.UpdatedAt = time.Now()

	if err := s.appRepo.Update(ctx, app); err != nil {
		return nil, errx.Wrap(err, "failed to update application", errx.TypeInternal)
	}

	resp := application.ToApplicationResponse(app)
	return &resp, nil
}

// Withdraw removes an application on the candidate's request. Decided
// applications stay on record.
func (s *ApplicationService) Withdraw(ctx context.Context, id kernel.ApplicationID) error {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !app.CanWithdraw() {
		return application.ErrCannotWithdraw().
			WithDetail("application_id", id.String()).
			WithDetail("status", string(app.Status))
	}

	if err := s.appRepo.Delete(ctx, id); err != nil {
		return errx.Wrap(err, "failed to withdraw application", errx.TypeInternal)
	}

	return nil
}

// ListByJob retrieves applications for a posting, best match first.
func (s *ApplicationService) ListByJob(ctx context.Context, jobID kernel.JobID, pagination kernel.PaginationOptions) (*application.PaginatedApplicationsResponse, error) {
	if _, err := s.jobRepo.GetByID(ctx, jobID); err != nil {
		return nil, err
	}

	paginated, err := s.appRepo.ListByJob(ctx, jobID, pagination.Normalize())
	if err != nil {
		return nil, errx.Wrap(err, "failed to list applications by job", errx.TypeInternal)
	}

	return toPaginatedResponse(paginated), nil
}

// ListByProfile retrieves a candidate's applications, newest first.
func (s *ApplicationService) ListByProfile(ctx context.Context, profileID kernel.ProfileID, pagination kernel.PaginationOptions) (*application.PaginatedApplicationsResponse, error) {
	paginated, err := s.appRepo.ListByProfile(ctx, profileID, pagination.Normalize())
	if err != nil {
		return nil, errx.Wrap(err, "failed to list applications by profile", errx.TypeInternal)
	}

	return toPaginatedResponse(paginated), nil
}

func toPaginatedResponse(paginated *kernel.Paginated[application.Application]) *application.PaginatedApplicationsResponse {
	responses := make([]application.ApplicationResponse, 0, len(paginated.Items))
	for i := range paginated.Items {
		responses = append(responses, application.ToApplicationResponse(&paginated.Items[i]))
	}

	return &application.PaginatedApplicationsResponse{
		Items:      responses,
		Total:      paginated.Total,
		Page:       paginated.Page,
		PageSize:   paginated.PageSize,
		TotalPages: paginated.TotalPages,
	}
}
