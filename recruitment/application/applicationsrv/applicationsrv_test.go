package applicationsrv

import (
	"context"
	"errors"
	"testing"

	"github.com/devhire/matchbox/pkg/errx"
	"github.com/devhire/matchbox/pkg/kernel"
	"github.com/devhire/matchbox/recruitment/application"
	"github.com/devhire/matchbox/recruitment/job"
	"github.com/devhire/matchbox/recruitment/matching/matchsrv"
	"github.com/devhire/matchbox/recruitment/profile"
)

type fakeAppRepo struct {
	byID map[kernel.ApplicationID]*application.Application
}

func newFakeAppRepo() *fakeAppRepo {
	return &fakeAppRepo{byID: make(map[kernel.ApplicationID]*application.Application)}
}

func (f *fakeAppRepo) Create(ctx context.Context, app *application.Application) error {
	for _, existing := range f.byID {
		if existing.JobID == app.JobID && existing.ProfileID == app.ProfileID {
			return application.ErrAlreadyApplied()
		}
	}
	stored := *app
	f.byID[app.ID] = &stored
	return nil
}

func (f *fakeAppRepo) Update(ctx context.Context, app *application.Application) error {
	if _, ok := f.byID[app.ID]; !ok {
		return application.ErrApplicationNotFound()
	}
	stored := *app
	f.byID[app.ID] = &stored
	return nil
}

func (f *fakeAppRepo) GetByID(ctx context.Context, id kernel.ApplicationID) (*application.Application, error) {
	app, ok := f.byID[id]
	if !ok {
		return nil, application.ErrApplicationNotFound()
	}
	copied := *app
	return &copied, nil
}

func (f *fakeAppRepo) GetByJobAndProfile(ctx context.Context, jobID kernel.JobID, profileID kernel.ProfileID) (*application.Application, error) {
	for _, app := range f.byID {
		if app.JobID == jobID && app.ProfileID == profileID {
			copied := *app
			return &copied, nil
		}
	}
	return nil, application.ErrApplicationNotFound()
}

func (f *fakeAppRepo) Delete(ctx context.Context, id kernel.ApplicationID) error {
	if _, ok := f.byID[id]; !ok {
		return application.ErrApplicationNotFound()
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeAppRepo) ListByJob(ctx context.Context, jobID kernel.JobID, pagination kernel.PaginationOptions) (*kernel.Paginated[application.Application], error) {
	var items []application.Application
	for _, app := range f.byID {
		if app.JobID == jobID {
			items = append(items, *app)
		}
	}
	return kernel.NewPaginated(items, int64(len(items)), pagination), nil
}

func (f *fakeAppRepo) ListByProfile(ctx context.Context, profileID kernel.ProfileID, pagination kernel.PaginationOptions) (*kernel.Paginated[application.Application], error) {
	var items []application.Application
	for _, app := range f.byID {
		if app.ProfileID == profileID {
			items = append(items, *app)
		}
	}
	return kernel.NewPaginated(items, int64(len(items)), pagination), nil
}

func (f *fakeAppRepo) CountByJob(ctx context.Context, jobID kernel.JobID) (int64, error) {
	var n int64
	for _, app := range f.byID {
		if app.JobID == jobID {
			n++
		}
	}
	return n, nil
}

type fakeJobRepo struct {
	job.Repository
	jobs map[kernel.JobID]*job.Job
}

func (f *fakeJobRepo) GetByID(ctx context.Context, id kernel.JobID) (*job.Job, error) {
	j, ok := f.jobs[id]
	if !ok {
		return nil, job.ErrJobNotFound()
	}
	return j, nil
}

type fakeProfileRepo struct {
	profile.Repository
	profiles map[kernel.ProfileID]*profile.Profile
}

func (f *fakeProfileRepo) GetByID(ctx context.Context, id kernel.ProfileID) (*profile.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, profile.ErrProfileNotFound()
	}
	return p, nil
}

func fixtures() (*ApplicationService, *fakeAppRepo) {
	salMin := 80000.0
	salMax := 120000.0
	published := &job.Job{
		ID:           "job-1",
		Title:        "Senior Backend Engineer",
		Type:         kernel.JobTypeRemote,
		Location:     "Remote",
		SalaryMin:    &salMin,
		SalaryMax:    &salMax,
		Requirements: kernel.RequirementList{"python", "django"},
		Status:       job.JobStatusPublished,
	}
	draft := &job.Job{
		ID:     "job-2",
		Title:  "Data Engineer",
		Status: job.JobStatusDraft,
	}

	expected := 90000.0
	candidate := &profile.Profile{
		ID:             "prof-1",
		Username:       "asha",
		Location:       "Bangalore, India",
		Experience:     "6 years",
		ExpectedSalary: &expected,
		Skills:         kernel.StringList{"python", "django", "postgresql"},
	}

	appRepo := newFakeAppRepo()
	svc := NewApplicationService(
		appRepo,
		&fakeJobRepo{jobs: map[kernel.JobID]*job.Job{published.ID: published, draft.ID: draft}},
		&fakeProfileRepo{profiles: map[kernel.ProfileID]*profile.Profile{candidate.ID: candidate}},
		matchsrv.NewEngine(matchsrv.DefaultTables()),
	)
	return svc, appRepo
}

func errCode(t *testing.T, err error) errx.Code {
	t.Helper()
	var e *errx.Error
	if !errors.As(err, &e) {
		t.Fatalf("expected an errx error, got %v", err)
	}
	return e.Code
}

func TestApplyScoresAndStores(t *testing.T) {
	svc, repo := fixtures()

	resp, err := svc.Apply(context.Background(), application.ApplyRequest{
		JobID:       "job-1",
		ProfileID:   "prof-1",
		CoverLetter: "I have shipped Django services for six years.",
	})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if resp.Status != application.StatusApplied {
		t.Errorf("status = %s, want %s", resp.Status, application.StatusApplied)
	}
	if resp.MatchScore == nil {
		t.Fatal("MatchScore was not computed at apply time")
	}
	if *resp.MatchScore <= 0 || *resp.MatchScore > 100 {
		t.Errorf("MatchScore = %v, want within (0, 100]", *resp.MatchScore)
	}
	if resp.MatchCategory == "" {
		t.Error("MatchCategory was not set")
	}

	stored, err := repo.GetByID(context.Background(), resp.ID)
	if err != nil {
		t.Fatalf("application was not persisted: %v", err)
	}
	if stored.CoverLetter != "I have shipped Django services for six years." {
		t.Errorf("stored cover letter = %q", stored.CoverLetter)
	}
}

func TestApplyRejectsUnpublishedJob(t *testing.T) {
	svc, _ := fixtures()

	_, err := svc.Apply(context.Background(), application.ApplyRequest{JobID: "job-2", ProfileID: "prof-1"})
	if err == nil {
		t.Fatal("Apply() accepted a draft job")
	}
	if code := errCode(t, err); code != application.CodeJobNotOpen {
		t.Errorf("error code = %s, want %s", code, application.CodeJobNotOpen)
	}
}

func TestApplyRejectsDuplicate(t *testing.T) {
	svc, _ := fixtures()

	req := application.ApplyRequest{JobID: "job-1", ProfileID: "prof-1"}
	if _, err := svc.Apply(context.Background(), req); err != nil {
		t.Fatalf("first Apply() error = %v", err)
	}

	_, err := svc.Apply(context.Background(), req)
	if err == nil {
		t.Fatal("Apply() accepted a duplicate application")
	}
	if code := errCode(t, err); code != application.CodeAlreadyApplied {
		t.Errorf("error code = %s, want %s", code, application.CodeAlreadyApplied)
	}
}

func TestUpdateStatusWalksTheFunnel(t *testing.T) {
	svc, _ := fixtures()

	resp, err := svc.Apply(context.Background(), application.ApplyRequest{JobID: "job-1", ProfileID: "prof-1"})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	notes := "strong take-home"
	updated, err := svc.UpdateStatus(context.Background(), resp.ID, application.UpdateStatusRequest{
		Status: application.StatusUnderReview,
		Notes:  &notes,
	})
	if err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if updated.Status != application.StatusUnderReview {
		t.Errorf("status = %s, want %s", updated.Status, application.StatusUnderReview)
	}
	if updated.Notes != notes {
		t.Errorf("notes = %q, want %q", updated.Notes, notes)
	}

	_, err = svc.UpdateStatus(context.Background(), resp.ID, application.UpdateStatusRequest{Status: application.StatusHired})
	if err == nil {
		t.Fatal("UpdateStatus() allowed skipping the interview stage")
	}
	if code := errCode(t, err); code != application.CodeInvalidTransition {
		t.Errorf("error code = %s, want %s", code, application.CodeInvalidTransition)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc, _ := fixtures()

	resp, err := svc.Apply(context.Background(), application.ApplyRequest{JobID: "job-1", ProfileID: "prof-1"})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	_, err = svc.UpdateStatus(context.Background(), resp.ID, application.UpdateStatusRequest{Status: "ghosted"})
	if err == nil {
		t.Fatal("UpdateStatus() accepted an unknown status")
	}
	if code := errCode(t, err); code != application.CodeInvalidStatus {
		t.Errorf("error code = %s, want %s", code, application.CodeInvalidStatus)
	}
}

func TestWithdrawRemovesOpenApplication(t *testing.T) {
	svc, repo := fixtures()

	resp, err := svc.Apply(context.Background(), application.ApplyRequest{JobID: "job-1", ProfileID: "prof-1"})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if err := svc.Withdraw(context.Background(), resp.ID); err != nil {
		t.Fatalf("Withdraw() error = %v", err)
	}
	if _, err := repo.GetByID(context.Background(), resp.ID); err == nil {
		t.Error("application still present after withdrawal")
	}
}

func TestWithdrawRejectsDecidedApplication(t *testing.T) {
	svc, repo := fixtures()

	resp, err := svc.Apply(context.Background(), application.ApplyRequest{JobID: "job-1", ProfileID: "prof-1"})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	stored, _ := repo.GetByID(context.Background(), resp.ID)
	stored.Status = application.StatusRejected
	if err := repo.Update(context.Background(), stored); err != nil {
		t.Fatalf("seeding terminal status: %v", err)
	}

	err = svc.Withdraw(context.Background(), resp.ID)
	if err == nil {
		t.Fatal("Withdraw() allowed removing a decided application")
	}
	if code := errCode(t, err); code != application.CodeCannotWithdraw {
		t.Errorf("error code = %s, want %s", code, application.CodeCannotWithdraw)
	}
}
