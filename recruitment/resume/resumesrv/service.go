package resumesrv

import (
	"context"
	"strings"
	"time"

	"github.com/devhire/matchbox/internal/pdf"
	"github.com/devhire/matchbox/pkg/fsx"
	"github.com/devhire/matchbox/pkg/kernel"
	"github.com/devhire/matchbox/pkg/logx"
	"github.com/devhire/matchbox/recruitment/profile"
	"github.com/devhire/matchbox/recruitment/resume"
	"github.com/devhire/matchbox/recruitment/resume/resumeparse"
	"github.com/google/uuid"
)

// ProfileEnricher feeds a freshly parsed resume back into the owning
// profile. Implemented by the profile service.
type ProfileEnricher interface {
	ApplyParsedResume(ctx context.Context, profileID kernel.ProfileID, res *resume.Resume) (*profile.Profile, error)
}

type Service struct {
	repo       resume.Repository
	jobRepo    resume.ParseJobRepository
	parser     *resumeparse.Parser
	fileReader fsx.FileReader
	queue      resume.ParseQueue
	enricher   ProfileEnricher
}

// NewService creates a new resume service. enricher may be nil; parsing then
// stores the resume without touching the profile.
func NewService(
	repo resume.Repository,
	jobRepo resume.ParseJobRepository,
	parser *resumeparse.Parser,
	fileReader fsx.FileReader,
	queue resume.ParseQueue,
	enricher ProfileEnricher,
) *Service {
	return &Service{
		repo:       repo,
		jobRepo:    jobRepo,
		parser:     parser,
		fileReader: fileReader,
		queue:      queue,
		enricher:   enricher,
	}
}

// ============================================================================
// Parse & Create Resume (synchronous path)
// ============================================================================

// ParseAndCreateResume reads the stored document, extracts its text, runs the
// parser, and persists the structured record. Extraction is best-effort: an
// unreadable document yields an empty record, never an error.
func (s *Service) ParseAndCreateResume(ctx context.Context, req resume.ParseResumeRequest) (*resume.ResumeResponse, error) {
	logx.Infof("Parsing resume for ProfileID: %s, FilePath: %s", req.ProfileID, req.FilePath)

	fileData, err := s.fileReader.ReadFile(ctx, req.FilePath)
	if err != nil {
		return nil, resume.ErrFileReadFailed().
			WithDetail("file_path", req.FilePath).
			WithDetails(map[string]interface{}{
				"profile_id": req.ProfileID,
				"error":      err.Error(),
			})
	}

	text, err := s.extractText(req.FileType, fileData)
	if err != nil {
		return nil, err
	}

	parsed := s.parser.Parse(ctx, text)
	if parsed.IsEmpty() {
		logx.Warnf("Resume yielded an empty record: ProfileID=%s, File=%s", req.ProfileID, req.FileName)
	}

	resumeModel := s.buildResume(parsed, req)
	if err := s.repo.Create(ctx, resumeModel); err != nil {
		return nil, resume.ErrRegistry.NewWithCause(resume.CodeStoreFailed, err).
			WithDetail("profile_id", req.ProfileID).
			WithDetail("file_name", req.FileName)
	}

	s.enrichProfile(ctx, req.ProfileID, resumeModel)

	return resume.ToResumeResponse(resumeModel), nil
}

// extractText converts the raw document bytes into plain text. PDF extraction
// failures degrade to empty text so that parsing always completes.
func (s *Service) extractText(fileType string, data []byte) (string, error) {
	switch strings.ToLower(fileType) {
	case "pdf":
		text, err := pdf.ExtractText(data)
		if err != nil {
			logx.Warnf("PDF text extraction failed, treating as empty document: %v", err)
			return "", nil
		}
		return text, nil
	case "txt", "text":
		return string(data), nil
	default:
		return "", resume.ErrInvalidFileFormat().
			WithDetail("file_type", fileType).
			WithDetail("supported_formats", []string{"pdf", "txt"})
	}
}

// buildResume wraps the parsed record with ownership and file metadata.
func (s *Service) buildResume(parsed resume.ParsedResume, req resume.ParseResumeRequest) *resume.Resume {
	now := time.Now()
	return &resume.Resume{
		ID:        kernel.NewResumeID(uuid.NewString()),
		ProfileID: req.ProfileID,
		Parsed:    parsed,
		FilePath:  req.FilePath,
		FileName:  req.FileName,
		FileType:  req.FileType,
		ParsedAt:  now,
		CreatedAt: now,
	}
}

// enrichProfile pushes the parsed record into the owning profile. Failures
// are logged and swallowed; the resume itself is already stored.
func (s *Service) enrichProfile(ctx context.Context, profileID kernel.ProfileID, res *resume.Resume) {
	if s.enricher == nil {
		return
	}
	if _, err := s.enricher.ApplyParsedResume(ctx, profileID, res); err != nil {
		logx.Errorf("Failed to enrich profile %s from resume %s: %v", profileID, res.ID, err)
	}
}

// ============================================================================
// Read & Delete Operations
// ============================================================================

// GetResume retrieves a resume by ID
func (s *Service) GetResume(ctx context.Context, id kernel.ResumeID) (*resume.ResumeResponse, error) {
	resumeModel, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, resume.ErrResumeNotFound().
			WithDetail("resume_id", id)
	}

	return resume.ToResumeResponse(resumeModel), nil
}

// GetResumeByProfile retrieves the latest resume for a profile
func (s *Service) GetResumeByProfile(ctx context.Context, profileID kernel.ProfileID) (*resume.ResumeResponse, error) {
	resumeModel, err := s.repo.GetByProfileID(ctx, profileID)
	if err != nil {
		return nil, resume.ErrResumeNotFound().
			WithDetail("profile_id", profileID)
	}

	return resume.ToResumeResponse(resumeModel), nil
}

// ListResumesByProfile lists every stored resume for a profile, newest first.
func (s *Service) ListResumesByProfile(ctx context.Context, profileID kernel.ProfileID) ([]*resume.ResumeResponse, error) {
	resumes, err := s.repo.ListByProfileID(ctx, profileID)
	if err != nil {
		return nil, resume.ErrRegistry.NewWithCause(resume.CodeResumeNotFound, err).
			WithDetail("profile_id", profileID)
	}

	responses := make([]*resume.ResumeResponse, 0, len(resumes))
	for _, r := range resumes {
		responses = append(responses, resume.ToResumeResponse(r))
	}
	return responses, nil
}

// DeleteResume deletes a resume
func (s *Service) DeleteResume(ctx context.Context, id kernel.ResumeID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return resume.ErrResumeNotFound().
			WithDetail("resume_id", id)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return resume.ErrRegistry.NewWithCause(resume.CodeResumeNotFound, err).
			WithDetail("resume_id", id)
	}

	return nil
}

// ListResumes lists all stored resumes with pagination.
func (s *Service) ListResumes(ctx context.Context, pagination kernel.PaginationOptions) (*resume.PaginatedResumesResponse, error) {
	paginated, err := s.repo.List(ctx, pagination.Normalize())
	if err != nil {
		return nil, resume.ErrRegistry.NewWithCause(resume.CodeResumeNotFound, err)
	}

	responses := make([]resume.ResumeResponse, 0, len(paginated.Items))
	for i := range paginated.Items {
		responses = append(responses, *resume.ToResumeResponse(&paginated.Items[i]))
	}

	return &resume.PaginatedResumesResponse{
		Items:      responses,
		Total:      paginated.Total,
		Page:       paginated.Page,
		PageSize:   paginated.PageSize,
		TotalPages: paginated.TotalPages,
	}, nil
}
