package profilesrv

import (
	"context"
	"time"

	"github.com/devhire/matchbox/pkg/errx"
	"github.com/devhire/matchbox/pkg/kernel"
	"github.com/devhire/matchbox/pkg/logx"
	"github.com/devhire/matchbox/recruitment/profile"
	"github.com/devhire/matchbox/recruitment/resume"
	"github.com/google/uuid"
)

// ProfileService provides business operations for candidate profiles
type ProfileService struct {
	profileRepo profile.Repository
}

// NewProfileService creates a new instance of the profile service
func NewProfileService(profileRepo profile.Repository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
	}
}

// CreateProfile creates a new candidate profile
func (s *ProfileService) CreateProfile(ctx context.Context, req profile.CreateProfileRequest) (*profile.Profile, error) {
	if req.Username == "" {
		return nil, profile.ErrInvalidProfileData().WithDetail("field", "username")
	}

	existing, err := s.profileRepo.GetByUsername(ctx, req.Username)
	if err == nil && existing != nil {
		return nil, profile.ErrProfileAlreadyExists().
			WithDetail("username", req.Username).
			WithDetail("existing_id", existing.ID.String())
	}

	newProfile := &profile.Profile{
		ID:             kernel.NewProfileID(uuid.NewString()),
		Username:       req.Username,
		FullName:       req.FullName,
		Phone:          req.Phone,
		Location:       req.Location,
		Title:          req.Title,
		Experience:     req.Experience,
		ExpectedSalary: req.ExpectedSalary,
		Summary:        req.Summary,
		GitHubURL:      req.GitHubURL,
		LinkedInURL:    req.LinkedInURL,
		Skills:         req.Skills,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := s.profileRepo.Create(ctx, newProfile); err != nil {
		return nil, errx.Wrap(err, "failed to create profile", errx.TypeInternal)
	}

	return newProfile, nil
}

// GetProfileByID retrieves a profile by ID
func (s *ProfileService) GetProfileByID(ctx context.Context, id kernel.ProfileID) (*profile.ProfileResponse, error) {
	entity, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := profile.ToProfileResponse(entity)
	return &resp, nil
}

// UpdateProfile applies a partial update to a profile
func (s *ProfileService) UpdateProfile(ctx context.Context, id kernel.ProfileID, req profile.UpdateProfileRequest) (*profile.Profile, error) {
	entity, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		entity.FullName = *req.FullName
	}
	if req.Phone != nil {
		entity.Phone = *req.Phone
	}
	if req.Location != nil {
		entity.Location = *req.Location
	}
	if req.Title != nil {
		entity.Title = *req.Title
	}
	if req.Experience != nil {
		entity.Experience = *req.Experience
	}
	if req.ExpectedSalary != nil {
		entity.ExpectedSalary = req.ExpectedSalary
	}
	if req.Summary != nil {
		entity.Summary = *req.Summary
	}
	if req.GitHubURL != nil {
		entity.GitHubURL = *req.GitHubURL
	}
	if req.LinkedInURL != nil {
		entity.LinkedInURL = *req.LinkedInURL
	}
	if req.Skills != nil {
		entity.Skills = *req.Skills
	}
	entity.UpdatedAt = time.Now()

	if err := s.profileRepo.Update(ctx, id, entity); err != nil {
		return nil, errx.Wrap(err, "failed to update profile", errx.TypeInternal)
	}

	return entity, nil
}

// DeleteProfile deletes a profile by ID
func (s *ProfileService) DeleteProfile(ctx context.Context, id kernel.ProfileID) error {
	exists, err := s.profileRepo.Exists(ctx, id)
	if err != nil {
		return errx.Wrap(err, "failed to check profile existence", errx.TypeInternal)
	}
	if !exists {
		return profile.ErrProfileNotFound().WithDetail("profile_id", id.String())
	}

	if err := s.profileRepo.Delete(ctx, id); err != nil {
		return errx.Wrap(err, "failed to delete profile", errx.TypeInternal)
	}

	return nil
}

// ListProfiles retrieves profiles with pagination
func (s *ProfileService) ListProfiles(ctx context.Context, pagination kernel.PaginationOptions) (*profile.PaginatedProfilesResponse, error) {
	profiles, err := s.profileRepo.List(ctx, pagination.Normalize())
	if err != nil {
		return nil, errx.Wrap(err, "failed to list profiles", errx.TypeInternal)
	}

	responses := make([]profile.ProfileResponse, 0, len(profiles.Items))
	for i := range profiles.Items {
		responses = append(responses, profile.ToProfileResponse(&profiles.Items[i]))
	}

	return &profile.PaginatedProfilesResponse{
		Items:      responses,
		Total:      profiles.Total,
		Page:       profiles.Page,
		PageSize:   profiles.PageSize,
		TotalPages: profiles.TotalPages,
	}, nil
}

// ApplyParsedResume enriches a profile with the structured record extracted
// from an uploaded resume: parsed skills are merged into the skill list, and
// contact or summary fields that the candidate left blank are backfilled.
// Existing hand-entered values are never overwritten.
func (s *ProfileService) ApplyParsedResume(ctx context.Context, profileID kernel.ProfileID, res *resume.Resume) (*profile.Profile, error) {
	entity, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	parsed := res.Parsed
	entity.MergeSkills(parsed.Skills)

	if entity.FullName == "" && parsed.ContactInfo.Name != "" {
		entity.FullName = parsed.ContactInfo.Name
	}
	if entity.Phone == "" && parsed.ContactInfo.Phone != "" {
		entity.Phone = parsed.ContactInfo.Phone
	}
	if entity.GitHubURL == "" && parsed.ContactInfo.GitHub != "" {
		entity.GitHubURL = parsed.ContactInfo.GitHub
	}
	if entity.LinkedInURL == "" && parsed.ContactInfo.LinkedIn != "" {
		entity.LinkedInURL = parsed.ContactInfo.LinkedIn
	}
	if entity.Summary == "" && parsed.Summary != "" {
		entity.Summary = parsed.Summary
	}
	if entity.Experience == "" && parsed.YearsOfExperience > 0 {
		entity.Experience = resume.YearsAsExperienceText(parsed.YearsOfExperience)
	}

	entity.ResumeID = res.ID
	entity.UpdatedAt = time.Now()

	if err := s.profileRepo.Update(ctx, profileID, entity); err != nil {
		return nil, errx.Wrap(err, "failed to apply parsed resume", errx.TypeInternal)
	}

	logx.Infof("profile %s enriched from resume %s: %d skills total",
		profileID.String(), res.ID.String(), len(entity.Skills))

	return entity, nil
}
