package matchapi

import (
	"github.com/devhire/matchbox/pkg/kernel"
	"github.com/devhire/matchbox/recruitment/job"
	"github.com/devhire/matchbox/recruitment/matching/matchsrv"
	"github.com/devhire/matchbox/recruitment/profile"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for matching operations
type Handlers struct {
	service *matchsrv.MatchService
}

// NewHandlers creates a new matching handlers instance
func NewHandlers(service *matchsrv.MatchService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// FindJobs returns the ranked job recommendation feed for a profile
// GET /api/match/profiles/:profileId/jobs
func (h *Handlers) FindJobs(c *fiber.Ctx) error {
	profileID := kernel.ProfileID(c.Params("profileId"))
	if profileID.IsEmpty() {
		return profile.ErrProfileNotFound().WithDetail("profile_id", "missing or empty")
	}

	recommendations, err := h.service.FindJobsForProfile(c.Context(), profileID)
	if err != nil {
		return err
	}

	return c.JSON(recommendations)
}

// AnalyzeJob scores one posting against a profile with skill-gap hints
// GET /api/match/profiles/:profileId/jobs/:jobId
func (h *Handlers) AnalyzeJob(c *fiber.Ctx) error {
	profileID := kernel.ProfileID(c.Params("profileId"))
	if profileID.IsEmpty() {
		return profile.ErrProfileNotFound().WithDetail("profile_id", "missing or empty")
	}

	jobID := kernel.JobID(c.Params("jobId"))
	if jobID.IsEmpty() {
		return job.ErrJobNotFound().WithDetail("job_id", "missing or empty")
	}

	analysis, err := h.service.AnalyzeJob(c.Context(), profileID, jobID)
	if err != nil {
		return err
	}

	return c.JSON(analysis)
}

// RankCandidates returns every profile scored against one posting
// GET /api/match/jobs/:jobId/candidates
func (h *Handlers) RankCandidates(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("jobId"))
	if jobID.IsEmpty() {
		return job.ErrJobNotFound().WithDetail("job_id", "missing or empty")
	}

	ranked, err := h.service.RankCandidates(c.Context(), jobID)
	if err != nil {
		return err
	}

	return c.JSON(ranked)
}

// RegisterRoutes registers all matching routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/match")

	api.Get("/profiles/:profileId/jobs", handlers.FindJobs)
	api.Get("/profiles/:profileId/jobs/:jobId", handlers.AnalyzeJob)
	api.Get("/jobs/:jobId/candidates", handlers.RankCandidates)
}
