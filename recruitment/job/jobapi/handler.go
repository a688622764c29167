package jobapi

import (
	"github.com/devhire/matchbox/pkg/kernel"
	"github.com/devhire/matchbox/recruitment/job"
	"github.com/devhire/matchbox/recruitment/job/jobsrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for job operations
type Handlers struct {
	service *jobsrv.JobService
}

// NewHandlers creates a new job handlers instance
func NewHandlers(service *jobsrv.JobService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// CreateJob creates a new job posting
// POST /api/jobs
func (h *Handlers) CreateJob(c *fiber.Ctx) error {
	var req job.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidJobData().WithDetail("parse_error", err.Error())
	}

	newJob, err := h.service.CreateJob(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(newJob)
}

// GetJobByID retrieves a job by ID
// GET /api/jobs/:id
func (h *Handlers) GetJobByID(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))
	if jobID.IsEmpty() {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	jobResp, err := h.service.GetJobByID(c.Context(), jobID)
	if err != nil {
		return err
	}

	return c.JSON(jobResp)
}

// UpdateJob applies a partial update to a job
// PATCH /api/jobs/:id
func (h *Handlers) UpdateJob(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))
	if jobID.IsEmpty() {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	var req job.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidJobData().WithDetail("parse_error", err.Error())
	}

	updated, err := h.service.UpdateJob(c.Context(), jobID, req)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

// PublishJob transitions a draft job to published
// POST /api/jobs/:id/publish
func (h *Handlers) PublishJob(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))
	if jobID.IsEmpty() {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	published, err := h.service.PublishJob(c.Context(), jobID)
	if err != nil {
		return err
	}

	return c.JSON(published)
}

// CloseJob closes a published job
// POST /api/jobs/:id/close
func (h *Handlers) CloseJob(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))
	if jobID.IsEmpty() {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	closed, err := h.service.CloseJob(c.Context(), jobID)
	if err != nil {
		return err
	}

	return c.JSON(closed)
}

// ArchiveJob archives a job
// POST /api/jobs/:id/archive
func (h *Handlers) ArchiveJob(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))
	if jobID.IsEmpty() {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.ArchiveJob(c.Context(), jobID); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteJob deletes a job
// DELETE /api/jobs/:id
func (h *Handlers) DeleteJob(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))
	if jobID.IsEmpty() {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeleteJob(c.Context(), jobID); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ListJobs retrieves all jobs with pagination
// GET /api/jobs
func (h *Handlers) ListJobs(c *fiber.Ctx) error {
	jobs, err := h.service.ListJobs(c.Context(), parsePaginationOptions(c))
	if err != nil {
		return err
	}

	return c.JSON(jobs)
}

// ListPublishedJobs retrieves only published jobs
// GET /api/jobs/published
func (h *Handlers) ListPublishedJobs(c *fiber.Ctx) error {
	jobs, err := h.service.ListPublishedJobs(c.Context(), parsePaginationOptions(c))
	if err != nil {
		return err
	}

	return c.JSON(jobs)
}

// ListJobsByRecruiter retrieves jobs posted by a recruiter
// GET /api/jobs/by-recruiter/:recruiterId
func (h *Handlers) ListJobsByRecruiter(c *fiber.Ctx) error {
	recruiterID := kernel.RecruiterID(c.Params("recruiterId"))
	if recruiterID.IsEmpty() {
		return job.ErrInvalidJobData().WithDetail("recruiter_id", "missing or empty")
	}

	jobs, err := h.service.ListJobsByRecruiter(c.Context(), recruiterID, parsePaginationOptions(c))
	if err != nil {
		return err
	}

	return c.JSON(jobs)
}

// SearchJobs searches jobs by various criteria
// POST /api/jobs/search
func (h *Handlers) SearchJobs(c *fiber.Ctx) error {
	var req job.SearchJobsRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidJobData().WithDetail("parse_error", err.Error())
	}

	jobs, err := h.service.SearchJobs(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(jobs)
}

// parsePaginationOptions extracts pagination options from query parameters
func parsePaginationOptions(c *fiber.Ctx) kernel.PaginationOptions {
	return kernel.PaginationOptions{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 20),
	}.Normalize()
}

// RegisterRoutes registers all job routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/jobs")

	api.Get("/", handlers.ListJobs)
	api.Get("/published", handlers.ListPublishedJobs)
	api.Get("/by-recruiter/:recruiterId", handlers.ListJobsByRecruiter)
	api.Post("/search", handlers.SearchJobs)
	api.Post("/", handlers.CreateJob)
	api.Get("/:id", handlers.GetJobByID)
	api.Patch("/:id", handlers.UpdateJob)
	api.Post("/:id/publish", handlers.PublishJob)
	api.Post("/:id/close", handlers.CloseJob)
	api.Post("/:id/archive", handlers.ArchiveJob)
	api.Delete("/:id", handlers.DeleteJob)
}
