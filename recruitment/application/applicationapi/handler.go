package applicationapi

import (
	"github.com/devhire/matchbox/pkg/kernel"
	"github.com/devhire/matchbox/recruitment/application"
	"github.com/devhire/matchbox/recruitment/application/applicationsrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for application operations
type Handlers struct {
	service *applicationsrv.ApplicationService
}

// NewHandlers creates a new application handlers instance
func NewHandlers(service *applicationsrv.ApplicationService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// Apply submits an application to a job
// POST /api/applications
func (h *Handlers) Apply(c *fiber.Ctx) error {
	var req application.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidApplicationData().WithDetail("parse_error", err.Error())
	}

	app, err := h.service.Apply(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(app)
}

// GetApplication retrieves an application by ID
// GET /api/applications/:id
func (h *Handlers) GetApplication(c *fiber.Ctx) error {
	appID := kernel.ApplicationID(c.Params("id"))
	if appID.IsEmpty() {
		return application.ErrApplicationNotFound().WithDetail("id", "missing or empty")
	}

	app, err := h.service.GetApplication(c.Context(), appID)
	if err != nil {
		return err
	}

	return c.JSON(app)
}

// UpdateStatus moves an application through the funnel
// PATCH /api/applications/:id/status
func (h *Handlers) UpdateStatus(c *fiber.Ctx) error {
	appID := kernel.ApplicationID(c.Params("id"))
	if appID.IsEmpty() {
		return application.ErrApplicationNotFound().WithDetail("id", "missing or empty")
	}

	var req application.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidApplicationData().WithDetail("parse_error", err.Error())
	}

	app, err := h.service.UpdateStatus(c.Context(), appID, req)
	if err != nil {
		return err
	}

	return c.JSON(app)
}

// Withdraw removes an application on the candidate's request
// DELETE /api/applications/:id
func (h *Handlers) Withdraw(c *fiber.Ctx) error {
	appID := kernel.ApplicationID(c.Params("id"))
	if appID.IsEmpty() {
		return application.ErrApplicationNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.Withdraw(c.Context(), appID); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ListByJob retrieves applications for a job, best match first
// GET /api/jobs/:jobId/applications
func (h *Handlers) ListByJob(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("jobId"))
	if jobID.IsEmpty() {
		return application.ErrInvalidApplicationData().WithDetail("job_id", "missing or empty")
	}

	apps, err := h.service.ListByJob(c.Context(), jobID, parsePaginationOptions(c))
	if err != nil {
		return err
	}

	return c.JSON(apps)
}

// ListByProfile retrieves a candidate's applications, newest first
// GET /api/profiles/:profileId/applications
func (h *Handlers) ListByProfile(c *fiber.Ctx) error {
	profileID := kernel.ProfileID(c.Params("profileId"))
	if profileID.IsEmpty() {
		return application.ErrInvalidApplicationData().WithDetail("profile_id", "missing or empty")
	}

	apps, err := h.service.ListByProfile(c.Context(), profileID, parsePaginationOptions(c))
	if err != nil {
		return err
	}

	return c.JSON(apps)
}

// parsePaginationOptions extracts pagination options from query parameters
func parsePaginationOptions(c *fiber.Ctx) kernel.PaginationOptions {
	return kernel.PaginationOptions{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 20),
	}.Normalize()
}

// RegisterRoutes registers all application routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/applications")

	api.Post("/", handlers.Apply)
	api.Get("/:id", handlers.GetApplication)
	api.Patch("/:id/status", handlers.UpdateStatus)
	api.Delete("/:id", handlers.Withdraw)

	app.Get("/api/jobs/:jobId/applications", handlers.ListByJob)
	app.Get("/api/profiles/:profileId/applications", handlers.ListByProfile)
}
