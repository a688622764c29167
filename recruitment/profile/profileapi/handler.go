package profileapi

import (
	"github.com/devhire/matchbox/pkg/kernel"
	"github.com/devhire/matchbox/recruitment/profile"
	"github.com/devhire/matchbox/recruitment/profile/profilesrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for profile operations
type Handlers struct {
	service *profilesrv.ProfileService
}

// NewHandlers creates a new profile handlers instance
func NewHandlers(service *profilesrv.ProfileService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// CreateProfile creates a new candidate profile
// POST /api/profiles
func (h *Handlers) CreateProfile(c *fiber.Ctx) error {
	var req profile.CreateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return profile.ErrInvalidProfileData().WithDetail("parse_error", err.Error())
	}

	created, err := h.service.CreateProfile(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetProfileByID retrieves a profile by ID
// GET /api/profiles/:id
func (h *Handlers) GetProfileByID(c *fiber.Ctx) error {
	profileID := kernel.ProfileID(c.Params("id"))
	if profileID.IsEmpty() {
		return profile.ErrProfileNotFound().WithDetail("id", "missing or empty")
	}

	resp, err := h.service.GetProfileByID(c.Context(), profileID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// UpdateProfile applies a partial update to a profile
// PATCH /api/profiles/:id
func (h *Handlers) UpdateProfile(c *fiber.Ctx) error {
	profileID := kernel.ProfileID(c.Params("id"))
	if profileID.IsEmpty() {
		return profile.ErrProfileNotFound().WithDetail("id", "missing or empty")
	}

	var req profile.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return profile.ErrInvalidProfileData().WithDetail("parse_error", err.Error())
	}

	updated, err := h.service.UpdateProfile(c.Context(), profileID, req)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

// DeleteProfile deletes a profile
// DELETE /api/profiles/:id
func (h *Handlers) DeleteProfile(c *fiber.Ctx) error {
	profileID := kernel.ProfileID(c.Params("id"))
	if profileID.IsEmpty() {
		return profile.ErrProfileNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeleteProfile(c.Context(), profileID); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ListProfiles retrieves profiles with pagination
// GET /api/profiles
func (h *Handlers) ListProfiles(c *fiber.Ctx) error {
	pagination := kernel.PaginationOptions{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 20),
	}

	profiles, err := h.service.ListProfiles(c.Context(), pagination)
	if err != nil {
		return err
	}

	return c.JSON(profiles)
}

// RegisterRoutes registers all profile routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/profiles")

	api.Get("/", handlers.ListProfiles)
	api.Post("/", handlers.CreateProfile)
	api.Get("/:id", handlers.GetProfileByID)
	api.Patch("/:id", handlers.UpdateProfile)
	api.Delete("/:id", handlers.DeleteProfile)
}
