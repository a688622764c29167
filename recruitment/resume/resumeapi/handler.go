package resumeapi

import (
	"fmt"
	"io"
	"path"
	"path/filepath"

	"github.com/devhire/matchbox/pkg/fsx"
	"github.com/devhire/matchbox/pkg/kernel"
	"github.com/devhire/matchbox/recruitment/resume"
	"github.com/devhire/matchbox/recruitment/resume/resumesrv"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const maxUploadSize = 10 * 1024 * 1024 // 10MB

type ResumeHandlers struct {
	service    *resumesrv.Service
	fileSystem fsx.FileSystem
}

func NewResumeHandlers(service *resumesrv.Service, fileSystem fsx.FileSystem) *ResumeHandlers {
	return &ResumeHandlers{
		service:    service,
		fileSystem: fileSystem,
	}
}

func (h *ResumeHandlers) RegisterRoutes(app *fiber.App) {
	resumes := app.Group("/api/resumes")

	resumes.Post("/parse", h.ParseResume) // Upload and parse (async)
	resumes.Get("/:id", h.GetResume)
	resumes.Delete("/:id", h.DeleteResume)
	resumes.Get("/", h.ListResumes)

	// Parse job tracking
	jobs := app.Group("/api/parse-jobs")
	jobs.Get("/:jobId", h.GetParseJob)

	// Profile-scoped lookups
	profiles := app.Group("/api/profiles/:profileId")
	profiles.Get("/resume", h.GetResumeByProfile)
	profiles.Get("/resumes", h.ListResumesByProfile)
	profiles.Get("/parse-jobs", h.ListParseJobsByProfile)
}

// ============================================================================
// Upload & Parse
// ============================================================================

// ParseResume uploads a resume document and queues it for parsing
// POST /api/resumes/parse
func (h *ResumeHandlers) ParseResume(c *fiber.Ctx) error {
	profileID := kernel.ProfileID(c.FormValue("profile_id"))
	if profileID.IsEmpty() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "profile_id is required",
		})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "file is required",
		})
	}

	if file.Size > maxUploadSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":    "file too large",
			"max_size": "10MB",
			"size":     file.Size,
		})
	}

	fileType := determineFileType(file.Filename, file.Header.Get("Content-Type"))
	if fileType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":           "unsupported file type",
			"supported_types": []string{"pdf", "txt"},
			"detected_type":   file.Header.Get("Content-Type"),
			"file_extension":  filepath.Ext(file.Filename),
		})
	}

	uploadedFile, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to open uploaded file",
		})
	}
	defer uploadedFile.Close()

	data, err := io.ReadAll(uploadedFile)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to read uploaded file",
		})
	}

	extension := filepath.Ext(file.Filename)
	if extension == "" {
		extension = "." + fileType
	}
	filePath := path.Join("resumes", profileID.String(), uuid.NewString()+extension)

	if err := h.fileSystem.WriteFile(c.Context(), filePath, data, file.Header.Get("Content-Type")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "failed to upload file to storage",
			"details": err.Error(),
		})
	}

	req := resume.ParseResumeRequest{
		ProfileID: profileID,
		FilePath:  filePath,
		FileName:  file.Filename,
		FileType:  fileType,
	}

	jobResponse, err := h.service.ParseResumeAsync(c.Context(), req)
	if err != nil {
		// Queueing failed; remove the orphaned upload.
		_ = h.fileSystem.DeleteFile(c.Context(), filePath)
		return err
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"message":    "Resume upload successful, parsing started",
		"job":        jobResponse,
		"status_url": fmt.Sprintf("/api/parse-jobs/%s", jobResponse.ID),
	})
}

// ============================================================================
// Resume Handlers
// ============================================================================

// GetResume retrieves a resume by ID
// GET /api/resumes/:id
func (h *ResumeHandlers) GetResume(c *fiber.Ctx) error {
	resumeID := kernel.ResumeID(c.Params("id"))
	if resumeID.IsEmpty() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid resume ID",
		})
	}

	response, err := h.service.GetResume(c.Context(), resumeID)
	if err != nil {
		return err
	}

	return c.JSON(response)
}

// DeleteResume deletes a resume and its stored document
// DELETE /api/resumes/:id
func (h *ResumeHandlers) DeleteResume(c *fiber.Ctx) error {
	resumeID := kernel.ResumeID(c.Params("id"))
	if resumeID.IsEmpty() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid resume ID",
		})
	}

	existing, err := h.service.GetResume(c.Context(), resumeID)
	if err != nil {
		return err
	}

	if err := h.service.DeleteResume(c.Context(), resumeID); err != nil {
		return err
	}

	if existing.FilePath != "" {
		_ = h.fileSystem.DeleteFile(c.Context(), existing.FilePath)
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

// ListResumes lists all resumes with pagination
// GET /api/resumes?page=1&page_size=20
func (h *ResumeHandlers) ListResumes(c *fiber.Ctx) error {
	pagination := kernel.PaginationOptions{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 20),
	}

	response, err := h.service.ListResumes(c.Context(), pagination)
	if err != nil {
		return err
	}

	return c.JSON(response)
}

// GetResumeByProfile retrieves the latest resume for a profile
// GET /api/profiles/:profileId/resume
func (h *ResumeHandlers) GetResumeByProfile(c *fiber.Ctx) error {
	profileID := kernel.ProfileID(c.Params("profileId"))
	if profileID.IsEmpty() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid profile ID",
		})
	}

	response, err := h.service.GetResumeByProfile(c.Context(), profileID)
	if err != nil {
		return err
	}

	return c.JSON(response)
}

// ListResumesByProfile lists all resumes for a profile
// GET /api/profiles/:profileId/resumes
func (h *ResumeHandlers) ListResumesByProfile(c *fiber.Ctx) error {
	profileID := kernel.ProfileID(c.Params("profileId"))
	if profileID.IsEmpty() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid profile ID",
		})
	}

	responses, err := h.service.ListResumesByProfile(c.Context(), profileID)
	if err != nil {
		return err
	}

	return c.JSON(responses)
}

// ============================================================================
// Parse Job Handlers
// ============================================================================

// GetParseJob retrieves the status of a parse job
// GET /api/parse-jobs/:jobId
func (h *ResumeHandlers) GetParseJob(c *fiber.Ctx) error {
	jobID := kernel.ParseJobID(c.Params("jobId"))
	if jobID.IsEmpty() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid job ID",
		})
	}

	response, err := h.service.GetParseJob(c.Context(), jobID)
	if err != nil {
		return err
	}

	return c.JSON(response)
}

// ListParseJobsByProfile lists parse jobs for a profile
// GET /api/profiles/:profileId/parse-jobs?page=1&page_size=20
func (h *ResumeHandlers) ListParseJobsByProfile(c *fiber.Ctx) error {
	profileID := kernel.ProfileID(c.Params("profileId"))
	if profileID.IsEmpty() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid profile ID",
		})
	}

	pagination := kernel.PaginationOptions{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 20),
	}

	response, err := h.service.ListParseJobsByProfile(c.Context(), profileID, pagination)
	if err != nil {
		return err
	}

	return c.JSON(response)
}

// ============================================================================
// Helpers
// ============================================================================

// determineFileType determines the file type from filename and content type
func determineFileType(filename, contentType string) string {
	switch contentType {
	case "application/pdf":
		return "pdf"
	case "text/plain":
		return "txt"
	}

	switch filepath.Ext(filename) {
	case ".pdf":
		return "pdf"
	case ".txt", ".text":
		return "txt"
	default:
		return ""
	}
}
