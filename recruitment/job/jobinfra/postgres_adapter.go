package jobinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/devhire/matchbox/pkg/kernel"
	"github.com/devhire/matchbox/recruitment/job"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresJobRepository implements job.Repository using PostgreSQL
type PostgresJobRepository struct {
	db *sqlx.DB
}

// NewPostgresJobRepository creates a new PostgreSQL job repository
func NewPostgresJobRepository(db *sqlx.DB) *PostgresJobRepository {
	return &PostgresJobRepository{
		db: db,
	}
}

// ============================================================================
// Database Model
// ============================================================================

type jobModel struct {
	ID           string          `db:"id"`
	RecruiterID  string          `db:"recruiter_id"`
	Title        string          `db:"title"`
	Department   sql.NullString  `db:"department"`
	Description  sql.NullString  `db:"description"`
	JobType      string          `db:"job_type"`
	Location     sql.NullString  `db:"location"`
	SalaryMin    *float64        `db:"salary_min"`
	SalaryMax    *float64        `db:"salary_max"`
	Requirements json.RawMessage `db:"requirements"`
	Benefits     json.RawMessage `db:"benefits"`
	Status       string          `db:"status"`
	PublishedAt  *time.Time      `db:"published_at"`
	ArchivedAt   *time.Time      `db:"archived_at"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

// toEntity converts database model to domain entity
func (m *jobModel) toEntity() (*job.Job, error) {
	var requirements kernel.RequirementList
	if len(m.Requirements) > 0 {
		if err := json.Unmarshal(m.Requirements, &requirements); err != nil {
			return nil, fmt.Errorf("failed to unmarshal requirements: %w", err)
		}
	}

	var benefits []kernel.JobBenefit
	if len(m.Benefits) > 0 {
		if err := json.Unmarshal(m.Benefits, &benefits); err != nil {
			return nil, fmt.Errorf("failed to unmarshal benefits: %w", err)
		}
	}

	return &job.Job{
		ID:           kernel.JobID(m.ID),
		RecruiterID:  kernel.RecruiterID(m.RecruiterID),
		Title:        kernel.JobTitle(m.Title),
		Department:   m.Department.String,
		Description:  kernel.JobDescription(m.Description.String),
		Type:         kernel.JobType(m.JobType),
		Location:     m.Location.String,
		SalaryMin:    m.SalaryMin,
		SalaryMax:    m.SalaryMax,
		Requirements: requirements,
		Benefits:     benefits,
		Status:       job.JobStatus(m.Status),
		PublishedAt:  m.PublishedAt,
		ArchivedAt:   m.ArchivedAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}, nil
}

// fromEntity converts domain entity to database model
func fromEntity(j *job.Job) (*jobModel, error) {
	requirements, err := json.Marshal(j.Requirements)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal requirements: %w", err)
	}

	benefits, err := json.Marshal(j.Benefits)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal benefits: %w", err)
	}

	return &jobModel{
		ID:           string(j.ID),
		RecruiterID:  string(j.RecruiterID),
		Title:        string(j.Title),
		Department:   sql.NullString{String: j.Department, Valid: j.Department != ""},
		Description:  sql.NullString{String: string(j.Description), Valid: j.Description != ""},
		JobType:      string(j.Type),
		Location:     sql.NullString{String: j.Location, Valid: j.Location != ""},
		SalaryMin:    j.SalaryMin,
		SalaryMax:    j.SalaryMax,
		Requirements: requirements,
		Benefits:     benefits,
		Status:       string(j.Status),
		PublishedAt:  j.PublishedAt,
		ArchivedAt:   j.ArchivedAt,
		CreatedAt:    j.CreatedAt,
		UpdatedAt:    j.UpdatedAt,
	}, nil
}

const jobColumns = `
	id, recruiter_id, title, department, description, job_type, location,
	salary_min, salary_max, requirements, benefits, status,
	published_at, archived_at, created_at, updated_at
`

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new job
func (r *PostgresJobRepository) Create(ctx context.Context, jobEntity *job.Job) error {
	model, err := fromEntity(jobEntity)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO jobs (
			id, recruiter_id, title, department, description, job_type, location,
			salary_min, salary_max, requirements, benefits, status,
			published_at, archived_at, created_at, updated_at
		) VALUES (
			:id, :recruiter_id, :title, :department, :description, :job_type, :location,
			:salary_min, :salary_max, :requirements, :benefits, :status,
			:published_at, :archived_at, :created_at, :updated_at
		)
	`

	_, err = r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				return job.ErrJobAlreadyExists()
			}
		}
		return fmt.Errorf("failed to create job: %w", err)
	}

	return nil
}

// Update updates an existing job
func (r *PostgresJobRepository) Update(ctx context.Context, id kernel.JobID, jobEntity *job.Job) error {
	model, err := fromEntity(jobEntity)
	if err != nil {
		return err
	}
	model.ID = string(id)

	query := `
		UPDATE jobs SET
			title = :title,
			department = :department,
			description = :description,
			job_type = :job_type,
			location = :location,
			salary_min = :salary_min,
			salary_max = :salary_max,
			requirements = :requirements,
			benefits = :benefits,
			status = :status,
			published_at = :published_at,
			archived_at = :archived_at,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return job.ErrJobNotFound()
	}

	return nil
}

// GetByID retrieves a job by ID
func (r *PostgresJobRepository) GetByID(ctx context.Context, id kernel.JobID) (*job.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	var model jobModel
	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, job.ErrJobNotFound()
		}
		return nil, fmt.Errorf("failed to get job by id: %w", err)
	}

	return model.toEntity()
}

// Delete deletes a job by ID
func (r *PostgresJobRepository) Delete(ctx context.Context, id kernel.JobID) error {
	query := `DELETE FROM jobs WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return job.ErrJobNotFound()
	}

	return nil
}

// List retrieves all jobs with pagination
func (r *PostgresJobRepository) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	return r.listWhere(ctx, pagination, "", nil)
}

// ListByRecruiter retrieves jobs posted by a specific recruiter
func (r *PostgresJobRepository) ListByRecruiter(ctx context.Context, recruiterID kernel.RecruiterID, pagination kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	return r.listWhere(ctx, pagination, "recruiter_id = $1", []any{string(recruiterID)})
}

// ListPublished retrieves only published jobs
func (r *PostgresJobRepository) ListPublished(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	return r.listWhere(ctx, pagination, "status = $1", []any{string(job.JobStatusPublished)})
}

// AllPublished retrieves every published job for batch matching runs
func (r *PostgresJobRepository) AllPublished(ctx context.Context) ([]job.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE status = $1 ORDER BY created_at DESC`

	var models []jobModel
	err := r.db.SelectContext(ctx, &models, query, string(job.JobStatusPublished))
	if err != nil {
		return nil, fmt.Errorf("failed to load published jobs: %w", err)
	}

	entities := make([]job.Job, 0, len(models))
	for i := range models {
		entity, err := models[i].toEntity()
		if err != nil {
			return nil, err
		}
		entities = append(entities, *entity)
	}
	return entities, nil
}

// Search searches jobs by title, location, and type
func (r *PostgresJobRepository) Search(ctx context.Context, req job.SearchJobsRequest) (*kernel.Paginated[job.Job], error) {
	where := "1=1"
	var args []any

	if req.Query != "" {
		args = append(args, req.Query)
		n := len(args)
		where += fmt.Sprintf(" AND (title ILIKE '%%' || $%d || '%%' OR description ILIKE '%%' || $%d || '%%')", n, n)
	}
	if req.Title != "" {
		args = append(args, req.Title)
		where += fmt.Sprintf(" AND title ILIKE '%%' || $%d || '%%'", len(args))
	}
	if req.Location != "" {
		args = append(args, req.Location)
		where += fmt.Sprintf(" AND location ILIKE '%%' || $%d || '%%'", len(args))
	}
	if req.Type != "" {
		args = append(args, string(req.Type))
		where += fmt.Sprintf(" AND job_type = $%d", len(args))
	}

	return r.listWhere(ctx, req.Pagination, where, args)
}

// Exists checks if a job exists by ID
func (r *PostgresJobRepository) Exists(ctx context.Context, id kernel.JobID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1)`
	if err := r.db.GetContext(ctx, &exists, query, string(id)); err != nil {
		return false, fmt.Errorf("failed to check job existence: %w", err)
	}
	return exists, nil
}

// CountByRecruiter counts the jobs posted by a recruiter
func (r *PostgresJobRepository) CountByRecruiter(ctx context.Context, recruiterID kernel.RecruiterID) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM jobs WHERE recruiter_id = $1`
	if err := r.db.GetContext(ctx, &count, query, string(recruiterID)); err != nil {
		return 0, fmt.Errorf("failed to count recruiter jobs: %w", err)
	}
	return count, nil
}

// listWhere runs a paginated query with an optional WHERE clause.
func (r *PostgresJobRepository) listWhere(ctx context.Context, pagination kernel.PaginationOptions, where string, args []any) (*kernel.Paginated[job.Job], error) {
	pagination = pagination.Normalize()

	clause := ""
	if where != "" {
		clause = " WHERE " + where
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM jobs` + clause
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	query := fmt.Sprintf(
		`SELECT %s FROM jobs%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		jobColumns, clause, len(args)+1, len(args)+2,
	)
	queryArgs := append(append([]any{}, args...), pagination.PageSize, pagination.Offset())

	var models []jobModel
	if err := r.db.SelectContext(ctx, &models, query, queryArgs...); err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	entities := make([]job.Job, 0, len(models))
	for i := range models {
		entity, err := models[i].toEntity()
		if err != nil {
			return nil, err
		}
		entities = append(entities, *entity)
	}

	return kernel.NewPaginated(entities, total, pagination), nil
}
