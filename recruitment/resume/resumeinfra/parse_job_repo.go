package resumeinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/devhire/matchbox/pkg/kernel"
	"github.com/devhire/matchbox/recruitment/resume"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresParseJobRepository implements resume.ParseJobRepository
type PostgresParseJobRepository struct {
	db *sqlx.DB
}

// NewPostgresParseJobRepository creates a new parse job repository
func NewPostgresParseJobRepository(db *sqlx.DB) *PostgresParseJobRepository {
	return &PostgresParseJobRepository{
		db: db,
	}
}

type parseJobModel struct {
	ID          string         `db:"id"`
	ProfileID   string         `db:"profile_id"`
	FilePath    string         `db:"file_path"`
	FileName    sql.NullString `db:"file_name"`
	FileType    string         `db:"file_type"`
	Status      string         `db:"status"`
	ResumeID    sql.NullString `db:"resume_id"`
	Attempts    int            `db:"attempts"`
	MaxAttempts int            `db:"max_attempts"`
	LastError   sql.NullString `db:"last_error"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (m *parseJobModel) toEntity() *resume.ParseJob {
	job := &resume.ParseJob{
		ID:          kernel.ParseJobID(m.ID),
		ProfileID:   kernel.ProfileID(m.ProfileID),
		FilePath:    m.FilePath,
		FileName:    m.FileName.String,
		FileType:    m.FileType,
		Status:      resume.ParseJobStatus(m.Status),
		Attempts:    m.Attempts,
		MaxAttempts: m.MaxAttempts,
		LastError:   m.LastError.String,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.ResumeID.Valid {
		id := kernel.ResumeID(m.ResumeID.String)
		job.ResumeID = &id
	}
	return job
}

func fromParseJob(j *resume.ParseJob) *parseJobModel {
	model := &parseJobModel{
		ID:          string(j.ID),
		ProfileID:   string(j.ProfileID),
		FilePath:    j.FilePath,
		FileName:    sql.NullString{String: j.FileName, Valid: j.FileName != ""},
		FileType:    j.FileType,
		Status:      string(j.Status),
		Attempts:    j.Attempts,
		MaxAttempts: j.MaxAttempts,
		LastError:   sql.NullString{String: j.LastError, Valid: j.LastError != ""},
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
	if j.ResumeID != nil {
		model.ResumeID = sql.NullString{String: j.ResumeID.String(), Valid: true}
	}
	return model
}

const parseJobColumns = `
	id, profile_id, file_path, file_name, file_type, status, resume_id,
	attempts, max_attempts, last_error, created_at, updated_at
`

// Create inserts a new parse job record
func (r *PostgresParseJobRepository) Create(ctx context.Context, job *resume.ParseJob) error {
	query := `
		INSERT INTO parse_jobs (
			id, profile_id, file_path, file_name, file_type, status, resume_id,
			attempts, max_attempts, last_error, created_at, updated_at
		) VALUES (
			:id, :profile_id, :file_path, :file_name, :file_type, :status, :resume_id,
			:attempts, :max_attempts, :last_error, :created_at, :updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, fromParseJob(job))
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				return fmt.Errorf("parse job already exists: %w", err)
			}
		}
		return fmt.Errorf("failed to create parse job: %w", err)
	}

	return nil
}

// Update persists the current job state
func (r *PostgresParseJobRepository) Update(ctx context.Context, job *resume.ParseJob) error {
	query := `
		UPDATE parse_jobs SET
			status = :status,
			resume_id = :resume_id,
			attempts = :attempts,
			last_error = :last_error,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, fromParseJob(job))
	if err != nil {
		return fmt.Errorf("failed to update parse job: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return resume.ErrParseJobNotFound()
	}

	return nil
}

// GetByID retrieves a parse job by ID
func (r *PostgresParseJobRepository) GetByID(ctx context.Context, jobID kernel.ParseJobID) (*resume.ParseJob, error) {
	query := `SELECT ` + parseJobColumns + ` FROM parse_jobs WHERE id = $1`

	var model parseJobModel
	err := r.db.GetContext(ctx, &model, query, string(jobID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, resume.ErrParseJobNotFound()
		}
		return nil, fmt.Errorf("failed to get parse job: %w", err)
	}

	return model.toEntity(), nil
}

// ListByProfileID retrieves parse jobs for a profile with pagination
func (r *PostgresParseJobRepository) ListByProfileID(ctx context.Context, profileID kernel.ProfileID, pagination kernel.PaginationOptions) (*kernel.Paginated[resume.ParseJob], error) {
	pagination = pagination.Normalize()

	var total int64
	countQuery := `SELECT COUNT(*) FROM parse_jobs WHERE profile_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, string(profileID)); err != nil {
		return nil, fmt.Errorf("failed to count parse jobs: %w", err)
	}

	query := `
		SELECT ` + parseJobColumns + `
		FROM parse_jobs
		WHERE profile_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	var models []parseJobModel
	if err := r.db.SelectContext(ctx, &models, query, string(profileID), pagination.PageSize, pagination.Offset()); err != nil {
		return nil, fmt.Errorf("failed to list parse jobs: %w", err)
	}

	jobs := make([]resume.ParseJob, 0, len(models))
	for i := range models {
		jobs = append(jobs, *models[i].toEntity())
	}

	return kernel.NewPaginated(jobs, total, pagination), nil
}

// GetFailedJobsForRetry retrieves failed jobs with remaining attempts,
// oldest failure first.
func (r *PostgresParseJobRepository) GetFailedJobsForRetry(ctx context.Context, limit int) ([]*resume.ParseJob, error) {
	query := `
		SELECT ` + parseJobColumns + `
		FROM parse_jobs
		WHERE status = $1 AND attempts < max_attempts
		ORDER BY updated_at ASC
		LIMIT $2
	`

	var models []parseJobModel
	err := r.db.SelectContext(ctx, &models, query, string(resume.ParseJobStatusFailed), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get retryable jobs: %w", err)
	}

	jobs := make([]*resume.ParseJob, 0, len(models))
	for i := range models {
		jobs = append(jobs, models[i].toEntity())
	}
	return jobs, nil
}
